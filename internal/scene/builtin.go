package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// houseUnits is how many pillar/wall/roof units are stacked to build the house.
	houseUnits = 3
	// houseStep is the spacing between units; it matches the 2-unit cube mesh.
	houseStep = 2
)

var builtins = map[string]func() *Scene{
	"house":   House,
	"display": Display,
}

// Builtin returns a freshly built copy of the named built-in scene.
func Builtin(name string) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown built-in scene %q (have %v)", name, BuiltinNames())
	}
	return build(), nil
}

// BuiltinNames returns the built-in scene names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// House lays out a small wooden house on a grass field: a front wall with a two-part
// door and windows, then three repeated units of corner pillars, side and back walls
// (plank, glass, plank) and roof beams.
func House() *Scene {
	s := New("house")

	s.Add(NewObject("plane", mgl32.Vec3{-2, -1, 0}).Scaled(mgl32.Vec3{20, 1, 20}))

	// Front wall.
	s.Add(
		NewObject("door_top", mgl32.Vec3{0, 2, 0}),
		NewObject("door_bottom", mgl32.Vec3{0, 0, 0}),
		NewObject("oak_plank", mgl32.Vec3{-2, 0, 0}),
		NewObject("oak_plank", mgl32.Vec3{2, 0, 0}),
		NewObject("oak_plank", mgl32.Vec3{2, 4, 0}),
		NewObject("oak_plank", mgl32.Vec3{0, 4, 0}),
		NewObject("oak_plank", mgl32.Vec3{-2, 4, 0}),
		NewObject("glass", mgl32.Vec3{-2, 2, 0}),
		NewObject("glass", mgl32.Vec3{2, 2, 0}),
		NewObject("oak_wood", mgl32.Vec3{0, 8, -4}),
	)

	for i := 0; i < houseUnits; i++ {
		x := float32(i * houseStep)

		// Corner pillars grow one block per unit.
		s.Add(
			NewObject("oak_wood", mgl32.Vec3{-4, x, 0}),
			NewObject("oak_wood", mgl32.Vec3{4, x, 0}),
			NewObject("oak_wood", mgl32.Vec3{4, x, -8}),
			NewObject("oak_wood", mgl32.Vec3{-4, x, -8}),
		)
		for _, side := range []float32{-4, 4} {
			s.Add(wallColumn(func(y float32) mgl32.Vec3 { return mgl32.Vec3{side, y, -2 - x} })...)
		}
		s.Add(wallColumn(func(y float32) mgl32.Vec3 { return mgl32.Vec3{-2 + x, y, -8} })...)

		// Roof beams.
		s.Add(
			NewObject("oak_wood", mgl32.Vec3{-2 + x, 6, -6}),
			NewObject("oak_wood", mgl32.Vec3{-2 + x, 6, -4}),
			NewObject("oak_wood", mgl32.Vec3{-2 + x, 6, -2}),
		)
	}
	return s
}

// wallColumn is a plank, a window and a plank stacked at heights 0, 2 and 4.
func wallColumn(at func(y float32) mgl32.Vec3) []Object {
	return []Object{
		NewObject("oak_plank", at(0)),
		NewObject("glass", at(2)),
		NewObject("oak_plank", at(4)),
	}
}

// Display is a teapot resting on a plane, with a small marker where the light sits.
func Display() *Scene {
	s := New("display")
	s.Add(
		NewObject("teapot", mgl32.Vec3{0, 0, 0}),
		NewObject("plane", mgl32.Vec3{0, -0.85, 0}).Scaled(mgl32.Vec3{10, 1, 10}),
		NewObject("light", mgl32.Vec3{2, 3, 2}).Scaled(mgl32.Vec3{0.1, 0.1, 0.1}),
	)
	return s
}
