package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectDefaults(t *testing.T) {
	o := NewObject("glass", mgl32.Vec3{1, 2, 3})

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, o.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, o.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, o.Scale)
	assert.Zero(t, o.Angle)
	assert.True(t, o.ModelMatrix().ApproxEqual(mgl32.Translate3D(1, 2, 3)))
}

func TestModelMatrixOrder(t *testing.T) {
	// Scale first, then rotate a quarter turn about Y, then translate.
	o := NewObject("cube", mgl32.Vec3{10, 0, 0}).
		Scaled(mgl32.Vec3{2, 1, 1}).
		Rotated(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})

	got := o.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()

	assert.InDelta(t, 10, got[0], 1e-5)
	assert.InDelta(t, 0, got[1], 1e-5)
	assert.InDelta(t, -2, got[2], 1e-5)
}

func TestTransforms(t *testing.T) {
	o := NewObject("cube", mgl32.Vec3{0, 0, -3})
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.2, 100)

	mv, mvp := o.Transforms(view, proj)

	assert.True(t, mv.ApproxEqual(view.Mul4(o.ModelMatrix())))
	assert.True(t, mvp.ApproxEqual(proj.Mul4(view).Mul4(o.ModelMatrix())))
	center := mv.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -8, center[2], 1e-5)
}

func TestSceneIsAppendOnlyCopy(t *testing.T) {
	s := New("test")
	s.Add(NewObject("a", mgl32.Vec3{}), NewObject("b", mgl32.Vec3{}))

	objs := s.Objects()
	objs[0].Name = "changed"

	assert.Equal(t, "a", s.Objects()[0].Name)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Names())
}

func TestHouseLayout(t *testing.T) {
	s := House()

	// Plane, ten front-wall pieces, then three units of sixteen pieces.
	require.Equal(t, 1+10+houseUnits*16, s.Len())
	objs := s.Objects()

	assert.Equal(t, "plane", objs[0].Name)
	assert.Equal(t, mgl32.Vec3{20, 1, 20}, objs[0].Scale)
	assert.Equal(t, mgl32.Vec3{-2, -1, 0}, objs[0].Position)

	counts := map[string]int{}
	for _, o := range objs {
		counts[o.Name]++
	}
	assert.Equal(t, map[string]int{
		"plane":       1,
		"door_top":    1,
		"door_bottom": 1,
		"oak_plank":   5 + houseUnits*6,
		"glass":       2 + houseUnits*3,
		"oak_wood":    1 + houseUnits*7,
	}, counts)

	// The last unit's roof beam closes the house at the front.
	last := objs[len(objs)-1]
	assert.Equal(t, "oak_wood", last.Name)
	assert.Equal(t, mgl32.Vec3{2, 6, -2}, last.Position)

	// First unit starts with the front-left pillar on the ground.
	assert.Equal(t, mgl32.Vec3{-4, 0, 0}, objs[11].Position)
}

func TestHouseUsesKnownMeshes(t *testing.T) {
	known := []string{"plane", "oak_wood", "oak_plank", "glass", "door_top", "door_bottom"}
	assert.NoError(t, House().Validate(known))
}

func TestValidateReportsUnknownNames(t *testing.T) {
	err := Display().Validate([]string{"plane"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "light, teapot")
}

func TestBuiltin(t *testing.T) {
	assert.Equal(t, []string{"display", "house"}, BuiltinNames())

	s, err := Builtin("display")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	// Each call builds a fresh scene.
	a, _ := Builtin("house")
	a.Add(NewObject("extra", mgl32.Vec3{}))
	b, _ := Builtin("house")
	assert.Equal(t, a.Len()-1, b.Len())

	_, err = Builtin("castle")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	src := `
name: yard
objects:
  - name: plane
    position: [-2, -1, 0]
    scale: [20, 1, 20]
  - name: oak_wood
    position: [0, 8, -4]
    rotation: [1, 0, 0]
    angle: 0.5
`
	s, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	objs := s.Objects()
	require.Len(t, objs, 2)
	assert.Equal(t, "yard", s.Name)
	assert.Equal(t, mgl32.Vec3{20, 1, 20}, objs[0].Scale)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, objs[0].Rotation)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, objs[1].Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, objs[1].Scale)
	assert.InDelta(t, 0.5, objs[1].Angle, 1e-6)
}

func TestDecodeRejectsUnnamedObject(t *testing.T) {
	_, err := Decode(strings.NewReader("objects:\n  - position: [0, 0, 0]\n"))
	assert.ErrorContains(t, err, "object 0 has no name")
}

func TestEncodeRoundTripsHouse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, House().Encode(&buf))
	assert.Contains(t, buf.String(), "scale: [20, 1, 20]")

	s, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, House().Objects(), s.Objects())
}
