package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Object places one instance of a named mesh in the world. Rotation is the axis that
// Angle (radians) turns around.
type Object struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Angle    float32
	Name     string
}

// NewObject returns an unrotated, unit-scale object of the given mesh name at position.
func NewObject(name string, position mgl32.Vec3) Object {
	return Object{
		Position: position,
		Rotation: mgl32.Vec3{0, 1, 0},
		Scale:    mgl32.Vec3{1, 1, 1},
		Name:     name,
	}
}

// Scaled returns a copy of o with the given scale.
func (o Object) Scaled(s mgl32.Vec3) Object {
	o.Scale = s
	return o
}

// Rotated returns a copy of o turned angle radians around axis.
func (o Object) Rotated(angle float32, axis mgl32.Vec3) Object {
	o.Angle = angle
	o.Rotation = axis
	return o
}

// ModelMatrix is translate * rotate * scale, so scale applies first and translation last.
func (o Object) ModelMatrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])
	scale := mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2])
	rotate := mgl32.Ident4()
	if o.Angle != 0 && o.Rotation.Len() > 0 {
		rotate = mgl32.HomogRotate3D(o.Angle, o.Rotation.Normalize())
	}
	return translate.Mul4(rotate).Mul4(scale)
}

// Transforms returns the model-view and model-view-projection matrices for o.
func (o Object) Transforms(view, projection mgl32.Mat4) (mv, mvp mgl32.Mat4) {
	mv = view.Mul4(o.ModelMatrix())
	mvp = projection.Mul4(mv)
	return mv, mvp
}

// Scene is an append-only, ordered list of objects. Draw order is insertion order.
type Scene struct {
	Name    string
	objects []Object
}

// New returns an empty scene.
func New(name string) *Scene {
	return &Scene{Name: name}
}

// Add appends objects to the scene.
func (s *Scene) Add(objs ...Object) {
	s.objects = append(s.objects, objs...)
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns a copy of the objects in draw order.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Each calls fn for every object in draw order without copying the list.
func (s *Scene) Each(fn func(Object)) {
	for _, o := range s.objects {
		fn(o)
	}
}

// Names returns the distinct mesh names in first-seen order.
func (s *Scene) Names() []string {
	seen := make(map[string]bool)
	var out []string
	for _, o := range s.objects {
		if !seen[o.Name] {
			seen[o.Name] = true
			out = append(out, o.Name)
		}
	}
	return out
}

// Validate reports names used by the scene that are not in known. Drawing skips such
// objects, so this is a diagnostic rather than a precondition.
func (s *Scene) Validate(known []string) error {
	have := make(map[string]bool, len(known))
	for _, k := range known {
		have[k] = true
	}
	var missing []string
	for _, n := range s.Names() {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("scene %q: unknown mesh names: %s", s.Name, strings.Join(missing, ", "))
}
