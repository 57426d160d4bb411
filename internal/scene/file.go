package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// fileDef is the YAML form of a scene, e.g.
//
//	name: house
//	objects:
//	  - name: plane
//	    position: [-2, -1, 0]
//	    scale: [20, 1, 20]
//
// rotation defaults to (0,1,0) and scale to (1,1,1) when omitted.
type fileDef struct {
	Name    string      `yaml:"name"`
	Objects []objectDef `yaml:"objects"`
}

type objectDef struct {
	Name     string      `yaml:"name"`
	Position mgl32.Vec3  `yaml:"position,flow"`
	Rotation *mgl32.Vec3 `yaml:"rotation,omitempty,flow"`
	Scale    *mgl32.Vec3 `yaml:"scale,omitempty,flow"`
	Angle    float32     `yaml:"angle,omitempty"`
}

// LoadFile reads a YAML scene from path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML scene from r. Every object needs a name.
func Decode(r io.Reader) (*Scene, error) {
	var def fileDef
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	s := New(def.Name)
	for i, od := range def.Objects {
		if od.Name == "" {
			return nil, fmt.Errorf("scene: object %d has no name", i)
		}
		o := NewObject(od.Name, od.Position)
		if od.Rotation != nil {
			o.Rotation = *od.Rotation
		}
		if od.Scale != nil {
			o.Scale = *od.Scale
		}
		o.Angle = od.Angle
		s.Add(o)
	}
	return s, nil
}

// Encode writes s to w as YAML. Default rotation and scale are left out.
func (s *Scene) Encode(w io.Writer) error {
	def := fileDef{Name: s.Name, Objects: make([]objectDef, 0, len(s.objects))}
	for _, o := range s.objects {
		od := objectDef{Name: o.Name, Position: o.Position, Angle: o.Angle}
		if o.Rotation != (mgl32.Vec3{0, 1, 0}) {
			rot := o.Rotation
			od.Rotation = &rot
		}
		if o.Scale != (mgl32.Vec3{1, 1, 1}) {
			sc := o.Scale
			od.Scale = &sc
		}
		def.Objects = append(def.Objects, od)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return enc.Close()
}
