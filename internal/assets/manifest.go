package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shader program names used by the default manifest.
const (
	ShaderObject = "object"
	ShaderLight  = "light"
)

// ModelDef is one drawable: an OBJ mesh, its diffuse texture, and the shader program that draws it.
// Texture may be empty for untextured meshes such as the light marker.
type ModelDef struct {
	Mesh    string `yaml:"mesh"`
	Texture string `yaml:"texture,omitempty"`
	Shader  string `yaml:"shader,omitempty"`
}

// ShaderDef names the vertex and fragment source files of a shader program.
type ShaderDef struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// Manifest maps mesh names (the Name field of scene objects) to model files, and shader
// program names to their sources. Paths are relative to the asset root.
type Manifest struct {
	Models  map[string]ModelDef  `yaml:"models"`
	Shaders map[string]ShaderDef `yaml:"shaders"`
}

// DefaultManifest returns the models and programs both built-in scenes need.
func DefaultManifest() Manifest {
	return Manifest{
		Models: map[string]ModelDef{
			"plane":       {Mesh: "plane.obj", Texture: "grass.jpg"},
			"oak_wood":    {Mesh: "cube.obj", Texture: "oak_wood.jpg"},
			"oak_plank":   {Mesh: "cube.obj", Texture: "oak_plank.jpg"},
			"glass":       {Mesh: "cube.obj", Texture: "glass.png"},
			"door_top":    {Mesh: "cube.obj", Texture: "door_top.png"},
			"door_bottom": {Mesh: "cube.obj", Texture: "door_bottom.png"},
			"teapot":      {Mesh: "teapot.obj", Texture: "crate.jpg"},
			"light":       {Mesh: "cube.obj", Shader: ShaderLight},
		},
		Shaders: map[string]ShaderDef{
			ShaderObject: {Vertex: "shaders/vertexShader.glsl", Fragment: "shaders/fragmentShader.glsl"},
			ShaderLight:  {Vertex: "shaders/lightVertexShader.glsl", Fragment: "shaders/lightFragmentShader.glsl"},
		},
	}
}

// LoadManifest reads a YAML manifest from path. A missing file yields DefaultManifest.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultManifest(), nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()
	return DecodeManifest(f)
}

// DecodeManifest reads a YAML manifest from r, fills in default shader programs, and validates it.
func DecodeManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("assets: decode manifest: %w", err)
	}
	defaults := DefaultManifest()
	if m.Shaders == nil {
		m.Shaders = make(map[string]ShaderDef)
	}
	for name, def := range defaults.Shaders {
		if _, ok := m.Shaders[name]; !ok {
			m.Shaders[name] = def
		}
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks every model has a mesh, a texture format DecodeTexture reads, and refers to
// a declared shader program.
func (m Manifest) Validate() error {
	if len(m.Models) == 0 {
		return errors.New("assets: manifest has no models")
	}
	for _, name := range m.Keys() {
		def := m.Models[name]
		if def.Mesh == "" {
			return fmt.Errorf("assets: model %q has no mesh", name)
		}
		if def.Texture != "" && !slices.Contains(TextureExts, strings.ToLower(filepath.Ext(def.Texture))) {
			return fmt.Errorf("assets: model %q: unsupported texture format %q", name, def.Texture)
		}
		if _, ok := m.Shaders[def.ShaderName()]; !ok {
			return fmt.Errorf("assets: model %q uses unknown shader %q", name, def.ShaderName())
		}
	}
	for name, def := range m.Shaders {
		if def.Vertex == "" || def.Fragment == "" {
			return fmt.Errorf("assets: shader %q needs both vertex and fragment sources", name)
		}
	}
	return nil
}

// Subset returns the part of m that names need: those models, and only the shader
// programs they draw with. Names with no model are left out.
func (m Manifest) Subset(names []string) Manifest {
	out := Manifest{
		Models:  make(map[string]ModelDef),
		Shaders: make(map[string]ShaderDef),
	}
	for _, n := range names {
		def, ok := m.Models[n]
		if !ok {
			continue
		}
		out.Models[n] = def
		if sd, ok := m.Shaders[def.ShaderName()]; ok {
			out.Shaders[def.ShaderName()] = sd
		}
	}
	return out
}

// Keys returns the model names, sorted.
func (m Manifest) Keys() []string {
	keys := make([]string, 0, len(m.Models))
	for k := range m.Models {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ShaderName returns the model's program, defaulting to ShaderObject.
func (d ModelDef) ShaderName() string {
	if d.Shader == "" {
		return ShaderObject
	}
	return d.Shader
}
