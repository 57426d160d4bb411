package render

import (
	"fmt"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/logger"
)

// Uniform names the viewer's shaders read. MVP and MV are uploaded per object.
const (
	uniformMVP      = "MVP"
	uniformMV       = "MV"
	uniformLightPos = "lightPosition"
)

// program is a compiled shader with the uniform locations the draw loop sets. A location of
// -1 means the shader does not declare that uniform.
type program struct {
	name        string
	shader      rl.Shader
	mvpLoc      int32
	mvLoc       int32
	lightPosLoc int32
}

// model is one manifest entry: its own copy of the mesh (so each gets its own material),
// the diffuse texture bound to that material, and the program that draws it.
type model struct {
	model   rl.Model
	texture rl.Texture2D
	prog    *program
}

// Registry owns every GPU resource the viewer loads. It must be created after the window
// exists and used only from the render thread.
type Registry struct {
	programs map[string]*program
	models   map[string]*model
	log      *logger.Logger
	skipped  map[string]bool
	// LightPosition is in world space; the draw loop uploads it in view space.
	LightPosition [3]float32
}

// Options controls how Load reads textures.
type Options struct {
	MaxTextureSize int
}

// Load loads the models in m that names use, and compiles only the shader programs those
// models draw with (see assets.Manifest.Subset). On error the resources loaded so far are
// released.
func Load(m assets.Manifest, names []string, root assets.Root, opts Options, log *logger.Logger) (*Registry, error) {
	m = m.Subset(names)
	r := &Registry{
		programs:      make(map[string]*program),
		models:        make(map[string]*model),
		log:           log,
		skipped:       make(map[string]bool),
		LightPosition: [3]float32{2, 3, 2},
	}
	for name, def := range m.Shaders {
		p, err := loadProgram(name, def, root)
		if err != nil {
			r.Unload()
			return nil, err
		}
		r.programs[name] = p
	}
	for _, name := range m.Keys() {
		def := m.Models[name]
		mdl, err := r.loadModel(name, def, root, opts)
		if err != nil {
			r.Unload()
			return nil, err
		}
		r.models[name] = mdl
		log.Logf("loaded model %s (%s, texture %q, shader %s)", name, def.Mesh, def.Texture, mdl.prog.name)
	}
	return r, nil
}

func loadProgram(name string, def assets.ShaderDef, root assets.Root) (*program, error) {
	vs, err := root.Resolve(def.Vertex)
	if err != nil {
		return nil, fmt.Errorf("render: shader %s: %w", name, err)
	}
	fs, err := root.Resolve(def.Fragment)
	if err != nil {
		return nil, fmt.Errorf("render: shader %s: %w", name, err)
	}
	shader := rl.LoadShader(vs, fs)
	if !rl.IsShaderValid(shader) {
		return nil, fmt.Errorf("render: shader %s: compiling %s + %s failed", name, vs, fs)
	}
	return &program{
		name:        name,
		shader:      shader,
		mvpLoc:      rl.GetShaderLocation(shader, uniformMVP),
		mvLoc:       rl.GetShaderLocation(shader, uniformMV),
		lightPosLoc: rl.GetShaderLocation(shader, uniformLightPos),
	}, nil
}

func (r *Registry) loadModel(name string, def assets.ModelDef, root assets.Root, opts Options) (*model, error) {
	prog, ok := r.programs[def.ShaderName()]
	if !ok {
		return nil, fmt.Errorf("render: model %s: unknown shader %q", name, def.ShaderName())
	}
	meshPath, err := root.Resolve(def.Mesh)
	if err != nil {
		return nil, fmt.Errorf("render: model %s: %w", name, err)
	}
	mdl := rl.LoadModel(meshPath)
	if !rl.IsModelValid(mdl) {
		return nil, fmt.Errorf("render: model %s: loading %s failed", name, meshPath)
	}
	out := &model{model: mdl, prog: prog}

	if def.Texture != "" {
		tex, err := loadTexture(root, def.Texture, opts.MaxTextureSize)
		if err != nil {
			rl.UnloadModel(mdl)
			return nil, fmt.Errorf("render: model %s: %w", name, err)
		}
		out.texture = tex
	}
	mats := materials(&out.model)
	for i := range mats {
		mtl := &mats[i]
		mtl.Shader = prog.shader
		if out.texture.ID != 0 {
			rl.SetMaterialTexture(mtl, rl.MapAlbedo, out.texture)
		}
	}
	return out, nil
}

// loadTexture decodes the file in Go and uploads it with mipmaps.
func loadTexture(root assets.Root, rel string, maxEdge int) (rl.Texture2D, error) {
	path, err := root.Resolve(rel)
	if err != nil {
		return rl.Texture2D{}, err
	}
	rgba, err := assets.LoadTexture(path, maxEdge)
	if err != nil {
		return rl.Texture2D{}, err
	}
	img := rl.NewImageFromImage(rgba)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(tex) {
		return rl.Texture2D{}, fmt.Errorf("uploading %s failed", path)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return tex, nil
}

// materials views the model's C material array as a slice.
func materials(m *rl.Model) []rl.Material {
	if m.Materials == nil || m.MaterialCount <= 0 {
		return nil
	}
	return unsafe.Slice(m.Materials, m.MaterialCount)
}

// Unload releases models, textures and shader programs. Safe to call more than once.
func (r *Registry) Unload() {
	for name, m := range r.models {
		rl.UnloadModel(m.model)
		if m.texture.ID != 0 {
			rl.UnloadTexture(m.texture)
		}
		delete(r.models, name)
	}
	for name, p := range r.programs {
		rl.UnloadShader(p.shader)
		delete(r.programs, name)
	}
}
