package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/commands"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/scene"
)

func registerValidate(reg *commands.Registry) {
	var opts options
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	opts.bind(fs)
	reg.Register("validate", "check a scene's mesh names and asset files without opening a window", fs, func() error {
		p, err := opts.prefs()
		if err != nil {
			return err
		}
		log := logger.NewAt("")
		log.Echo = os.Stdout
		scn, err := loadScene(p.Scene)
		if err != nil {
			return err
		}
		root := assets.NewRoot(p.AssetDir)
		m, err := loadManifest(root, p.Manifest, log)
		if err != nil {
			return err
		}
		if err := validate(scn, m, root); err != nil {
			return err
		}
		log.Logf("scene %s: %d objects, %d meshes, ok", scn.Name, scn.Len(), len(scn.Names()))
		return nil
	})
}

// validate checks every name the scene uses is in the manifest and every file the
// entries it uses refer to can be found. Only the shader programs those entries draw
// with are checked, the same set render.Load compiles.
func validate(scn *scene.Scene, m assets.Manifest, root assets.Root) error {
	errs := []error{scn.Validate(m.Keys())}
	used := m.Subset(scn.Names())
	for _, name := range used.Keys() {
		def := used.Models[name]
		for _, rel := range []string{def.Mesh, def.Texture} {
			if rel == "" {
				continue
			}
			if _, err := root.Resolve(rel); err != nil {
				errs = append(errs, fmt.Errorf("model %s: %w", name, err))
			}
		}
	}
	for name, def := range used.Shaders {
		for _, rel := range []string{def.Vertex, def.Fragment} {
			if _, err := root.Resolve(rel); err != nil {
				errs = append(errs, fmt.Errorf("shader %s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
