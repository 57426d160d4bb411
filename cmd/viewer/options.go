package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/config"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/scene"
)

// options are the flags every subcommand shares. Flags override VIEWER_* variables,
// which override the config file.
type options struct {
	configPath string
	scene      string
	assetDir   string
	manifest   string
	showFPS    bool
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", config.ConfigPath, "path to the JSON config file")
	fs.StringVar(&o.scene, "scene", "", "built-in scene name or path to a YAML scene file")
	fs.StringVar(&o.assetDir, "assets", "", "asset directory")
	fs.StringVar(&o.manifest, "manifest", "", "model manifest, relative to the asset directory")
	fs.BoolVar(&o.showFPS, "fps", false, "show the debug overlay")
}

func (o *options) prefs() (config.Prefs, error) {
	p, err := config.Load(o.configPath, warnStderr)
	if err != nil {
		return p, err
	}
	p, err = config.ApplyEnv(p, os.Getenv)
	if err != nil {
		return p, err
	}
	if o.scene != "" {
		p.Scene = o.scene
	}
	if o.assetDir != "" {
		p.AssetDir = o.assetDir
	}
	if o.manifest != "" {
		p.Manifest = o.manifest
	}
	if o.showFPS {
		p.ShowFPS = true
	}
	return p, p.Validate()
}

func warnStderr(err error) {
	fmt.Fprintln(os.Stderr, "viewer: warning:", err)
}

// loadScene treats names ending in .yaml or .yml as scene files and anything else as a built-in.
func loadScene(name string) (*scene.Scene, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return scene.LoadFile(name)
	}
	return scene.Builtin(name)
}

// loadManifest reads the manifest from the asset root, falling back to the built-in one
// when the file cannot be found.
func loadManifest(root assets.Root, rel string, log *logger.Logger) (assets.Manifest, error) {
	path, err := root.Resolve(rel)
	if err != nil {
		log.Logf("manifest %s not found, using built-in models", rel)
		return assets.DefaultManifest(), nil
	}
	m, err := assets.LoadManifest(path)
	if err != nil {
		return m, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}
