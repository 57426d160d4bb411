package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jinzhu/copier"

	"scene-viewer/internal/logger"
)

// ConfigPath is the viewer config file, relative to the process working directory.
const ConfigPath = "config/viewer.json"

// Prefs holds viewer settings. Zero values in the file mean "use the default".
type Prefs struct {
	WindowWidth      int     `json:"window_width,omitempty"`
	WindowHeight     int     `json:"window_height,omitempty"`
	Title            string  `json:"title,omitempty"`
	DisableMSAA      bool    `json:"disable_msaa,omitempty"`
	FOV              float32 `json:"fov,omitempty"`
	MoveSpeed        float32 `json:"move_speed,omitempty"`
	MouseSensitivity float32 `json:"mouse_sensitivity,omitempty"`
	Scene            string  `json:"scene,omitempty"`
	AssetDir         string  `json:"asset_dir,omitempty"`
	Manifest         string  `json:"manifest,omitempty"`
	MaxTextureSize   int     `json:"max_texture_size,omitempty"`
	ShowFPS          bool    `json:"show_fps,omitempty"`
	LogFile          string  `json:"log_file,omitempty"`
}

// Default returns a 1024x768 window with 4x MSAA (disable_msaa turns it off),
// 45° FOV, 15 units/s and 0.005 rad/px, house scene.
func Default() Prefs {
	return Prefs{
		WindowWidth:      1024,
		WindowHeight:     768,
		Title:            "Coursework",
		FOV:              45,
		MoveSpeed:        15,
		MouseSensitivity: 0.005,
		Scene:            "house",
		AssetDir:         "assets",
		Manifest:         "models.yaml",
		MaxTextureSize:   2048,
		LogFile:          logger.LogFilePath,
	}
}

// Load reads prefs from path and overlays every non-zero field on Default().
// A missing file is not an error. A file that is not valid JSON is reported to warn
// (which may be nil) and Default() is used. Only an unreadable file returns an error.
func Load(path string, warn func(error)) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("config: %w", err)
	}
	var file Prefs
	if err := json.Unmarshal(data, &file); err != nil {
		if warn != nil {
			warn(fmt.Errorf("config: %s: %w, using defaults", path, err))
		}
		return p, nil
	}
	if err := copier.CopyWithOption(&p, &file, copier.Option{IgnoreEmpty: true}); err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// Save writes prefs to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides prefs from VIEWER_* variables looked up with getenv (os.Getenv in
// the viewer). Values that fail to parse are reported and leave the field unchanged.
func ApplyEnv(p Prefs, getenv func(string) string) (Prefs, error) {
	var firstErr error
	fail := func(key string, err error) {
		if firstErr == nil {
			firstErr = fmt.Errorf("config: %s: %w", key, err)
		}
	}
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		if v := getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				fail(key, err)
				return
			}
			*dst = n
		}
	}
	float := func(key string, dst *float32) {
		if v := getenv(key); v != "" {
			f, err := strconv.ParseFloat(v, 32)
			if err != nil {
				fail(key, err)
				return
			}
			*dst = float32(f)
		}
	}
	boolean := func(key string, dst *bool) {
		if v := getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				fail(key, err)
				return
			}
			*dst = b
		}
	}

	str("VIEWER_SCENE", &p.Scene)
	str("VIEWER_ASSETS", &p.AssetDir)
	str("VIEWER_MANIFEST", &p.Manifest)
	str("VIEWER_TITLE", &p.Title)
	str("VIEWER_LOG_FILE", &p.LogFile)
	integer("VIEWER_WIDTH", &p.WindowWidth)
	integer("VIEWER_HEIGHT", &p.WindowHeight)
	integer("VIEWER_MAX_TEXTURE", &p.MaxTextureSize)
	float("VIEWER_FOV", &p.FOV)
	float("VIEWER_SPEED", &p.MoveSpeed)
	float("VIEWER_SENSITIVITY", &p.MouseSensitivity)
	boolean("VIEWER_SHOW_FPS", &p.ShowFPS)
	boolean("VIEWER_DISABLE_MSAA", &p.DisableMSAA)
	return p, firstErr
}

// Validate rejects settings the window or camera cannot use.
func (p Prefs) Validate() error {
	switch {
	case p.WindowWidth <= 0 || p.WindowHeight <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", p.WindowWidth, p.WindowHeight)
	case p.FOV <= 0 || p.FOV >= 180:
		return fmt.Errorf("config: fov %v must be between 0 and 180 degrees", p.FOV)
	case p.MoveSpeed < 0:
		return fmt.Errorf("config: move_speed %v must not be negative", p.MoveSpeed)
	case p.Scene == "":
		return fmt.Errorf("config: scene must be set")
	}
	return nil
}

// Aspect is the window width over height.
func (p Prefs) Aspect() float32 {
	return float32(p.WindowWidth) / float32(p.WindowHeight)
}
