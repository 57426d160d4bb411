package main

import (
	"flag"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/camera"
	"scene-viewer/internal/commands"
	"scene-viewer/internal/config"
	"scene-viewer/internal/debug"
	"scene-viewer/internal/graphics"
	"scene-viewer/internal/input"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/render"
)

// startEye is where the camera starts: five units back from the origin, looking down -Z.
var startEye = mgl32.Vec3{0, 0, 5}

func registerRun(reg *commands.Registry) {
	var opts options
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	opts.bind(fs)
	reg.Register("run", "open the viewer window (default)", fs, func() error {
		p, err := opts.prefs()
		if err != nil {
			return err
		}
		log := logger.NewAt(p.LogFile)
		log.Echo = os.Stderr
		return run(p, log)
	})
}

func run(p config.Prefs, log *logger.Logger) error {
	scn, err := loadScene(p.Scene)
	if err != nil {
		return err
	}
	root := assets.NewRoot(p.AssetDir)
	manifest, err := loadManifest(root, p.Manifest, log)
	if err != nil {
		return err
	}
	if err := scn.Validate(manifest.Keys()); err != nil {
		log.Logf("warning: %v", err)
	}

	dev, err := graphics.Open(graphics.Window{
		Width:  p.WindowWidth,
		Height: p.WindowHeight,
		Title:  p.Title,
		MSAA:   !p.DisableMSAA,
	})
	if err != nil {
		return err
	}
	defer graphics.Close()

	models, err := render.Load(manifest, scn.Names(), root, render.Options{MaxTextureSize: p.MaxTextureSize}, log)
	if err != nil {
		return err
	}
	defer models.Unload()
	log.Logf("scene %s: %d objects", scn.Name, scn.Len())

	cam := camera.New(startEye, mgl32.Vec3{})
	cam.SetPerspective(p.FOV, p.Aspect())

	ctl := input.NewController(p.WindowWidth, p.WindowHeight)
	ctl.Speed = p.MoveSpeed
	ctl.Sensitivity = p.MouseSensitivity

	overlay := debug.New(p.ShowFPS)

	graphics.Run(dev, func(dev *graphics.Device, dt float32) bool {
		ctl.Keyboard(dev, cam, dt)
		ctl.Mouse(dev, cam)
		if dev.IsKeyPressed(input.KeyToggleOverlay) {
			overlay.Toggle()
		}

		cam.CalculateMatrices()
		st := models.Draw(scn, cam)

		overlay.Draw(debug.Snapshot{
			Eye:     cam.Eye,
			Yaw:     cam.Yaw,
			Pitch:   cam.Pitch,
			Objects: st.Drawn,
			Skipped: st.Skipped,
		})
		return true
	})
	log.Log("window closed")
	return nil
}
