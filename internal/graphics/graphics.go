package graphics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/input"
)

// Window describes the fixed-size window the viewer opens.
type Window struct {
	Width  int
	Height int
	Title  string
	MSAA   bool // request 4x multisampling
}

// Frame is called once per frame with the seconds elapsed since the previous frame,
// after the screen is cleared. Returning false ends the loop.
type Frame func(dev *Device, dt float32) bool

// Open creates the window and GL context. Resizing is disabled, the cursor is captured
// and centered, and the exit key is left to the caller so Escape goes through input.
// Setup (loading shaders and models) must happen after Open and before Run.
func Open(w Window) (*Device, error) {
	var flags uint32
	if w.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("graphics: failed to open window")
	}
	rl.SetExitKey(rl.KeyNull)

	dev := &Device{}
	rl.DisableCursor()
	dev.SetCursorPosition(float32(w.Width/2), float32(w.Height/2))
	return dev, nil
}

// Run loops until the window is closed, the device is asked to close, or frame returns false.
// Each iteration clears to black and hands frame the elapsed time.
func Run(dev *Device, frame Frame) {
	var timer input.FrameTimer
	for !rl.WindowShouldClose() && !dev.closeRequested {
		dt := timer.Tick(rl.GetTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		ok := frame(dev, dt)
		rl.EndDrawing()
		if !ok {
			return
		}
	}
}

// Close destroys the window. GPU resources must be released before this.
func Close() {
	rl.CloseWindow()
}
