package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/input"
)

var keyCodes = map[input.Key]int32{
	input.KeyForward:       rl.KeyW,
	input.KeyBackward:      rl.KeyS,
	input.KeyLeft:          rl.KeyA,
	input.KeyRight:         rl.KeyD,
	input.KeyUp:            rl.KeySpace,
	input.KeyDown:          rl.KeyLeftShift,
	input.KeyExit:          rl.KeyEscape,
	input.KeyToggleOverlay: rl.KeyF3,
}

// Device reads keyboard and mouse state from the raylib window. It implements input.Device.
type Device struct {
	closeRequested bool
}

var _ input.Device = (*Device)(nil)

// IsKeyDown reports whether k is held this frame.
func (d *Device) IsKeyDown(k input.Key) bool {
	code, ok := keyCodes[k]
	return ok && rl.IsKeyDown(code)
}

// IsKeyPressed reports whether k went down this frame.
func (d *Device) IsKeyPressed(k input.Key) bool {
	code, ok := keyCodes[k]
	return ok && rl.IsKeyPressed(code)
}

// CursorPosition returns the mouse position in window pixels.
func (d *Device) CursorPosition() (x, y float32) {
	p := rl.GetMousePosition()
	return p.X, p.Y
}

// SetCursorPosition warps the mouse to (x, y) in window pixels.
func (d *Device) SetCursorPosition(x, y float32) {
	rl.SetMousePosition(int(x), int(y))
}

// RequestClose ends Run after the current frame.
func (d *Device) RequestClose() {
	d.closeRequested = true
}
