package input

import "scene-viewer/internal/camera"

// Key is a logical viewer key. The window layer maps it to a physical key code.
type Key int

const (
	KeyForward       Key = iota // W
	KeyBackward                 // S
	KeyLeft                     // A
	KeyRight                    // D
	KeyUp                       // Space
	KeyDown                     // Left Shift
	KeyExit                     // Escape
	KeyToggleOverlay            // F3
)

// Device is the per-frame input surface the controller reads from.
type Device interface {
	IsKeyDown(k Key) bool
	CursorPosition() (x, y float32)
	SetCursorPosition(x, y float32)
	RequestClose()
}

const (
	DefaultSpeed       = 15    // world units per second
	DefaultSensitivity = 0.005 // radians per pixel
)

var movement = []struct {
	key Key
	dir camera.Direction
}{
	{KeyForward, camera.Forward},
	{KeyBackward, camera.Backward},
	{KeyLeft, camera.Left},
	{KeyRight, camera.Right},
	{KeyDown, camera.Down},
	{KeyUp, camera.Up},
}

// Controller turns held keys and cursor offsets from the window center into camera motion.
type Controller struct {
	Speed       float32
	Sensitivity float32
	CenterX     float32
	CenterY     float32
}

// NewController returns a controller that re-centers the cursor on a width x height window.
func NewController(width, height int) *Controller {
	return &Controller{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		CenterX:     float32(width / 2),
		CenterY:     float32(height / 2),
	}
}

// Keyboard applies one frame of keyboard input. Escape asks the device to close;
// every held movement key moves the camera Speed*dt along its basis vector.
func (c *Controller) Keyboard(dev Device, cam *camera.Camera, dt float32) {
	if dev.IsKeyDown(KeyExit) {
		dev.RequestClose()
	}
	step := c.Speed * dt
	for _, m := range movement {
		if dev.IsKeyDown(m.key) {
			cam.Move(m.dir, step)
		}
	}
}

// Mouse reads the cursor, snaps it back to the window center, and turns the offset into yaw/pitch.
// Moving the cursor up (smaller y) pitches the camera up.
func (c *Controller) Mouse(dev Device, cam *camera.Camera) {
	x, y := dev.CursorPosition()
	dev.SetCursorPosition(c.CenterX, c.CenterY)
	cam.Rotate(x-c.CenterX, c.CenterY-y, c.Sensitivity)
}
