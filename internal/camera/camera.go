package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	defaultFOVDegrees = 45
	defaultAspect     = float32(1024) / float32(768)
	defaultNear       = 0.2
	defaultFar        = 100
	// maxPitch keeps the front vector off the world up axis so lookAt stays well defined.
	maxPitch = 89 * math32.Pi / 180
	fullTurn = 2 * math32.Pi
)

// Direction is an axis of the camera basis that Move can step along.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Camera is a free-fly camera oriented by yaw and pitch (radians). Front, Right and Up
// are derived from the angles by CalculateCameraVectors; View and Projection are derived
// by CalculateMatrices. Yaw -π/2 looks down -Z.
type Camera struct {
	Eye     mgl32.Vec3
	Target  mgl32.Vec3
	Front   mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3
	WorldUp mgl32.Vec3

	Yaw   float32
	Pitch float32

	FOV    float32 // vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32

	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// New returns a camera at eye. target is kept for reference only; orientation comes from
// yaw/pitch, so the initial view direction is -Z regardless of target.
func New(eye, target mgl32.Vec3) *Camera {
	c := &Camera{
		Eye:     eye,
		Target:  target,
		WorldUp: mgl32.Vec3{0, 1, 0},
		Yaw:     -math32.Pi / 2,
		Pitch:   0,
		FOV:     mgl32.DegToRad(defaultFOVDegrees),
		Aspect:  defaultAspect,
		Near:    defaultNear,
		Far:     defaultFar,
	}
	c.CalculateCameraVectors()
	return c
}

// SetPerspective overrides the projection parameters. fovDegrees <= 0 keeps the current FOV,
// and a non-positive aspect keeps the current aspect.
func (c *Camera) SetPerspective(fovDegrees, aspect float32) {
	if fovDegrees > 0 {
		c.FOV = mgl32.DegToRad(fovDegrees)
	}
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// CalculateCameraVectors rebuilds Front, Right and Up from Yaw and Pitch.
func (c *Camera) CalculateCameraVectors() {
	cosPitch := math32.Cos(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(c.Yaw) * cosPitch,
		math32.Sin(c.Pitch),
		math32.Sin(c.Yaw) * cosPitch,
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front)
}

// CalculateMatrices points Target one unit along Front and rebuilds View and Projection.
func (c *Camera) CalculateMatrices() {
	c.Target = c.Eye.Add(c.Front)
	c.View = mgl32.LookAtV(c.Eye, c.Target, c.WorldUp)
	c.Projection = mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
}

// Rotate accumulates a mouse delta into yaw and pitch and recomputes the basis vectors.
// dy is positive when the view should tilt up.
func (c *Camera) Rotate(dx, dy, sensitivity float32) {
	c.Yaw = wrapAngle(c.Yaw + sensitivity*dx)
	c.Pitch = mgl32.Clamp(c.Pitch+sensitivity*dy, -maxPitch, maxPitch)
	c.CalculateCameraVectors()
}

// Move steps the eye distance units along the given basis vector.
func (c *Camera) Move(dir Direction, distance float32) {
	switch dir {
	case Forward:
		c.Eye = c.Eye.Add(c.Front.Mul(distance))
	case Backward:
		c.Eye = c.Eye.Sub(c.Front.Mul(distance))
	case Right:
		c.Eye = c.Eye.Add(c.Right.Mul(distance))
	case Left:
		c.Eye = c.Eye.Sub(c.Right.Mul(distance))
	case Up:
		c.Eye = c.Eye.Add(c.Up.Mul(distance))
	case Down:
		c.Eye = c.Eye.Sub(c.Up.Mul(distance))
	}
}

// wrapAngle folds a into (-2π, 2π).
func wrapAngle(a float32) float32 {
	return math32.Mod(a, fullTurn)
}
