package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestNewLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})

	assertVec(t, mgl32.Vec3{0, 0, -1}, c.Front)
	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Right)
	assertVec(t, mgl32.Vec3{0, 1, 0}, c.Up)
	assert.InDelta(t, mgl32.DegToRad(45), c.FOV, eps)
	assert.InDelta(t, float32(1024)/768, c.Aspect, eps)
}

func TestCalculateMatrices(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	c.CalculateMatrices()

	assertVec(t, mgl32.Vec3{0, 0, 4}, c.Target)

	// The eye maps to the view-space origin and the target sits one unit down -Z.
	eye := c.View.Mul4x1(c.Eye.Vec4(1)).Vec3()
	assertVec(t, mgl32.Vec3{}, eye)
	target := c.View.Mul4x1(c.Target.Vec4(1)).Vec3()
	assertVec(t, mgl32.Vec3{0, 0, -1}, target)

	want := mgl32.Perspective(c.FOV, c.Aspect, c.Near, c.Far)
	assert.True(t, want.ApproxEqual(c.Projection))
}

func TestRotateYaw(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{})
	// Quarter turn right: from -Z to +X.
	c.Rotate(math32.Pi/2/0.005, 0, 0.005)

	assertVec(t, mgl32.Vec3{1, 0, 0}, c.Front)
	assertVec(t, mgl32.Vec3{0, 0, 1}, c.Right)
}

func TestRotateClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{})
	c.Rotate(0, 10000, 0.005)

	assert.InDelta(t, maxPitch, c.Pitch, eps)
	assert.Greater(t, c.Front.Y(), float32(0.99))
	require.False(t, c.Right.Len() < 0.99, "right vector degenerated")

	c.Rotate(0, -20000, 0.005)
	assert.InDelta(t, -maxPitch, c.Pitch, eps)
}

func TestRotateWrapsYaw(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{})
	for i := 0; i < 100; i++ {
		c.Rotate(1000, 0, 0.005)
	}
	assert.Less(t, math32.Abs(c.Yaw), fullTurn)
}

func TestMove(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 3}},
		{Backward, mgl32.Vec3{0, 0, 7}},
		{Left, mgl32.Vec3{-2, 0, 5}},
		{Right, mgl32.Vec3{2, 0, 5}},
		{Up, mgl32.Vec3{0, 2, 5}},
		{Down, mgl32.Vec3{0, -2, 5}},
	}
	for _, tt := range tests {
		c := New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
		c.Move(tt.dir, 2)
		assertVec(t, tt.want, c.Eye)
	}
}

func TestSetPerspective(t *testing.T) {
	c := New(mgl32.Vec3{}, mgl32.Vec3{})
	c.SetPerspective(60, 2)
	assert.InDelta(t, mgl32.DegToRad(60), c.FOV, eps)
	assert.InDelta(t, 2, c.Aspect, eps)

	c.SetPerspective(0, 0)
	assert.InDelta(t, mgl32.DegToRad(60), c.FOV, eps)
	assert.InDelta(t, 2, c.Aspect, eps)
}
