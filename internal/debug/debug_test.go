package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	got := Lines(60, 3*1024*1024, Snapshot{
		Eye:     [3]float32{0, 1.5, 5},
		Yaw:     -1.5708,
		Pitch:   0.25,
		Objects: 59,
	})
	assert.Equal(t, []string{
		"FPS: 60",
		"Mem: 3.00 MiB",
		"Eye: (0.00, 1.50, 5.00)",
		"Yaw: -1.571  Pitch: 0.250",
		"Objects: 59",
	}, got)
}

func TestLinesReportsSkipped(t *testing.T) {
	got := Lines(30, 0, Snapshot{Objects: 3, Skipped: 1})
	assert.Equal(t, "Skipped: 1", got[len(got)-1])
}

func TestToggle(t *testing.T) {
	o := New(false)
	o.Toggle()
	assert.True(t, o.Visible)
}
