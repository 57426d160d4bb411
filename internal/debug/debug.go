package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Snapshot is what the overlay shows about the running viewer.
type Snapshot struct {
	Eye        [3]float32
	Yaw, Pitch float32 // radians
	Objects    int
	Skipped    int
}

// Overlay draws FPS, heap usage and camera state in the top-left corner. Hidden by default.
type Overlay struct {
	Visible    bool
	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns an overlay, visible if show is true.
func New(show bool) *Overlay {
	return &Overlay{Visible: show}
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Draw renders the overlay. Call after the 3D pass, inside BeginDrawing/EndDrawing.
func (o *Overlay) Draw(s Snapshot) {
	if !o.Visible {
		return
	}
	o.frameCount++
	if o.lines == nil || o.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&o.memStats)
		o.lines = Lines(int(rl.GetFPS()), o.memStats.Alloc, s)
	}
	y := int32(padding)
	for _, line := range o.lines {
		rl.DrawText(line, padding, y, fontSize, rl.Green)
		y += lineHeight
	}
}

// Lines formats the overlay text.
func Lines(fps int, heapBytes uint64, s Snapshot) []string {
	lines := []string{
		fmt.Sprintf("FPS: %d", fps),
		fmt.Sprintf("Mem: %.2f MiB", float64(heapBytes)/(1024*1024)),
		fmt.Sprintf("Eye: (%.2f, %.2f, %.2f)", s.Eye[0], s.Eye[1], s.Eye[2]),
		fmt.Sprintf("Yaw: %.3f  Pitch: %.3f", s.Yaw, s.Pitch),
		fmt.Sprintf("Objects: %d", s.Objects),
	}
	if s.Skipped > 0 {
		lines = append(lines, fmt.Sprintf("Skipped: %d", s.Skipped))
	}
	return lines
}
