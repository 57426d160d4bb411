package input

// FrameTimer measures the time between consecutive frames. The first Tick measures from zero.
type FrameTimer struct {
	previous float64
}

// Tick records now (seconds) and returns the elapsed time since the previous Tick.
func (t *FrameTimer) Tick(now float64) float32 {
	dt := now - t.previous
	t.previous = now
	if dt < 0 {
		return 0
	}
	return float32(dt)
}
