package core

import "time"

// FPSCounter measures frames per second over one-second windows.
type FPSCounter struct {
	start  time.Time
	frames int
	fps    int
}

// Frame records one frame at now and returns the latest completed measurement.
func (c *FPSCounter) Frame(now time.Time) int {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed >= time.Second {
		c.fps = int(int64(c.frames) * int64(time.Second) / int64(elapsed))
		c.frames = 0
		c.start = now
	}
	return c.fps
}

// FPS returns the last completed measurement.
func (c *FPSCounter) FPS() int {
	return c.fps
}
