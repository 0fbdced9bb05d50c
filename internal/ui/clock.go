package ui

import "time"

// FrameClock measures the frame rate over the last frames
type FrameClock struct {
	frames []time.Time
	size   int
}

func NewFrameClock(size int) *FrameClock {
	if size < 2 {
		size = 2
	}
	return &FrameClock{size: size}
}

// Mark records a frame at now
func (c *FrameClock) Mark(now time.Time) {
	if len(c.frames) == c.size {
		copy(c.frames, c.frames[1:])
		c.frames = c.frames[:c.size-1]
	}
	c.frames = append(c.frames, now)
}

// FPS returns the average frame rate of the recorded window
func (c *FrameClock) FPS() float64 {
	if len(c.frames) < 2 {
		return 0
	}
	elapsed := c.frames[len(c.frames)-1].Sub(c.frames[0])
	if elapsed <= 0 {
		return 0
	}
	return float64(len(c.frames)-1) / elapsed.Seconds()
}
