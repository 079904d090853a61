package core

import "time"

// FrameClock measures the wall time between successive frames so animation
// can be advanced by real elapsed seconds.
type FrameClock struct {
	maxStep time.Duration
	last    time.Time
	now     func() time.Time
}

// NewFrameClock constructs a clock that never reports more than maxStep per
// frame. A non-positive maxStep defaults to a quarter second.
func NewFrameClock(maxStep time.Duration) *FrameClock {
	if maxStep <= 0 {
		maxStep = time.Second / 4
	}
	return &FrameClock{maxStep: maxStep, now: time.Now}
}

// Delta returns the seconds elapsed since the previous call. The first call
// returns zero.
func (c *FrameClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > c.maxStep {
		delta = c.maxStep
	}
	return delta.Seconds()
}

// Reset forgets the previous frame so the next Delta returns zero.
func (c *FrameClock) Reset() { c.last = time.Time{} }
