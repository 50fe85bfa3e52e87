package engine

import "time"

// Clock supplies the animation phase. It is sampled once per frame.
type Clock interface {
	Phase() float64
}

// WallClock reports monotonic seconds since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Phase() float64 {
	return time.Since(c.start).Seconds()
}

// FrameClock advances by Step on every call, starting at zero.
type FrameClock struct {
	Step  float64
	frame int
}

func (c *FrameClock) Phase() float64 {
	p := float64(c.frame) * c.Step
	c.frame++
	return p
}

// FixedClock always reports the same phase.
type FixedClock float64

func (c FixedClock) Phase() float64 {
	return float64(c)
}
