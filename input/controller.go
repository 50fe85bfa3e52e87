// Package input turns pointer, scroll and key commands into viewport changes.
package input

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/juliaview/viewport"
)

type Mode int

const (
	// Drag pans the view while the button is held.
	Drag Mode = iota
	// Select draws a rectangle and zooms to it on release.
	Select
)

func (m Mode) String() string {
	switch m {
	case Drag:
		return "drag"
	case Select:
		return "select"
	}
	return "unknown"
}

type Options struct {
	// ZoomFactor is applied once per scroll step.
	ZoomFactor float64
	// MinSelect is the narrowest selection, in pixels, that zooms.
	MinSelect float64
}

// Controller owns the viewport on behalf of the presentation loop.
// It is not safe for concurrent use; call it from the thread that renders.
type Controller struct {
	view *viewport.Viewport
	opts Options

	mode    Mode
	pressed bool
	prev    mgl64.Vec2
	last    mgl64.Vec2
}

func NewController(view *viewport.Viewport, opts Options) *Controller {
	if !(opts.ZoomFactor > 1) || math.IsInf(opts.ZoomFactor, 0) {
		opts.ZoomFactor = 1.15
	}
	if opts.MinSelect < 1 {
		opts.MinSelect = 1
	}
	return &Controller{
		view: view,
		opts: opts,
	}
}

// Viewport returns a snapshot of the current view.
func (c *Controller) Viewport() viewport.Viewport {
	return *c.view
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches the interaction mode. It refuses while the button is held.
func (c *Controller) SetMode(m Mode) bool {
	if c.pressed || (m != Drag && m != Select) {
		return false
	}
	c.mode = m
	return true
}

func (c *Controller) Pressed() bool {
	return c.pressed
}

func (c *Controller) Press(pos mgl64.Vec2) {
	c.pressed = true
	c.prev = pos
	c.last = pos
}

func (c *Controller) Move(pos mgl64.Vec2) {
	if !c.pressed {
		return
	}

	switch c.mode {
	case Drag:
		c.view.Pan(pos.Sub(c.prev))
		c.prev = pos
	case Select:
		c.last = pos
	}
}

// Release ends the gesture. In Select mode it zooms to the selection if it
// is at least MinSelect pixels wide, and reports whether it did.
func (c *Controller) Release(pos mgl64.Vec2) bool {
	if !c.pressed {
		return false
	}
	c.Move(pos)
	c.pressed = false

	if c.mode != Select {
		return false
	}
	if math.Abs(c.last.X()-c.prev.X()) < c.opts.MinSelect {
		return false
	}
	return c.view.ZoomToRect(c.prev, c.last)
}

// Selection returns the corners of the rectangle being selected.
func (c *Controller) Selection() (a, b mgl64.Vec2, ok bool) {
	if !c.pressed || c.mode != Select {
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	}
	return c.prev, c.last, true
}

// Scroll zooms around pos: in for positive delta, out for negative.
func (c *Controller) Scroll(pos mgl64.Vec2, delta float64) bool {
	switch {
	case delta > 0:
		return c.view.ZoomAtCursor(pos, c.opts.ZoomFactor)
	case delta < 0:
		return c.view.ZoomAtCursor(pos, 1/c.opts.ZoomFactor)
	}
	return false
}

// Reset restores the initial view. It is ignored mid-gesture.
func (c *Controller) Reset() bool {
	if c.pressed {
		return false
	}
	c.view.Reset()
	return true
}
