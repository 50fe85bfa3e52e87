// Package engine renders escape-time fractals on the CPU.
//
// Every frame is split into interleaved column stripes, one per worker. The
// workers are started for the frame and joined before Render returns, so
// once Render is done the frame can be handed to whatever displays it.
package engine

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/juliaview/programs"
	"github.com/stewi1014/juliaview/viewport"
)

const (
	MaxIterations = 100
	EscapeRadius  = 7.0
	RepeatFactor  = 15
	Workers       = 6
)

type Options struct {
	Width, Height int
	// Workers is the number of goroutines used per frame.
	Workers       int
	MaxIterations int
	EscapeRadius  float64
	// Repeat is the number of gradient samples stepped per unit of the
	// smoothed escape value.
	Repeat  float64
	Program programs.Program
}

// DefaultOptions returns the options for a julia render of the given size.
func DefaultOptions(width, height int) Options {
	julia, _ := programs.Lookup("julia")
	return Options{
		Width:         width,
		Height:        height,
		Workers:       Workers,
		MaxIterations: MaxIterations,
		EscapeRadius:  EscapeRadius,
		Repeat:        RepeatFactor,
		Program:       julia,
	}
}

type Engine struct {
	opts     Options
	gradient *Gradient

	radius2   float64
	logRadius float64
	logDegree float64
}

func New(gradient *Gradient, opts Options) (*Engine, error) {
	switch {
	case gradient == nil:
		return nil, ErrEmptyGradient
	case opts.Width <= 0 || opts.Height <= 0:
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	case opts.Workers <= 0:
		return nil, fmt.Errorf("invalid worker count %d", opts.Workers)
	case opts.MaxIterations <= 0:
		return nil, fmt.Errorf("invalid iteration cap %d", opts.MaxIterations)
	case !(opts.EscapeRadius > 1) || math.IsInf(opts.EscapeRadius, 0):
		return nil, fmt.Errorf("escape radius %v must be greater than 1", opts.EscapeRadius)
	case opts.Program.Seed == nil || opts.Program.Step == nil:
		return nil, errors.New("no program")
	}

	return &Engine{
		opts:      opts,
		gradient:  gradient,
		radius2:   opts.EscapeRadius * opts.EscapeRadius,
		logRadius: math.Log2(opts.EscapeRadius),
		logDegree: opts.Program.LogDegree(),
	}, nil
}

func (e *Engine) Options() Options {
	return e.opts
}

// NewFrame allocates a frame matching the engine's output size.
func (e *Engine) NewFrame() *Frame {
	return NewFrame(e.opts.Width, e.opts.Height)
}

// Render fills frame with the fractal for parameter c seen through view.
// phase drives the palette animation.
func (e *Engine) Render(frame *Frame, c complex128, view viewport.Viewport, phase float64) error {
	if frame.Width != e.opts.Width || frame.Height != e.opts.Height || len(frame.Pix) != 4*frame.Width*frame.Height {
		return fmt.Errorf("frame is %dx%d, engine renders %dx%d", frame.Width, frame.Height, e.opts.Width, e.opts.Height)
	}
	if !frame.busy.CompareAndSwap(false, true) {
		return ErrFrameBusy
	}
	defer frame.busy.Store(false)

	start := time.Now()
	shift := 1.5 * math.Cos(3*phase)

	var wg sync.WaitGroup
	for worker := range e.opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.renderStripe(frame.Pix, worker, c, view, shift)
		}()
	}
	wg.Wait()

	Logger().Debug("frame rendered",
		"duration", time.Since(start),
		"workers", e.opts.Workers,
		"scale", view.Scale(),
	)
	return nil
}

// renderStripe writes every column i with i % Workers == first.
func (e *Engine) renderStripe(pix []byte, first int, c complex128, view viewport.Viewport, shift float64) {
	width, height := e.opts.Width, e.opts.Height

	for i := first; i < width; i += e.opts.Workers {
		for j := 0; j < height; j++ {
			it, z := e.escape(c, view, i, j)

			id := 4 * (j*width + i)
			if it == e.opts.MaxIterations {
				pix[id], pix[id+1], pix[id+2], pix[id+3] = 0, 0, 0, 255
				continue
			}
			copy(pix[id:id+4], e.gradient.Sample(e.gradient.Offset(e.smooth(it, z, shift), e.opts.Repeat)))
		}
	}
}

// Sample returns the iteration count and final value for pixel (i, j).
func (e *Engine) Sample(c complex128, view viewport.Viewport, i, j int) (int, complex128) {
	return e.escape(c, view, i, j)
}

// Smooth returns the continuous escape value for an escaped sample.
func (e *Engine) Smooth(it int, z complex128, phase float64) float64 {
	return e.smooth(it, z, 1.5*math.Cos(3*phase))
}

func (e *Engine) escape(c complex128, view viewport.Viewport, i, j int) (int, complex128) {
	pos := view.ToPlane(mgl64.Vec2{float64(i), float64(j)})
	return e.opts.Program.Escape(pos, c, e.opts.MaxIterations, e.radius2)
}

// smooth only applies to escaped samples, where |z| > EscapeRadius > 1 keeps
// both logarithms positive.
func (e *Engine) smooth(it int, z complex128, shift float64) float64 {
	length := math.Sqrt(programs.Abs2(z))
	return 10 + float64(it) - math.Log(math.Log2(length)/e.logRadius)/e.logDegree + shift
}
