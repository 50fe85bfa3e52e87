package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/juliaview/config"
	"github.com/stewi1014/juliaview/engine"
	"github.com/stewi1014/juliaview/input"
	"github.com/stewi1014/juliaview/programs"
	"github.com/stewi1014/juliaview/viewport"
)

type command int

const (
	cmdNone command = iota
	cmdDrag
	cmdSelect
	cmdReset
	cmdSnapshot
	cmdQuit
)

var selectionColour = [4]byte{255, 255, 255, 255}

// viewer is what both window backends drive: it owns the engine, the frames
// and the input controller.
type viewer struct {
	engine *engine.Engine
	// frame holds the fractal alone. overlay is frame with the selection
	// outline drawn on top, and is what gets shown while selecting.
	frame   *engine.Frame
	overlay *engine.Frame
	view   viewport.Viewport
	input  *input.Controller
	clock  engine.Clock

	c           complex128
	snapshotDir string
	debug       bool
}

// newViewer loads everything a window needs before one is opened.
func newViewer(cfg config.Config) (*viewer, error) {
	program, err := programs.Lookup(cfg.Program)
	if err != nil {
		return nil, err
	}

	gradient, err := engine.LoadGradient(cfg.Gradient)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(gradient, engine.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		Workers:       cfg.Workers,
		MaxIterations: cfg.MaxIterations,
		EscapeRadius:  cfg.EscapeRadius,
		Repeat:        cfg.Repeat,
		Program:       program,
	})
	if err != nil {
		return nil, fmt.Errorf("engine.New: %w", err)
	}

	v := &viewer{
		engine:      eng,
		frame:       eng.NewFrame(),
		overlay:     eng.NewFrame(),
		view:        viewport.New(cfg.Width, cfg.Height, cfg.Scale),
		clock:       newClock(cfg),
		c:           cfg.Parameter(program),
		snapshotDir: cfg.SnapshotDir,
	}
	v.input = input.NewController(&v.view, input.Options{
		ZoomFactor: cfg.ZoomFactor,
		MinSelect:  cfg.MinSelect,
	})

	level, _ := cfg.Level()
	v.debug = level <= slog.LevelDebug

	opts := eng.Options()
	slog.Info("viewer ready",
		"program", opts.Program.Name,
		"c", v.c,
		"size", fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"workers", opts.Workers,
		"maxIterations", opts.MaxIterations,
		"gradientBytes", gradient.Len(),
	)
	return v, nil
}

func newClock(cfg config.Config) engine.Clock {
	switch cfg.Clock {
	case "frame":
		return &engine.FrameClock{Step: cfg.ClockStep}
	case "fixed":
		return engine.FixedClock(0)
	}
	return engine.NewWallClock()
}

func (v *viewer) size() (width, height int) {
	return v.view.Size()
}

// render draws the next frame, with the selection outline on top.
func (v *viewer) render() (*engine.Frame, error) {
	if err := v.engine.Render(v.frame, v.c, v.input.Viewport(), v.clock.Phase()); err != nil {
		return nil, err
	}

	a, b, ok := v.input.Selection()
	if !ok {
		return v.frame, nil
	}
	copy(v.overlay.Pix, v.frame.Pix)
	v.overlay.StrokeRect(a, b, selectionColour)
	return v.overlay, nil
}

func (v *viewer) setMode(m input.Mode) {
	switch {
	case v.input.SetMode(m):
		slog.Info("mode", "mode", m)
	case v.input.Pressed():
		slog.Debug("mode change ignored while the button is held", "mode", m)
	}
}

// toFrame converts a position in a window of the given size to frame pixels.
func (v *viewer) toFrame(x, y float64, windowWidth, windowHeight int) mgl64.Vec2 {
	width, height := v.size()
	if windowWidth <= 0 || windowHeight <= 0 {
		return mgl64.Vec2{x, y}
	}
	return mgl64.Vec2{
		x * float64(width) / float64(windowWidth),
		y * float64(height) / float64(windowHeight),
	}
}

// run carries out a key command. It reports true when the viewer should close.
func (v *viewer) run(cmd command) (bool, error) {
	switch cmd {
	case cmdDrag:
		v.setMode(input.Drag)
	case cmdSelect:
		v.setMode(input.Select)
	case cmdReset:
		v.input.Reset()
	case cmdSnapshot:
		// The selection outline lives in overlay, so snapshots never carry it.
		name, err := saveSnapshot(v.snapshotDir, v.frame)
		if err != nil {
			return false, err
		}
		slog.Info("snapshot saved", "file", name)
	case cmdQuit:
		return true, nil
	}
	return false, nil
}
