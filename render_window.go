package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
)

// runGLFW shows the viewer in a GLFW window, rendering until it is closed or
// ctx is done. It must be called from the main thread.
func runGLFW(ctx context.Context, quit context.CancelCauseFunc, v *viewer) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	w, err := NewGLFWWindow(v)
	if err != nil {
		return err
	}
	defer w.Destroy()

	for !w.ShouldClose() && ctx.Err() == nil {
		frame, err := v.render()
		if err != nil {
			return err
		}

		fbWidth, fbHeight := w.GetFramebufferSize()
		w.blit.draw(frame, fbWidth, fbHeight)
		w.SwapBuffers()
		glfw.PollEvents()
	}

	quit(nil)
	return nil
}

func NewGLFWWindow(v *viewer) (*GLFWWindow, error) {
	width, height := v.size()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	if v.debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
	window, err := glfw.CreateWindow(
		width,
		height,
		"juliaview",
		nil,
		nil,
	)

	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &GLFWWindow{
		Window: window,
		viewer: v,
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	w.blit, err = newBlitter(v.debug)
	if err != nil {
		window.Destroy()
		return nil, err
	}
	gl.ClearColor(0, 0, 0, 1)

	w.SetMouseButtonCallback(w.button)
	w.SetCursorPosCallback(w.motion)
	w.SetScrollCallback(w.scroll)
	w.SetKeyCallback(w.key)

	return w, nil
}

type GLFWWindow struct {
	*glfw.Window
	blit   *blitter
	viewer *viewer
}

func (w *GLFWWindow) cursor() mgl64.Vec2 {
	x, y := w.GetCursorPos()
	return w.toFrame(x, y)
}

func (w *GLFWWindow) toFrame(x, y float64) mgl64.Vec2 {
	width, height := w.GetSize()
	return w.viewer.toFrame(x, y, width, height)
}

func (w *GLFWWindow) button(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}

	switch action {
	case glfw.Press:
		w.viewer.input.Press(w.cursor())
	case glfw.Release:
		w.viewer.input.Release(w.cursor())
	}
}

func (w *GLFWWindow) motion(_ *glfw.Window, x, y float64) {
	w.viewer.input.Move(w.toFrame(x, y))
}

func (w *GLFWWindow) scroll(_ *glfw.Window, _, yoff float64) {
	w.viewer.input.Scroll(w.cursor(), yoff)
}

func (w *GLFWWindow) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	cmd := cmdNone
	switch key {
	case glfw.KeyEscape:
		cmd = cmdQuit
	case glfw.KeyD:
		cmd = cmdDrag
	case glfw.KeyS:
		cmd = cmdSelect
	case glfw.KeyR:
		cmd = cmdReset
	case glfw.KeyP:
		cmd = cmdSnapshot
	default:
		return
	}

	done, err := w.viewer.run(cmd)
	if err != nil {
		slog.Error("command failed", "err", err)
	}
	if done {
		w.SetShouldClose(true)
	}
}
