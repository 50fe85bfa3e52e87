package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

const frameInterval = time.Second / 60

// runGTK shows the viewer in a GTK window and returns once it is closed.
func runGTK(ctx context.Context, quit context.CancelCauseFunc, v *viewer) error {
	gtk.Init(nil)
	app, err := gtk.ApplicationNew("com.github.stewi1014.juliaview", glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return fmt.Errorf("gtk.ApplicationNew failed: %w", err)
	}

	app.Connect("activate", func() {
		w := NewRenderWindow(app, v, ctx, quit)
		if w == nil {
			return
		}
		w.Connect("destroy", func() {
			quit(nil)
		})
		w.SetTitle("juliaview")
	})

	go func() {
		<-ctx.Done()
		glib.IdleAdd(app.Quit)
	}()
	app.Run(nil)
	quit(nil)
	return nil
}

func NewRenderWindow(
	app *gtk.Application,
	v *viewer,
	ctx context.Context,
	quit func(error),
) *RenderWindow {
	var err error
	w := &RenderWindow{
		viewer: v,
		ctx:    ctx,
		quit:   quit,
	}

	w.ApplicationWindow, err = gtk.ApplicationWindowNew(app)
	if err != nil {
		quit(fmt.Errorf("gtk.ApplicationWindowNew: %w", err))
		return nil
	}

	width, height := v.size()
	w.width, w.height = width, height
	w.SetResizable(false)

	w.gla, err = gtk.GLAreaNew()
	if err != nil {
		quit(fmt.Errorf("gtk.GLAreaNew: %w", err))
		return nil
	}

	w.gla.SetSizeRequest(width, height)
	w.gla.SetRequiredVersion(4, 6)
	w.gla.Connect("realize", w.glaRealize)
	w.gla.Connect("render", w.glaRender)
	w.gla.Connect("resize", w.resize)

	w.gla.SetEvents(
		int(gdk.BUTTON_PRESS_MASK) |
			int(gdk.BUTTON_RELEASE_MASK) |
			int(gdk.POINTER_MOTION_MASK) |
			int(gdk.SCROLL_MASK),
	)
	w.gla.Connect("scroll-event", w.scroll)
	w.gla.Connect("button-press-event", w.button)
	w.gla.Connect("button-release-event", w.button)
	w.gla.Connect("motion-notify-event", w.motion)
	w.Connect("key-press-event", w.key)

	w.Add(w.gla)
	w.ShowAll()

	glib.TimeoutAdd(uint(frameInterval/time.Millisecond), func() bool {
		if w.ctx.Err() != nil {
			return false
		}
		w.gla.QueueRender()
		return true
	})

	return w
}

type RenderWindow struct {
	*gtk.ApplicationWindow
	gla    *gtk.GLArea
	blit   *blitter
	viewer *viewer

	// GLArea size in pixels.
	width  int
	height int

	ctx  context.Context
	quit func(error)
}

func (w *RenderWindow) glaRealize(gla *gtk.GLArea) {
	gla.MakeCurrent()

	var err error
	w.blit, err = newBlitter(w.viewer.debug)
	if err != nil {
		w.quit(err)
	}
}

func (w *RenderWindow) glaRender(gla *gtk.GLArea) {
	if w.blit == nil {
		return
	}

	frame, err := w.viewer.render()
	if err != nil {
		w.quit(err)
		return
	}

	w.gla.AttachBuffers()
	w.blit.draw(frame, w.width, w.height)
}

func (w *RenderWindow) resize(gla *gtk.GLArea, width, height int) {
	w.width, w.height = width, height
}

func (w *RenderWindow) button(gla *gtk.GLArea, event *gdk.Event) {
	button := gdk.EventButtonNewFromEvent(event)
	if button.Button() != gdk.BUTTON_PRIMARY {
		return
	}
	pos := w.viewer.toFrame(button.X(), button.Y(), gla.GetAllocatedWidth(), gla.GetAllocatedHeight())

	switch button.Type() {
	case gdk.EVENT_BUTTON_PRESS:
		w.viewer.input.Press(pos)
	case gdk.EVENT_BUTTON_RELEASE:
		w.viewer.input.Release(pos)
	}
	gla.QueueRender()
}

func (w *RenderWindow) motion(gla *gtk.GLArea, event *gdk.Event) {
	motion := gdk.EventMotionNewFromEvent(event)
	x, y := motion.MotionVal()
	w.viewer.input.Move(w.viewer.toFrame(x, y, gla.GetAllocatedWidth(), gla.GetAllocatedHeight()))
}

func (w *RenderWindow) scroll(gla *gtk.GLArea, event *gdk.Event) {
	scroll := gdk.EventScrollNewFromEvent(event)
	pos := w.viewer.toFrame(scroll.X(), scroll.Y(), gla.GetAllocatedWidth(), gla.GetAllocatedHeight())

	switch scroll.Direction() {
	case gdk.SCROLL_UP:
		w.viewer.input.Scroll(pos, 1)
	case gdk.SCROLL_DOWN:
		w.viewer.input.Scroll(pos, -1)
	}
	gla.QueueRender()
}

func (w *RenderWindow) key(win *gtk.ApplicationWindow, event *gdk.Event) bool {
	key := gdk.EventKeyNewFromEvent(event)

	cmd := cmdNone
	switch key.KeyVal() {
	case gdk.KEY_Escape:
		cmd = cmdQuit
	case gdk.KEY_d, gdk.KEY_D:
		cmd = cmdDrag
	case gdk.KEY_s, gdk.KEY_S:
		cmd = cmdSelect
	case gdk.KEY_r, gdk.KEY_R:
		cmd = cmdReset
	case gdk.KEY_p, gdk.KEY_P:
		cmd = cmdSnapshot
	default:
		return false
	}

	var done bool
	WrapErrorDialog(w.ApplicationWindow, func() (err error) {
		done, err = w.viewer.run(cmd)
		return err
	})()
	if done {
		slog.Info("closing")
		w.Destroy()
	}
	return true
}
