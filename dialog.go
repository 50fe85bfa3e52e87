package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

func CatchPanicToContext(ctxCancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if ctxCancel != nil {
			ctxCancel(err)
		}
	}
}

// WrapErrorDialog returns a func that runs failable and reports its error,
// if any, in the log and in a dialog over parent.
func WrapErrorDialog(parent *gtk.ApplicationWindow, failable func() error) func() {
	return func() {
		err := failable()
		if err != nil {
			slog.Error("command failed", "err", err)
			glib.IdleAdd(func() {
				NewErrorDialog(parent, err)
			})
		}
	}
}

func NewErrorDialog(
	parent *gtk.ApplicationWindow,
	err error,
) {
	dialog := gtk.MessageDialogNew(
		parent,
		gtk.DIALOG_DESTROY_WITH_PARENT,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"%s",
		err.Error(),
	)

	dialog.Connect("response", dialog.Destroy)

	messageArea, aerr := dialog.GetMessageArea()
	if aerr != nil {
		slog.Warn("dialog message area", "err", aerr)
	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
}
