package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/alexflint/go-arg"
	"github.com/stewi1014/juliaview/config"
	"github.com/stewi1014/juliaview/engine"
)

func init() {
	// GTK and GLFW both want every call from the thread that started them.
	runtime.LockOSThread()
}

func main() {
	var args config.Args
	arg.MustParse(&args)

	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	engine.SetLogger(logger.With("pkg", "engine"))

	// A missing or broken gradient stops us before any window exists.
	v, err := newViewer(cfg)
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}

	mainContext, mainQuit := context.WithCancelCause(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)
	go func() {
		select {
		case s := <-signals:
			slog.Info("closing", "signal", s)
			mainQuit(nil)
		case <-mainContext.Done():
		}
	}()

	func() {
		defer CatchPanicToContext(mainQuit)
		if err := run(mainContext, mainQuit, cfg.Backend, v); err != nil {
			mainQuit(err)
		}
	}()

	if err := context.Cause(mainContext); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("exiting", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, quit context.CancelCauseFunc, backend string, v *viewer) error {
	slog.Info("starting", "backend", backend)
	switch backend {
	case "glfw":
		return runGLFW(ctx, quit, v)
	default:
		return runGTK(ctx, quit, v)
	}
}
