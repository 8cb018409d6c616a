package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/amaumene/moviemood/internal/config"
	"github.com/amaumene/moviemood/pkg/logger"
)

func main() {
	bootLogger := logger.New()

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatalf("[App] failed to load configuration: %v", err)
	}

	log := logger.NewWithOptions(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if closer, ok := log.(io.Closer); ok {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(ctx, cfg, log, os.Stdout)
	defer a.shutdown()

	if cfg.HTTPAddr != "" {
		a.startHTTP()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		newREPL(os.Stdout, a.ctrl, a.moods, a.genres).run(os.Stdin)
	}()

	select {
	case <-ctx.Done():
		log.Infof("[App] shutting down")
	case <-done:
	}
}
