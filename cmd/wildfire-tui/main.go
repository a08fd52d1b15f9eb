package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"wildfire-ca/internal/app"
	"wildfire-ca/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// The terminal owns stdout and stderr while the viewer runs.
	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			app.NewLogger(false).Error("cannot open log file", "path", *logFile, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		level := slog.LevelInfo
		if cfg.Debug {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	sim, err := app.Build(cfg, logger)
	if err != nil {
		app.NewLogger(cfg.Debug).Error("cannot start", "err", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		app.NewLogger(cfg.Debug).Error("cannot open terminal", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		app.NewLogger(cfg.Debug).Error("cannot init terminal", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tui.NewViewer(screen, sim, cfg.Seed, logger).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		app.NewLogger(cfg.Debug).Error("viewer exited", "err", err)
		os.Exit(1)
	}
}
