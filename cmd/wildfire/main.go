//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"wildfire-ca/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(cfg.Debug)
	sim, err := app.Build(cfg, logger)
	if err != nil {
		logger.Error("cannot start", "err", err)
		os.Exit(1)
	}

	game := app.New(sim, cfg, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("wildfire-ca")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
