package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/guptarohit/asciigraph"

	"wildfire-ca/internal/app"
	"wildfire-ca/internal/render"
	"wildfire-ca/internal/sims/wildfire"
)

type runResult struct {
	ticks   int
	burning []float64
	stats   wildfire.Stats
	done    bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	maxSteps := flag.Int("steps", 5000, "stop after this many ticks even if the fire is still burning")
	pngPath := flag.String("png", "", "write the final frame to this PNG file")
	chart := flag.Bool("chart", true, "plot the burning front over time")
	flag.Parse()

	logger := app.NewLogger(cfg.Debug)
	sim, err := app.Build(cfg, logger)
	if err != nil {
		logger.Error("cannot start", "err", err)
		os.Exit(1)
	}
	if !sim.Active() {
		logger.Error("nothing to burn; pass at least one valid -ignite x,y")
		os.Exit(2)
	}

	res := run(sim, *maxSteps)
	if *chart {
		printChart(os.Stdout, res)
	}
	if *pngPath != "" {
		comp := render.NewCompositor(sim.Size(), render.Backdrop(sim.Terrain(), sim.Backdrop()), wildfire.Palette())
		if err := comp.SavePNG(*pngPath, sim.Cells(), cfg.Scale); err != nil {
			logger.Error("cannot write frame", "path", *pngPath, "err", err)
			os.Exit(1)
		}
		logger.Info("frame written", "path", *pngPath, "scale", cfg.Scale)
	}
	logSummary(logger, res)
}

// run steps until the fire is out or maxSteps ticks have elapsed, recording
// the number of transient cells after each tick.
func run(sim *wildfire.Simulation, maxSteps int) runResult {
	var res runResult
	fire := sim.Automaton()
	for sim.Active() && fire.Ticks() < maxSteps {
		sim.Step()
		res.burning = append(res.burning, float64(fire.Stats().Transient()))
	}
	res.ticks = fire.Ticks()
	res.stats = fire.Stats()
	res.done = fire.Done()
	return res
}

func printChart(w io.Writer, res runResult) {
	if len(res.burning) < 2 {
		return
	}
	fmt.Fprintln(w, asciigraph.Plot(res.burning,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("cells on fire per tick"),
	))
}

func logSummary(logger *slog.Logger, res runResult) {
	peak := 0.0
	for _, v := range res.burning {
		peak = max(peak, v)
	}
	logger.Info("run finished",
		"ticks", res.ticks,
		"burned_out", res.done,
		"ash", res.stats.Count(wildfire.Ash),
		"still_burning", res.stats.Transient(),
		"unburned_fuel", res.stats.Count(wildfire.Fuel),
		"burned_fraction", fmt.Sprintf("%.4f", res.stats.BurnedFraction()),
		"peak_front", int(peak),
	)
}
