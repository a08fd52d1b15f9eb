package main

import (
	"bytes"
	"image"
	"log/slog"
	"strings"
	"testing"

	"wildfire-ca/internal/sims/wildfire"
)

type flatSource struct{ w, h int }

func (s flatSource) Masks() (image.Image, image.Image, error) {
	fuel := image.NewGray(image.Rect(0, 0, s.w, s.h))
	for i := range fuel.Pix {
		fuel.Pix[i] = 255
	}
	return fuel, image.NewGray(image.Rect(0, 0, s.w, s.h)), nil
}

func newSim(t *testing.T) *wildfire.Simulation {
	t.Helper()
	sim, err := wildfire.NewSimulation(wildfire.DefaultConfig(), flatSource{w: 20, h: 20})
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if err := sim.Ignite(10, 10); err != nil {
		t.Fatalf("Ignite: %v", err)
	}
	return sim
}

func TestRunStopsWhenFireIsOut(t *testing.T) {
	sim := newSim(t)
	res := run(sim, 10000)
	if !res.done {
		t.Fatal("expected the fire to burn out")
	}
	if res.stats.Transient() != 0 {
		t.Fatalf("expected no transient cells, got %d", res.stats.Transient())
	}
	if len(res.burning) != res.ticks {
		t.Fatalf("expected one sample per tick, got %d for %d ticks", len(res.burning), res.ticks)
	}
	if res.burning[len(res.burning)-1] != 0 {
		t.Fatal("expected the last sample to be zero")
	}
}

func TestRunHonoursStepLimit(t *testing.T) {
	sim := newSim(t)
	res := run(sim, 2)
	if res.ticks != 2 || len(res.burning) != 2 {
		t.Fatalf("expected two ticks, got %d (%d samples)", res.ticks, len(res.burning))
	}
	if res.done {
		t.Fatal("fire should still be burning after two ticks")
	}
}

func TestChartAndSummary(t *testing.T) {
	res := run(newSim(t), 10000)
	var out bytes.Buffer
	printChart(&out, res)
	if !strings.Contains(out.String(), "cells on fire per tick") {
		t.Fatalf("expected caption in chart, got:\n%s", out.String())
	}

	var logs bytes.Buffer
	logSummary(slog.New(slog.NewTextHandler(&logs, nil)), res)
	if !strings.Contains(logs.String(), "burned_out=true") {
		t.Fatalf("expected summary to report burned_out, got %q", logs.String())
	}

	out.Reset()
	printChart(&out, runResult{burning: []float64{1}})
	if out.Len() != 0 {
		t.Fatal("expected no chart for a single sample")
	}
}
