package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"wildfire-ca/internal/masks"
	"wildfire-ca/internal/sims/wildfire"
	randcore "wildfire-ca/pkg/core"
)

type scenario struct {
	moisture  float64
	windSpeed float64
	seed      int64
}

type scenarioResult struct {
	scenario
	burned   float64
	ticks    int
	burntOut bool
}

type cellKey struct{ moisture, windSpeed float64 }

type summary struct {
	cellKey
	runs       int
	meanBurned float64
	meanTicks  float64
	unfinished int
}

func main() {
	width := flag.Int("w", 128, "grid width")
	height := flag.Int("h", 128, "grid height")
	terrainSeed := flag.Int64("terrain-seed", 1337, "seed for the procedural terrain")
	cover := flag.Float64("cover", 0.7, "fraction of cells carrying fuel")
	direction := flag.Float64("direction", 0, "wind direction in degrees")
	seeds := flag.Int("seeds", 8, "spread seeds per parameter pair")
	steps := flag.Int("steps", 4000, "tick limit per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	params := wildfire.DefaultConfig().Terrain
	params.FuelCover = *cover
	src := &masks.Procedural{W: *width, H: *height, Seed: *terrainSeed, Params: params}
	terrain, err := wildfire.BuildTerrain(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ox, oy, ok := nearestFuel(terrain)
	if !ok {
		fmt.Fprintln(os.Stderr, "terrain has no interior fuel to ignite")
		os.Exit(1)
	}

	moistureOptions := []float64{0, 10, 20, 30, 40, 60}
	speedOptions := []float64{0, 20, 40, 60, 80, 100}

	var jobsList []scenario
	for _, m := range moistureOptions {
		for _, s := range speedOptions {
			for i := 0; i < *seeds; i++ {
				jobsList = append(jobsList, scenario{moisture: m, windSpeed: s, seed: int64(i + 1)})
			}
		}
	}

	fmt.Printf("Sweeping %d scenarios on %dx%d terrain (%d workers, ignition at %d,%d)\n",
		len(jobsList), *width, *height, *workers, ox, oy)

	start := time.Now()
	all := make([]scenarioResult, len(jobsList))
	var g errgroup.Group
	g.SetLimit(max(1, *workers))
	for i, sc := range jobsList {
		g.Go(func() error {
			all[i] = runScenario(terrain, sc, *direction, ox, oy, *steps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rows := summarize(all)
	elapsed := time.Since(start)

	fmt.Printf("\n%8s %8s %10s %10s %6s   (elapsed %s)\n", "moisture", "wind", "burned", "ticks", "open", elapsed.Round(time.Millisecond))
	for _, r := range rows {
		fmt.Printf("%8.0f %8.0f %10.4f %10.1f %6d\n", r.moisture, r.windSpeed, r.meanBurned, r.meanTicks, r.unfinished)
	}
}

// runScenario burns one fire on a private automaton. The terrain is shared
// read-only between workers.
func runScenario(terrain *wildfire.Terrain, sc scenario, direction float64, x, y, steps int) scenarioResult {
	fire := wildfire.New(terrain, randcore.NewRNG(sc.seed))
	fire.SetWind(wildfire.WindFromDegrees(sc.windSpeed, direction))
	fire.SetMoisture(sc.moisture)
	if err := fire.Ignite(x, y); err != nil {
		return scenarioResult{scenario: sc}
	}
	for !fire.Done() && fire.Ticks() < steps {
		fire.Step()
	}
	stats := fire.Stats()
	return scenarioResult{
		scenario: sc,
		burned:   stats.BurnedFraction(),
		ticks:    fire.Ticks(),
		burntOut: fire.Done(),
	}
}

// summarize averages the results per moisture and wind speed pair, ordered by
// moisture then wind speed.
func summarize(results []scenarioResult) []summary {
	byKey := map[cellKey]*summary{}
	for _, r := range results {
		k := cellKey{r.moisture, r.windSpeed}
		s, ok := byKey[k]
		if !ok {
			s = &summary{cellKey: k}
			byKey[k] = s
		}
		s.runs++
		s.meanBurned += r.burned
		s.meanTicks += float64(r.ticks)
		if !r.burntOut {
			s.unfinished++
		}
	}
	out := make([]summary, 0, len(byKey))
	for _, s := range byKey {
		s.meanBurned /= float64(s.runs)
		s.meanTicks /= float64(s.runs)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].moisture != out[j].moisture {
			return out[i].moisture < out[j].moisture
		}
		return out[i].windSpeed < out[j].windSpeed
	})
	return out
}

// nearestFuel finds the interior fuel cell closest to the grid centre.
func nearestFuel(t *wildfire.Terrain) (int, int, bool) {
	size := t.Size()
	cx, cy := size.W/2, size.H/2
	bestX, bestY, bestD := 0, 0, -1
	for y := 1; y < size.H-1; y++ {
		for x := 1; x < size.W-1; x++ {
			if !t.Fuel(x, y) {
				continue
			}
			d := (x-cx)*(x-cx) + (y-cy)*(y-cy)
			if bestD < 0 || d < bestD {
				bestX, bestY, bestD = x, y, d
			}
		}
	}
	return bestX, bestY, bestD >= 0
}
