package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"wildfire-ca/internal/sims/wildfire"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	ConfigFile string
	Scale      int
	HUDWidth   int
	Seed       int64
	Debug      bool

	Overrides KVList
	Ignite    PointList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 3, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON simulation config file")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the spread draws (0 keeps the configured seed)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.Var(&c.Overrides, "set", "simulation override in key=value form (repeatable)")
	fs.Var(&c.Ignite, "ignite", "ignition point x,y (repeatable)")
}

// SimConfig resolves the simulation config: defaults, then the JSON file,
// then -seed and -set overrides.
func (c *Config) SimConfig() (wildfire.Config, error) {
	cfg := wildfire.DefaultConfig()
	if c.ConfigFile != "" {
		loaded, err := wildfire.LoadConfig(c.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	cfg.ApplyMap(c.Overrides.Map())
	return cfg, nil
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a raw key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// Point is a grid coordinate.
type Point struct{ X, Y int }

// PointList collects repeatable x,y flags.
type PointList []Point

func (l *PointList) String() string {
	parts := make([]string, len(*l))
	for i, p := range *l {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

// Set parses an x,y pair.
func (l *PointList) Set(value string) error {
	p, err := ParsePoint(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Point{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Point{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}
