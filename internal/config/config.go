// Package config holds the command-line configuration shared by the
// sandbox frontends.
package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"quadlife/pkg/life"
	"quadlife/pkg/quadtree"
	"quadlife/pkg/sandbox"
)

// Seed modes accepted by -seed-mode.
const (
	SeedNone   = "none"
	SeedRandom = "random"
	SeedNoise  = "noise"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	CellSize   float64
	MaxObjects int
	MaxLevels  int
	Rule       string
	History    int

	Seed           int64
	SeedMode       string
	Density        float64
	NoiseScale     float64
	NoiseThreshold float64

	TPS   int
	Scale float64
	Sound bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	sb := sandbox.DefaultConfig()
	return &Config{
		Width:          sb.Width,
		Height:         sb.Height,
		CellSize:       sb.CellSize,
		MaxObjects:     sb.Tree.MaxObjects,
		MaxLevels:      sb.Tree.MaxLevels,
		Rule:           sb.Rule,
		Seed:           42,
		SeedMode:       SeedNone,
		Density:        0.25,
		NoiseScale:     sandbox.DefaultNoiseScale,
		NoiseThreshold: 0.55,
		TPS:            10,
		Scale:          1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "world-space size of one cell")
	fs.IntVar(&c.MaxObjects, "max-objects", c.MaxObjects, "quadtree node capacity before splitting")
	fs.IntVar(&c.MaxLevels, "max-levels", c.MaxLevels, "deepest quadtree level")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name ("+strings.Join(life.RuleNames(), ", ")+") or B/S notation")
	fs.IntVar(&c.History, "history", c.History, "maximum frames kept for rewinding (0 = unlimited)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.StringVar(&c.SeedMode, "seed-mode", c.SeedMode, "initial pattern: none, random or noise")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability for random seeding")
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "noise frequency per cell")
	fs.Float64Var(&c.NoiseThreshold, "noise-threshold", c.NoiseThreshold, "noise level above which cells start alive")
	fs.IntVar(&c.TPS, "tps", c.TPS, "steps per second while playing")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "initial view zoom")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play audio cues on step and rewind")
}

// FromMap applies flag-style key/value overrides. Unparseable or
// out-of-range values are ignored.
func (c *Config) FromMap(kv map[string]string) {
	if kv == nil {
		return
	}
	if v, ok := kv["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := kv["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := kv["cell"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := kv["max-objects"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxObjects = parsed
		}
	}
	if v, ok := kv["max-levels"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxLevels = parsed
		}
	}
	if v, ok := kv["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := kv["history"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.History = parsed
		}
	}
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := kv["seed-mode"]; ok {
		c.SeedMode = v
	}
	if v, ok := kv["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := kv["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
}

// Validate reports configuration values that cannot start a sandbox.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: grid %dx%d must be positive", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("config: cell size %g must be positive", c.CellSize)
	}
	switch c.SeedMode {
	case SeedNone, SeedRandom, SeedNoise:
	default:
		return fmt.Errorf("config: unknown seed mode %q", c.SeedMode)
	}
	if _, err := life.LookupRule(c.Rule); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Sandbox converts the configuration into sandbox parameters.
func (c *Config) Sandbox() sandbox.Config {
	cfg := sandbox.DefaultConfig()
	cfg.Width = c.Width
	cfg.Height = c.Height
	cfg.CellSize = c.CellSize
	cfg.Tree = quadtree.Config{MaxObjects: c.MaxObjects, MaxLevels: c.MaxLevels}
	cfg.Rule = c.Rule
	cfg.MaxHistory = c.History
	return cfg
}

// NewSandbox validates the configuration, builds a sandbox and applies the
// configured seed pattern.
func (c *Config) NewSandbox() (*sandbox.Sandbox, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sb, err := sandbox.New(c.Sandbox())
	if err != nil {
		return nil, err
	}
	c.Reseed(sb, c.Seed)
	return sb, nil
}

// Reseed paints the configured pattern into the sandbox's current frame.
func (c *Config) Reseed(sb *sandbox.Sandbox, seed int64) {
	switch c.SeedMode {
	case SeedRandom:
		sb.Seed(seed, c.Density)
	case SeedNoise:
		sb.SeedNoise(seed, c.NoiseScale, c.NoiseThreshold)
	}
}
