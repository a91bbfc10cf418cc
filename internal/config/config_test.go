package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "40", "-h", "30", "-rule", "highlife", "-seed-mode", "noise", "-max-levels", "3"}))

	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 30, cfg.Height)
	assert.Equal(t, "highlife", cfg.Rule)
	assert.Equal(t, SeedNoise, cfg.SeedMode)
	assert.NoError(t, cfg.Validate())

	sb := cfg.Sandbox()
	assert.Equal(t, 3, sb.Tree.MaxLevels)
	assert.Equal(t, 4, sb.Tree.MaxObjects)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	cfg := NewConfig()
	cfg.FromMap(map[string]string{
		"w":       "-3",
		"h":       "abc",
		"cell":    "12.5",
		"density": "1.5",
		"seed":    "99",
		"history": "16",
	})
	assert.Equal(t, 25, cfg.Width)
	assert.Equal(t, 25, cfg.Height)
	assert.Equal(t, 12.5, cfg.CellSize)
	assert.Equal(t, 0.25, cfg.Density)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 16, cfg.History)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"bad seed mode", func(c *Config) { c.SeedMode = "spiral" }},
		{"bad rule", func(c *Config) { c.Rule = "B9" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewSandboxSeeds(t *testing.T) {
	cfg := NewConfig()
	cfg.SeedMode = SeedRandom
	cfg.Density = 1
	sb, err := cfg.NewSandbox()
	require.NoError(t, err)
	assert.Equal(t, sb.Len(), sb.Engine().LiveCount())
	assert.Equal(t, 1, sb.Engine().Depth())

	cfg.SeedMode = SeedNone
	sb, err = cfg.NewSandbox()
	require.NoError(t, err)
	assert.Zero(t, sb.Engine().LiveCount())
}
