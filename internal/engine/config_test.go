package engine

import (
	"testing"

	"quadmatch/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.NoError(t, CompactConfig().Validate())
	assert.Len(t, DefaultConfig().Palette, core.NumColors)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"narrow":       func(c *Config) { c.Width = 1 },
		"short":        func(c *Config) { c.Height = 0 },
		"no refill":    func(c *Config) { c.RefillCount = 0 },
		"huge refill":  func(c *Config) { c.Width, c.Height, c.RefillCount = 2, 2, 5 },
		"no palette":   func(c *Config) { c.Palette = nil },
		"bogus colour": func(c *Config) { c.Palette = []core.Color{core.Color(42)} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
			_, err := NewWithConfig(cfg)
			assert.Error(t, err)
		})
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":      "12",
		"h":      "7",
		"refill": "4",
		"colors": "red, blue",
		"seed":   "-3",
	})
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 7, cfg.Height)
	assert.Equal(t, 4, cfg.RefillCount)
	assert.Equal(t, []core.Color{core.Red, core.Blue}, cfg.Palette)
	assert.Equal(t, int64(-3), cfg.Seed)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	cfg := FromMap(map[string]string{"w": "x", "h": "1", "refill": "-2", "colors": "red,orange"})
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyMapDoesNotAliasPalette(t *testing.T) {
	base := CompactConfig()
	cfg := ApplyMap(base, nil)
	cfg.Palette[0] = core.Magenta
	assert.Equal(t, core.Green, base.Palette[0])
}

func TestPreset(t *testing.T) {
	cfg, ok := Preset("compact")
	require.True(t, ok)
	assert.Equal(t, CompactConfig(), cfg)

	_, ok = Preset("giant")
	assert.False(t, ok)
}
