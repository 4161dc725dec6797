package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"quadmatch/internal/core"
)

// Config controls the board dimensions, palette and refill size.
type Config struct {
	Name string

	Width       int
	Height      int
	RefillCount int
	Palette     []core.Color

	Seed int64
}

// DefaultConfig returns the classic 9x9 board with three cubes per refill.
func DefaultConfig() Config {
	return Config{
		Name:        "classic",
		Width:       9,
		Height:      9,
		RefillCount: 3,
		Palette:     core.Palette(),
		Seed:        42,
	}
}

// CompactConfig returns a smaller board with a reduced palette.
func CompactConfig() Config {
	return Config{
		Name:        "compact",
		Width:       6,
		Height:      6,
		RefillCount: 3,
		Palette:     []core.Color{core.Green, core.Red, core.Yellow, core.Blue},
		Seed:        42,
	}
}

var presets = map[string]func() Config{
	"classic": DefaultConfig,
	"compact": CompactConfig,
}

// Preset returns the named built-in config.
func Preset(name string) (Config, bool) {
	f, ok := presets[name]
	if !ok {
		return Config{}, false
	}
	return f(), true
}

// Validate reports the first structural problem with the config.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("board must be at least 2x2, got %dx%d", c.Width, c.Height)
	}
	if c.RefillCount < 1 {
		return fmt.Errorf("refill count must be positive, got %d", c.RefillCount)
	}
	if c.RefillCount > c.Width*c.Height {
		return fmt.Errorf("refill count %d exceeds %d cells", c.RefillCount, c.Width*c.Height)
	}
	if len(c.Palette) == 0 {
		return errors.New("palette must not be empty")
	}
	for _, col := range c.Palette {
		if !col.Valid() {
			return fmt.Errorf("palette entry %s is not a known color", col)
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs)
// on top of DefaultConfig. Unparseable values are ignored.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base from a string map.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	c.Palette = append([]core.Color(nil), base.Palette...)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["refill"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RefillCount = parsed
		}
	}
	if v, ok := cfg["colors"]; ok {
		if palette, err := parsePalette(v); err == nil && len(palette) > 0 {
			c.Palette = palette
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func parsePalette(v string) ([]core.Color, error) {
	var out []core.Color
	for _, name := range strings.Split(v, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}
