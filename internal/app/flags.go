package app

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"quadmatch/internal/boardfile"
	"quadmatch/internal/core"
	"quadmatch/internal/engine"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Board    string
	File     string
	CellSize int
	TPS      int
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Board: "classic", CellSize: 60, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Board, "board", c.Board, "board preset ("+strings.Join(presetNames(), ", ")+")")
	fs.StringVar(&c.File, "file", c.File, "HCL board file; overrides -board")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board reset")
}

// NewBoard builds the board selected by File or Board. A board file's own
// seed takes precedence over -seed.
func (c *Config) NewBoard() (core.Board, error) {
	if c.File != "" {
		base := engine.DefaultConfig()
		base.Seed = c.Seed
		cfg, err := boardfile.Load(c.File, base)
		if err != nil {
			return nil, err
		}
		return engine.NewWithConfig(cfg)
	}
	factory, ok := core.Boards()[c.Board]
	if !ok {
		return nil, fmt.Errorf("unknown board %q", c.Board)
	}
	return factory(map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}), nil
}

func presetNames() []string {
	names := make([]string, 0, len(core.Boards()))
	for name := range core.Boards() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
