package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"quadmatch/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-board", "compact", "-cell", "32", "-seed", "9"}))

	assert.Equal(t, "compact", cfg.Board)
	assert.Equal(t, 32, cfg.CellSize)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 60, cfg.TPS)
}

func TestNewBoardFromPreset(t *testing.T) {
	cfg := NewConfig()
	cfg.Board = "compact"

	board, err := cfg.NewBoard()
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 6, H: 6}, board.Size())
	p, _ := board.Parameters().Lookup("seed")
	assert.Equal(t, "42", p.Value)

	cfg.Board = "nope"
	_, err = cfg.NewBoard()
	assert.Error(t, err)
}

func TestNewBoardFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tall.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`board "tall" { height = 12 }`), 0o644))

	cfg := NewConfig()
	cfg.File = path
	cfg.Seed = 5

	board, err := cfg.NewBoard()
	require.NoError(t, err)
	assert.Equal(t, "tall", board.Name())
	assert.Equal(t, core.Size{W: 9, H: 12}, board.Size())
	p, _ := board.Parameters().Lookup("seed")
	assert.Equal(t, "5", p.Value)
}

// fakeBoard records clicks for Apply tests.
type fakeBoard struct {
	size    core.Size
	cells   []core.Cell
	stalled bool
	clicks  []core.Point
}

func (f *fakeBoard) Name() string { return "fake" }
func (f *fakeBoard) Size() core.Size { return f.size }
func (f *fakeBoard) Reset(int64) {}
func (f *fakeBoard) Click(x, y int) { f.clicks = append(f.clicks, core.Point{X: x, Y: y}) }
func (f *fakeBoard) Stalled() bool { return f.stalled }
func (f *fakeBoard) Frame() core.Frame { return core.Frame{Size: f.size, Cells: f.cells} }
func (f *fakeBoard) Parameters() core.ParameterSnapshot { return core.ParameterSnapshot{} }

func TestApply(t *testing.T) {
	b := &fakeBoard{
		size:  core.Size{W: 2, H: 1},
		cells: []core.Cell{core.Filled(core.Red), core.Empty},
	}

	assert.True(t, Apply(b, core.Point{X: 1, Y: 0}))
	assert.False(t, Apply(b, core.Point{X: 2, Y: 0}))

	b.stalled = true
	assert.False(t, Apply(b, core.Point{X: 1, Y: 0}), "empty target on stalled board")
	assert.True(t, Apply(b, core.Point{X: 0, Y: 0}), "selecting still works")

	assert.Equal(t, []core.Point{{X: 1, Y: 0}, {X: 0, Y: 0}}, b.clicks)
}
