package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellGridSetAndCount(t *testing.T) {
	g := NewCellGrid(4, 3)
	require.Equal(t, Size{W: 4, H: 3}, g.Size())
	assert.Equal(t, 12, g.Vacant())

	g.Set(3, 2, Filled(Blue))
	g.Set(0, 0, Filled(Green))

	assert.Equal(t, Filled(Blue), g.At(3, 2))
	assert.Equal(t, Filled(Blue), g.Cells()[g.Index(3, 2)])
	assert.Equal(t, 2, g.Filled())
	assert.Equal(t, 10, g.Vacant())

	g.Clear()
	assert.Zero(t, g.Filled())
}

func TestCellGridOutOfBoundsPanics(t *testing.T) {
	g := NewCellGrid(2, 2)
	assert.Panics(t, func() { g.At(2, 0) })
	assert.Panics(t, func() { g.Set(0, -1, Filled(Red)) })
	assert.False(t, g.InBounds(-1, 0))
	assert.True(t, g.InBounds(1, 1))
}

func TestCellGridSnapshotIsCopy(t *testing.T) {
	g := NewCellGrid(2, 2)
	snap := g.Snapshot()
	snap[0] = Filled(Red)
	assert.Equal(t, Empty, g.At(0, 0))
}

func TestCellColor(t *testing.T) {
	_, ok := Empty.Color()
	assert.False(t, ok)
	assert.True(t, Empty.IsEmpty())

	for _, c := range Palette() {
		got, ok := Filled(c).Color()
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "magenta", Filled(Magenta).String())
	assert.Equal(t, "empty", Empty.String())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Cyan ")
	require.NoError(t, err)
	assert.Equal(t, Cyan, c)

	_, err = ParseColor("orange")
	assert.Error(t, err)
}

func TestSelectionZeroValue(t *testing.T) {
	var s Selection
	_, ok := s.Get()
	assert.False(t, ok)

	s = SelectionAt(Point{X: 2, Y: 5})
	p, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, Point{X: 2, Y: 5}, p)
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.IntN(81), b.IntN(81))
	}
	assert.Zero(t, a.IntN(0))
}

func TestFrameAt(t *testing.T) {
	f := Frame{
		Size:  Size{W: 3, H: 2},
		Cells: []Cell{Empty, Empty, Empty, Empty, Empty, Filled(Cyan)},
	}
	assert.Equal(t, Filled(Cyan), f.At(2, 1))
	assert.True(t, f.At(1, 1).IsEmpty())
}
