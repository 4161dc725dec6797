package engine

import (
	"testing"

	"quadmatch/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClearsSingleBlock(t *testing.T) {
	e := newTestEngine(t, 4, 4, core.NewRNG(1))
	paint(e, core.Red, pt(0, 0), pt(0, 1), pt(1, 0), pt(1, 1))

	won := e.Resolve()

	require.Equal(t, 4, won.Len())
	assert.Equal(t, []core.Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)}, won.Points())
	for _, p := range won.Points() {
		assert.True(t, e.At(p.X, p.Y).IsEmpty(), "cell %v should be cleared", p)
	}
	assert.Zero(t, e.FilledCount())
	assert.Equal(t, 4, e.LastCleared().Len())
}

func TestResolveUnionsOverlappingBlocks(t *testing.T) {
	cases := []struct {
		name string
		pts  []core.Point
	}{
		{name: "3x2", pts: []core.Point{pt(0, 0), pt(1, 0), pt(2, 0), pt(0, 1), pt(1, 1), pt(2, 1)}},
		{name: "2x3", pts: []core.Point{pt(2, 1), pt(3, 1), pt(2, 2), pt(3, 2), pt(2, 3), pt(3, 3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, 4, 4, core.NewRNG(1))
			paint(e, core.Green, tc.pts...)

			won := e.Resolve()

			assert.Equal(t, 6, won.Len())
			for _, p := range tc.pts {
				assert.True(t, won.Contains(p))
				assert.True(t, e.At(p.X, p.Y).IsEmpty())
			}
		})
	}
}

func TestResolveIgnoresMixedAndPartialBlocks(t *testing.T) {
	e := newTestEngine(t, 4, 4, core.NewRNG(1))
	paint(e, core.Red, pt(0, 0), pt(1, 0), pt(0, 1))
	paint(e, core.Blue, pt(1, 1))
	paint(e, core.Yellow, pt(2, 2), pt(3, 2), pt(2, 3))

	won := e.Resolve()

	assert.Zero(t, won.Len())
	assert.Equal(t, 7, e.FilledCount())
}

func TestResolveIsSinglePass(t *testing.T) {
	// Two separate blocks of different colors clear together; nothing else
	// is touched.
	e := newTestEngine(t, 5, 5, core.NewRNG(1))
	paint(e, core.Cyan, pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1))
	paint(e, core.Pink, pt(3, 3), pt(4, 3), pt(3, 4), pt(4, 4))
	paint(e, core.Magenta, pt(2, 2))

	won := e.Resolve()

	assert.Equal(t, 8, won.Len())
	assert.False(t, won.Contains(pt(2, 2)))
	assert.Equal(t, core.Filled(core.Magenta), e.At(2, 2))

	again := e.Resolve()
	assert.Zero(t, again.Len())
}

func TestResolveLeavesNoMatchOnRandomBoards(t *testing.T) {
	rng := core.NewRNG(99)
	small := []core.Color{core.Red, core.Blue}
	for round := 0; round < 200; round++ {
		e := newTestEngine(t, 6, 6, core.NewRNG(1))
		for i := range e.grid.Cells() {
			if rng.IntN(4) == 0 {
				continue
			}
			e.grid.Cells()[i] = core.Filled(small[rng.IntN(len(small))])
		}
		before := e.FilledCount()

		won := e.Resolve()

		_, found := findMatch(e)
		require.False(t, found, "round %d left a match", round)
		assert.Equal(t, before-won.Len(), e.FilledCount())
	}
}
