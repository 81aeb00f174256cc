package pipemaze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/grid"
)

func TestParseTile(t *testing.T) {
	for _, r := range ".|-LJ7FS" {
		tile, err := ParseTile(r)
		require.NoError(t, err)
		assert.Equal(t, string(r), tile.String())
	}
	_, err := ParseTile('x')
	assert.ErrorIs(t, err, ErrUnknownTile)
}

func TestNextDirection(t *testing.T) {
	cases := []struct {
		travel grid.Direction
		tile   Tile
		want   grid.Direction
		ok     bool
	}{
		{grid.North, Vertical, grid.North, true},
		{grid.South, Vertical, grid.South, true},
		{grid.East, Vertical, 0, false},
		{grid.West, Horizontal, grid.West, true},
		{grid.North, Horizontal, 0, false},
		{grid.South, BendNE, grid.East, true},
		{grid.West, BendNE, grid.North, true},
		{grid.North, BendNE, 0, false},
		{grid.South, BendNW, grid.West, true},
		{grid.East, BendNW, grid.North, true},
		{grid.North, BendSW, grid.West, true},
		{grid.East, BendSW, grid.South, true},
		{grid.North, BendSE, grid.East, true},
		{grid.West, BendSE, grid.South, true},
		{grid.East, BendSE, 0, false},
		{grid.North, Ground, 0, false},
		{grid.North, Start, 0, false},
	}
	for _, c := range cases {
		got, ok := NextDirection(c.travel, c.tile)
		assert.Equal(t, c.ok, ok, "%v into %v", c.travel, c.tile)
		if c.ok {
			assert.Equal(t, c.want, got, "%v into %v", c.travel, c.tile)
		}
	}
}

// TestShapeFor checks every pipe is recovered from its own exits in both orders.
func TestShapeFor(t *testing.T) {
	for _, p := range Pipes {
		a, b, ok := p.Exits()
		require.True(t, ok)
		got, ok := ShapeFor(a, b)
		assert.True(t, ok)
		assert.Equal(t, p, got)
		got, _ = ShapeFor(b, a)
		assert.Equal(t, p, got)
	}
	_, ok := ShapeFor(grid.North, grid.North)
	assert.False(t, ok)
}

func TestNorthConnectingShapes(t *testing.T) {
	var north []Tile
	for _, p := range Pipes {
		if p.Connects(grid.North) {
			north = append(north, p)
		}
	}
	assert.Equal(t, []Tile{Vertical, BendNE, BendNW}, north)
}
