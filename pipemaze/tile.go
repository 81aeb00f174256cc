package pipemaze

import (
	"fmt"

	"github.com/katalvlaran/lattice/grid"
)

// Tile is the content of one maze cell.
type Tile uint8

const (
	Ground     Tile = iota // .
	Vertical               // |
	Horizontal             // -
	BendNE                 // L
	BendNW                 // J
	BendSW                 // 7
	BendSE                 // F
	Start                  // S
)

// Pipes lists the six pipe shapes.
var Pipes = [6]Tile{Vertical, Horizontal, BendNE, BendNW, BendSW, BendSE}

var tileRunes = [...]rune{
	Ground:     '.',
	Vertical:   '|',
	Horizontal: '-',
	BendNE:     'L',
	BendNW:     'J',
	BendSW:     '7',
	BendSE:     'F',
	Start:      'S',
}

// ParseTile decodes one maze rune.
func ParseTile(r rune) (Tile, error) {
	for t, tr := range tileRunes {
		if tr == r {
			return Tile(t), nil
		}
	}
	return Ground, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

func (t Tile) String() string {
	if int(t) >= len(tileRunes) {
		return "?"
	}
	return string(tileRunes[t])
}

// Exits returns the two directions a pipe opens toward. Ground and Start
// report false.
func (t Tile) Exits() (a, b grid.Direction, ok bool) {
	switch t {
	case Vertical:
		return grid.North, grid.South, true
	case Horizontal:
		return grid.East, grid.West, true
	case BendNE:
		return grid.North, grid.East, true
	case BendNW:
		return grid.North, grid.West, true
	case BendSW:
		return grid.South, grid.West, true
	case BendSE:
		return grid.South, grid.East, true
	}
	return 0, 0, false
}

// Connects reports whether t opens toward d.
func (t Tile) Connects(d grid.Direction) bool {
	a, b, ok := t.Exits()
	return ok && (a == d || b == d)
}

// NextDirection returns the direction a traveler moving in travel leaves t by.
// It reports false when t has no opening facing the traveler, which means the
// walk cannot continue through this tile.
func NextDirection(travel grid.Direction, t Tile) (grid.Direction, bool) {
	a, b, ok := t.Exits()
	if !ok {
		return 0, false
	}
	switch travel.Opposite() {
	case a:
		return b, true
	case b:
		return a, true
	}
	return 0, false
}

// ShapeFor returns the pipe whose exits are exactly a and b, in either order.
func ShapeFor(a, b grid.Direction) (Tile, bool) {
	for _, t := range Pipes {
		if t.Connects(a) && t.Connects(b) && a != b {
			return t, true
		}
	}
	return Ground, false
}
