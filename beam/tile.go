package beam

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lattice/grid"
)

// Tile is one contraption cell.
type Tile uint8

const (
	Empty           Tile = iota // .
	MirrorSlash                 // /
	MirrorBackslash             // \
	SplitVertical               // |
	SplitHorizontal             // -
)

// ErrUnknownTile is returned for runes outside ". / \ | -".
var ErrUnknownTile = errors.New("beam: unknown tile")

var tileRunes = [...]rune{'.', '/', '\\', '|', '-'}

// ParseTile decodes one rune.
func ParseTile(r rune) (Tile, error) {
	for i, tr := range tileRunes {
		if tr == r {
			return Tile(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

func (t Tile) String() string {
	if int(t) < len(tileRunes) {
		return string(tileRunes[t])
	}
	return "?"
}

// Outgoing returns the directions a beam leaves t in when it arrives
// travelling in d. Splitters hit on their flat side emit two beams.
func (t Tile) Outgoing(d grid.Direction) []grid.Direction {
	switch t {
	case MirrorSlash:
		// / turns vertical beams right and horizontal beams left.
		if d.IsVertical() {
			return []grid.Direction{d.TurnRight()}
		}
		return []grid.Direction{d.TurnLeft()}
	case MirrorBackslash:
		// \ is the mirror image of /.
		if d.IsVertical() {
			return []grid.Direction{d.TurnLeft()}
		}
		return []grid.Direction{d.TurnRight()}
	case SplitVertical:
		if !d.IsVertical() {
			return []grid.Direction{grid.North, grid.South}
		}
	case SplitHorizontal:
		if d.IsVertical() {
			return []grid.Direction{grid.East, grid.West}
		}
	}
	return []grid.Direction{d}
}
