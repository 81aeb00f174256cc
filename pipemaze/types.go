package pipemaze

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lattice/grid"
)

var (
	// ErrUnknownTile indicates a rune that is not a maze tile.
	ErrUnknownTile = errors.New("pipemaze: unknown tile")
	// ErrNoStart indicates the maze has no 'S'.
	ErrNoStart = errors.New("pipemaze: no start tile")
	// ErrMultipleStarts indicates more than one 'S'.
	ErrMultipleStarts = errors.New("pipemaze: more than one start tile")
	// ErrNoLoop indicates the start is not on exactly one closed loop.
	ErrNoLoop = errors.New("pipemaze: start tile is not on a single closed loop")
)

// Maze is a parsed, immutable pipe maze.
type Maze struct {
	tiles *grid.Grid[Tile]
	start grid.Pos
}

// Trace is one successful walk out of the start tile.
// Path holds every cell entered in order; its last element is the start.
type Trace struct {
	Dir  grid.Direction
	Path []grid.Pos
}

// Loop is the closed loop through the start tile.
type Loop struct {
	start   grid.Pos
	shape   Tile
	traces  [2]Trace
	members mapset.Set[grid.Pos]
}
