package patrol

import (
	"errors"

	"github.com/katalvlaran/lattice/grid"
)

// Sentinel errors for parsing and walking.
var (
	// ErrUnknownCell indicates a rune outside ". # ^ > v <".
	ErrUnknownCell = errors.New("patrol: unknown cell")
	// ErrNoGuard indicates the floor has no guard marker.
	ErrNoGuard = errors.New("patrol: no guard on the floor")
	// ErrMultipleGuards indicates more than one guard marker.
	ErrMultipleGuards = errors.New("patrol: more than one guard")
	// ErrBadHeading indicates a walk facing a non-cardinal direction.
	ErrBadHeading = errors.New("patrol: guard must face a cardinal direction")
)

// Cell is one floor cell.
type Cell uint8

const (
	Open     Cell = iota // .
	Obstacle             // #
)

func (c Cell) String() string {
	if c == Obstacle {
		return "#"
	}
	return "."
}

// Outcome says how a walk ended.
type Outcome uint8

const (
	Exits Outcome = iota // stepped off the floor
	Loops                // repeated a (position, heading) state
)

func (o Outcome) String() string {
	if o == Loops {
		return "loops"
	}
	return "exits"
}

// Path is the result of one walk.
type Path struct {
	Outcome Outcome
	Cells   []grid.Pos // distinct cells in first-visit order, start first
	Steps   int        // forward moves made
	Turns   int        // right turns made
}

// Lab is a parsed floor with the guard's starting pose. The guard's own
// cell is Open.
type Lab struct {
	floor  *grid.Grid[Cell]
	start  grid.Pos
	facing grid.Direction
}

// state is one node of the walk.
type state struct {
	pos grid.Pos
	dir grid.Direction
}
