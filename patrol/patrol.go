package patrol

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lattice/grid"
	"github.com/katalvlaran/lattice/parallel"
)

var guardHeadings = map[rune]grid.Direction{
	'^': grid.North,
	'>': grid.East,
	'v': grid.South,
	'<': grid.West,
}

// Parse decodes a lab floor with exactly one guard marker.
func Parse(lines []string) (*Lab, error) {
	runes, err := grid.ParseRunes(lines)
	if err != nil {
		return nil, fmt.Errorf("patrol: %w", err)
	}

	// Locate the guard before the markers are folded into open floor.
	guards := runes.FindAll(func(r rune) bool {
		_, ok := guardHeadings[r]
		return ok
	})
	switch {
	case len(guards) == 0:
		return nil, ErrNoGuard
	case len(guards) > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleGuards, len(guards))
	}
	marker, _ := runes.Get(guards[0])

	floor, err := grid.Convert(runes, func(_ grid.Pos, r rune) (Cell, error) {
		switch r {
		case '#':
			return Obstacle, nil
		case '.', '^', '>', 'v', '<':
			return Open, nil
		}
		return Open, fmt.Errorf("%w: %q", ErrUnknownCell, r)
	})
	if err != nil {
		return nil, err
	}

	return &Lab{floor: floor, start: guards[0], facing: guardHeadings[marker]}, nil
}

// Floor returns the parsed floor.
func (l *Lab) Floor() *grid.Grid[Cell] { return l.floor }

// Start returns the guard's starting cell and heading.
func (l *Lab) Start() (grid.Pos, grid.Direction) { return l.start, l.facing }

// Patrol walks the guard across the unmodified floor.
func (l *Lab) Patrol() (*Path, error) {
	return Walk(l.floor, l.start, l.facing)
}

// Walk runs the guard from start facing heading until it leaves floor or
// repeats a state. An obstacle under start is ignored; the guard is already
// standing there.
func Walk(floor grid.Reader[Cell], start grid.Pos, heading grid.Direction) (*Path, error) {
	if !heading.IsCardinal() {
		return nil, fmt.Errorf("%w: %v", ErrBadHeading, heading)
	}
	if start.Row < 0 || start.Row >= floor.Rows() || start.Col < 0 || start.Col >= floor.Cols() {
		return &Path{Outcome: Exits}, nil
	}

	seen := mapset.New[state]()
	cells := mapset.New[grid.Pos]()
	path := &Path{}
	pos, dir := start, heading
	for {
		// A repeated pose means the guard is on a closed circuit.
		s := state{pos: pos, dir: dir}
		if seen.Has(s) {
			path.Outcome = Loops
			return path, nil
		}
		seen.Put(s)

		if !cells.Has(pos) {
			cells.Put(pos)
			path.Cells = append(path.Cells, pos)
		}

		// Look ahead: off the floor ends the walk, an obstacle turns the guard.
		next := dir.Step(pos)
		c, ok := floor.Get(next)
		if !ok {
			path.Outcome = Exits
			return path, nil
		}
		if c == Obstacle {
			dir = dir.TurnRight()
			path.Turns++
			continue
		}
		pos = next
		path.Steps++
	}
}

// LoopObstructions returns, in row-major order, every cell where one added
// obstacle traps the guard in a loop. Trials run on up to workers goroutines
// (GOMAXPROCS when workers <= 0).
func (l *Lab) LoopObstructions(ctx context.Context, workers int) ([]grid.Pos, error) {
	// Only cells on the original path can change the walk.
	base, err := l.Patrol()
	if err != nil {
		return nil, err
	}
	candidates := make([]grid.Pos, 0, len(base.Cells))
	for _, p := range base.Cells {
		if p != l.start {
			candidates = append(candidates, p)
		}
	}

	// Each trial walks its own overlay; the base floor stays untouched.
	traps, err := parallel.Map(ctx, candidates, workers, func(_ context.Context, p grid.Pos) (bool, error) {
		trial, err := Walk(l.floor.With(p, Obstacle), l.start, l.facing)
		if err != nil {
			return false, err
		}
		return trial.Outcome == Loops, nil
	})
	if err != nil {
		return nil, err
	}

	var out []grid.Pos
	for i, p := range candidates {
		if traps[i] {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b grid.Pos) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return out, nil
}
