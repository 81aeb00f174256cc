package pipemaze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lattice/grid"
)

// Parse decodes a maze. The grid must be rectangular and contain exactly one start.
func Parse(lines []string) (*Maze, error) {
	tiles, err := grid.Parse(lines, func(r rune, _ grid.Pos) (Tile, error) {
		return ParseTile(r)
	})
	if err != nil {
		return nil, err
	}

	starts := tiles.FindAll(func(t Tile) bool { return t == Start })
	switch {
	case len(starts) == 0:
		return nil, ErrNoStart
	case len(starts) > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, len(starts))
	}

	return &Maze{tiles: tiles, start: starts[0]}, nil
}

// Start returns the position of the start tile.
func (m *Maze) Start() grid.Pos { return m.start }

// Tiles returns the parsed grid, start tile included.
func (m *Maze) Tiles() *grid.Grid[Tile] { return m.tiles }

// Trace walks out of the start heading dir and follows the pipes. It reports
// false if the walk leaves the grid or reaches a tile that cannot accept it.
// A walk longer than the number of cells cannot be a simple loop and is
// abandoned as well.
func (m *Maze) Trace(dir grid.Direction) (Trace, bool) {
	path := make([]grid.Pos, 0, 64)
	pos, heading := m.start, dir
	for steps := 0; steps < m.tiles.Len(); steps++ {
		// 1) Step; leaving the grid ends the walk.
		pos = heading.Step(pos)
		t, ok := m.tiles.Get(pos)
		if !ok {
			return Trace{}, false
		}
		// 2) Back at the start closes the loop.
		path = append(path, pos)
		if t == Start {
			return Trace{Dir: dir, Path: path}, true
		}
		// 3) The pipe must accept the heading and bends it.
		if heading, ok = NextDirection(heading, t); !ok {
			return Trace{}, false
		}
	}
	return Trace{}, false
}

// FindLoop tries all four start directions. Exactly two must close the loop;
// the start's shape is inferred from them.
func (m *Maze) FindLoop() (*Loop, error) {
	// 1) Trace every cardinal exit from the start.
	var found []Trace
	for _, d := range grid.Cardinal {
		if tr, ok := m.Trace(d); ok {
			found = append(found, tr)
		}
	}
	if len(found) != 2 {
		return nil, fmt.Errorf("%w: %d of 4 start directions return to %v", ErrNoLoop, len(found), m.start)
	}

	// 2) Infer the start tile from the two closing directions.
	shape, ok := ShapeFor(found[0].Dir, found[1].Dir)
	if !ok {
		return nil, fmt.Errorf("%w: no pipe joins %v and %v", ErrNoLoop, found[0].Dir, found[1].Dir)
	}

	// 3) Both traces cover the same cells; index one of them.
	members := mapset.New[grid.Pos]()
	for _, p := range found[0].Path {
		members.Put(p)
	}

	return &Loop{
		start:   m.start,
		shape:   shape,
		traces:  [2]Trace{found[0], found[1]},
		members: members,
	}, nil
}

// Resolved returns the maze with the start tile replaced by its inferred shape.
func (m *Maze) Resolved(l *Loop) grid.Reader[Tile] {
	return m.tiles.With(m.start, l.shape)
}
