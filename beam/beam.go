// Package beam traces light beams through a grid of mirrors and splitters.
//
// A beam is a (position, direction) state. Empty cells pass it through,
// mirrors turn it a quarter, and splitters hit across their flat side fork it
// into two. Beams stop when they leave the grid. Splitters can send beams
// around closed circuits, so the trace keeps a visited set of states and
// drops any state it has already seen.
package beam

import (
	"context"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lattice/grid"
	"github.com/katalvlaran/lattice/parallel"
)

// Entry is where a beam enters: the first cell it lights and its heading.
type Entry struct {
	Pos grid.Pos
	Dir grid.Direction
}

func (e Entry) String() string { return fmt.Sprintf("%v heading %v", e.Pos, e.Dir) }

// Parse decodes the contraption layout.
func Parse(lines []string) (*grid.Grid[Tile], error) {
	g, err := grid.Parse(lines, func(r rune, _ grid.Pos) (Tile, error) { return ParseTile(r) })
	if err != nil {
		return nil, fmt.Errorf("beam: %w", err)
	}
	return g, nil
}

// Energize returns the number of distinct cells a beam entering at e passes
// through. An entry outside the grid energizes nothing.
func Energize(g grid.Reader[Tile], e Entry) int {
	seen := mapset.New[Entry]()
	lit := mapset.New[grid.Pos]()
	stack := []Entry{e}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t, ok := g.Get(s.Pos)
		if !ok || seen.Has(s) {
			continue
		}
		seen.Put(s)
		lit.Put(s.Pos)
		for _, d := range t.Outgoing(s.Dir) {
			stack = append(stack, Entry{Pos: d.Step(s.Pos), Dir: d})
		}
	}
	return lit.Size()
}

// Entries lists every way a beam can enter g from outside, in grid.Edges order.
func Entries(g *grid.Grid[Tile]) []Entry {
	edges := g.Edges()
	out := make([]Entry, len(edges))
	for i, e := range edges {
		out[i] = Entry{Pos: e.Pos, Dir: e.Dir}
	}
	return out
}

// Best tries every boundary entry across workers goroutines and returns the
// largest energized count with the first entry that achieves it.
func Best(ctx context.Context, g *grid.Grid[Tile], workers int) (int, Entry, error) {
	entries := Entries(g)
	counts, err := parallel.Map(ctx, entries, workers, func(_ context.Context, e Entry) (int, error) {
		return Energize(g, e), nil
	})
	if err != nil {
		return 0, Entry{}, err
	}
	best, at := -1, Entry{}
	for i, n := range counts {
		if n > best {
			best, at = n, entries[i]
		}
	}
	return best, at, nil
}
