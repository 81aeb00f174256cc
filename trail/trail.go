// Package trail scores hiking trails on a topographic height map.
//
// A trail starts at height 0, ends at height 9 and climbs by exactly one at
// every cardinal step. Cells marked '.' are impassable.
//
//   - Score(head) counts the distinct summits reachable from a trailhead (BFS
//     with a visited set, so converging trails count once).
//   - Rating(head) counts the distinct trails themselves. Every step climbs,
//     so the trail graph is acyclic and a memoized DFS counts paths in
//     O(W×H) per map.
package trail

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lattice/grid"
)

const (
	// Base is the height of a trailhead.
	Base = 0
	// Summit is the height every trail ends on.
	Summit = 9
	// Impassable marks a '.' cell.
	Impassable = -1
)

// ErrNotTrailhead is returned when a search starts off a height-0 cell.
var ErrNotTrailhead = errors.New("trail: not a trailhead")

// Map is a parsed height map.
type Map struct {
	heights *grid.Grid[int]
}

// Parse decodes rows of digits and '.'.
func Parse(lines []string) (*Map, error) {
	g, err := grid.Parse(lines, func(r rune, _ grid.Pos) (int, error) {
		switch {
		case r == '.':
			return Impassable, nil
		case r >= '0' && r <= '9':
			return int(r - '0'), nil
		}
		return 0, fmt.Errorf("%q is not a height", r)
	})
	if err != nil {
		return nil, fmt.Errorf("trail: %w", err)
	}
	return &Map{heights: g}, nil
}

// Heights exposes the underlying grid.
func (m *Map) Heights() *grid.Grid[int] { return m.heights }

// Trailheads returns every height-0 cell in row-major order.
func (m *Map) Trailheads() []grid.Pos {
	return m.heights.FindAll(func(h int) bool { return h == Base })
}

// uphill returns the cardinal neighbors exactly one higher than p.
func (m *Map) uphill(p grid.Pos, h int) []grid.Pos {
	out := make([]grid.Pos, 0, 4)
	for _, q := range m.heights.Neighbors(p, grid.Conn4) {
		if v, _ := m.heights.Get(q); v == h+1 {
			out = append(out, q)
		}
	}
	return out
}

func (m *Map) checkHead(head grid.Pos) error {
	h, ok := m.heights.Get(head)
	if !ok || h != Base {
		return fmt.Errorf("%w: %v", ErrNotTrailhead, head)
	}
	return nil
}

// Score returns the number of distinct summits reachable from head.
func (m *Map) Score(head grid.Pos) (int, error) {
	if err := m.checkHead(head); err != nil {
		return 0, err
	}
	visited := mapset.New[grid.Pos]()
	visited.Put(head)
	queue := []grid.Pos{head}
	summits := 0
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		h, _ := m.heights.Get(p)
		if h == Summit {
			summits++
			continue
		}
		for _, q := range m.uphill(p, h) {
			if !visited.Has(q) {
				visited.Put(q)
				queue = append(queue, q)
			}
		}
	}
	return summits, nil
}

// rater memoizes the number of trails from a cell to any summit.
type rater struct {
	m    *Map
	memo map[grid.Pos]int
}

func (r *rater) ways(p grid.Pos) int {
	if n, ok := r.memo[p]; ok {
		return n
	}
	h, _ := r.m.heights.Get(p)
	n := 0
	if h == Summit {
		n = 1
	} else {
		for _, q := range r.m.uphill(p, h) {
			n += r.ways(q)
		}
	}
	r.memo[p] = n
	return n
}

// Rating returns the number of distinct trails starting at head.
func (m *Map) Rating(head grid.Pos) (int, error) {
	if err := m.checkHead(head); err != nil {
		return 0, err
	}
	r := &rater{m: m, memo: make(map[grid.Pos]int)}
	return r.ways(head), nil
}

// TotalScore sums Score over every trailhead.
func (m *Map) TotalScore() int {
	total := 0
	for _, head := range m.Trailheads() {
		n, _ := m.Score(head)
		total += n
	}
	return total
}

// TotalRating sums Rating over every trailhead, sharing one memo table.
func (m *Map) TotalRating() int {
	r := &rater{m: m, memo: make(map[grid.Pos]int)}
	total := 0
	for _, head := range m.Trailheads() {
		total += r.ways(head)
	}
	return total
}
