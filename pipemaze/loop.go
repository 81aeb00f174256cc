package pipemaze

import "github.com/katalvlaran/lattice/grid"

// Shape returns the pipe hidden under the start tile.
func (l *Loop) Shape() Tile { return l.shape }

// Exits returns the two directions that leave the start along the loop.
func (l *Loop) Exits() (grid.Direction, grid.Direction) {
	return l.traces[0].Dir, l.traces[1].Dir
}

// Traces returns both successful walks. They cover the same cells in
// opposite order.
func (l *Loop) Traces() [2]Trace { return l.traces }

// Len returns the number of cells on the loop.
func (l *Loop) Len() int { return len(l.traces[0].Path) }

// Farthest returns the number of steps from the start to the loop cell
// farthest from it along the loop.
func (l *Loop) Farthest() int { return l.Len() / 2 }

// Contains reports whether p lies on the loop.
func (l *Loop) Contains(p grid.Pos) bool { return l.members.Has(p) }

// Path returns the loop's cells starting at the start tile, in the order of
// the first trace.
func (l *Loop) Path() []grid.Pos {
	tr := l.traces[0].Path
	out := make([]grid.Pos, 0, len(tr))
	out = append(out, l.start)
	return append(out, tr[:len(tr)-1]...)
}

// InteriorArea counts enclosed cells from the loop's geometry alone: the
// shoelace formula gives the polygon area A through cell centres, and Pick's
// theorem gives the interior lattice points as A - L/2 + 1.
func (l *Loop) InteriorArea() int {
	path := l.Path()
	twice := 0
	for i, p := range path {
		q := path[(i+1)%len(path)]
		twice += p.Col*q.Row - q.Col*p.Row
	}
	if twice < 0 {
		twice = -twice
	}
	return (twice - len(path) + 2) / 2
}
