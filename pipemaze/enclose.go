package pipemaze

import "github.com/katalvlaran/lattice/grid"

// Enclosed returns the number of cells inside the loop.
func (m *Maze) Enclosed(l *Loop) int {
	return len(m.EnclosedCells(l))
}

// EnclosedCells returns the cells inside the loop in row-major order.
// Cells on the loop are never enclosed. Stray pipes off the loop count like
// ground.
func (m *Maze) EnclosedCells(l *Loop) []grid.Pos {
	tiles := m.Resolved(l)
	var out []grid.Pos
	for y := 0; y < tiles.Rows(); y++ {
		inside := false
		for x := 0; x < tiles.Cols(); x++ {
			p := grid.Pos{Row: y, Col: x}
			if l.Contains(p) {
				t, _ := tiles.Get(p)
				if t.Connects(grid.North) {
					inside = !inside
				}
				continue
			}
			if inside {
				out = append(out, p)
			}
		}
	}
	return out
}
