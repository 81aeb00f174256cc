package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pos addresses a cell by row and column. Row 0 is the northern edge.
type Pos struct {
	Row, Col int
}

// Add returns the component-wise sum of p and q.
func (p Pos) Add(q Pos) Pos {
	return Pos{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Manhattan returns the taxicab distance between p and q.
func (p Pos) Manhattan(q Pos) int {
	return absDiff(p.Row, q.Row) + absDiff(p.Col, q.Col)
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func absDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}
