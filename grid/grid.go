package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Reader is the read-only view shared by Grid and Overlay.
type Reader[T any] interface {
	Rows() int
	Cols() int
	Get(p Pos) (T, bool)
}

// Grid is a rectangular table of cells. It is immutable once built.
// Cells are stored row-major; cells[Index(p)] holds the value at p.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if no row has any cells and a *MalformedGridError
// if any row length differs from the first, an empty first row included.
// Complexity: O(W×H) time and memory.
func New[T any](values [][]T) (*Grid[T], error) {
	// Empty only when every row is empty; a ragged grid is malformed instead.
	empty := true
	for _, row := range values {
		if len(row) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return nil, ErrEmptyGrid
	}

	// Every row must match row 0.
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, &MalformedGridError{Row: y, Want: w, Got: len(row)}
		}
	}
	cells := make([]T, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return &Grid[T]{rows: h, cols: w, cells: cells}, nil
}

// Parse decodes lines into a Grid, calling decode once per rune.
// Rows are measured in runes, not bytes. A decoder error is wrapped together
// with ErrBadCell, so both match with errors.Is.
func Parse[T any](lines []string, decode func(r rune, p Pos) (T, error)) (*Grid[T], error) {
	values := make([][]T, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		x := 0
		for _, r := range line {
			p := Pos{Row: y, Col: x}
			v, err := decode(r, p)
			if err != nil {
				return nil, fmt.Errorf("%w at %v: %w", ErrBadCell, p, err)
			}
			row = append(row, v)
			x++
		}
		values[y] = row
	}

	return New(values)
}

// ParseRunes keeps every rune as is.
func ParseRunes(lines []string) (*Grid[rune], error) {
	return Parse(lines, func(r rune, _ Pos) (rune, error) { return r, nil })
}

// ParseDigits decodes a grid of decimal digits.
func ParseDigits[T constraints.Integer](lines []string) (*Grid[T], error) {
	return Parse(lines, func(r rune, _ Pos) (T, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a digit", r)
		}
		return T(r - '0'), nil
	})
}

// Convert decodes every cell of g into a grid of the same shape. Errors are
// wrapped like Parse's.
func Convert[T, U any](g *Grid[T], fn func(p Pos, v T) (U, error)) (*Grid[U], error) {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		p := g.Coordinate(i)
		u, err := fn(p, v)
		if err != nil {
			return nil, fmt.Errorf("%w at %v: %w", ErrBadCell, p, err)
		}
		cells[i] = u
	}
	return &Grid[U]{rows: g.rows, cols: g.cols, cells: cells}, nil
}

// Rows returns the grid height.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether p lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Get returns the cell at p and true, or the zero T and false when p is
// outside the grid.
func (g *Grid[T]) Get(p Pos) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g.cells[g.Index(p)], true
}

// Index maps p to a row-major index: Row*Cols + Col.
// The result is meaningless for out-of-bounds p.
func (g *Grid[T]) Index(p Pos) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Pos.
func (g *Grid[T]) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the in-bounds neighbors of p under conn, clockwise from North.
func (g *Grid[T]) Neighbors(p Pos, conn Connectivity) []Pos {
	dirs := conn.Directions()
	out := make([]Pos, 0, len(dirs))
	for _, d := range dirs {
		if q := d.Step(p); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Pos, v T)) {
	for i, v := range g.cells {
		fn(g.Coordinate(i), v)
	}
}

// Find returns the first cell, in row-major order, satisfying match.
func (g *Grid[T]) Find(match func(T) bool) (Pos, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}
	return Pos{}, false
}

// FindAll returns every cell satisfying match, in row-major order.
func (g *Grid[T]) FindAll(match func(T) bool) []Pos {
	var out []Pos
	for i, v := range g.cells {
		if match(v) {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Edge is a boundary cell together with the direction pointing into the grid.
type Edge struct {
	Pos Pos
	Dir Direction
}

// Edges lists every boundary cell with its inward direction: top row heading
// South, bottom row North, left column East, right column West. Corner cells
// appear twice, once per side.
func (g *Grid[T]) Edges() []Edge {
	out := make([]Edge, 0, 2*(g.rows+g.cols))
	for x := 0; x < g.cols; x++ {
		out = append(out,
			Edge{Pos: Pos{Row: 0, Col: x}, Dir: South},
			Edge{Pos: Pos{Row: g.rows - 1, Col: x}, Dir: North},
		)
	}
	for y := 0; y < g.rows; y++ {
		out = append(out,
			Edge{Pos: Pos{Row: y, Col: 0}, Dir: East},
			Edge{Pos: Pos{Row: y, Col: g.cols - 1}, Dir: West},
		)
	}
	return out
}

// With returns an overlay of g with p replaced by v. g itself is unchanged.
func (g *Grid[T]) With(p Pos, v T) *Overlay[T] {
	return (&Overlay[T]{base: g}).With(p, v)
}
