// Package grid models a rectangular lattice of cells and the small direction
// vocabulary every traversal in lattice is built on.
//
// What:
//
//   - Grid[T] wraps a rectangular, immutable table of decoded cells.
//   - Overlay[T] replaces a sparse set of cells without touching the base grid.
//   - Direction enumerates the eight compass directions clockwise from North.
//   - Pos addresses a cell by (Row, Col); Row grows southward, Col eastward.
//
// Why:
//
//   - Boundary detection is the termination condition of every walker in this
//     module (beams leave the grid, loops dead-end at edges, Dijkstra prunes
//     neighbors), so Get reports absence instead of returning a default value.
//   - Cells are decoded once at parse time into a typed value; nothing downstream
//     looks at raw runes.
//
// Complexity:
//
//   - New, Parse:  O(W×H) time and memory.
//   - Get, Index:  O(1).
//   - Neighbors:   O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths (wrapped by *MalformedGridError).
//   - ErrBadCell: the cell decoder rejected a rune.
package grid
