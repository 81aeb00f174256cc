package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lattice/grid"
)

// ExampleGrid_Get shows that lookups outside the grid report absence rather
// than a default value.
func ExampleGrid_Get() {
	g, _ := grid.ParseRunes([]string{
		"#.#",
		"...",
	})

	v, ok := g.Get(grid.Pos{Row: 0, Col: 2})
	fmt.Printf("%c %v\n", v, ok)
	_, ok = g.Get(grid.East.Step(grid.Pos{Row: 0, Col: 2}))
	fmt.Println(ok)

	// Output:
	// # true
	// false
}
