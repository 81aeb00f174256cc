// Package lattice is a toolkit of search engines for puzzles drawn on
// rectangular character grids and small bitmask state spaces.
//
// What is inside:
//
//   - A typed grid model with an eight-way direction vocabulary.
//   - A pipe-loop tracer that infers the hidden start tile and counts the
//     cells the loop encloses.
//   - A constrained Dijkstra whose nodes remember how long they have run
//     straight.
//   - A breadth-first search over light configurations and a memoized
//     parity-halving search for counter targets.
//   - Trail scoring on height maps and a beam tracer for mirror grids.
//
// Layout:
//
//	grid/         Grid[T], Overlay[T], Pos, Direction, line readers
//	pipemaze/     pipe tiles, loop tracing, enclosure counting
//	crucible/     run-length-constrained shortest paths
//	lights/       button panels: fewest toggles, fewest joltage presses
//	trail/        trailhead score and rating
//	beam/         beam energizing over mirrors and splitters
//	patrol/       guard walk, loop-causing obstructions
//	parallel/     ordered fork/join map for independent searches
//	cmd/lattice   command line front end
//
// Quick example:
//
//	g, _ := crucible.ParseCosts([]string{"11111", "99999"})
//	res, _ := crucible.ShortestPath(g, crucible.WithTarget(grid.Pos{Row: 0, Col: 4}))
//	fmt.Println(res.Cost) // 22: the run limit forces a detour through the 9s
//
// Every search owns its frontier, visited set and memo table, so independent
// searches may run concurrently.
//
//	go install github.com/katalvlaran/lattice/cmd/lattice@latest
package lattice
