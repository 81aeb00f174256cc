package crucible_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/lattice/crucible"
	"github.com/katalvlaran/lattice/grid"
)

// randomCosts builds an n×n grid of digits 1..9 from a fixed seed.
func randomCosts(b *testing.B, n int) *grid.Grid[int] {
	b.Helper()
	rng := rand.New(rand.NewSource(17))
	lines := make([]string, n)
	for y := range lines {
		var sb strings.Builder
		for x := 0; x < n; x++ {
			sb.WriteByte(byte('1' + rng.Intn(9)))
		}
		lines[y] = sb.String()
	}
	g, err := crucible.ParseCosts(lines)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkShortestPath_Classic measures the MaxRun 3 search on a 141×141 map.
func BenchmarkShortestPath_Classic(b *testing.B) {
	g := randomCosts(b, 141)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.ShortestPath(g)
	}
}

// BenchmarkShortestPath_Ultra measures the MinRun 4 / MaxRun 10 search.
func BenchmarkShortestPath_Ultra(b *testing.B) {
	g := randomCosts(b, 141)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crucible.ShortestPath(g, crucible.WithMinRun(4), crucible.WithMaxRun(10))
	}
}
