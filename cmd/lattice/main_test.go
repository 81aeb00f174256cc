package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lattice/grid"
	"github.com/katalvlaran/lattice/pipemaze"
)

const (
	complexLoop = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ`

	openBasin = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`

	cityMap = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533`

	panel = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}`

	heights = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`

	labFloor = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...`

	contraption = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....`
)

// CLISuite runs every registered solver against the worked examples.
type CLISuite struct {
	suite.Suite
}

func (s *CLISuite) SetupSuite() {
	log.SetOutput(io.Discard)
}

func (s *CLISuite) solve(puzzle string, part int, input string) (int, error) {
	cfg := config{puzzle: puzzle, part: part, workers: 2}
	return run(context.Background(), cfg, grid.Lines(input))
}

func (s *CLISuite) TestSamples() {
	cases := []struct {
		puzzle string
		part   int
		input  string
		want   int
	}{
		{"pipes", 1, complexLoop, 8},
		{"pipes", 2, openBasin, 4},
		{"crucible", 1, cityMap, 102},
		{"crucible", 2, cityMap, 94},
		{"lights", 1, panel, 7},
		{"lights", 2, panel, 33},
		{"trails", 1, heights, 36},
		{"trails", 2, heights, 81},
		{"beam", 1, contraption, 46},
		{"beam", 2, contraption, 51},
		{"patrol", 1, labFloor, 41},
		{"patrol", 2, labFloor, 6},
	}
	for _, tc := range cases {
		got, err := s.solve(tc.puzzle, tc.part, tc.input)
		s.Require().NoError(err, "%s part %d", tc.puzzle, tc.part)
		s.Equal(tc.want, got, "%s part %d", tc.puzzle, tc.part)
	}
}

func (s *CLISuite) TestEveryPuzzleHasBothParts() {
	for _, name := range strings.Split(puzzleNames(), ", ") {
		for _, part := range []int{1, 2} {
			_, err := lookup(name, part)
			s.NoError(err, "%s part %d", name, part)
		}
	}
	s.Len(solvers, 12)
}

func (s *CLISuite) TestSolverErrorsCarryContext() {
	_, err := s.solve("pipes", 1, "...\n...")
	s.Require().ErrorIs(err, pipemaze.ErrNoStart)
	s.Contains(err.Error(), "pipes part 1")

	_, err = s.solve("lights", 1, "[#] (0)\n[#.]")
	s.Error(err)

	_, err = s.solve("lights", 1, "[##] (0)")
	s.Require().Error(err)
	s.Contains(err.Error(), "[##] (0)")
}

func (s *CLISuite) TestEmptyInputAborts() {
	for key := range solvers {
		cfg := config{puzzle: key.puzzle, part: key.part}
		_, err := run(context.Background(), cfg, nil)
		s.ErrorIs(err, errNoInput, "%s part %d", key.puzzle, key.part)
	}

	// Blank lines reach the solver but hold no machines.
	cfg := config{puzzle: "lights", part: 1}
	_, err := run(context.Background(), cfg, []string{"", "   "})
	s.Require().ErrorIs(err, errNoInput)
	s.Contains(err.Error(), "no machines")
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-puzzle", "beam", "-part", "2", "-workers", "3", "-v"})
	require.NoError(t, err)
	assert.Equal(t, config{puzzle: "beam", part: 2, workers: 3, verbose: true}, cfg)

	cfg, err = parseFlags([]string{"-puzzle=trails"})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.part)
	assert.Empty(t, cfg.input)

	_, err = parseFlags([]string{"-puzzle", "sudoku"})
	assert.ErrorContains(t, err, "no solver")

	_, err = parseFlags([]string{"-puzzle", "beam", "-part", "3"})
	assert.ErrorContains(t, err, "part 3")

	_, err = parseFlags([]string{"-puzzle", "beam", "extra"})
	assert.ErrorContains(t, err, "unexpected arguments")

	_, err = parseFlags([]string{"-bogus"})
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("12\r\n34\n\n"), 0o600))

	lines, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"12", "34"}, lines)

	_, err = readInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
