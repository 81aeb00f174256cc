package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lattice/beam"
	"github.com/katalvlaran/lattice/crucible"
	"github.com/katalvlaran/lattice/grid"
	"github.com/katalvlaran/lattice/lights"
	"github.com/katalvlaran/lattice/parallel"
	"github.com/katalvlaran/lattice/patrol"
	"github.com/katalvlaran/lattice/pipemaze"
	"github.com/katalvlaran/lattice/trail"
)

// solver turns puzzle input into an answer.
type solver func(ctx context.Context, lines []string, cfg config) (int, error)

type solverKey struct {
	puzzle string
	part   int
}

var solvers = map[solverKey]solver{
	{"pipes", 1}:    pipesFarthest,
	{"pipes", 2}:    pipesEnclosed,
	{"crucible", 1}: crucibleSolver(0, 3),
	{"crucible", 2}: crucibleSolver(4, 10),
	{"lights", 1}:   lightsSolver(lights.Machine.LightPresses),
	{"lights", 2}:   lightsSolver(lights.Machine.JoltagePresses),
	{"trails", 1}:   trailsSolver((*trail.Map).TotalScore),
	{"trails", 2}:   trailsSolver((*trail.Map).TotalRating),
	{"beam", 1}:     beamFromCorner,
	{"beam", 2}:     beamBest,
	{"patrol", 1}:   patrolCells,
	{"patrol", 2}:   patrolTraps,
}

// errNoInput is returned when the input holds nothing to solve.
var errNoInput = errors.New("input is empty")

func lookup(puzzle string, part int) (solver, error) {
	if s, ok := solvers[solverKey{puzzle, part}]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("no solver for puzzle %q part %d (puzzles: %s; parts: 1, 2)",
		puzzle, part, puzzleNames())
}

func puzzleNames() string {
	seen := make(map[string]bool)
	var names []string
	for k := range solvers {
		if !seen[k.puzzle] {
			seen[k.puzzle] = true
			names = append(names, k.puzzle)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func findLoop(lines []string) (*pipemaze.Maze, *pipemaze.Loop, error) {
	m, err := pipemaze.Parse(lines)
	if err != nil {
		return nil, nil, err
	}
	l, err := m.FindLoop()
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{
		"start":  m.Start(),
		"shape":  l.Shape(),
		"length": l.Len(),
	}).Debug("loop found")
	return m, l, nil
}

func pipesFarthest(_ context.Context, lines []string, _ config) (int, error) {
	_, l, err := findLoop(lines)
	if err != nil {
		return 0, err
	}
	return l.Farthest(), nil
}

func pipesEnclosed(_ context.Context, lines []string, _ config) (int, error) {
	m, l, err := findLoop(lines)
	if err != nil {
		return 0, err
	}
	n := m.Enclosed(l)
	if area := l.InteriorArea(); area != n {
		log.WithFields(logrus.Fields{"scanline": n, "pick": area}).Warn("enclosure counts disagree")
	}
	return n, nil
}

func crucibleSolver(minRun, maxRun int) solver {
	return func(_ context.Context, lines []string, _ config) (int, error) {
		g, err := crucible.ParseCosts(lines)
		if err != nil {
			return 0, err
		}
		var last int64
		res, err := crucible.ShortestPath(g,
			crucible.WithMinRun(minRun),
			crucible.WithMaxRun(maxRun),
			crucible.WithOnSettle(func(_ crucible.State, cost int64) { last = cost }),
		)
		if err != nil {
			return 0, err
		}
		log.WithFields(logrus.Fields{
			"settled": res.Settled,
			"end":     res.End.Pos,
			"heading": res.End.Dir,
			"run":     res.End.Run,
			"last":    last,
		}).Debug("crucible search done")
		return int(res.Cost), nil
	}
}

func lightsSolver(press func(lights.Machine) (int, error)) solver {
	return func(ctx context.Context, lines []string, cfg config) (int, error) {
		machines, err := lights.ParseMachines(lines)
		if err != nil {
			return 0, err
		}
		if len(machines) == 0 {
			return 0, fmt.Errorf("%w: no machines", errNoInput)
		}
		log.WithField("machines", len(machines)).Debug("parsed panel")
		return parallel.Sum(ctx, machines, cfg.workers, func(_ context.Context, m lights.Machine) (int, error) {
			n, err := press(m)
			if err != nil {
				return 0, fmt.Errorf("machine %v: %w", m, err)
			}
			return n, nil
		})
	}
}

func trailsSolver(total func(*trail.Map) int) solver {
	return func(_ context.Context, lines []string, _ config) (int, error) {
		m, err := trail.Parse(lines)
		if err != nil {
			return 0, err
		}
		log.WithField("trailheads", len(m.Trailheads())).Debug("parsed map")
		return total(m), nil
	}
}

func beamFromCorner(_ context.Context, lines []string, _ config) (int, error) {
	g, err := beam.Parse(lines)
	if err != nil {
		return 0, err
	}
	return beam.Energize(g, beam.Entry{Pos: grid.Pos{}, Dir: grid.East}), nil
}

func beamBest(ctx context.Context, lines []string, cfg config) (int, error) {
	g, err := beam.Parse(lines)
	if err != nil {
		return 0, err
	}
	n, at, err := beam.Best(ctx, g, cfg.workers)
	if err != nil {
		return 0, err
	}
	log.WithField("entry", at).Debug("best entry")
	return n, nil
}

func patrolCells(_ context.Context, lines []string, _ config) (int, error) {
	lab, err := patrol.Parse(lines)
	if err != nil {
		return 0, err
	}
	p, err := lab.Patrol()
	if err != nil {
		return 0, err
	}
	log.WithFields(logrus.Fields{
		"outcome": p.Outcome,
		"steps":   p.Steps,
		"turns":   p.Turns,
	}).Debug("patrol done")
	return len(p.Cells), nil
}

func patrolTraps(ctx context.Context, lines []string, cfg config) (int, error) {
	lab, err := patrol.Parse(lines)
	if err != nil {
		return 0, err
	}
	traps, err := lab.LoopObstructions(ctx, cfg.workers)
	if err != nil {
		return 0, err
	}
	return len(traps), nil
}
