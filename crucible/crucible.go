package crucible

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lattice/grid"
)

// ParseCosts decodes a grid of single-digit cell costs.
func ParseCosts(lines []string) (*grid.Grid[int], error) {
	return grid.ParseDigits[int](lines)
}

// ShortestPath returns the minimum total cost of moving from Source to Target
// under the run-length rules configured by opts.
//
// Validation order:
//  1. options (ErrOptionViolation, including MinRun > MaxRun),
//  2. g non-nil (ErrNilGrid),
//  3. endpoints in bounds (ErrOutOfBounds),
//  4. no negative costs (ErrNegativeCost).
func ShortestPath(g *grid.Grid[int], opts ...Option) (*Result, error) {
	// 1) Build options; invalid ones were recorded while applying them.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	// 2) Cross-option check: a run cannot be both required and forbidden.
	if cfg.MinRun > cfg.MaxRun {
		return nil, fmt.Errorf("%w: MinRun %d exceeds MaxRun %d", ErrOptionViolation, cfg.MinRun, cfg.MaxRun)
	}
	// 3) Validate the grid and resolve the default target.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !cfg.targetSet {
		cfg.Target = grid.Pos{Row: g.Rows() - 1, Col: g.Cols() - 1}
	}
	// 4) Both endpoints must be on the grid.
	for _, p := range []grid.Pos{cfg.Source, cfg.Target} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}

	// 5) Pre-scan costs. Fail fast with ErrNegativeCost.
	var firstNegative error
	g.Each(func(p grid.Pos, c int) {
		if c < 0 && firstNegative == nil {
			firstNegative = fmt.Errorf("%w: %d at %v", ErrNegativeCost, c, p)
		}
	})
	if firstNegative != nil {
		return nil, firstNegative
	}

	// 6) Prepare the runner. Every map is private to this call.
	capacity := g.Len() * 4
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[State]int64, capacity),
		settled: make(map[State]bool, capacity),
		pq:      make(statePQ, 0, capacity),
	}
	if cfg.ReturnPath {
		r.prev = make(map[State]State, capacity)
	}

	// 7) Seed the start state and drain the frontier.
	r.init()
	r.process()

	// 8) No settled target state satisfied MinRun.
	if !r.found {
		return nil, fmt.Errorf("%w: %v → %v with runs %d..%d", ErrUnreachable, cfg.Source, cfg.Target, cfg.MinRun, cfg.MaxRun)
	}
	// 9) Assemble the result; the path only when asked for.
	res := &Result{Cost: r.best, End: r.end, Settled: len(r.settled)}
	if cfg.ReturnPath {
		res.Path = r.path(r.end)
	}
	return res, nil
}

// runner holds the mutable state of one search. Nothing in it is shared
// between calls.
type runner struct {
	g       *grid.Grid[int]
	options Options
	dist    map[State]int64 // best known cost per state; absent means +∞
	prev    map[State]State // predecessor per state; nil unless ReturnPath
	settled map[State]bool  // states whose cost is final
	pq      statePQ

	found bool
	best  int64
	end   State
}

func (r *runner) init() {
	// The start has no arrival direction, so Run 0 leaves every way open.
	start := State{Pos: r.options.Source}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: start, cost: 0})
}

// process pops states in cost order until the frontier is empty. A state
// reaching the target is recorded but does not stop the search.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest frontier entry.
		item := heap.Pop(&r.pq).(*stateItem)
		s := item.state

		// 2) Skip stale entries left behind by lazy decrease-key.
		if r.settled[s] {
			continue
		}

		// 3) Finalize the state and notify the hook.
		r.settled[s] = true
		r.options.OnSettle(s, item.cost)

		// 4) Record the target if this state may stop here; keep searching,
		// other states on the target cell may still be cheaper.
		if s.Pos == r.options.Target && r.canStop(s) && (!r.found || item.cost < r.best) {
			r.found, r.best, r.end = true, item.cost, s
		}
		// 5) Push improved successors.
		r.relax(s, item.cost)
	}
}

func (r *runner) canStop(s State) bool {
	return s.Run == 0 || s.Run >= r.options.MinRun
}

// relax pushes every legal successor of s whose cost improves.
func (r *runner) relax(s State, cost int64) {
	for _, d := range grid.Cardinal {
		// 1) Apply the run rules; the start state may leave in any direction.
		run := 1
		if s.Run > 0 {
			switch d {
			case s.Dir.Opposite():
				continue
			case s.Dir:
				if s.Run >= r.options.MaxRun {
					continue
				}
				run = s.Run + 1
			default:
				if s.Run < r.options.MinRun {
					continue
				}
			}
		}

		// 2) The grid edge prunes the move.
		p := d.Step(s.Pos)
		w, ok := r.g.Get(p)
		if !ok {
			continue
		}
		next := State{Pos: p, Dir: d, Run: run}
		if r.settled[next] {
			continue
		}
		// 3) Relax: keep only strict improvements.
		nc := cost + int64(w)
		if old, seen := r.dist[next]; seen && nc >= old {
			continue
		}
		r.dist[next] = nc
		if r.prev != nil {
			r.prev[next] = s
		}
		heap.Push(&r.pq, &stateItem{state: next, cost: nc})
	}
}

// path walks predecessors back from end to the start state.
func (r *runner) path(end State) []grid.Pos {
	var rev []grid.Pos
	for s := end; ; {
		rev = append(rev, s.Pos)
		if s.Run == 0 {
			break
		}
		s = r.prev[s]
	}
	out := make([]grid.Pos, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}

// stateItem is one frontier entry.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
type statePQ []*stateItem

func (pq statePQ) Len() int            { return len(pq) }
func (pq statePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq statePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
