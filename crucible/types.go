package crucible

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lattice/grid"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGrid indicates a nil cost grid.
	ErrNilGrid = errors.New("crucible: grid is nil")

	// ErrOutOfBounds indicates the source or target lies outside the grid.
	ErrOutOfBounds = errors.New("crucible: endpoint outside grid")

	// ErrNegativeCost indicates a cell with a negative cost.
	ErrNegativeCost = errors.New("crucible: negative cell cost")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("crucible: invalid option supplied")

	// ErrUnreachable indicates that no path satisfies the run constraints.
	ErrUnreachable = errors.New("crucible: target unreachable")
)

// State is one node of the augmented search graph. Run counts consecutive
// steps taken in Dir, including the step that arrived here; Run == 0 marks
// the start, which has no arrival direction.
type State struct {
	Pos grid.Pos
	Dir grid.Direction
	Run int
}

// Result is the outcome of a search.
type Result struct {
	Cost    int64      // minimum total cost to the target
	End     State      // the target state that achieved Cost
	Path    []grid.Pos // source..target inclusive; nil unless WithReturnPath
	Settled int        // number of states whose cost was finalized
}

// Option configures ShortestPath.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	Source     grid.Pos
	Target     grid.Pos
	MinRun     int
	MaxRun     int
	ReturnPath bool
	OnSettle   func(s State, cost int64)

	targetSet bool
	err       error
}

// DefaultOptions returns:
//   - Source (0,0), Target bottom-right (resolved against the grid)
//   - MaxRun 3, MinRun 0
//   - no path reconstruction, no-op OnSettle
func DefaultOptions() Options {
	return Options{
		MaxRun:   3,
		OnSettle: func(State, int64) {},
	}
}

// WithSource sets the start cell.
func WithSource(p grid.Pos) Option {
	return func(o *Options) { o.Source = p }
}

// WithTarget sets the goal cell.
func WithTarget(p grid.Pos) Option {
	return func(o *Options) {
		o.Target = p
		o.targetSet = true
	}
}

// WithMaxRun caps consecutive steps in one direction. n must be ≥ 1.
func WithMaxRun(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRun must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRun = n
	}
}

// WithMinRun requires n consecutive steps in a direction before turning or
// stopping. n must be ≥ 0.
func WithMinRun(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinRun cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinRun = n
	}
}

// WithReturnPath asks for the cells of one optimal path.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithOnSettle registers a callback run once per state, when its cost is final.
func WithOnSettle(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
