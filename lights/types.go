package lights

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// MaxLights is the widest panel a Mask can hold.
const MaxLights = 32

// MaxButtons bounds MinJoltagePresses, which enumerates every subset of buttons.
const MaxButtons = 16

// Sentinel errors for machine parsing and search.
var (
	// ErrMalformedMachine is returned when a machine line does not parse.
	ErrMalformedMachine = errors.New("lights: malformed machine")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lights: invalid option supplied")

	// ErrNoSolution is returned when no press sequence reaches the target.
	ErrNoSolution = errors.New("lights: no solution")

	// ErrTooManyButtons is returned by MinJoltagePresses above MaxButtons.
	ErrTooManyButtons = errors.New("lights: too many buttons")

	// ErrBadJoltage is returned for negative targets or buttons wired to
	// counters that do not exist.
	ErrBadJoltage = errors.New("lights: invalid joltage input")
)

// Mask is a light configuration: bit i is light i, set means on.
type Mask uint32

// MaskOf returns the mask with the given bits set. Indices outside
// [0, MaxLights) are ignored.
func MaskOf(indices ...int) Mask {
	var m Mask
	for _, i := range indices {
		if i >= 0 && i < MaxLights {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Has reports whether bit i is set.
func (m Mask) Has(i int) bool {
	return i >= 0 && i < MaxLights && m&(1<<uint(i)) != 0
}

// Toggle applies a button press.
func (m Mask) Toggle(button Mask) Mask { return m ^ button }

// Count returns the number of set bits.
func (m Mask) Count() int { return bits.OnesCount32(uint32(m)) }

// Indices returns the set bits in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Count())
	for v := uint32(m); v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros32(v))
	}
	return out
}

// Format renders the low n bits as a light diagram, e.g. ".##.".
func (m Mask) Format(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if m.Has(i) {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Option configures FewestPresses.
type Option func(*Options)

// Options holds parameters and callbacks for FewestPresses.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops expanding states at this many presses.
	MaxDepth int

	// OnVisit is called as each state is dequeued. Returning an error
	// aborts the search.
	OnVisit func(state Mask, depth int) error

	err error
}

// DefaultOptions returns Options with a background context, no depth limit
// and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(Mask, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the number of presses explored.
//
//	d > 0: limit to d presses
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run on every dequeued state.
func WithOnVisit(fn func(state Mask, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of FewestPresses.
type Result struct {
	Presses int   // length of the shortest press sequence
	Buttons []int // button indices of one shortest sequence, in press order
	Visited int   // states dequeued, the target included
}

// Machine is one parsed panel.
type Machine struct {
	Lights  int    // number of indicator lights
	Target  Mask   // desired light configuration
	Buttons []Mask // lights (or counters) wired to each button
	Joltage []int  // counter targets; nil when the line has none
}
