package lights

import (
	"fmt"
	"math"
	"strconv"
)

const unsolvable = math.MaxInt

// pattern is one subset of buttons pressed exactly once.
type pattern struct {
	presses int
	effect  []int // increments applied to each counter
}

// joltSolver holds the per-call tables of MinJoltagePresses.
type joltSolver struct {
	byParity map[Mask][]pattern
	memo     map[string]int
	key      []byte
}

// MinJoltagePresses returns the fewest presses that raise every counter from
// zero to exactly target[i], where each press adds 1 to every counter its
// button is wired to. Buttons may be pressed any number of times.
func MinJoltagePresses(buttons []Mask, target []int) (int, error) {
	if len(buttons) > MaxButtons {
		return 0, fmt.Errorf("%w: %d buttons, at most %d", ErrTooManyButtons, len(buttons), MaxButtons)
	}
	if len(target) > MaxLights {
		return 0, fmt.Errorf("%w: %d counters, at most %d", ErrBadJoltage, len(target), MaxLights)
	}
	for i, v := range target {
		if v < 0 {
			return 0, fmt.Errorf("%w: counter %d has negative target %d", ErrBadJoltage, i, v)
		}
	}
	limit := MaskOf(seq(len(target))...)
	for i, b := range buttons {
		if b&^limit != 0 {
			return 0, fmt.Errorf("%w: button %d wires counters %v beyond %d",
				ErrBadJoltage, i, (b &^ limit).Indices(), len(target))
		}
	}

	s := &joltSolver{
		byParity: groupByParity(buttons, len(target)),
		memo:     make(map[string]int),
	}
	best := s.solve(target)
	if best == unsolvable {
		return 0, fmt.Errorf("%w: joltage %v", ErrNoSolution, target)
	}
	return best, nil
}

// groupByParity enumerates every subset of buttons and buckets it by the
// light mask it would toggle.
func groupByParity(buttons []Mask, counters int) map[Mask][]pattern {
	out := make(map[Mask][]pattern)
	for subset := 0; subset < 1<<len(buttons); subset++ {
		var parity Mask
		p := pattern{effect: make([]int, counters)}
		for j, b := range buttons {
			if subset&(1<<j) == 0 {
				continue
			}
			p.presses++
			parity ^= b
			for _, i := range b.Indices() {
				p.effect[i]++
			}
		}
		out[parity] = append(out[parity], p)
	}
	return out
}

func (s *joltSolver) solve(target []int) int {
	var parity Mask
	zero := true
	for i, v := range target {
		if v != 0 {
			zero = false
		}
		if v&1 == 1 {
			parity |= 1 << uint(i)
		}
	}
	if zero {
		return 0
	}

	key := s.encode(target)
	if v, ok := s.memo[key]; ok {
		return v
	}

	best := unsolvable
	for _, p := range s.byParity[parity] {
		half, ok := halve(target, p.effect)
		if !ok {
			continue
		}
		sub := s.solve(half)
		if sub == unsolvable {
			continue
		}
		if cost := p.presses + 2*sub; cost < best {
			best = cost
		}
	}
	s.memo[key] = best
	return best
}

// halve subtracts effect and divides by two. It reports false when any
// counter would go negative.
func halve(target, effect []int) ([]int, bool) {
	out := make([]int, len(target))
	for i, v := range target {
		r := v - effect[i]
		if r < 0 {
			return nil, false
		}
		out[i] = r / 2
	}
	return out, true
}

func (s *joltSolver) encode(target []int) string {
	s.key = s.key[:0]
	for i, v := range target {
		if i > 0 {
			s.key = append(s.key, ',')
		}
		s.key = strconv.AppendInt(s.key, int64(v), 10)
	}
	return string(s.key)
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
