// Package lights solves button-panel machines: a row of indicator lights, a
// set of buttons that each toggle (or increment) a fixed subset of them, and a
// target configuration to reach with as few presses as possible.
//
// Two searches live here:
//
//   - FewestPresses: breadth-first search over light configurations packed
//     into a Mask. The root is the all-off mask, an edge XORs one button into
//     the state, and the first time the target is dequeued its depth is the
//     answer. Pressing a button twice cancels out, so every mask is visited at
//     most once.
//
//   - MinJoltagePresses: every button adds 1 to each counter it touches and the
//     goal is an exact vector of counter values. The low bit of each counter
//     fixes which buttons must be pressed an odd number of times; after those
//     are applied every counter is even, the remaining presses come in pairs,
//     and the problem halves:
//
//     f(t) = min over subsets S with parity(S) == t mod 2 of |S| + 2·f((t - effect(S)) / 2)
//
//     Subsets are grouped by parity once per call, and f is memoized on the
//     encoded remaining vector.
//
// Complexity:
//
//   - FewestPresses: O(2^L · B) time and O(2^L) space for L lights, B buttons.
//   - MinJoltagePresses: O(2^B · L) to enumerate subsets plus
//     O(M · 2^B) for M distinct memo keys; B is capped at MaxButtons.
//
// Errors:
//
//   - ErrMalformedMachine for input lines that do not parse.
//   - ErrOptionViolation for invalid options.
//   - ErrNoSolution when the target cannot be reached.
//   - ErrTooManyButtons and ErrBadJoltage for joltage inputs outside the model.
package lights
