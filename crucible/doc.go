// Package crucible finds minimum-cost paths across a grid of digit costs when
// the traveler may not reverse and may not run straight for too long.
//
// Overview:
//
//   - The search node is the run-length-augmented State (position, arrival
//     direction, consecutive steps in that direction), not the bare position.
//     Two paths reaching the same cell with different recent history have
//     different futures, so collapsing them onto one node gives wrong answers.
//   - Edges: each of the four cardinal directions, except the exact reverse of
//     the arrival direction; straight ahead only while Run < MaxRun; turning only
//     once Run ≥ MinRun. The edge weight is the cost painted on the destination.
//   - The search runs until the frontier is empty. Many states share the target
//     cell, and the answer is the minimum over all of them.
//
// Options:
//
//   - WithSource(p), WithTarget(p): endpoints (default top-left → bottom-right).
//   - WithMaxRun(n):   longest straight run, n ≥ 1 (default 3).
//   - WithMinRun(n):   shortest run before turning or stopping, n ≥ 0 (default 0).
//   - WithReturnPath(): reconstruct the cells of one optimal path.
//   - WithOnSettle(fn): observe every state as its cost becomes final.
//
// Complexity:
//
//   - Time:  O(S log S) with S = W×H×4×MaxRun augmented states.
//   - Space: O(S) for distances and the lazy heap.
//
// Errors:
//
//   - ErrNilGrid, ErrOutOfBounds, ErrNegativeCost, ErrOptionViolation on bad input.
//   - ErrUnreachable when no state at the target satisfies the run constraints.
package crucible
