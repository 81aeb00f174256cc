// Package patrol simulates a guard walking a lab floor and finds the single
// obstructions that would trap the guard in a loop.
//
// Rules:
//
//   - The guard starts on the cell marked ^, >, v or < and faces that way.
//   - If the cell ahead is an obstacle the guard turns right in place;
//     otherwise the guard steps forward.
//   - The walk ends when the guard steps off the floor.
//
// The walk is a state machine over (position, heading). Seeing the same state
// twice means the guard will repeat forever, so Walk keeps a visited set of
// states and reports Loops instead of running on.
//
// Obstructions:
//
//   - A new obstacle only changes the walk if it lies on the guard's original
//     path, so LoopObstructions tries just those cells (never the start).
//   - Each trial runs on a copy-on-write overlay of the floor (Grid.With); the
//     base floor is never touched, and the trials run concurrently through
//     parallel.Map.
//
// Complexity:
//
//   - Walk: O(4·W·H) states, each visited once.
//   - LoopObstructions: O(P·W·H) for P cells on the original path.
//
// Errors:
//
//   - ErrUnknownCell, ErrNoGuard, ErrMultipleGuards from Parse.
//   - ErrBadHeading when Walk is asked to face a diagonal.
package patrol
