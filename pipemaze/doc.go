// Package pipemaze traces the closed pipe loop through a maze of pipe tiles and
// counts the cells the loop encloses.
//
// The start tile 'S' hides its shape. FindLoop walks out of it in each of the
// four cardinal directions, following every pipe until the walk either re-enters
// the start (success) or hits ground, an incompatible pipe or the grid edge.
// Exactly two directions must succeed; the start's shape is the pipe that joins
// those two exits.
//
// Enclosed scans every row west to east with an inside flag that flips only on
// loop cells whose pipe connects North ('|', 'L', 'J'). Picture the scan ray
// running just below the northern edge of each cell: it crosses the loop exactly
// where a loop pipe leaves the cell northward, so horizontal runs such as
// "L--7" flip once and runs such as "L--J" flip twice. InteriorArea computes the
// same count independently with the shoelace formula and Pick's theorem.
//
// Complexity:
//
//   - FindLoop: O(W×H) time, O(L) memory for a loop of length L.
//   - Enclosed: O(W×H).
package pipemaze
