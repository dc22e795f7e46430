// Package maze builds perfect mazes over a rectangular grid and exposes the
// result as one 4-bit passage mask per cell.
//
// What:
//
//   - New(width, length, opts...) carves a spanning tree over the grid with a
//     randomized depth-first backtracker starting at cell (0,0).
//   - Every cell stores a Mask: bit North, South, East or West set means the
//     wall on that side is open and a passage leads into the neighbour.
//   - WallMask, Width and Length are the read surface for scene builders;
//     Walls lists every wall segment that must still be drawn.
//   - DumpAsText renders the grid as integers or as decoded direction
//     letters ("NE" for a cell open to north and east).
//
// Why:
//
//   - Game and AR level layout: one path between any two cells, no loops.
//   - The topology is independent of any rendering or physics engine; callers
//     translate (x, y) and the mask into geometry themselves.
//
// Guarantees (for every maze returned by New):
//
//   - Connected: every cell is reachable from every other cell.
//   - Acyclic: exactly width*length-1 undirected passages.
//   - Mutual: a bit towards a neighbour implies the opposite bit on it.
//   - Bounded: no bit ever points outside [0,width) x [0,length).
//
// Coordinates: x grows east in [0,width), y grows south in [0,length);
// north is (0,-1).
//
// Randomness:
//
//   - Default: a math/rand stream seeded from the wall clock.
//   - WithSeed(seed): reproducible stream (seed 0 maps to a fixed default).
//   - WithRand(r) or WithShuffler(s): caller-controlled permutations. The
//     same permutation sequence always yields the same maze, bit for bit.
//
// Complexity:
//
//   - New:        Time O(W×L), Memory O(W×L) (explicit stack, no recursion).
//   - WallMask:   O(1).
//   - DumpAsText: O(W×L).
//
// Errors:
//
//   - ErrInvalidDimension: width or length below 1.
//   - ErrOutOfRange:       coordinate outside the grid.
//
// A *Maze is immutable once New returns and may be read from any number of
// goroutines.
package maze
