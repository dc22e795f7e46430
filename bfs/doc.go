// Package bfs provides breadth-first search over the open passages of a
// maze, returning unweighted shortest-path distances, parent links, and
// visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (passage count) from a start
//     cell, stepping only through walls whose bit is set in the cell mask.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (passages) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort the search with an error.
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Shortest route between entrance and finish of a perfect maze (the only
//     route, since the passages form a tree).
//   - Reachability audits: a connected maze is visited completely.
//   - Finish placement: Farthest returns the cell deepest from the entrance.
//
// Determinism
//
//	Neighbours are expanded in fixed N, S, E, W order, so the visit sequence
//	is fully reproducible for a given topology.
//
// Robustness
//
//	BFS trusts nothing about the topology beyond its extents: bits that point
//	outside the grid are ignored, and a one-sided passage is followed only
//	from the side that records it. Use package verify to reject such grids.
//
// Complexity (C = Width×Length)
//
//   - Time:   O(C)   (each cell expanded once, four directions each)
//   - Memory: O(C)   (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(m, maze.Cell{X: 0, Y: 0})
//	if err != nil {
//		// ErrTopologyNil, ErrStartOutOfRange, ErrOptionViolation,
//		// context errors or hook errors
//	}
//	path, err := res.PathTo(res.Farthest())
//
// Errors
//
//   - ErrTopologyNil       if the topology is nil.
//   - ErrStartOutOfRange   if the start cell lies outside the grid.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath            if PathTo targets an unreached cell.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
