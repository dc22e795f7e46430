// Package mazegen builds perfect mazes over rectangular grids and hands
// their topology to whatever draws them: an AR scene, a game level, a
// terminal.
//
// 🚀 What is mazegen?
//
//	A small, dependency-light library that brings together:
//		• Generation: randomized depth-first spanning-tree carve (maze)
//		• Passage masks: one 4-bit N/S/E/W mask per cell (maze)
//		• Search: shortest routes and farthest cells over passages (bfs)
//		• Auditing: connectivity, acyclicity and mutual passages (verify)
//		• Diagnostics: text dumps and ASCII wall drawings (maze, render)
//
// ✨ Why mazegen?
//
//   - Exactly one path between any two cells, every time
//   - Reproducible: seeds and replayable permutation sources
//   - No recursion: grids of any size carve on the heap
//   - Engine-agnostic: the topology is plain data, geometry is yours
//
// Packages:
//
//	maze/          — Direction, Mask, Maze: New, WallMask, Walls, DumpAsText
//	bfs/           — breadth-first search over open passages
//	verify/        — perfect-maze invariant checks and summary report
//	render/        — ASCII drawing with optional colour and overlays
//	cmd/mazegen/   — diagnostic command-line front end
//
// Quick ASCII example (3×2, entrance S, farthest cell F):
//
//	+---+---+---+
//	| S |       |
//	+   +   +   +
//	|       | F |
//	+---+---+---+
//
//	go get github.com/katalvlaran/mazegen
package mazegen
