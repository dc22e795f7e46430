package bfs_test

import (
	"testing"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/maze"
)

// BenchmarkBFS_Maze measures a full traversal of a 200×200 maze.
func BenchmarkBFS_Maze(b *testing.B) {
	const side = 200
	m, err := maze.New(side, side, maze.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(side * side))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(m, maze.Cell{X: 0, Y: 0})
	}
}
