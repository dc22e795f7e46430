package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazegen/bfs"
	"github.com/katalvlaran/mazegen/maze"
)

// ExampleShortestPath walks the unshuffled 3×2 maze from the entrance to the
// cell farthest from it.
//
//	+---+---+---+
//	| S |       |
//	+   +   +   +
//	|       | F |
//	+---+---+---+
func ExampleShortestPath() {
	keep := maze.ShufflerFunc(func([]maze.Direction) {})
	m, err := maze.New(3, 2, maze.WithShuffler(keep))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(m, maze.Cell{X: 0, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	finish := res.Farthest()
	fmt.Println("finish:", finish, "depth:", res.Depth[finish])

	path, _ := bfs.ShortestPath(m, maze.Cell{X: 0, Y: 0}, finish)
	fmt.Println(path)

	// Output:
	// finish: {2 1} depth: 5
	// [{0 0} {0 1} {1 1} {1 0} {2 0} {2 1}]
}
