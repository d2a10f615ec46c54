package maze_test

import (
	"fmt"

	"github.com/trajeto/trajeto/bfs"
	"github.com/trajeto/trajeto/maze"
)

// ExampleMaze demonstrates solving a small maze with BFS and printing
// the path both as coordinates and as an overlay.
func ExampleMaze() {
	m, _ := maze.Parse([]string{
		"#####",
		"#S..#",
		"###.#",
		"#E..#",
		"#####",
	})

	res, _ := bfs.BFS(m.Graph(), m.Start(), m.End())
	path, _ := res.Path()

	fmt.Println(m.FormatPath(path))
	fmt.Println(m.Render(path))

	// Output:
	// (1, 1) -> (1, 2) -> (1, 3) -> (2, 3) -> (3, 3) -> (3, 2) -> (3, 1)
	// #####
	// #S**#
	// ###*#
	// #E**#
	// #####
}
