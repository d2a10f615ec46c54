package bfs_test

import (
	"fmt"

	"github.com/trajeto/trajeto/bfs"
	"github.com/trajeto/trajeto/core"
)

// ExampleBFS finds the fewest-edge route through a small network.
func ExampleBFS() {
	// 0—1—2—4 and a shortcut 0—3—4.
	g, _ := core.NewGraph(5)
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 4, 0)
	_ = g.AddEdge(0, 3, 0)
	_ = g.AddEdge(3, 4, 0)

	res, _ := bfs.BFS(g, 0, 4)
	path, _ := res.Path()

	fmt.Println("found:", res.Found)
	fmt.Println("path:", path)
	fmt.Println("edges:", res.Depth[4])
	// Output:
	// found: true
	// path: [0 3 4]
	// edges: 2
}
