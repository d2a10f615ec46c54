package dijkstra_test

import (
	"fmt"

	"github.com/trajeto/trajeto/core"
	"github.com/trajeto/trajeto/dijkstra"
)

// ExampleDijkstra shows a relay beating a more expensive direct edge.
func ExampleDijkstra() {
	// A=0, B=1, C=2: A→B(10), B→C(5), A→C(20).
	g, _ := core.NewGraph(3, core.WithDirected(), core.WithWeighted())
	_ = g.AddEdge(0, 1, 10)
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(0, 2, 20)

	res, _ := dijkstra.Dijkstra(g, 0)
	path, _ := res.PathTo(2)

	fmt.Println("cost:", res.Dist[2])
	fmt.Println("path:", path)
	// Output:
	// cost: 15
	// path: [0 1 2]
}
