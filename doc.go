// Package trajeto computes paths over graphs built from 2-D mazes and
// weighted transit networks.
//
// A maze or an explicit edge list is turned into an index-based graph,
// then answered with one of three traversals:
//
//	• BFS      — unweighted shortest path (fewest edges)
//	• DFS      — reachability; finds *a* path, not necessarily shortest
//	• Dijkstra — minimum-cost path over non-negative weights
//
// Each traversal produces a predecessor array; the paths package walks
// it backward to recover the ordered node sequence.
//
// Packages:
//
//	core/     — Graph over integer node indices, adjacency lists, names
//	bfs/      — breadth-first shortest path between two nodes
//	dfs/      — depth-first reachability between two nodes
//	dijkstra/ — single-source weighted shortest paths
//	paths/    — predecessor-array path reconstruction
//	maze/     — rectangular character mazes ('#' walls, 'S'/'E' markers)
//	transit/  — named stations with directed, possibly asymmetric travel times
//	cmd/      — the trajeto command-line front end
//
// A graph is built once, never mutated afterwards, and may be shared by
// any number of concurrent traversal calls: all per-call working state
// (queues, visited sets, predecessor and distance arrays) is allocated
// fresh inside each call.
//
// Quick taste:
//
//	m, _ := maze.Parse([]string{
//		"####",
//		"#S.#",
//		"#.E#",
//		"####",
//	})
//	res, _ := bfs.BFS(m.Graph(), m.Start(), m.End())
//	route, _ := res.Path() // node indices, start → end
package trajeto
