// Package dfs provides depth-first search between two nodes of a
// core.Graph.
//
// DFS answers reachability: it finds *a* path from start to goal, not
// necessarily the shortest one. That is an expected property, not a
// defect — callers who need the fewest edges use bfs instead.
//
// The walk explores neighbors in adjacency order (most-recently-added-
// first, matching core.Graph), records a predecessor on each first
// visit, and unwinds the moment the goal is discovered without
// exploring further siblings. The traversal runs on an explicit stack
// rather than recursion, so deep graphs cannot exhaust the call stack,
// while visitation order stays identical to the recursive form.
//
// Errors:
//
//	ErrGraphNil       — nil graph.
//	ErrNodeOutOfRange — start or goal outside the graph.
//
// "Goal unreachable" is not an error: Result.Found reports it.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs
