// Package paths reconstructs node sequences from the predecessor
// arrays produced by the bfs, dfs, and dijkstra packages.
//
// A predecessor array records, for each node, the node it was reached
// from (core.NoParent when it was never reached). Reconstruct walks the
// array backward from the target until it meets the source, then
// reverses the collected indices so the result reads start → end.
//
// The walk is capped at len(parent) steps: a predecessor cycle can only
// come from a buggy traversal, and the cap turns that bug into
// ErrCycleDetected instead of an endless loop.
//
// Errors:
//
//	ErrIndexOutOfRange - start or end outside the array.
//	ErrNoPath          - end was never reached from start.
//	ErrCycleDetected   - malformed predecessor array (traversal bug).
package paths
