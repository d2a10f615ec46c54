package paths

import (
	"errors"
	"fmt"

	"github.com/trajeto/trajeto/core"
)

// Sentinel errors for path reconstruction.
var (
	// ErrIndexOutOfRange indicates start or end is not a valid index
	// into the predecessor array.
	ErrIndexOutOfRange = errors.New("paths: node index out of range")

	// ErrNoPath indicates end has no predecessor and differs from
	// start: the traversal never reached it.
	ErrNoPath = errors.New("paths: no path recorded to target")

	// ErrCycleDetected indicates the predecessor links loop. A correct
	// traversal can never produce this; it signals a bug upstream.
	ErrCycleDetected = errors.New("paths: predecessor cycle detected")
)

// Reconstruct walks parent backward from end to start and returns the
// node sequence start → end inclusive. When start == end the result is
// the single-element path [start].
//
// The backward walk takes at most len(parent) steps; exceeding that, or
// hitting the core.NoParent sentinel before reaching start, fails with
// ErrCycleDetected or ErrNoPath respectively.
// Complexity: O(len(path)).
func Reconstruct(parent []int, start, end int) ([]int, error) {
	n := len(parent)
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start=%d, nodes=%d", ErrIndexOutOfRange, start, n)
	}
	if end < 0 || end >= n {
		return nil, fmt.Errorf("%w: end=%d, nodes=%d", ErrIndexOutOfRange, end, n)
	}
	if start == end {
		return []int{start}, nil
	}
	if parent[end] == core.NoParent {
		return nil, fmt.Errorf("%w: end=%d", ErrNoPath, end)
	}

	// Collect end..start backwards, capped at n steps.
	seq := make([]int, 0, n)
	cur := end
	for cur != start {
		if len(seq) == n {
			return nil, fmt.Errorf("%w: walk exceeded %d steps", ErrCycleDetected, n)
		}
		seq = append(seq, cur)

		next := parent[cur]
		if next == core.NoParent {
			// Chain died before reaching start: end belongs to a
			// different traversal tree.
			return nil, fmt.Errorf("%w: chain from %d never reaches %d", ErrNoPath, end, start)
		}
		if next < 0 || next >= n {
			return nil, fmt.Errorf("%w: parent[%d]=%d", ErrIndexOutOfRange, cur, next)
		}
		cur = next
	}
	seq = append(seq, start)

	// Reverse in place so the sequence reads start → end.
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq, nil
}
