package paths_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/trajeto/trajeto/core"
	"github.com/trajeto/trajeto/paths"
)

// TestReconstruct_Chain rebuilds a straight 0→1→2→3 chain.
func TestReconstruct_Chain(t *testing.T) {
	parent := []int{core.NoParent, 0, 1, 2}
	got, err := paths.Reconstruct(parent, 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
}

// TestReconstruct_SameNode covers the start == end degenerate path.
func TestReconstruct_SameNode(t *testing.T) {
	parent := []int{core.NoParent, core.NoParent}
	got, err := paths.Reconstruct(parent, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1}; !reflect.DeepEqual(got, want) {
		t.Errorf("path = %v; want %v", got, want)
	}
}

// TestReconstruct_NoPath covers an unreached target.
func TestReconstruct_NoPath(t *testing.T) {
	parent := []int{core.NoParent, 0, core.NoParent}
	if _, err := paths.Reconstruct(parent, 0, 2); !errors.Is(err, paths.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

// TestReconstruct_ChainFromOtherTree: the target has predecessors, but
// its chain dies at the sentinel before reaching start.
func TestReconstruct_ChainFromOtherTree(t *testing.T) {
	// 3 was reached from 2, 2 is a root of its own tree; start is 0.
	parent := []int{core.NoParent, 0, core.NoParent, 2}
	if _, err := paths.Reconstruct(parent, 0, 3); !errors.Is(err, paths.ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

// TestReconstruct_CycleGuard turns a looping predecessor array into an
// error instead of an endless walk.
func TestReconstruct_CycleGuard(t *testing.T) {
	// 1 and 2 point at each other; start 0 is unreachable from the loop.
	parent := []int{core.NoParent, 2, 1}
	if _, err := paths.Reconstruct(parent, 0, 2); !errors.Is(err, paths.ErrCycleDetected) {
		t.Errorf("want ErrCycleDetected, got %v", err)
	}
}

// TestReconstruct_Bounds rejects invalid endpoints and corrupt entries.
func TestReconstruct_Bounds(t *testing.T) {
	parent := []int{core.NoParent, 0}
	if _, err := paths.Reconstruct(parent, -1, 1); !errors.Is(err, paths.ErrIndexOutOfRange) {
		t.Errorf("start=-1: want ErrIndexOutOfRange, got %v", err)
	}
	if _, err := paths.Reconstruct(parent, 0, 2); !errors.Is(err, paths.ErrIndexOutOfRange) {
		t.Errorf("end=2: want ErrIndexOutOfRange, got %v", err)
	}
	// Corrupt parent entry outside the array.
	bad := []int{core.NoParent, 7}
	if _, err := paths.Reconstruct(bad, 0, 1); !errors.Is(err, paths.ErrIndexOutOfRange) {
		t.Errorf("parent[1]=7: want ErrIndexOutOfRange, got %v", err)
	}
}
