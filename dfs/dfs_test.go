package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/trajeto/trajeto/core"
	"github.com/trajeto/trajeto/dfs"
)

// TestDFS_Errors verifies invalid inputs are rejected.
func TestDFS_Errors(t *testing.T) {
	if _, err := dfs.DFS(nil, 0, 0); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g, _ := core.NewGraph(2)
	if _, err := dfs.DFS(g, 3, 0); !errors.Is(err, dfs.ErrNodeOutOfRange) {
		t.Errorf("bad start: want ErrNodeOutOfRange, got %v", err)
	}
	if _, err := dfs.DFS(g, 0, 3); !errors.Is(err, dfs.ErrNodeOutOfRange) {
		t.Errorf("bad goal: want ErrNodeOutOfRange, got %v", err)
	}
}

// TestDFS_TrivialGoal covers start == goal.
func TestDFS_TrivialGoal(t *testing.T) {
	g, _ := core.NewGraph(1)
	res, err := dfs.DFS(g, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	path, _ := res.Path()
	if want := []int{0}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestDFS_FindsAPath: DFS may return the longer branch — any valid
// path counts, shortness is not promised.
func TestDFS_FindsAPath(t *testing.T) {
	// 0—1—4 and 0—2—3—4: two routes to the same goal.
	g, _ := core.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {1, 4}, {0, 2}, {2, 3}, {3, 4}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatal(err)
		}
	}
	res, err := dfs.DFS(g, 0, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	path, err := res.Path()
	if err != nil {
		t.Fatal(err)
	}
	// Validate the path edge by edge instead of pinning one route.
	if path[0] != 0 || path[len(path)-1] != 4 {
		t.Fatalf("path endpoints = %v; want 0 … 4", path)
	}
	for i := 0; i+1 < len(path); i++ {
		nbrs, _ := g.Neighbors(path[i])
		ok := false
		for _, e := range nbrs {
			if e.To == path[i+1] {
				ok = true
				break
			}
		}
		if !ok {
			t.Fatalf("path step %d→%d is not an edge", path[i], path[i+1])
		}
	}
}

// TestDFS_FirstSuccessStops: once the goal is found, untouched branches
// stay unvisited.
func TestDFS_FirstSuccessStops(t *testing.T) {
	// Directed: 0→2 (inserted last, explored first) reaches goal 2;
	// branch 0→1→3 must remain unexplored.
	g, _ := core.NewGraph(4, core.WithDirected())
	for _, e := range [][2]int{{0, 1}, {1, 3}, {0, 2}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatal(err)
		}
	}
	res, err := dfs.DFS(g, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	if res.Visited[1] || res.Visited[3] {
		t.Errorf("sibling branch explored after success: visited=%v", res.Visited)
	}
}

// TestDFS_NotFound: disconnected goal yields Found=false, no error.
func TestDFS_NotFound(t *testing.T) {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 0) // node 2 isolated
	res, err := dfs.DFS(g, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Error("Found = true; want false")
	}
	if res.Parent[2] != core.NoParent {
		t.Errorf("Parent[2] = %d; want NoParent", res.Parent[2])
	}
}

// TestDFS_DeepChain: an explicit stack survives depths that would
// overflow recursion.
func TestDFS_DeepChain(t *testing.T) {
	const n = 200_000
	g, _ := core.NewGraph(n, core.WithDirected())
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1, 0); err != nil {
			t.Fatal(err)
		}
	}
	res, err := dfs.DFS(g, 0, n-1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found {
		t.Fatal("deep chain not reached")
	}
	path, err := res.Path()
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != n {
		t.Errorf("path length = %d; want %d", len(path), n)
	}
}

// TestDFS_Cancellation aborts mid-walk.
func TestDFS_Cancellation(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithDirected())
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dfs.DFS(g, 0, 2, dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestDFS_OnVisitAbort propagates hook errors.
func TestDFS_OnVisitAbort(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithDirected())
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)
	boom := errors.New("boom")
	hook := func(id int) error {
		if id == 1 {
			return boom
		}
		return nil
	}
	if _, err := dfs.DFS(g, 0, 2, dfs.WithOnVisit(hook)); !errors.Is(err, boom) {
		t.Errorf("want hook error, got %v", err)
	}
}
