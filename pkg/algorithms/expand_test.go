package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

// A–B–C chain plus an isolated D
func chainGraph() *graph.Graph {
	return &graph.Graph{
		Nodes: []graph.Node{
			{ID: "A", Text: "a", Type: "T"},
			{ID: "B", Text: "b", Type: "T"},
			{ID: "C", Text: "c", Type: "T"},
			{ID: "D", Text: "d", Type: "T"},
		},
		Edges: []graph.Edge{
			{From: "A", To: "B", Type: "RELATES_TO"},
			{From: "B", To: "C", Type: "RELATES_TO"},
		},
	}
}

func set(ids ...string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}

func assertSetEqual(t *testing.T, got, want map[string]bool) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected set of %d, got %d: %v", len(want), len(got), got)
	}
	for id := range want {
		if !got[id] {
			t.Errorf("Missing %s from %v", id, got)
		}
	}
}

func TestExpand_ZeroHopsIsIdentity(t *testing.T) {
	got := Expand(chainGraph(), set("A"), 0)
	assertSetEqual(t, got, set("A"))
}

func TestExpand_ZeroHopsCopiesSeeds(t *testing.T) {
	seeds := set("A")
	got := Expand(chainGraph(), seeds, 0)
	got["X"] = true
	if seeds["X"] {
		t.Error("Expand must not alias the seed set")
	}
}

func TestExpand_OneHop(t *testing.T) {
	got := Expand(chainGraph(), set("A"), 1)
	assertSetEqual(t, got, set("A", "B"))
}

func TestExpand_TwoHopsOnChain(t *testing.T) {
	got := Expand(chainGraph(), set("A"), 2)
	assertSetEqual(t, got, set("A", "B", "C"))
}

func TestExpand_Undirected(t *testing.T) {
	// C only has an incoming edge; traversal must still reach B from it
	got := Expand(chainGraph(), set("C"), 1)
	assertSetEqual(t, got, set("C", "B"))
}

func TestExpand_LevelSynchronous(t *testing.T) {
	// One hop from A must not reach C: B only becomes an origin next round
	got := Expand(chainGraph(), set("A"), 1)
	if got["C"] {
		t.Error("Single-pass flood fill detected: C reached in one hop")
	}
}

func TestExpand_ExcessHopsHarmless(t *testing.T) {
	got := Expand(chainGraph(), set("A"), 10)
	assertSetEqual(t, got, set("A", "B", "C"))
}

func TestExpand_DanglingIDsCarried(t *testing.T) {
	g := &graph.Graph{
		Edges: []graph.Edge{{From: "A", To: "ghost", Type: "RELATES_TO"}},
	}
	got := Expand(g, set("A"), 1)
	if !got["ghost"] {
		t.Error("Expected dangling endpoint to be carried as a token")
	}
}

func TestExpand_SeedNotInGraph(t *testing.T) {
	got := Expand(chainGraph(), set("nowhere"), 3)
	assertSetEqual(t, got, set("nowhere"))
}

func TestSeedSet(t *testing.T) {
	seeds := SeedSet([]graph.Node{{ID: "A"}, {ID: "B"}, {ID: "A"}})
	assertSetEqual(t, seeds, set("A", "B"))
}
