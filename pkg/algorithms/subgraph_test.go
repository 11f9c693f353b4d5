package algorithms

import (
	"testing"
)

func TestInduce_FiltersNodesAndEdges(t *testing.T) {
	sub := Induce(chainGraph(), set("A", "B"))

	if len(sub.Nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(sub.Nodes))
	}
	if len(sub.Edges) != 1 {
		t.Fatalf("Expected 1 edge, got %d", len(sub.Edges))
	}
	if sub.Edges[0].From != "A" || sub.Edges[0].To != "B" {
		t.Errorf("Unexpected edge %+v", sub.Edges[0])
	}
}

func TestInduce_BothEndpointsRequired(t *testing.T) {
	// B–C edge has only one endpoint in the set
	sub := Induce(chainGraph(), set("B"))
	if len(sub.Edges) != 0 {
		t.Errorf("Expected no edges, got %d", len(sub.Edges))
	}
	if len(sub.Nodes) != 1 || sub.Nodes[0].ID != "B" {
		t.Errorf("Expected only node B, got %+v", sub.Nodes)
	}
}

func TestInduce_UnknownIDsIgnored(t *testing.T) {
	sub := Induce(chainGraph(), set("A", "ghost"))
	if len(sub.Nodes) != 1 || sub.Nodes[0].ID != "A" {
		t.Errorf("Expected only node A, got %+v", sub.Nodes)
	}
}

func TestInduce_EmptySet(t *testing.T) {
	sub := Induce(chainGraph(), set())
	if len(sub.Nodes) != 0 || len(sub.Edges) != 0 {
		t.Errorf("Expected empty subgraph, got %d nodes, %d edges", len(sub.Nodes), len(sub.Edges))
	}
	if sub.Nodes == nil || sub.Edges == nil {
		t.Error("Expected empty slices, not nil, so the artifact serializes as [] rather than null")
	}
}

func TestInduce_DoesNotMutateInput(t *testing.T) {
	g := chainGraph()
	before := len(g.Nodes)
	Induce(g, set("A", "B", "C", "D"))
	if len(g.Nodes) != before {
		t.Error("Induce mutated the input graph")
	}
}
