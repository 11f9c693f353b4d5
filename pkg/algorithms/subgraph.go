package algorithms

import "github.com/dd0wney/cluso-graphrag/pkg/graph"

// Induce extracts the subgraph of g induced by entityIDs: nodes whose ID is
// in the set, and edges with both endpoints in the set. Pure function, single
// pass over nodes and edges. The slices in the result are fresh but share no
// ordering guarantees beyond the original storage order.
func Induce(g *graph.Graph, entityIDs map[string]bool) *graph.Graph {
	sub := &graph.Graph{
		Nodes: make([]graph.Node, 0),
		Edges: make([]graph.Edge, 0),
	}

	for _, n := range g.Nodes {
		if entityIDs[n.ID] {
			sub.Nodes = append(sub.Nodes, n)
		}
	}
	for _, e := range g.Edges {
		if entityIDs[e.From] && entityIDs[e.To] {
			sub.Edges = append(sub.Edges, e)
		}
	}

	return sub
}
