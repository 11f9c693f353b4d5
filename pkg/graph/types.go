package graph

// Node is a single entity in the knowledge graph. Identity is the ID field;
// uniqueness is assumed from the producer, not enforced here. When duplicate
// IDs occur, lookup maps keep the last-seen node.
type Node struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// Edge is a relationship between two entities. Stored directionally but
// traversed as undirected.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// Graph is an immutable entity/relationship graph loaded from a serialized
// artifact. Callers must not mutate it during a query.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeByID builds a lookup map from node ID to node. Later entries win on
// duplicate IDs.
func (g *Graph) NodeByID() map[string]Node {
	byID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	return byID
}
