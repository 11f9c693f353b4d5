package algorithms

import "github.com/dd0wney/cluso-graphrag/pkg/graph"

// Expand computes the multi-hop closure of seedIDs over the graph's edges,
// treating every edge as undirected. Each of the hops rounds performs one full
// edge scan against the current frontier set; endpoints discovered in round k
// only become traversal origins in round k+1. The loop always runs exactly
// hops rounds, even after the set stabilizes, so the cost bound depends only
// on hops and edge count. hops = 0 returns a copy of the seed set.
//
// IDs are carried as opaque tokens: an endpoint in the result need not
// correspond to any node in the graph.
func Expand(g *graph.Graph, seedIDs map[string]bool, hops int) map[string]bool {
	related := make(map[string]bool, len(seedIDs))
	for id := range seedIDs {
		related[id] = true
	}

	for i := 0; i < hops; i++ {
		pending := make(map[string]bool)
		for _, e := range g.Edges {
			if related[e.From] {
				pending[e.To] = true
			}
			if related[e.To] {
				pending[e.From] = true
			}
		}
		for id := range pending {
			related[id] = true
		}
	}

	return related
}

// SeedSet builds an expansion seed set from matched nodes.
func SeedSet(nodes []graph.Node) map[string]bool {
	seeds := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		seeds[n.ID] = true
	}
	return seeds
}
