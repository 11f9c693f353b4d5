package algorithms

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

var relTypes = []string{"RELATES_TO", "REQUIRES", "PART_OF"}

func entityID(n int) string {
	return fmt.Sprintf("E%d", n)
}

// genGraph builds small random graphs over an 8-entity universe.
func genGraph() gopter.Gen {
	genEdge := gopter.CombineGens(
		gen.IntRange(0, 7),
		gen.IntRange(0, 7),
		gen.IntRange(0, len(relTypes)-1),
	).Map(func(vals []interface{}) graph.Edge {
		return graph.Edge{
			From: entityID(vals[0].(int)),
			To:   entityID(vals[1].(int)),
			Type: relTypes[vals[2].(int)],
		}
	})

	return gen.SliceOf(genEdge).Map(func(edges []graph.Edge) *graph.Graph {
		g := &graph.Graph{Edges: edges}
		for i := 0; i < 8; i++ {
			g.Nodes = append(g.Nodes, graph.Node{
				ID:   entityID(i),
				Text: fmt.Sprintf("entity %d", i),
				Type: "CONCEPT",
			})
		}
		return g
	})
}

func genSeedSet() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 7)).Map(func(ids []int) map[string]bool {
		seeds := make(map[string]bool, len(ids))
		for _, id := range ids {
			seeds[entityID(id)] = true
		}
		return seeds
	})
}

func isSubset(a, b map[string]bool) bool {
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

// TestExpansionInvariants verifies the expansion algebra: seeds are always
// retained, zero hops is the identity, and the result grows monotonically
// with the hop budget.
func TestExpansionInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("expansion retains the seed set", prop.ForAll(
		func(g *graph.Graph, seeds map[string]bool, hops int) bool {
			return isSubset(seeds, Expand(g, seeds, hops))
		},
		genGraph(),
		genSeedSet(),
		gen.IntRange(0, 4),
	))

	properties.Property("zero hops returns exactly the seed set", prop.ForAll(
		func(g *graph.Graph, seeds map[string]bool) bool {
			got := Expand(g, seeds, 0)
			return isSubset(seeds, got) && isSubset(got, seeds)
		},
		genGraph(),
		genSeedSet(),
	))

	properties.Property("expansion is monotone in hop budget", prop.ForAll(
		func(g *graph.Graph, seeds map[string]bool, hops int) bool {
			return isSubset(Expand(g, seeds, hops), Expand(g, seeds, hops+1))
		},
		genGraph(),
		genSeedSet(),
		gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}

// TestInductionInvariants verifies the induced-subgraph contract: nodes are
// exactly the graph's nodes with ids in the set, and edges appear iff both
// endpoints are in the set.
func TestInductionInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("induced nodes are exactly the member nodes", prop.ForAll(
		func(g *graph.Graph, ids map[string]bool) bool {
			sub := Induce(g, ids)

			want := 0
			for _, n := range g.Nodes {
				if ids[n.ID] {
					want++
				}
			}
			if len(sub.Nodes) != want {
				return false
			}
			for _, n := range sub.Nodes {
				if !ids[n.ID] {
					return false
				}
			}
			return true
		},
		genGraph(),
		genSeedSet(),
	))

	properties.Property("induced edges have both endpoints in the set", prop.ForAll(
		func(g *graph.Graph, ids map[string]bool) bool {
			sub := Induce(g, ids)

			for _, e := range sub.Edges {
				if !ids[e.From] || !ids[e.To] {
					return false
				}
			}

			// Conversely, every qualifying edge of g must survive
			want := 0
			for _, e := range g.Edges {
				if ids[e.From] && ids[e.To] {
					want++
				}
			}
			return len(sub.Edges) == want
		},
		genGraph(),
		genSeedSet(),
	))

	properties.TestingRun(t)
}
