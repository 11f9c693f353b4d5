package graph

import (
	"sort"
	"strings"
)

// Statistics summarizes the shape of a graph.
type Statistics struct {
	TotalNodes        int            `json:"total_nodes"`
	TotalEdges        int            `json:"total_edges"`
	EntityTypes       map[string]int `json:"entity_types"`
	RelationshipTypes map[string]int `json:"relationship_types"`
}

// ConnectedEntity is an entity ranked by undirected degree.
type ConnectedEntity struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Type        string `json:"type"`
	Connections int    `json:"connections"`
}

// GetStatistics tallies node and edge counts by type.
func GetStatistics(g *Graph) Statistics {
	stats := Statistics{
		TotalNodes:        len(g.Nodes),
		TotalEdges:        len(g.Edges),
		EntityTypes:       make(map[string]int),
		RelationshipTypes: make(map[string]int),
	}
	for _, n := range g.Nodes {
		stats.EntityTypes[n.Type]++
	}
	for _, e := range g.Edges {
		stats.RelationshipTypes[e.Type]++
	}
	return stats
}

// MostConnected returns up to topN entities ranked by undirected degree,
// highest first. Edge endpoints that have no backing node are counted but
// excluded from the result, since there is nothing to display for them.
func MostConnected(g *Graph, topN int) []ConnectedEntity {
	degree := make(map[string]int)
	for _, e := range g.Edges {
		degree[e.From]++
		degree[e.To]++
	}

	byID := g.NodeByID()

	ranked := make([]ConnectedEntity, 0, len(degree))
	for id, count := range degree {
		node, ok := byID[id]
		if !ok {
			continue
		}
		ranked = append(ranked, ConnectedEntity{
			ID:          id,
			Text:        node.Text,
			Type:        node.Type,
			Connections: count,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Connections != ranked[j].Connections {
			return ranked[i].Connections > ranked[j].Connections
		}
		return ranked[i].ID < ranked[j].ID
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// ListByType returns up to limit nodes whose type matches entityType,
// case-insensitively, in storage order. limit <= 0 means no cap.
func ListByType(g *Graph, entityType string, limit int) []Node {
	var out []Node
	for _, n := range g.Nodes {
		if !strings.EqualFold(n.Type, entityType) {
			continue
		}
		out = append(out, n)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
