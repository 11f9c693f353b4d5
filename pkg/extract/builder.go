package extract

import (
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/dd0wney/cluso-graphrag/pkg/chunks"
	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

// BuildGraph merges every chunk artifact under dir matching pattern into a
// single graph. Nodes are deduplicated by id (first occurrence keeps its
// position and content) and edges by (from, to, type). Malformed artifacts
// are skipped with a warning, mirroring the locator's lenient policy.
func BuildGraph(dir, pattern string, logger *slog.Logger) (*graph.Graph, error) {
	if pattern == "" {
		pattern = chunks.DefaultPattern
	}
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	g := &graph.Graph{
		Nodes: make([]graph.Node, 0),
		Edges: make([]graph.Edge, 0),
	}
	seenNode := make(map[string]bool)
	seenEdge := make(map[graph.Edge]bool)

	for _, path := range paths {
		record, err := chunks.ReadRecord(path)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping malformed chunk artifact", "file", path, "error", err)
			}
			continue
		}

		for _, e := range record.Entities {
			if seenNode[e.ID] {
				continue
			}
			seenNode[e.ID] = true
			g.Nodes = append(g.Nodes, graph.Node{ID: e.ID, Text: e.Text, Type: e.Type})
		}
		for _, r := range record.Relationships {
			edge := graph.Edge{From: r.From, To: r.To, Type: r.Type}
			if seenEdge[edge] {
				continue
			}
			seenEdge[edge] = true
			g.Edges = append(g.Edges, edge)
		}
	}

	return g, nil
}
