package search

import (
	"strings"

	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

// Tokenize splits a free-text query into lower-cased whitespace-delimited
// terms.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Match returns every node whose id or display text contains any of the query
// terms as a case-insensitive substring. Results follow storage order and
// carry no relevance score. An empty term list matches nothing.
func Match(g *graph.Graph, queryTerms []string) []graph.Node {
	terms := make([]string, 0, len(queryTerms))
	for _, t := range queryTerms {
		terms = append(terms, strings.ToLower(t))
	}

	var matches []graph.Node
	for _, node := range g.Nodes {
		haystack := strings.ToLower(node.ID + " " + node.Text)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				matches = append(matches, node)
				break
			}
		}
	}
	return matches
}
