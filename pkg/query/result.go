package query

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-graphrag/pkg/chunks"
	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

// Status is the terminal state of a query pipeline run. There are exactly
// two: a query either matched entities or it did not. Load and write failures
// are errors, not statuses.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusNoMatches Status = "no_matches"
)

// MaxChunks caps the chunk list embedded in a result. Truncation keeps the
// first entries in locator-return order; there is no relevance selection.
const MaxChunks = 20

// noMatchMessage and suggestions are the fixed payload of a no_matches result.
var (
	noMatchMessage = "No entities found matching the query"
	suggestions    = []string{"Try broader terms", "Check spelling", "Use key concepts"}
)

// SubgraphSummary carries the induced subgraph with its dimensions duplicated
// for quick inspection.
type SubgraphSummary struct {
	Nodes int          `json:"nodes"`
	Edges int          `json:"edges"`
	Data  *graph.Graph `json:"data"`
}

// Stats duplicates the key counts of a successful run for convenience.
type Stats struct {
	DirectMatches int `json:"direct_matches"`
	TotalRelated  int `json:"total_related"`
	ChunksFound   int `json:"chunks_found"`
	SearchDepth   int `json:"search_depth"`
}

// Result is the single output artifact of one query pipeline run.
type Result struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Status      Status    `json:"status"`
	GeneratedAt time.Time `json:"generated_at"`

	// no_matches fields
	Message     string   `json:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`

	// success fields
	MatchingEntities     []graph.Node           `json:"matching_entities,omitempty"`
	TotalRelatedEntities int                    `json:"total_related_entities,omitempty"`
	RelevantChunks       int                    `json:"relevant_chunks,omitempty"`
	Chunks               []chunks.LocatedRecord `json:"chunks,omitempty"`
	Subgraph             *SubgraphSummary       `json:"subgraph,omitempty"`
	Statistics           *Stats                 `json:"statistics,omitempty"`
}

// NoMatches builds the fixed result for a query that matched no entities.
func NoMatches(queryText string) *Result {
	return &Result{
		ID:          uuid.NewString(),
		Query:       queryText,
		Status:      StatusNoMatches,
		GeneratedAt: time.Now().UTC(),
		Message:     noMatchMessage,
		Suggestions: suggestions,
	}
}

// Assemble combines pipeline outputs into a success result. The chunk list is
// truncated to MaxChunks; RelevantChunks keeps the pre-truncation count.
func Assemble(queryText string, matches []graph.Node, relatedIDs map[string]bool, located []chunks.LocatedRecord, sub *graph.Graph, hops int) *Result {
	capped := located
	if len(capped) > MaxChunks {
		capped = capped[:MaxChunks]
	}

	return &Result{
		ID:                   uuid.NewString(),
		Query:                queryText,
		Status:               StatusSuccess,
		GeneratedAt:          time.Now().UTC(),
		MatchingEntities:     matches,
		TotalRelatedEntities: len(relatedIDs),
		RelevantChunks:       len(located),
		Chunks:               capped,
		Subgraph: &SubgraphSummary{
			Nodes: len(sub.Nodes),
			Edges: len(sub.Edges),
			Data:  sub,
		},
		Statistics: &Stats{
			DirectMatches: len(matches),
			TotalRelated:  len(relatedIDs),
			ChunksFound:   len(located),
			SearchDepth:   hops,
		},
	}
}
