package query

import (
	"log/slog"
	"time"

	"github.com/dd0wney/cluso-graphrag/pkg/algorithms"
	"github.com/dd0wney/cluso-graphrag/pkg/chunks"
	"github.com/dd0wney/cluso-graphrag/pkg/graph"
	"github.com/dd0wney/cluso-graphrag/pkg/metrics"
	"github.com/dd0wney/cluso-graphrag/pkg/search"
)

// Engine runs the query pipeline over one loaded graph and one chunk
// directory. The graph is read-only for the engine's lifetime; each Run is
// independent and the engine keeps no cross-run state.
type Engine struct {
	Graph   *graph.Graph
	Locator *chunks.Locator
	Logger  *slog.Logger
	Metrics *metrics.Registry
}

// NewEngine wires a pipeline over g and locator. logger and reg may be nil.
func NewEngine(g *graph.Graph, locator *chunks.Locator, logger *slog.Logger, reg *metrics.Registry) *Engine {
	if reg != nil && locator != nil {
		locator.Recorder = reg
	}
	if reg != nil {
		reg.SetGraphSize(len(g.Nodes), len(g.Edges))
	}
	return &Engine{Graph: g, Locator: locator, Logger: logger, Metrics: reg}
}

// Run executes the pipeline: match entities, expand the seed set by hops
// rounds, locate chunks referencing the expanded set, and induce the
// subgraph. A query matching nothing short-circuits to a no_matches result
// without touching the chunk directory.
func (e *Engine) Run(queryText string, hops int) (*Result, error) {
	start := time.Now()

	terms := search.Tokenize(queryText)
	matches := search.Match(e.Graph, terms)

	if len(matches) == 0 {
		if e.Logger != nil {
			e.Logger.Info("query matched no entities", "query", queryText)
		}
		if e.Metrics != nil {
			e.Metrics.RecordQuery(string(StatusNoMatches), time.Since(start), 0, 0, 0)
		}
		return NoMatches(queryText), nil
	}

	relatedIDs := algorithms.Expand(e.Graph, algorithms.SeedSet(matches), hops)

	located, err := e.Locator.FindChunks(relatedIDs)
	if err != nil {
		return nil, err
	}

	sub := algorithms.Induce(e.Graph, relatedIDs)

	result := Assemble(queryText, matches, relatedIDs, located, sub, hops)

	if e.Logger != nil {
		e.Logger.Info("query complete",
			"query", queryText,
			"direct_matches", len(matches),
			"related_entities", len(relatedIDs),
			"chunks_found", len(located),
			"hops", hops,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	if e.Metrics != nil {
		e.Metrics.RecordQuery(string(StatusSuccess), time.Since(start), len(matches), len(relatedIDs), len(sub.Nodes))
	}

	return result, nil
}
