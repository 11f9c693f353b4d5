package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// NewRegistry creates a registry with all toolkit metrics registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphrag_queries_total",
			Help: "Total number of queries executed",
		},
		[]string{"status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphrag_query_duration_seconds",
			Help:    "Query pipeline duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
	)

	r.QueryMatches = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphrag_query_direct_matches",
			Help:    "Number of entities directly matched per query",
			Buckets: []float64{1, 5, 10, 50, 100, 1000},
		},
	)

	r.QueryRelatedSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphrag_query_related_entities",
			Help:    "Size of the expanded entity set per query",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		},
	)

	r.QuerySubgraphSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphrag_query_subgraph_nodes",
			Help:    "Number of nodes in the induced subgraph per query",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		},
	)

	r.ChunkFilesScanned = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphrag_chunk_files_scanned_total",
			Help: "Total chunk artifacts enumerated during lookups",
		},
	)

	r.ChunkFilesMatched = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphrag_chunk_files_matched_total",
			Help: "Total chunk artifacts whose entity set intersected a query",
		},
	)

	r.ChunkFilesSkipped = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphrag_chunk_files_skipped_total",
			Help: "Total malformed chunk artifacts skipped",
		},
	)

	r.GraphNodesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphrag_graph_nodes",
			Help: "Node count of the loaded graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphrag_graph_edges",
			Help: "Edge count of the loaded graph",
		},
	)

	return r
}

// RecordQuery records one pipeline run.
func (r *Registry) RecordQuery(status string, duration time.Duration, matches, related, subgraphNodes int) {
	r.QueriesTotal.WithLabelValues(status).Inc()
	r.QueryDuration.Observe(duration.Seconds())
	r.QueryMatches.Observe(float64(matches))
	r.QueryRelatedSize.Observe(float64(related))
	r.QuerySubgraphSize.Observe(float64(subgraphNodes))
}

// RecordChunkScan records the outcome of one chunk-directory scan.
func (r *Registry) RecordChunkScan(scanned, matched, skipped int) {
	r.ChunkFilesScanned.Add(float64(scanned))
	r.ChunkFilesMatched.Add(float64(matched))
	r.ChunkFilesSkipped.Add(float64(skipped))
}

// SetGraphSize records the dimensions of the loaded graph.
func (r *Registry) SetGraphSize(nodes, edges int) {
	r.GraphNodesTotal.Set(float64(nodes))
	r.GraphEdgesTotal.Set(float64(edges))
}

// WriteTo dumps all metrics in Prometheus text exposition format. Batch runs
// have no scrape endpoint, so the dump is written to a file at exit instead.
func (r *Registry) WriteTo(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
