package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the toolkit
type Registry struct {
	// Query Metrics
	QueriesTotal      *prometheus.CounterVec
	QueryDuration     prometheus.Histogram
	QueryMatches      prometheus.Histogram
	QueryRelatedSize  prometheus.Histogram
	QuerySubgraphSize prometheus.Histogram

	// Chunk Scan Metrics
	ChunkFilesScanned prometheus.Counter
	ChunkFilesMatched prometheus.Counter
	ChunkFilesSkipped prometheus.Counter

	// Graph Metrics
	GraphNodesTotal prometheus.Gauge
	GraphEdgesTotal prometheus.Gauge

	registry *prometheus.Registry
}
