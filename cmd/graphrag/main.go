package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dd0wney/cluso-graphrag/pkg/chunks"
	"github.com/dd0wney/cluso-graphrag/pkg/config"
	"github.com/dd0wney/cluso-graphrag/pkg/extract"
	"github.com/dd0wney/cluso-graphrag/pkg/graph"
	"github.com/dd0wney/cluso-graphrag/pkg/metrics"
	"github.com/dd0wney/cluso-graphrag/pkg/query"
	"github.com/dd0wney/cluso-graphrag/pkg/validation"
)

func usage() {
	fmt.Println("Usage: graphrag <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  query    Run a free-text query against the knowledge graph")
	fmt.Println("  stats    Summarize graph dimensions and type distribution")
	fmt.Println("  top      Rank the most connected entities")
	fmt.Println("  list     List entities of a given type")
	fmt.Println("  extract  Run the stub extractor over one chunk")
	fmt.Println("  build    Merge chunk artifacts into a graph artifact")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "query":
		runQuery(os.Args[2:])
	case "stats":
		runStats(os.Args[2:])
	case "top":
		runTop(os.Args[2:])
	case "list":
		runList(os.Args[2:])
	case "extract":
		runExtract(os.Args[2:])
	case "build":
		runBuild(os.Args[2:])
	default:
		fmt.Printf("unknown command: %s\n\n", os.Args[1])
		usage()
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

func runQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	queryText := fs.String("q", "", "Free-text query")
	configPath := fs.String("config", "graphrag.yaml", "Path to config file")
	graphPath := fs.String("graph", "", "Path to graph artifact (overrides config)")
	chunkDir := fs.String("chunks", "", "Chunk artifact directory (overrides config)")
	out := fs.String("out", "", "Result output path (default <output_dir>/query_result.json)")
	hops := fs.Int("hops", -1, "Hop budget for graph expansion (overrides config)")
	metricsOut := fs.String("metrics", "", "Write Prometheus text metrics to this file")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		newLogger("info").Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	if *graphPath == "" {
		*graphPath = cfg.GraphPath
	}
	if *chunkDir == "" {
		*chunkDir = cfg.ChunkDir
	}
	if *hops < 0 {
		*hops = cfg.DefaultHops
	}
	if *out == "" {
		*out = filepath.Join(cfg.OutputDir, "query_result.json")
	}

	req := &validation.QueryRequest{
		Query:      *queryText,
		Hops:       *hops,
		GraphPath:  *graphPath,
		ChunkDir:   *chunkDir,
		OutputPath: *out,
	}
	if err := validation.ValidateQueryRequest(req); err != nil {
		fatal(logger, "invalid query request", err)
	}

	g, err := graph.Load(*graphPath)
	if err != nil {
		fatal(logger, "failed to load graph", err)
	}
	if err := validation.ValidateGraph(g); err != nil {
		fatal(logger, "graph failed schema validation", err)
	}

	locator := chunks.NewLocator(*chunkDir, logger)
	locator.Pattern = cfg.ChunkPattern

	reg := metrics.NewRegistry()
	engine := query.NewEngine(g, locator, logger, reg)

	result, err := engine.Run(*queryText, *hops)
	if err != nil {
		fatal(logger, "query pipeline failed", err)
	}

	if err := query.WriteResult(result, *out); err != nil {
		fatal(logger, "failed to write result", err)
	}
	logger.Info("result written",
		"status", string(result.Status),
		"output_file", *out,
	)

	if *metricsOut != "" {
		f, err := os.Create(*metricsOut)
		if err != nil {
			fatal(logger, "failed to create metrics file", err)
		}
		defer f.Close()
		if err := reg.WriteTo(f); err != nil {
			fatal(logger, "failed to write metrics", err)
		}
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	graphPath := fs.String("graph", "data/graph.json", "Path to graph artifact")
	out := fs.String("out", "", "Output path (stdout when empty)")
	fs.Parse(args)

	logger := newLogger("info")
	g, err := graph.Load(*graphPath)
	if err != nil {
		fatal(logger, "failed to load graph", err)
	}

	emitJSON(logger, graph.GetStatistics(g), *out)
}

func runTop(args []string) {
	fs := flag.NewFlagSet("top", flag.ExitOnError)
	graphPath := fs.String("graph", "data/graph.json", "Path to graph artifact")
	topN := fs.Int("n", 20, "Number of entities to return")
	out := fs.String("out", "", "Output path (stdout when empty)")
	fs.Parse(args)

	logger := newLogger("info")
	g, err := graph.Load(*graphPath)
	if err != nil {
		fatal(logger, "failed to load graph", err)
	}

	emitJSON(logger, map[string]any{
		"command":  "most_connected",
		"entities": graph.MostConnected(g, *topN),
	}, *out)
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	graphPath := fs.String("graph", "data/graph.json", "Path to graph artifact")
	entityType := fs.String("type", "", "Entity type to list (e.g. CONCEPT)")
	limit := fs.Int("limit", 50, "Maximum entities to return")
	out := fs.String("out", "", "Output path (stdout when empty)")
	fs.Parse(args)

	logger := newLogger("info")
	if *entityType == "" {
		fatal(logger, "missing required flag", fmt.Errorf("-type is required"))
	}

	g, err := graph.Load(*graphPath)
	if err != nil {
		fatal(logger, "failed to load graph", err)
	}

	entities := graph.ListByType(g, *entityType, *limit)
	if entities == nil {
		entities = []graph.Node{}
	}
	emitJSON(logger, map[string]any{
		"command":     "list_by_type",
		"entity_type": *entityType,
		"entities":    entities,
	}, *out)
}

func runExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	chunksFile := fs.String("chunks-file", "", "Path to chunks JSON file")
	chunkID := fs.String("chunk-id", "", "Chunk to extract from")
	out := fs.String("out", "", "Path for the extraction artifact")
	fs.Parse(args)

	logger := newLogger("info")
	if *chunksFile == "" || *chunkID == "" || *out == "" {
		fatal(logger, "missing required flags", fmt.Errorf("-chunks-file, -chunk-id, and -out are required"))
	}

	all, err := extract.LoadChunks(*chunksFile)
	if err != nil {
		fatal(logger, "failed to load chunks", err)
	}
	chunk, err := extract.FindChunk(all, *chunkID)
	if err != nil {
		fatal(logger, "chunk lookup failed", err)
	}

	record := extract.Extract(chunk.Content, chunk.ChunkID)
	if err := extract.WriteRecord(record, *out); err != nil {
		fatal(logger, "failed to write extraction artifact", err)
	}
	logger.Info("extraction complete",
		"chunk_id", *chunkID,
		"entities", len(record.Entities),
		"relationships", len(record.Relationships),
		"output_file", *out,
	)
}

func runBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	chunkDir := fs.String("chunks", "", "Chunk artifact directory")
	pattern := fs.String("pattern", chunks.DefaultPattern, "Chunk artifact glob pattern")
	out := fs.String("out", "data/graph.json", "Path for the graph artifact")
	fs.Parse(args)

	logger := newLogger("info")
	if *chunkDir == "" {
		fatal(logger, "missing required flag", fmt.Errorf("-chunks is required"))
	}

	g, err := extract.BuildGraph(*chunkDir, *pattern, logger)
	if err != nil {
		fatal(logger, "failed to build graph", err)
	}
	if err := graph.Save(g, *out); err != nil {
		fatal(logger, "failed to save graph", err)
	}
	logger.Info("graph built",
		"nodes", len(g.Nodes),
		"edges", len(g.Edges),
		"output_file", *out,
	)
}

func emitJSON(logger *slog.Logger, v any, out string) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(logger, "failed to marshal output", err)
	}
	if out == "" {
		fmt.Println(string(data))
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatal(logger, "failed to create output directory", err)
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fatal(logger, "failed to write output", err)
	}
	logger.Info("output written", "output_file", out)
}
