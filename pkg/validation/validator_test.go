package validation

import (
	"strings"
	"testing"

	"github.com/dd0wney/cluso-graphrag/pkg/graph"
)

func validRequest() *QueryRequest {
	return &QueryRequest{
		Query:      "ciso mfa",
		Hops:       2,
		GraphPath:  "data/graph.json",
		ChunkDir:   "data/chunks",
		OutputPath: "output/result.json",
	}
}

func TestValidateQueryRequest_Valid(t *testing.T) {
	if err := ValidateQueryRequest(validRequest()); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}
}

func TestValidateQueryRequest_ZeroHopsAllowed(t *testing.T) {
	req := validRequest()
	req.Hops = 0
	if err := ValidateQueryRequest(req); err != nil {
		t.Errorf("Hops of 0 must be valid, got %v", err)
	}
}

func TestValidateQueryRequest_Rejections(t *testing.T) {
	cases := map[string]struct {
		mutate func(*QueryRequest)
		want   string
	}{
		"empty query":      {func(r *QueryRequest) { r.Query = "" }, "Query"},
		"whitespace query": {func(r *QueryRequest) { r.Query = "   " }, "Query"},
		"oversized query":  {func(r *QueryRequest) { r.Query = strings.Repeat("x", 2000) }, "Query"},
		"negative hops":    {func(r *QueryRequest) { r.Hops = -1 }, "Hops"},
		"excessive hops":   {func(r *QueryRequest) { r.Hops = 17 }, "Hops"},
		"no graph path":    {func(r *QueryRequest) { r.GraphPath = "" }, "GraphPath"},
		"no chunk dir":     {func(r *QueryRequest) { r.ChunkDir = "" }, "ChunkDir"},
		"no output path":   {func(r *QueryRequest) { r.OutputPath = "" }, "OutputPath"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			err := ValidateQueryRequest(req)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected error mentioning %s, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateQueryRequest_Nil(t *testing.T) {
	if err := ValidateQueryRequest(nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestValidateGraph(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "A", Text: "a", Type: "T"}},
		Edges: []graph.Edge{{From: "A", To: "B", Type: "RELATES_TO"}},
	}
	if err := ValidateGraph(g); err != nil {
		t.Errorf("Expected valid graph, got %v", err)
	}
}

func TestValidateGraph_EmptyNodeID(t *testing.T) {
	g := &graph.Graph{Nodes: []graph.Node{{ID: "", Text: "a", Type: "T"}}}
	if err := ValidateGraph(g); err == nil {
		t.Error("Expected error for empty node id")
	}
}

func TestValidateGraph_EmptyEdgeEndpoint(t *testing.T) {
	g := &graph.Graph{Edges: []graph.Edge{{From: "A", To: "", Type: "T"}}}
	if err := ValidateGraph(g); err == nil {
		t.Error("Expected error for empty edge endpoint")
	}
}

// Dangling endpoints and duplicate ids are tolerated by design.
func TestValidateGraph_DanglingAndDuplicatesTolerated(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{
			{ID: "A", Text: "first", Type: "T"},
			{ID: "A", Text: "second", Type: "T"},
		},
		Edges: []graph.Edge{{From: "A", To: "ghost", Type: "T"}},
	}
	if err := ValidateGraph(g); err != nil {
		t.Errorf("Expected tolerant validation, got %v", err)
	}
}
