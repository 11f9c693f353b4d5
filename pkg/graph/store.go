package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
)

// snappyExt marks artifacts stored with snappy block compression around the
// same JSON payload. Compression is a framing option only; the schema is
// identical to a plain .json artifact.
const snappyExt = ".snappy"

// Load reads a graph artifact from path. The artifact must be a JSON object
// with top-level "nodes" and "edges" arrays. No caching: every call re-reads
// the file.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Op: "Load", Source: path, Cause: ErrGraphNotFound}
		}
		return nil, &LoadError{Op: "Load", Source: path, Cause: err}
	}

	if strings.HasSuffix(path, snappyExt) {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, &LoadError{Op: "Load", Source: path, Cause: fmt.Errorf("snappy decode: %w", err)}
		}
	}

	// Decode through pointers so absent top-level fields are detectable:
	// a schema-valid artifact may have empty arrays, but never missing ones.
	var raw struct {
		Nodes *[]Node `json:"nodes"`
		Edges *[]Edge `json:"edges"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Op: "Load", Source: path, Cause: fmt.Errorf("%w: %v", ErrGraphDecode, err)}
	}
	if raw.Nodes == nil || raw.Edges == nil {
		return nil, &LoadError{Op: "Load", Source: path, Cause: ErrGraphSchema}
	}

	return &Graph{Nodes: *raw.Nodes, Edges: *raw.Edges}, nil
}

// Save writes a graph artifact to path, creating intermediate directories.
// A path ending in .snappy is written snappy-compressed.
func Save(g *Graph, path string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return &LoadError{Op: "Save", Source: path, Cause: err}
	}

	if strings.HasSuffix(path, snappyExt) {
		data = snappy.Encode(nil, data)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &LoadError{Op: "Save", Source: path, Cause: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &LoadError{Op: "Save", Source: path, Cause: err}
	}
	return nil
}
