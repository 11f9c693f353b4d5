// Package extract holds the pattern-based entity extraction stub and the
// graph builder that merges per-chunk extraction artifacts into a graph.
//
// The extractor is a placeholder for an external, model-driven collaborator:
// it exists so the toolkit can produce EntityRecord artifacts end to end, not
// as load-bearing query logic. Anything honoring the EntityRecord format can
// replace it.
package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/dd0wney/cluso-graphrag/pkg/chunks"
)

// Chunk is one unit of source text as produced by the upstream chunker.
type Chunk struct {
	ChunkID string `json:"chunk_id"`
	Content string `json:"content"`
}

// maxStubRelationships bounds the chained relationships the stub emits.
const maxStubRelationships = 5

var controlPattern = regexp.MustCompile(`\b(ISM-\d+)\b`)

// conceptPatterns maps recognizers to fixed entities. Ordered so extraction
// output is deterministic.
var conceptPatterns = []struct {
	re   *regexp.Regexp
	id   string
	kind string
}{
	{regexp.MustCompile(`(?i)\bCISO\b`), "CISO", "ROLE"},
	{regexp.MustCompile(`(?i)\bMFA\b`), "MFA", "CONCEPT"},
	{regexp.MustCompile(`(?i)\bauthentication\b`), "authentication", "CONCEPT"},
	{regexp.MustCompile(`(?i)\bencryption\b`), "encryption", "CONCEPT"},
}

// LoadChunks reads a chunks file: a JSON array of {chunk_id, content}.
func LoadChunks(path string) ([]Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chunks file: %w", err)
	}
	var out []Chunk
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse chunks file %s: %w", path, err)
	}
	return out, nil
}

// FindChunk returns the chunk with the given id.
func FindChunk(all []Chunk, chunkID string) (*Chunk, error) {
	for i := range all {
		if all[i].ChunkID == chunkID {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("chunk %s not found", chunkID)
}

// Extract runs the pattern-based stub over one chunk's content: control IDs
// (ISM-NNNN) plus a fixed set of role/concept recognizers, chained with
// RELATES_TO relationships. Control IDs are deduplicated in first-occurrence
// order.
func Extract(content, chunkID string) *chunks.EntityRecord {
	record := &chunks.EntityRecord{
		ChunkID:       chunkID,
		Entities:      make([]chunks.Entity, 0),
		Relationships: make([]chunks.Relationship, 0),
	}

	seen := make(map[string]bool)
	for _, control := range controlPattern.FindAllString(content, -1) {
		if seen[control] {
			continue
		}
		seen[control] = true
		record.Entities = append(record.Entities, chunks.Entity{
			ID:   control,
			Type: "CONTROL",
			Text: "Control " + control,
		})
	}

	for _, p := range conceptPatterns {
		if p.re.MatchString(content) {
			record.Entities = append(record.Entities, chunks.Entity{
				ID:   p.id,
				Type: p.kind,
				Text: p.id,
			})
		}
	}

	// Chain adjacent entities; real relationship discovery belongs to the
	// external extractor.
	n := len(record.Entities) - 1
	if n > maxStubRelationships {
		n = maxStubRelationships
	}
	for i := 0; i < n; i++ {
		record.Relationships = append(record.Relationships, chunks.Relationship{
			From: record.Entities[i].ID,
			To:   record.Entities[i+1].ID,
			Type: "RELATES_TO",
		})
	}

	return record
}

// WriteRecord persists an extraction artifact as indented JSON.
func WriteRecord(record *chunks.EntityRecord, path string) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record %s: %w", path, err)
	}
	return nil
}
