package chunks

// Entity is a single extracted entity reference inside a chunk record.
type Entity struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// Relationship is an extracted relationship inside a chunk record.
type Relationship struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// EntityRecord is the per-chunk extraction artifact produced by the upstream
// entity extractor. One record exists per source text chunk.
type EntityRecord struct {
	ChunkID       string         `json:"chunk_id"`
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

// LocatedRecord is an EntityRecord annotated with the artifact it was read
// from.
type LocatedRecord struct {
	EntityRecord
	File string `json:"file"`
}

// EntityIDs returns the set of entity IDs referenced by the record.
func (r *EntityRecord) EntityIDs() map[string]bool {
	ids := make(map[string]bool, len(r.Entities))
	for _, e := range r.Entities {
		ids[e.ID] = true
	}
	return ids
}
