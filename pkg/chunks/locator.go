package chunks

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/snappy"
)

// DefaultPattern is the artifact naming convention the upstream extractor
// honors: one JSON file per chunk.
const DefaultPattern = "entities_CHUNK-*.json"

// ScanRecorder receives counters describing one directory scan.
type ScanRecorder interface {
	RecordChunkScan(scanned, matched, skipped int)
}

// Locator scans a directory of per-chunk extraction artifacts. There is no
// precomputed reverse index; every call enumerates the directory.
type Locator struct {
	Dir      string
	Pattern  string       // glob over file names, DefaultPattern when empty
	Logger   *slog.Logger // nil disables skip warnings
	Recorder ScanRecorder // nil disables scan metrics
}

// NewLocator returns a Locator over dir using the default artifact pattern.
func NewLocator(dir string, logger *slog.Logger) *Locator {
	return &Locator{Dir: dir, Pattern: DefaultPattern, Logger: logger}
}

// FindChunks returns every chunk record whose entity-id set intersects
// entityIDs, annotated with its source file. Results follow lexical file-name
// order; callers needing a different order must sort. Malformed artifacts are
// skipped with a warning rather than aborting the scan (lenient policy): a
// single bad extraction output should not fail the whole query.
func (l *Locator) FindChunks(entityIDs map[string]bool) ([]LocatedRecord, error) {
	if _, err := os.Stat(l.Dir); err != nil {
		if os.IsNotExist(err) {
			return nil, &StorageError{Op: "FindChunks", Dir: l.Dir, Cause: ErrDirNotFound}
		}
		return nil, &StorageError{Op: "FindChunks", Dir: l.Dir, Cause: err}
	}

	pattern := l.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	paths, err := filepath.Glob(filepath.Join(l.Dir, pattern))
	if err != nil {
		return nil, &StorageError{Op: "FindChunks", Dir: l.Dir, Cause: fmt.Errorf("%w: %v", ErrBadPattern, err)}
	}
	sort.Strings(paths)

	results := make([]LocatedRecord, 0)
	skipped := 0
	for _, path := range paths {
		record, err := ReadRecord(path)
		if err != nil {
			skipped++
			if l.Logger != nil {
				l.Logger.Warn("skipping malformed chunk artifact", "file", path, "error", err)
			}
			continue
		}

		if intersects(record.EntityIDs(), entityIDs) {
			results = append(results, LocatedRecord{EntityRecord: *record, File: path})
		}
	}

	if l.Recorder != nil {
		l.Recorder.RecordChunkScan(len(paths), len(results), skipped)
	}
	return results, nil
}

// ReadRecord decodes a single chunk artifact. A .snappy suffix selects
// snappy-compressed framing around the same JSON payload.
func ReadRecord(path string) (*EntityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".snappy") {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("snappy decode: %w", err)
		}
	}

	var record EntityRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func intersects(a, b map[string]bool) bool {
	// Iterate the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}
	for id := range a {
		if b[id] {
			return true
		}
	}
	return false
}
