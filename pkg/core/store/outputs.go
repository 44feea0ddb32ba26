package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore writes one JSON file per run under Dir.
type FileStore struct {
	Dir string
}

// NewFileStore returns a store rooted at dir, defaulting to "outputs".
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "outputs"
	}
	return &FileStore{Dir: dir}
}

// Save writes the record as pretty-printed JSON. The filename carries the
// technique and a short run ID so repeated demonstrations do not clobber
// each other.
func (s *FileStore) Save(rec *RunRecord) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create outputs dir: %w", err)
	}

	short := rec.ID
	if len(short) > 8 {
		short = short[:8]
	}
	name := fmt.Sprintf("%s_%s.json", strings.ReplaceAll(rec.Technique, "-", "_"), short)
	path := filepath.Join(s.Dir, name)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run record: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ListRecent returns up to limit records, newest first.
func (s *FileStore) ListRecent(limit int) ([]*RunRecord, error) {
	entries, err := os.ReadDir(s.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read outputs dir: %w", err)
	}

	var records []*RunRecord
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			continue
		}
		var rec RunRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
