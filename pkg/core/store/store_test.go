package store

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func sampleRecord(id, tech string, at time.Time) *RunRecord {
	return &RunRecord{
		ID:           id,
		Technique:    tech,
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Input:        "explain tides",
		SystemPrompt: "You are a helpful assistant.",
		UserPrompt:   "explain tides",
		Response:     "The moon pulls the ocean.",
		TotalTokens:  42,
		CostUSD:      0.000016,
		CreatedAt:    at,
	}
}

func TestFileStoreSaveAndList(t *testing.T) {
	s := NewFileStore(t.TempDir())

	now := time.Now().UTC()
	for i, rec := range []*RunRecord{
		sampleRecord("aaaaaaaa-1111", "zero-shot", now.Add(-2*time.Minute)),
		sampleRecord("bbbbbbbb-2222", "few-shot", now.Add(-1*time.Minute)),
		sampleRecord("cccccccc-3333", "chain-of-thought", now),
	} {
		path, err := s.Save(rec)
		if err != nil {
			t.Fatalf("Save #%d failed: %v", i, err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("saved file missing: %v", err)
		}
	}

	records, err := s.ListRecent(2)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListRecent returned %d records, want 2", len(records))
	}
	if records[0].Technique != "chain-of-thought" || records[1].Technique != "few-shot" {
		t.Errorf("unexpected order: %s, %s", records[0].Technique, records[1].Technique)
	}
}

func TestFileStoreFilenameCarriesTechnique(t *testing.T) {
	s := NewFileStore(t.TempDir())
	path, err := s.Save(sampleRecord("deadbeef-4444", "tree-of-thoughts", time.Now()))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	want := "tree_of_thoughts_deadbeef"
	if !strings.Contains(path, want) {
		t.Errorf("path %q missing %q", path, want)
	}
}

func TestFileStoreListEmptyDir(t *testing.T) {
	s := NewFileStore(t.TempDir() + "/never-created")
	records, err := s.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if records != nil {
		t.Errorf("expected nil records, got %v", records)
	}
}

// Postgres round trip, only when a database is available.
func TestRunsRepoRoundTrip(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping Postgres test")
	}

	ctx := context.Background()
	if err := InitDB(ctx); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	repo := NewRunsRepo()
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	rec := sampleRecord("test-roundtrip-id", "zero-shot", time.Now().UTC())
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	records, err := repo.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	found := false
	for _, r := range records {
		if r.ID == rec.ID {
			found = true
			if r.Response != rec.Response {
				t.Errorf("response = %q, want %q", r.Response, rec.Response)
			}
		}
	}
	if !found {
		t.Error("saved record not returned by ListRecent")
	}
}
