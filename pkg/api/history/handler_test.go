package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptlab/pkg/core/llm"
	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/store"
	"promptlab/pkg/core/technique"
)

type echoProvider struct{}

func (echoProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*llm.Result, error) {
	return &llm.Result{Text: prompt, Model: "stub-model", TotalTokens: 10}, nil
}

func (echoProvider) AdaptInstructions(raw string) string { return raw }

func TestHandleList(t *testing.T) {
	mgr := playground.NewManagerWithProviders(
		playground.Config{ActiveProvider: "stub"},
		map[string]llm.Provider{"stub": echoProvider{}},
	)
	pg := playground.New(mgr, store.NewFileStore(t.TempDir()))

	for _, input := range []string{"first run", "second run"} {
		if _, err := pg.Run(context.Background(), technique.ZeroShot, input, nil); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
	}

	h := NewHandler(pg)
	rr := httptest.NewRecorder()
	h.HandleList(rr, httptest.NewRequest("GET", "/api/history?limit=5", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Count int               `json:"count"`
		Runs  []store.RunRecord `json:"runs"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected 2 runs, got %d", resp.Count)
	}
}

func TestHandleListEmpty(t *testing.T) {
	mgr := playground.NewManagerWithProviders(
		playground.Config{ActiveProvider: "stub"},
		map[string]llm.Provider{"stub": echoProvider{}},
	)
	h := NewHandler(playground.New(mgr, store.NewFileStore(t.TempDir())))

	rr := httptest.NewRecorder()
	h.HandleList(rr, httptest.NewRequest("GET", "/api/history", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Count int               `json:"count"`
		Runs  []json.RawMessage `json:"runs"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 0 || len(resp.Runs) != 0 {
		t.Errorf("expected an empty listing, got count=%d runs=%d", resp.Count, len(resp.Runs))
	}
}
