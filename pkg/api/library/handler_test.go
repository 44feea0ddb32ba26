package library

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptlab/pkg/core/library"
	"promptlab/pkg/core/llm"
	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/store"
)

type echoProvider struct{}

func (echoProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*llm.Result, error) {
	return &llm.Result{Text: prompt, Model: "stub-model", TotalTokens: 10}, nil
}

func (echoProvider) AdaptInstructions(raw string) string { return raw }

func seedRegistry(t *testing.T) {
	t.Helper()
	reg := library.Get()
	reg.Clear()
	t.Cleanup(reg.Clear)

	err := reg.Register(&library.Template{
		ID:       "translation.simple",
		Name:     "Simple Translation",
		Category: "translation",
		Text:     "Translate the following text to {{.target_language}}:\n\n{{.text}}",
		Variables: []library.Variable{
			{Name: "text", Type: "string", Required: true},
			{Name: "target_language", Type: "string", Default: "French"},
		},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
}

func newHandler(t *testing.T) *Handler {
	t.Helper()
	mgr := playground.NewManagerWithProviders(
		playground.Config{ActiveProvider: "stub"},
		map[string]llm.Provider{"stub": echoProvider{}},
	)
	return NewHandler(playground.New(mgr, store.NewFileStore(t.TempDir())))
}

func TestHandleListGroupsByCategory(t *testing.T) {
	seedRegistry(t)
	h := newHandler(t)

	rr := httptest.NewRecorder()
	h.HandleList(rr, httptest.NewRequest("GET", "/api/library", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var listing []CategoryListing
	if err := json.Unmarshal(rr.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listing) != 1 || listing[0].Category != "translation" {
		t.Fatalf("unexpected listing: %+v", listing)
	}
	if len(listing[0].Templates) != 1 {
		t.Errorf("expected 1 template, got %d", len(listing[0].Templates))
	}
}

func TestHandleRender(t *testing.T) {
	seedRegistry(t)
	h := newHandler(t)

	body, _ := json.Marshal(RenderRequest{
		ID:        "translation.simple",
		Variables: map[string]interface{}{"text": "Good morning"},
	})
	rr := httptest.NewRecorder()
	h.HandleRender(rr, httptest.NewRequest("POST", "/api/library/render", bytes.NewReader(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := "Translate the following text to French:\n\nGood morning"
	if resp["prompt"] != want {
		t.Errorf("rendered prompt = %q, want %q", resp["prompt"], want)
	}
}

func TestHandleRenderMissingRequired(t *testing.T) {
	seedRegistry(t)
	h := newHandler(t)

	body, _ := json.Marshal(RenderRequest{ID: "translation.simple"})
	rr := httptest.NewRecorder()
	h.HandleRender(rr, httptest.NewRequest("POST", "/api/library/render", bytes.NewReader(body)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestHandleRun(t *testing.T) {
	seedRegistry(t)
	h := newHandler(t)

	body, _ := json.Marshal(RunRequest{
		ID:        "translation.simple",
		Variables: map[string]interface{}{"text": "Good morning"},
		Technique: "zero-shot",
	})
	rr := httptest.NewRecorder()
	h.HandleRun(rr, httptest.NewRequest("POST", "/api/library/run", bytes.NewReader(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["template"] != "translation.simple" {
		t.Errorf("unexpected template id %v", resp["template"])
	}
	if resp["response"] == "" {
		t.Error("expected a response")
	}
}

func TestHandleRunUnknownTemplate(t *testing.T) {
	seedRegistry(t)
	h := newHandler(t)

	body, _ := json.Marshal(RunRequest{ID: "nope"})
	rr := httptest.NewRecorder()
	h.HandleRun(rr, httptest.NewRequest("POST", "/api/library/run", bytes.NewReader(body)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
