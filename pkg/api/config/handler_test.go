package config

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptlab/pkg/core/llm"
	"promptlab/pkg/core/playground"
)

type nopProvider struct{}

func (nopProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (*llm.Result, error) {
	return &llm.Result{Text: "ok"}, nil
}

func (nopProvider) AdaptInstructions(raw string) string { return raw }

func newHandler() *Handler {
	mgr := playground.NewManagerWithProviders(
		playground.Config{ActiveProvider: "alpha"},
		map[string]llm.Provider{"alpha": nopProvider{}, "beta": nopProvider{}},
	)
	return NewHandler(mgr)
}

func TestHandleConfig(t *testing.T) {
	h := newHandler()

	rr := httptest.NewRecorder()
	h.HandleConfig(rr, httptest.NewRequest("GET", "/api/config", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp Response
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ActiveProvider != "alpha" {
		t.Errorf("expected active provider alpha, got %q", resp.ActiveProvider)
	}
	if len(resp.Available) != 2 {
		t.Errorf("expected 2 available providers, got %v", resp.Available)
	}
}

func TestHandleSwitch(t *testing.T) {
	h := newHandler()

	body, _ := json.Marshal(SwitchRequest{Provider: "beta"})
	rr := httptest.NewRecorder()
	h.HandleSwitch(rr, httptest.NewRequest("POST", "/api/config/switch", bytes.NewReader(body)))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if got := h.Mgr.GetActiveProvider(); got != "beta" {
		t.Errorf("expected active provider beta, got %q", got)
	}
}

func TestHandleSwitchUnknownProvider(t *testing.T) {
	h := newHandler()

	body, _ := json.Marshal(SwitchRequest{Provider: "gamma"})
	rr := httptest.NewRecorder()
	h.HandleSwitch(rr, httptest.NewRequest("POST", "/api/config/switch", bytes.NewReader(body)))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if got := h.Mgr.GetActiveProvider(); got != "alpha" {
		t.Errorf("active provider should be unchanged, got %q", got)
	}
}
