// Package techniques exposes the technique listing and run endpoints.
package techniques

import (
	"encoding/json"
	"errors"
	"net/http"

	"promptlab/pkg/core/llm"
	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/technique"
	"promptlab/pkg/core/utils"
)

// Handler holds dependencies for technique endpoints
type Handler struct {
	pg *playground.Playground
}

// NewHandler creates a new techniques handler
func NewHandler(pg *playground.Playground) *Handler {
	return &Handler{pg: pg}
}

// RunRequest is the body of POST /api/techniques/run
type RunRequest struct {
	Technique   string   `json:"technique"`
	Input       string   `json:"input"`
	Provider    string   `json:"provider,omitempty"`
	Model       string   `json:"model,omitempty"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	NumPaths    int      `json:"num_paths,omitempty"`
}

// RunResponse returns the completion with usage metrics
type RunResponse struct {
	ID           string                 `json:"id"`
	Technique    string                 `json:"technique"`
	Provider     string                 `json:"provider"`
	Model        string                 `json:"model"`
	SystemPrompt string                 `json:"system_prompt"`
	UserPrompt   string                 `json:"user_prompt"`
	Response     string                 `json:"response"`
	ResponseHTML string                 `json:"response_html,omitempty"`
	Tokens       int                    `json:"tokens"`
	CostUSD      float64                `json:"cost_usd"`
	Steps        []playground.ReActStep `json:"steps,omitempty"`
}

// HandleList returns the supported techniques.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	json.NewEncoder(w).Encode(technique.All())
}

// HandleRun formats and executes one technique demonstration.
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	options := map[string]interface{}{}
	if req.Provider != "" {
		options["provider"] = req.Provider
	}
	if req.Model != "" {
		options["model"] = req.Model
	}
	if req.MaxTokens > 0 {
		options["max_tokens"] = req.MaxTokens
	}
	if req.Temperature != nil {
		options["temperature"] = *req.Temperature
	}
	if req.NumPaths > 0 {
		options["num_paths"] = req.NumPaths
	}

	rec, err := h.pg.Run(r.Context(), technique.Technique(req.Technique), req.Input, options)
	if err != nil {
		http.Error(w, err.Error(), StatusFor(err))
		return
	}

	resp := RunResponse{
		ID:           rec.ID,
		Technique:    rec.Technique,
		Provider:     rec.Provider,
		Model:        rec.Model,
		SystemPrompt: rec.SystemPrompt,
		UserPrompt:   rec.UserPrompt,
		Response:     rec.Response,
		Tokens:       rec.TotalTokens,
		CostUSD:      rec.CostUSD,
	}
	if html, err := utils.RenderMarkdown(rec.Response); err == nil {
		resp.ResponseHTML = html
	}
	if rec.Technique == string(technique.ReAct) {
		resp.Steps = playground.ParseReActSteps(rec.Response)
	}

	json.NewEncoder(w).Encode(resp)
}

// StatusFor maps the error taxonomy onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, technique.ErrInvalidTechnique), errors.Is(err, technique.ErrEmptyInput):
		return http.StatusBadRequest
	case errors.Is(err, llm.ErrMissingAPIKey):
		return http.StatusInternalServerError
	case errors.Is(err, llm.ErrRateLimit):
		return http.StatusTooManyRequests
	case errors.Is(err, llm.ErrAuth), errors.Is(err, llm.ErrProvider):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
