// Package library exposes the prompt-template library endpoints.
package library

import (
	"encoding/json"
	"net/http"

	"promptlab/pkg/api/techniques"
	"promptlab/pkg/core/library"
	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/technique"
)

// Handler holds dependencies for library endpoints
type Handler struct {
	pg *playground.Playground
}

// NewHandler creates a new library handler
func NewHandler(pg *playground.Playground) *Handler {
	return &Handler{pg: pg}
}

// CategoryListing groups templates for the browse endpoint
type CategoryListing struct {
	Category  string              `json:"category"`
	Templates []*library.Template `json:"templates"`
}

// HandleList returns every category with its templates.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	reg := library.Get()
	var listing []CategoryListing
	for _, cat := range reg.Categories() {
		listing = append(listing, CategoryListing{
			Category:  cat,
			Templates: reg.ListByCategory(cat),
		})
	}
	json.NewEncoder(w).Encode(listing)
}

// RenderRequest is the body of POST /api/library/render
type RenderRequest struct {
	ID        string                 `json:"id"`
	Variables map[string]interface{} `json:"variables"`
}

// HandleRender fills a template's variables and returns the prompt text.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
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

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	prompt, err := library.Get().Render(req.ID, req.Variables)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"id": req.ID, "prompt": prompt})
}

// RunRequest is the body of POST /api/library/run: render a template, then
// feed the prompt through a technique.
type RunRequest struct {
	ID        string                 `json:"id"`
	Variables map[string]interface{} `json:"variables"`
	Technique string                 `json:"technique"`
}

// HandleRun renders a template and executes it with the chosen technique.
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

	prompt, err := library.Get().Render(req.ID, req.Variables)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag := technique.Technique(req.Technique)
	if req.Technique == "" {
		tag = technique.ZeroShot
	}

	rec, err := h.pg.Run(r.Context(), tag, prompt, nil)
	if err != nil {
		http.Error(w, err.Error(), techniques.StatusFor(err))
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":        rec.ID,
		"template":  req.ID,
		"technique": rec.Technique,
		"prompt":    prompt,
		"response":  rec.Response,
		"tokens":    rec.TotalTokens,
		"cost_usd":  rec.CostUSD,
	})
}
