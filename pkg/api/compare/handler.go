// Package compare exposes the side-by-side technique comparison endpoint.
package compare

import (
	"encoding/json"
	"net/http"

	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/technique"
)

// Handler holds dependencies for the compare endpoint
type Handler struct {
	pg *playground.Playground
}

// NewHandler creates a new compare handler
func NewHandler(pg *playground.Playground) *Handler {
	return &Handler{pg: pg}
}

// Request is the body of POST /api/compare
type Request struct {
	Input      string   `json:"input"`
	Techniques []string `json:"techniques"`
	Provider   string   `json:"provider,omitempty"`
	Model      string   `json:"model,omitempty"`
}

// HandleCompare runs the same input across several techniques.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Input == "" || len(req.Techniques) == 0 {
		http.Error(w, "input and techniques are required", http.StatusBadRequest)
		return
	}

	tags := make([]technique.Technique, 0, len(req.Techniques))
	for _, t := range req.Techniques {
		tags = append(tags, technique.Technique(t))
	}

	options := map[string]interface{}{}
	if req.Provider != "" {
		options["provider"] = req.Provider
	}
	if req.Model != "" {
		options["model"] = req.Model
	}

	result := h.pg.Compare(r.Context(), req.Input, tags, options)
	json.NewEncoder(w).Encode(result)
}
