// Package history exposes past playground runs.
package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	"promptlab/pkg/core/playground"
	"promptlab/pkg/core/store"
)

// Handler holds dependencies for the history endpoint
type Handler struct {
	pg *playground.Playground
}

// NewHandler creates a new history handler
func NewHandler(pg *playground.Playground) *Handler {
	return &Handler{pg: pg}
}

// HandleList returns recent runs, newest first. ?limit= caps the result.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	limit := 20
	if val := r.URL.Query().Get("limit"); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := h.pg.History(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*store.RunRecord{}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"count": len(records),
		"runs":  records,
	})
}
