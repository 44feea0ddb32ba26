// Package webui serves the single-page playground front end.
package webui

import (
	"embed"
	"net/http"
)

//go:embed index.html
var content embed.FS

// Handler serves the playground page at / and nothing else.
func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		page, err := content.ReadFile("index.html")
		if err != nil {
			http.Error(w, "page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}
}
