package keywords

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the keyword suggestion route.
func RegisterRoutes(r chi.Router, ex *Extractor) {
	r.Get("/api/top-keywords", handleTopKeywords(ex))
}

func handleTopKeywords(ex *Extractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := DefaultCount
		if raw := r.URL.Query().Get("count"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				count = n
			}
		}

		kws, err := ex.Top(count)
		if err != nil {
			http.Error(w, `{"error":"dataset unavailable"}`, http.StatusInternalServerError)
			return
		}
		if kws == nil {
			kws = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string][]string{"keywords": kws})
	}
}
