package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
	"github.com/stadtratwatch/ratsinfo/internal/engine"
)

// registerRoutes mounts the query API. Route names and response shapes
// follow the web frontend's expectations.
func registerRoutes(r chi.Router, eng *engine.Engine, source string, batchSize int) {
	r.Get("/trend", handleTrend(eng, source))
	r.Get("/trend_share", handleTrendShare(eng, source))
	r.Get("/fraktionen", handleFraktionen(eng, source))
	r.Get("/fraktionen_share", handleFraktionenShare(eng, source))
	r.Get("/metrics", handleMetrics(eng, source))
	r.Get("/date-range", handleDateRange(eng, source))
	r.Get("/available-typen", handleAvailableTypes(eng, source))
	r.Get("/api/themes", handleThemes(eng))
	r.Get("/expanded-search-terms", handleExpandedTerms(eng))
	r.Get("/get_applications", handleApplications(eng, source, batchSize))
}

// queryFromRequest builds an engine query from the common URL parameters:
// word, typ (comma-separated), date_from, date_to. Theme expansion is
// always on for API queries.
func queryFromRequest(r *http.Request) engine.Query {
	q := engine.Query{ExpandThemes: true}

	if word := r.URL.Query().Get("word"); word != "" {
		q.Terms = []string{word}
	}
	if typ := r.URL.Query().Get("typ"); typ != "" {
		for _, t := range strings.Split(typ, ",") {
			if t = strings.TrimSpace(t); t != "" {
				q.Types = append(q.Types, t)
			}
		}
	}
	q.From = r.URL.Query().Get("date_from")
	q.To = r.URL.Query().Get("date_to")
	return q
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, dataset.ErrSourceUnavailable) {
		http.Error(w, `{"error":"dataset unavailable"}`, http.StatusInternalServerError)
		return
	}
	http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
}

func handleTrend(eng *engine.Engine, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trend, err := eng.MonthlyTrend(source, queryFromRequest(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, trend)
	}
}

func handleTrendShare(eng *engine.Engine, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryFromRequest(r)
		if len(q.Terms) == 0 {
			writeJSON(w, []any{})
			return
		}
		shares, err := eng.MonthlyTrendShare(source, q)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, shares)
	}
}

func handleFraktionen(eng *engine.Engine, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := eng.BySubmitter(source, queryFromRequest(r), r.URL.Query().Get("group_by"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, counts)
	}
}

func handleFraktionenShare(eng *engine.Engine, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryFromRequest(r)
		if len(q.Terms) == 0 {
			writeJSON(w, []any{})
			return
		}
		shares, err := eng.SubmitterShare(source, q, r.URL.Query().Get("group_by"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, shares)
	}
}

func handleMetrics(eng *engine.Engine, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, err := eng.ProcessingMetrics(source, queryFromRequest(r))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, metrics)
	}
}

func handleDateRange(eng *engine.Engine, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := eng.DateRange(source)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, dr)
	}
}

func handleAvailableTypes(eng *engine.Engine, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := eng.AvailableTypes(source)
		if err != nil {
			writeError(w, err)
			return
		}
		if types == nil {
			types = []string{}
		}
		writeJSON(w, types)
	}
}

func handleThemes(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string][]string{"themes": eng.Lexicon().Themes()})
	}
}

func handleExpandedTerms(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw []string
		if word := r.URL.Query().Get("word"); word != "" {
			raw = []string{word}
		}
		writeJSON(w, eng.ExpandedTerms(raw))
	}
}

func handleApplications(eng *engine.Engine, source string, batchSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := queryFromRequest(r)
		q.AnnotateThemes = true

		result, err := eng.Find(source, q)
		if err != nil {
			writeError(w, err)
			return
		}

		offset := intParam(r, "offset", 0)
		limit := intParam(r, "limit", batchSize)
		if offset < 0 {
			offset = 0
		}
		if limit < 1 {
			limit = batchSize
		}

		page := result.Rows
		if offset >= len(page) {
			page = dataset.Table{}
		} else {
			page = page[offset:]
			if limit < len(page) {
				page = page[:limit]
			}
		}

		writeJSON(w, map[string]any{
			"data":   page,
			"total":  result.Total,
			"offset": offset,
			"limit":  limit,
		})
	}
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
