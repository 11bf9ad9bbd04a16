package keywords

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
)

func writeDataset(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	csv := "document_content,Gestellt am\n"
	for _, r := range rows {
		csv += "\"" + r + "\",2024-01-01\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	return path
}

func TestTopRanksByFrequency(t *testing.T) {
	path := writeDataset(t,
		"Radverkehr Radverkehr Radverkehr Schulweg Schulweg Spielplatz",
	)
	ex := NewExtractor(dataset.NewCache(), path)

	got, err := ex.Top(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"radverkehr", "schulweg", "spielplatz"}, got)
}

func TestTopFiltersStopWordsAndShortWords(t *testing.T) {
	path := writeDataset(t,
		"der die das und mit dem Rad zum Radverkehr in München Stadtrat",
	)
	ex := NewExtractor(dataset.NewCache(), path)

	got, err := ex.Top(10)
	require.NoError(t, err)
	assert.Equal(t, []string{"radverkehr"}, got)
}

func TestTopDefaultCount(t *testing.T) {
	words := make([]string, 0, 10)
	for _, w := range []string{"alpha", "beta", "gamma", "delta", "epsilon", "theta", "lambda", "sigma"} {
		words = append(words, strings.Repeat(w+" ", 2))
	}
	path := writeDataset(t, strings.Join(words, " "))
	ex := NewExtractor(dataset.NewCache(), path)

	got, err := ex.Top(0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultCount)
}

func TestTopRecomputesOnDatasetChange(t *testing.T) {
	path := writeDataset(t, "Radverkehr Radverkehr")
	ex := NewExtractor(dataset.NewCache(), path)

	got, err := ex.Top(1)
	require.NoError(t, err)
	require.Equal(t, []string{"radverkehr"}, got)

	require.NoError(t, os.WriteFile(path, []byte("document_content,Gestellt am\nWohnungsbau Wohnungsbau,2024-01-01\n"), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	got, err = ex.Top(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"wohnungsbau"}, got)
}

func TestTopMissingDataset(t *testing.T) {
	ex := NewExtractor(dataset.NewCache(), filepath.Join(t.TempDir(), "nope.csv"))
	_, err := ex.Top(5)
	require.ErrorIs(t, err, dataset.ErrSourceUnavailable)
}

func TestTopKeywordsRoute(t *testing.T) {
	path := writeDataset(t, "Radverkehr Radverkehr Schulweg")
	r := chi.NewRouter()
	RegisterRoutes(r, NewExtractor(dataset.NewCache(), path))

	req := httptest.NewRequest("GET", "/api/top-keywords?count=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"radverkehr", "schulweg"}, body["keywords"])
}
