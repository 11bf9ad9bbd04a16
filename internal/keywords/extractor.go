// Package keywords suggests frequent content words from the dataset for
// dynamic example buttons in the UI.
package keywords

import (
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
)

// DefaultCount is the number of keywords returned when the client does
// not ask for a specific count.
const DefaultCount = 6

// maxCached bounds the ranked list kept per snapshot.
const maxCached = 50

// stopWords are common German words plus structural terms of the corpus
// that would otherwise dominate the suggestions.
var stopWords = map[string]bool{
	"der": true, "die": true, "das": true, "und": true, "in": true,
	"zu": true, "den": true, "von": true, "für": true, "mit": true,
	"sich": true, "des": true, "auf": true, "ist": true, "im": true,
	"dem": true, "nicht": true, "ein": true, "eine": true, "als": true,
	"auch": true, "es": true, "an": true, "werden": true, "aus": true,
	"er": true, "hat": true, "dass": true, "sie": true, "nach": true,
	"wird": true, "bei": true, "einer": true, "um": true, "am": true,
	"sind": true, "noch": true, "wie": true, "einem": true, "über": true,
	"einen": true, "so": true, "zum": true, "war": true, "haben": true,
	"nur": true, "oder": true, "aber": true, "vor": true, "zur": true,
	"bis": true, "mehr": true, "durch": true, "man": true, "sein": true,
	"wurde": true, "sei": true, "prozent": true, "jahr": true,
	"jahren": true, "müssen": true,
	// corpus-specific structural terms
	"münchen": true, "muenchen": true, "stadtrat": true, "stadtrates": true,
	"fraktion": true, "rathaus": true, "oberbürgermeister": true,
	"oberbuergermeister": true, "stadträtin": true, "stadtraetin": true,
	"antrag": true, "anträge": true, "antraege": true,
	"landeshauptstadt": true, "stadt": true, "bürgerservice": true,
	"buergerservice": true, "herr": true, "frau": true, "damen": true,
	"herren": true, "herrn": true,
}

var wordRe = regexp.MustCompile(`[a-zäöüß]+`)

// Extractor computes the most frequent content words of a dataset. The
// ranked list is cached per snapshot and recomputed only when the source
// file's modification time changes.
type Extractor struct {
	cache  *dataset.Cache
	source string

	mu     sync.Mutex
	mtime  time.Time
	ranked []string
}

// NewExtractor creates an extractor over the dataset at source.
func NewExtractor(cache *dataset.Cache, source string) *Extractor {
	return &Extractor{cache: cache, source: source}
}

// Top returns the n most frequent non-stop-words of the dataset content.
func (e *Extractor) Top(n int) ([]string, error) {
	if n <= 0 {
		n = DefaultCount
	}
	if n > maxCached {
		n = maxCached
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fi, err := os.Stat(e.source)
	if err == nil && e.ranked != nil && fi.ModTime().Equal(e.mtime) {
		return clamp(e.ranked, n), nil
	}

	table, err := e.cache.Load(e.source)
	if err != nil {
		return nil, err
	}

	e.ranked = rank(table)
	if fi != nil {
		e.mtime = fi.ModTime()
	}
	return clamp(e.ranked, n), nil
}

// rank counts word frequencies over all document content and returns the
// words ordered by descending frequency, ties by word ascending.
func rank(table dataset.Table) []string {
	freq := make(map[string]int)
	for i := range table {
		for _, w := range wordRe.FindAllString(strings.ToLower(table[i].Content), -1) {
			if stopWords[w] || len([]rune(w)) < 4 {
				continue
			}
			freq[w]++
		}
	}

	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > maxCached {
		words = words[:maxCached]
	}
	return words
}

func clamp(ranked []string, n int) []string {
	if n > len(ranked) {
		n = len(ranked)
	}
	return append([]string(nil), ranked[:n]...)
}
