package engine

import (
	"regexp"
	"strings"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
)

// matchIndexes evaluates one case-insensitive regex pattern against the
// table and returns the indexes of documents whose content contains the
// pattern at least once. The decision is binary per document; repeated
// occurrences do not add weight. A blank or invalid pattern yields no
// matches: malformed user input degrades, it never aborts a query.
func matchIndexes(t dataset.Table, pattern string) []int {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil
	}
	var idx []int
	for i := range t {
		if re.MatchString(t[i].Content) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Match evaluates one search pattern against the table, returning the
// matching rows and the count of matching documents.
func Match(t dataset.Table, pattern string) (dataset.Table, int) {
	idx := matchIndexes(t, pattern)
	rows := make(dataset.Table, 0, len(idx))
	for _, i := range idx {
		rows = append(rows, t[i])
	}
	return rows, len(rows)
}
