// Package lexicon maps theme names to fixed lists of domain phrases and
// expands raw search terms into the full phrase set of any theme they
// name or belong to.
package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon is a read-only theme-to-phrases mapping, loaded once for the
// process lifetime.
type Lexicon struct {
	themes map[string][]string
	// byKey maps the lowercased theme name and every lowercased phrase to
	// the owning theme name.
	byKey map[string]string
	names []string
}

// Expansion pairs the raw search terms with their theme-expanded form.
type Expansion struct {
	Original []string `json:"original"`
	Expanded []string `json:"expanded"`
}

// Default returns the lexicon built from the compiled-in theme map.
func Default() *Lexicon {
	return New(defaultThemes)
}

// New builds a lexicon from an explicit theme map. The map is copied.
func New(themes map[string][]string) *Lexicon {
	l := &Lexicon{
		themes: make(map[string][]string, len(themes)),
		byKey:  make(map[string]string),
	}
	for name, phrases := range themes {
		l.themes[name] = append([]string(nil), phrases...)
		l.names = append(l.names, name)
		l.byKey[strings.ToLower(name)] = name
		for _, p := range phrases {
			if _, taken := l.byKey[strings.ToLower(p)]; !taken {
				l.byKey[strings.ToLower(p)] = name
			}
		}
	}
	sort.Strings(l.names)
	return l
}

// LoadFile reads a theme map from a YAML file of the form
//
//	Mobilitaet:
//	  - Fahrrad
//	  - Radweg
//
// replacing the built-in map entirely.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	var themes map[string][]string
	if err := yaml.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}
	if len(themes) == 0 {
		return nil, fmt.Errorf("lexicon %s defines no themes", path)
	}
	return New(themes), nil
}

// Themes returns the theme names in alphabetical order.
func (l *Lexicon) Themes() []string {
	return append([]string(nil), l.names...)
}

// Phrases returns the phrase list of a theme, or nil for unknown themes.
func (l *Lexicon) Phrases(theme string) []string {
	return append([]string(nil), l.themes[theme]...)
}

// Expand keeps every input term and, for each term that equals a theme
// name or one of its phrases (case-insensitively), adds the theme name
// and all of its phrases. Expansion is non-recursive and the result is
// de-duplicated, keeping first-seen order.
func (l *Lexicon) Expand(terms []string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}

	for _, term := range terms {
		add(term)
		theme, ok := l.byKey[strings.ToLower(strings.TrimSpace(term))]
		if !ok {
			continue
		}
		add(theme)
		for _, phrase := range l.themes[theme] {
			add(phrase)
		}
	}
	return out
}

// Detect returns the sorted theme names whose phrase lists have at least
// one phrase contained in the content, case-insensitively. The theme name
// itself also counts as a phrase.
func (l *Lexicon) Detect(content string) []string {
	if content == "" {
		return nil
	}
	lower := strings.ToLower(content)
	var out []string
	for _, name := range l.names {
		if strings.Contains(lower, strings.ToLower(name)) {
			out = append(out, name)
			continue
		}
		for _, phrase := range l.themes[name] {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}
