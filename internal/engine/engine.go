// Package engine answers keyword and theme queries against the proposal
// dataset: it expands terms through the lexicon, matches each term
// independently against a shared date-sliced snapshot, and merges the
// per-term hits as a union over documents.
package engine

import (
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/stadtratwatch/ratsinfo/internal/dataset"
	"github.com/stadtratwatch/ratsinfo/internal/lexicon"
	"github.com/stadtratwatch/ratsinfo/internal/stats"
)

// Query describes one search against a dataset source.
type Query struct {
	// Terms are the raw search patterns. An empty or all-blank list means
	// "match every document".
	Terms []string
	// Types keeps only documents whose Typ is in the set. Empty = all.
	Types []string
	// From and To bound the submission date, inclusive, as YYYY-MM-DD.
	// Unparseable bounds are ignored.
	From, To string
	// ExpandThemes replaces Terms with their lexicon expansion.
	ExpandThemes bool
	// AnnotateThemes attaches the detected themes to each returned row.
	AnnotateThemes bool
}

// Result is the matched-document set for a query. Rows are ordered by
// submission date ascending with undated rows last, the order of the
// underlying snapshot.
type Result struct {
	Rows  dataset.Table `json:"rows"`
	Total int           `json:"total"`
}

// Engine orchestrates cache, slicer, lexicon and matcher. It holds no
// per-query state; all public operations are pure given the cached
// snapshot and the parameters.
type Engine struct {
	cache  *dataset.Cache
	lex    *lexicon.Lexicon
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for per-term match fan-out.
// Default is runtime.NumCPU(), minimum 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// New creates an engine over the given cache and lexicon.
func New(cache *dataset.Cache, lex *lexicon.Lexicon, opts ...Option) (*Engine, error) {
	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cache:  cache,
		lex:    lex,
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			e.pool.Release()
			return nil, err
		}
	}
	return e, nil
}

// Release frees the worker pool.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}

// Lexicon returns the engine's theme lexicon.
func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lex }

// ExpandedTerms reports how the lexicon expands the raw terms, without
// running a search.
func (e *Engine) ExpandedTerms(raw []string) lexicon.Expansion {
	return lexicon.Expansion{
		Original: append([]string(nil), raw...),
		Expanded: e.lex.Expand(raw),
	}
}

// Find runs the query and returns the de-duplicated matched rows plus
// their count. A document matched by several expanded terms is returned
// exactly once.
func (e *Engine) Find(source string, q Query) (*Result, error) {
	matched, _, err := e.evaluate(source, q)
	if err != nil {
		return nil, err
	}
	if q.AnnotateThemes {
		for i := range matched {
			themes := e.lex.Detect(matched[i].Content)
			if themes == nil {
				themes = []string{}
			}
			matched[i].Themes = themes
		}
	}
	return &Result{Rows: matched, Total: len(matched)}, nil
}

// evaluate loads and date-slices the snapshot once, matches every
// (possibly expanded) term against it, and returns both the matched set
// and the full type/date-filtered table (needed by share aggregations).
func (e *Engine) evaluate(source string, q Query) (matched, filtered dataset.Table, err error) {
	terms := q.Terms
	if q.ExpandThemes {
		terms = e.lex.Expand(terms)
	}

	table, err := e.cache.Load(source)
	if err != nil {
		return nil, nil, err
	}
	sliced := dataset.SliceByDate(table, q.From, q.To)
	filtered = filterTypes(sliced, q.Types)

	if allBlank(terms) {
		// Empty search box: every filtered row is a hit.
		return filtered, filtered, nil
	}

	hits := e.matchAll(sliced, terms)

	matched = make(dataset.Table, 0)
	for i := range sliced {
		if hits[i] && typeAllowed(sliced[i].Type, q.Types) {
			matched = append(matched, sliced[i])
		}
	}
	return matched, filtered, nil
}

// matchAll fans the per-term evaluations out on the worker pool. Workers
// read the shared base table and write only their private index slice;
// the union is merged here, counting each document once.
func (e *Engine) matchAll(base dataset.Table, terms []string) []bool {
	results := make([][]int, len(terms))

	var wg sync.WaitGroup
	for i, term := range terms {
		i, term := i, term
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = matchIndexes(base, term)
		}
		if err := e.pool.Submit(task); err != nil {
			// Pool unavailable (e.g. released): run inline.
			e.logger.Debug("pool submit failed, running inline", "err", err)
			task()
		}
	}
	wg.Wait()

	hits := make([]bool, len(base))
	for _, idx := range results {
		for _, i := range idx {
			hits[i] = true
		}
	}
	return hits
}

// MonthlyTrend buckets the matched documents by YYYY-MM.
func (e *Engine) MonthlyTrend(source string, q Query) ([]stats.MonthBucket, error) {
	matched, _, err := e.evaluate(source, q)
	if err != nil {
		return nil, err
	}
	return stats.MonthlyTrend(matched), nil
}

// MonthlyTrendShare reports, per month, which fraction of the filtered
// dataset matches the query.
func (e *Engine) MonthlyTrendShare(source string, q Query) ([]stats.MonthShare, error) {
	matched, filtered, err := e.evaluate(source, q)
	if err != nil {
		return nil, err
	}
	return stats.MonthlyTrendShare(filtered, matched), nil
}

// BySubmitter counts matched documents per individual submitter, splitting
// comma-separated co-submitters. column selects the grouping column;
// blank means the submitter column.
func (e *Engine) BySubmitter(source string, q Query, column string) ([]stats.SubmitterCount, error) {
	matched, _, err := e.evaluate(source, q)
	if err != nil {
		return nil, err
	}
	return stats.BySubmitter(matched, column), nil
}

// SubmitterShare reports, per submitter, the fraction of their total
// involvement (over the whole filtered dataset) that matches the query.
func (e *Engine) SubmitterShare(source string, q Query, column string) ([]stats.SubmitterShare, error) {
	matched, filtered, err := e.evaluate(source, q)
	if err != nil {
		return nil, err
	}
	return stats.SubmitterShares(filtered, matched, column), nil
}

// ProcessingMetrics computes turnaround statistics over the matched set.
func (e *Engine) ProcessingMetrics(source string, q Query) (*stats.ProcessingMetrics, error) {
	matched, _, err := e.evaluate(source, q)
	if err != nil {
		return nil, err
	}
	m := stats.ComputeProcessingMetrics(matched)
	return &m, nil
}

// DateRange returns the earliest and latest submission dates of the whole
// dataset, ignoring undated rows.
func (e *Engine) DateRange(source string) (*stats.DateRange, error) {
	table, err := e.cache.Load(source)
	if err != nil {
		return nil, err
	}
	r := stats.ComputeDateRange(table)
	return &r, nil
}

// AvailableTypes returns the distinct sorted Typ values of the dataset.
func (e *Engine) AvailableTypes(source string) ([]string, error) {
	table, err := e.cache.Load(source)
	if err != nil {
		return nil, err
	}
	return stats.AvailableTypes(table), nil
}

func allBlank(terms []string) bool {
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			return false
		}
	}
	return true
}

func typeAllowed(typ string, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if typ == t {
			return true
		}
	}
	return false
}

func filterTypes(t dataset.Table, types []string) dataset.Table {
	if len(types) == 0 {
		return t
	}
	out := make(dataset.Table, 0, len(t))
	for i := range t {
		if typeAllowed(t[i].Type, types) {
			out = append(out, t[i])
		}
	}
	return out
}
