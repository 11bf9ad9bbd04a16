package cmd

import (
	"fmt"

	"github.com/stadtratwatch/ratsinfo/internal/config"
	"github.com/stadtratwatch/ratsinfo/internal/dataset"
	"github.com/stadtratwatch/ratsinfo/internal/engine"
	"github.com/stadtratwatch/ratsinfo/internal/lexicon"
)

// buildEngine assembles the dataset cache, theme lexicon and query engine
// from the configuration. The cache is returned alongside the engine so
// callers can wire it to a file watcher or the keyword extractor.
func buildEngine(cfg *config.Config) (*engine.Engine, *dataset.Cache, error) {
	lex := lexicon.Default()
	if cfg.LexiconFile != "" {
		var err error
		lex, err = lexicon.LoadFile(cfg.LexiconFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading lexicon: %w", err)
		}
	}

	cache := dataset.NewCache()
	eng, err := engine.New(cache, lex, engine.WithPoolSize(cfg.MaxConcurrency))
	if err != nil {
		return nil, nil, fmt.Errorf("creating engine: %w", err)
	}
	return eng, cache, nil
}
