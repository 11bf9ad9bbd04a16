package config

// Config is the top-level ratsinfo configuration, corresponding to
// .ratsinfo.yml.
type Config struct {
	// Port the HTTP server listens on.
	Port int `yaml:"port" koanf:"port"`
	// DataFile is the crawled proposal CSV.
	DataFile string `yaml:"data_file" koanf:"data_file"`
	// LexiconFile optionally replaces the built-in theme lexicon.
	LexiconFile string `yaml:"lexicon_file" koanf:"lexicon_file"`
	// MaxConcurrency bounds the per-term match worker pool.
	MaxConcurrency int `yaml:"max_concurrency" koanf:"max_concurrency"`
	// BatchSize is the default page size of the applications listing.
	BatchSize int `yaml:"batch_size" koanf:"batch_size"`
	// AllowAllOrigins relaxes CORS for development.
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	// WatchData invalidates the dataset cache on file changes instead of
	// waiting for the next modification-time check.
	WatchData bool `yaml:"watch_data" koanf:"watch_data"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		DataFile:        "data.csv",
		MaxConcurrency:  4,
		BatchSize:       20,
		AllowAllOrigins: false,
		WatchData:       true,
	}
}
