package model

import "runtime"

// Config is the complete engine configuration. It is built once by the CLI
// layer and passed explicitly into the pipeline; nothing in the engine reads
// ambient process-wide state.
type Config struct {
	Catalog     CatalogConfig     `yaml:"catalog"`
	Corpus      CorpusConfig      `yaml:"corpus"`
	Match       MatchConfig       `yaml:"match"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// CatalogConfig locates the translation catalog
type CatalogConfig struct {
	Path string `yaml:"path"` // Catalog file, relative to the project root
}

// CorpusConfig controls which source files are scanned
type CorpusConfig struct {
	Roots        []string `yaml:"roots"`         // Directories to walk, relative to the project root
	Extensions   []string `yaml:"extensions"`    // File extensions to keep (with leading dot)
	CacheEnabled bool     `yaml:"cache_enabled"` // Reuse unchanged file contents across rescans
}

// MatchConfig tunes the usage matchers
type MatchConfig struct {
	MinFragmentLength   int    `yaml:"min_fragment_length"`  // Shortest prefix/suffix accepted as dynamic evidence
	InterpolationMarker string `yaml:"interpolation_marker"` // Token opening a variable substitution, e.g. "${"
}

// ConcurrencyConfig controls parallel classification
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"` // Classification workers; 1 forces sequential evaluation
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"` // Footer on Markdown reports
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "l10n/en-US/messages.ftl",
		},
		Corpus: CorpusConfig{
			Roots:        []string{"web"},
			Extensions:   []string{".js", ".mjs", ".html"},
			CacheEnabled: true,
		},
		Match: MatchConfig{
			MinFragmentLength:   6,
			InterpolationMarker: "${",
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
