// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors are wrapped via this package's sentinel errors.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogDir is the directory holding the three catalog CSV files.
	CatalogDir string `koanf:"catalog_dir"`

	// MaxAlternatives caps the number of partial-coverage passes per request.
	MaxAlternatives int `koanf:"max_alternatives"`

	// MaxTeamNames caps the team_names list accepted per request.
	MaxTeamNames int `koanf:"max_team_names"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":4000",
		CatalogDir:      "data",
		MaxAlternatives: 500,
		MaxTeamNames:    50,
	}
}
