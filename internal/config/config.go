// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading accepts context.Context as the first parameter.
// - Validation failures wrap ErrInvalidConfig; load failures wrap ErrLoadConfig.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterPath points at a roster document (JSON or YAML) loaded onto the
	// waiting list at start and on reset. Empty starts with no players.
	RosterPath string `koanf:"roster_path"`

	// Strategy selects the default balancing strategy: greedy or tournament.
	Strategy string `koanf:"strategy"`

	// MaxSquads caps the squad count accepted over HTTP. Zero disables the cap.
	MaxSquads int `koanf:"max_squads"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":9080",
		Strategy: "greedy",
	}
}
