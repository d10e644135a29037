// Package config defines service configuration structures and loading hooks.
package config

import (
	"fmt"
	"strings"
)

// Config contains process configuration shared by the server and the CLI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects the slog handler: json or text.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DatasetPath is a CSV or XLSX file loaded at startup.
	DatasetPath string `koanf:"dataset_path"`
	// DatasetURL is fetched at startup when DatasetPath is empty.
	DatasetURL string `koanf:"dataset_url"`
	// DatasetSheet picks the XLSX sheet; empty means the first one.
	DatasetSheet string `koanf:"dataset_sheet"`
	// FetchTimeoutMS bounds a single remote dataset download.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// ProfilesPath replaces the built-in role profiles when set.
	ProfilesPath string `koanf:"profiles_path"`
	// DefaultLanguage is the category language used when a request has none.
	DefaultLanguage string `koanf:"default_language"`
	// DefaultScope is the population scope used when a request has none.
	DefaultScope string `koanf:"default_scope"`
	// IdentityKey is "name" or "name_club".
	IdentityKey string `koanf:"identity_key"`
	// Dedupe keeps only the first record per identity.
	Dedupe bool `koanf:"dedupe"`
	// DedupeFoldCase ignores case and surrounding whitespace when deduplicating.
	DedupeFoldCase bool `koanf:"dedupe_fold_case"`
	// MaxTopN caps the top-N request parameter.
	MaxTopN int `koanf:"max_top_n"`

	// BreakerMaxFailures opens the fetch circuit after this many consecutive failures.
	BreakerMaxFailures int `koanf:"breaker_max_failures"`
	// BreakerTimeoutMS is how long the fetch circuit stays open.
	BreakerTimeoutMS int `koanf:"breaker_timeout_ms"`

	// MaxUploadBytes limits PUT /dataset bodies.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "json",
		Addr:               ":9080",
		FetchTimeoutMS:     10_000,
		DefaultLanguage:    "es",
		DefaultScope:       "role_eligible",
		IdentityKey:        "name",
		Dedupe:             true,
		MaxTopN:            50,
		BreakerMaxFailures: 3,
		BreakerTimeoutMS:   30_000,
		MaxUploadBytes:     32 << 20,
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.LogFormat != "json" && c.LogFormat != "text":
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	case c.IdentityKey != "name" && c.IdentityKey != "name_club":
		return fmt.Errorf("%w: identity_key %q", ErrInvalidConfig, c.IdentityKey)
	case c.MaxTopN < 1:
		return fmt.Errorf("%w: max_top_n must be positive", ErrInvalidConfig)
	case c.FetchTimeoutMS < 1:
		return fmt.Errorf("%w: fetch_timeout_ms must be positive", ErrInvalidConfig)
	case c.BreakerMaxFailures < 1:
		return fmt.Errorf("%w: breaker_max_failures must be positive", ErrInvalidConfig)
	case c.BreakerTimeoutMS < 0:
		return fmt.Errorf("%w: breaker_timeout_ms must not be negative", ErrInvalidConfig)
	case c.MaxUploadBytes < 1:
		return fmt.Errorf("%w: max_upload_bytes must be positive", ErrInvalidConfig)
	}
	switch strings.ReplaceAll(strings.ToLower(c.DefaultScope), "-", "_") {
	case "full_dataset", "role_eligible", "user_filtered":
	default:
		return fmt.Errorf("%w: default_scope %q", ErrInvalidConfig, c.DefaultScope)
	}
	return nil
}
