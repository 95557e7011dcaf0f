package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options are the tunable settings of one linker invocation.
type Options struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
	// ErrorPolicy is "failfast" (stop a phase at its first resolution
	// error) or "collect" (report every resolution error in a phase
	// before failing it).
	ErrorPolicy string `yaml:"error_policy"`
}

// Default returns the options used when nothing overrides them.
func Default() Options {
	return Options{
		LogLevel:    "info",
		LogFormat:   "text",
		ErrorPolicy: "failfast",
	}
}

// Load reads options from a YAML file, layered over the defaults. Fields
// absent from the file keep their default values.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return opts, opts.Validate()
}

// Validate checks every field against its allowed values.
func (o Options) Validate() error {
	switch strings.ToLower(o.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", o.LogLevel)
	}
	switch strings.ToLower(o.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", o.LogFormat)
	}
	switch strings.ToLower(o.ErrorPolicy) {
	case "failfast", "collect":
	default:
		return fmt.Errorf("invalid error_policy %q: must be 'failfast' or 'collect'", o.ErrorPolicy)
	}
	return nil
}

// SlogLevel translates LogLevel into a slog.Level.
func (o Options) SlogLevel() slog.Level {
	switch strings.ToLower(o.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
