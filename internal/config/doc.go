// Package config defines the run options for the linker tool and loads
// them from an optional YAML file. CLI flags override file values; file
// values override defaults.
package config
