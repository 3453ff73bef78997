package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/golaunch/internal/index"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// LaunchRef is either a built-in reference ("package/launch_name") or a
	// path to a .launch.hcl file or directory.
	LaunchRef string

	// PrefixPath overrides the GOLAUNCH_PREFIX_PATH environment variable
	// when non-empty (colon-separated install prefixes).
	PrefixPath string

	// Format selects the plan encoding: "yaml" or "json".
	Format string

	// Flatten expands include directives into the plan.
	Flatten bool

	// OutputPath writes the plan to a file instead of standard output.
	OutputPath string

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LaunchRef == "" {
		return nil, errors.New("LaunchRef is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = "yaml"
	}
	if cfg.Format != "yaml" && cfg.Format != "json" {
		return nil, fmt.Errorf("invalid format %q: must be 'yaml' or 'json'", cfg.Format)
	}

	return &cfg, nil
}

// NewIndexForConfig builds a package index from a Config, falling back to
// the environment when no explicit prefix path is configured.
func NewIndexForConfig(cfg *Config) *index.Index {
	if cfg.PrefixPath != "" {
		return index.New(filepath.SplitList(cfg.PrefixPath)...)
	}
	return index.FromEnv()
}
