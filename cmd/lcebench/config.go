package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Config holds lcebench's tunables. Fields mirror the CLI flags; a
// config file sets defaults that flags then override.
type Config struct {
	Mode        string `json:"mode,omitempty"`
	Path        string `json:"path,omitempty"`
	PrefixLen   int    `json:"prefix_len,omitempty"`
	Tau         int    `json:"tau,omitempty"`
	Parallelism int    `json:"parallelism,omitempty"`
	Seed        uint64 `json:"seed,omitempty"`
	Queries     int    `json:"queries,omitempty"`
	Out         string `json:"out,omitempty"`
}

// DefaultConfig returns lcebench's defaults.
func DefaultConfig() Config {
	return Config{
		Mode:        "random",
		PrefixLen:   1 << 20,
		Tau:         32,
		Parallelism: 0,
		Seed:        1,
		Queries:     100000,
	}
}

var errConfigFileRead = errors.New("lcebench: failed to read config file")

// LoadConfigFile reads an optional HuJSON (JSON-with-comments) config
// file and merges it onto defaults. A missing path is not an error;
// an unreadable or malformed one is.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied config path
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", errConfigFileRead, path, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("lcebench: invalid JSONC in %s: %w", path, err)
	}

	var fileCfg Config

	if err := json.Unmarshal(standardized, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("lcebench: invalid JSON in %s: %w", path, err)
	}

	mergeConfig(&cfg, fileCfg)

	return cfg, nil
}

func mergeConfig(base *Config, overlay Config) {
	if overlay.Mode != "" {
		base.Mode = overlay.Mode
	}
	if overlay.Path != "" {
		base.Path = overlay.Path
	}
	if overlay.PrefixLen != 0 {
		base.PrefixLen = overlay.PrefixLen
	}
	if overlay.Tau != 0 {
		base.Tau = overlay.Tau
	}
	if overlay.Parallelism != 0 {
		base.Parallelism = overlay.Parallelism
	}
	if overlay.Seed != 0 {
		base.Seed = overlay.Seed
	}
	if overlay.Queries != 0 {
		base.Queries = overlay.Queries
	}
	if overlay.Out != "" {
		base.Out = overlay.Out
	}
}
