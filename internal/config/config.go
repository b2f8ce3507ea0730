// Package config loads the optional on-disk configuration for the plifront
// command. Everything in it has a flag or built-in default, so running
// without a config file is the normal case.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds tool settings read from a TOML file. The zero value is valid
// and means "use the defaults".
type Config struct {
	// Extensions overrides the recognized source file extensions.
	Extensions []string `toml:"extensions"`

	// Report is the default path of the run report. Empty means
	// "<input>.log".
	Report string `toml:"report"`

	// Verbose mirrors per-line verdicts to stderr.
	Verbose bool `toml:"verbose"`
}

// Load reads and validates a config file.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the fields which will be handed to collaborators are
// usable.
func (c Config) Validate() error {
	for _, ext := range c.Extensions {
		trimmed := strings.TrimPrefix(ext, ".")
		if trimmed == "" {
			return fmt.Errorf("extensions: empty entry")
		}
		if strings.ContainsAny(trimmed, "./\\") {
			return fmt.Errorf("extensions: %q is not a bare extension", ext)
		}
	}
	return nil
}
