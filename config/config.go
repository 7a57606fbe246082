// Package config assembles the configuration of every seqkit package and
// loads it from JSON or YAML files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/seqkit/browser"
	"github.com/tailored-agentic-units/seqkit/recent"
	"github.com/tailored-agentic-units/seqkit/seqpath"
	"github.com/tailored-agentic-units/seqkit/settings"
	"github.com/tailored-agentic-units/seqkit/watch"
)

// ErrUnsupportedFormat is returned for config files that are neither JSON
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

const defaultObserver = "slog"

// Config holds every package section. Each section delegates to its
// package's DefaultConfig and Merge.
type Config struct {
	// Path replaces the default frame number options when set.
	Path     *seqpath.Options `json:"path,omitempty" yaml:"path,omitempty"`
	Settings settings.Config  `json:"settings" yaml:"settings"`
	Recent   recent.Config    `json:"recent" yaml:"recent"`
	Watch    watch.Config     `json:"watch" yaml:"watch"`
	Browser  browser.Config   `json:"browser" yaml:"browser"`
	Observer string           `json:"observer,omitempty" yaml:"observer,omitempty"` // Registered observability observer name.
}

// DefaultConfig returns a Config with defaults for all sections.
func DefaultConfig() Config {
	return Config{
		Settings: settings.DefaultConfig(),
		Recent:   recent.DefaultConfig(),
		Watch:    watch.DefaultConfig(),
		Browser:  browser.DefaultConfig(),
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c, delegating to each
// section's Merge method.
func (c *Config) Merge(source *Config) {
	if source.Path != nil {
		opts := *source.Path
		c.Path = &opts
	}
	c.Settings.Merge(&source.Settings)
	c.Recent.Merge(&source.Recent)
	c.Watch.Merge(&source.Watch)
	c.Browser.Merge(&source.Browser)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// PathOptions returns the configured frame number options.
func (c *Config) PathOptions() seqpath.Options {
	if c.Path == nil {
		return seqpath.DefaultOptions()
	}
	return *c.Path
}

// LoadConfig reads a .json, .yaml, or .yml file, merges it with defaults,
// and returns the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		err = json.Unmarshal(data, &loaded)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
