package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the directory created under the user config directory.
const AppName = "seqkit"

// Config holds settings store parameters.
type Config struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"` // Settings directory; empty disables persistence.
}

// DefaultConfig returns a configuration with persistence disabled.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
}

// DefaultPath returns the per-user settings directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, AppName), nil
}

// NewStore creates a Store from cfg. It returns a nil Store when Path is
// empty.
func NewStore(cfg *Config) (Store, error) {
	if cfg.Path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSaveFailed, cfg.Path, err)
	}
	return NewFileStore(cfg.Path), nil
}
