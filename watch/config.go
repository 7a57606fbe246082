package watch

import "time"

const defaultDebounceMS = 100

// Config holds watcher parameters.
type Config struct {
	DebounceMS int `json:"debounce_ms,omitempty" yaml:"debounce_ms,omitempty"` // Quiet period before a batch is published.
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() Config {
	return Config{DebounceMS: defaultDebounceMS}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.DebounceMS > 0 {
		c.DebounceMS = source.DebounceMS
	}
}

func (c *Config) debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return defaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}
