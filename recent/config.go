package recent

const defaultMax = 10

// Config holds recent-files parameters.
type Config struct {
	Max int `json:"max,omitempty" yaml:"max,omitempty"` // Number of files remembered.
}

// DefaultConfig returns the default recent-files configuration.
func DefaultConfig() Config {
	return Config{Max: defaultMax}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Max > 0 {
		c.Max = source.Max
	}
}
