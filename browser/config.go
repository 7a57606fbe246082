package browser

import (
	"slices"

	"github.com/tailored-agentic-units/seqkit/seqpath"
)

// Config holds browser parameters.
type Config struct {
	// DirList replaces the default listing options when set.
	DirList    *seqpath.DirListOptions `json:"dir_list,omitempty" yaml:"dir_list,omitempty"`
	Extensions []string                `json:"extensions,omitempty" yaml:"extensions,omitempty"` // Extension filter choices.
}

// DefaultConfig returns the default browser configuration.
func DefaultConfig() Config {
	opts := seqpath.DefaultDirListOptions()
	return Config{DirList: &opts}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.DirList != nil {
		opts := *source.DirList
		c.DirList = &opts
	}
	if len(source.Extensions) > 0 {
		c.Extensions = slices.Clone(source.Extensions)
	}
}

func (c *Config) dirList() seqpath.DirListOptions {
	if c.DirList == nil {
		return seqpath.DefaultDirListOptions()
	}
	return *c.DirList
}
