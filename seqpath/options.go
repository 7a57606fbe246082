package seqpath

import (
	"fmt"
	"strings"
)

const (
	defaultSeqMaxDigits = 9
)

// Options control how frame numbers are recognized.
type Options struct {
	SeqNegative  bool `json:"seq_negative" yaml:"seq_negative"`     // Treat a leading '-' as part of the number.
	SeqMaxDigits int  `json:"seq_max_digits" yaml:"seq_max_digits"` // Longer digit runs are not frame numbers.
}

// DefaultOptions returns the default parse options.
func DefaultOptions() Options {
	return Options{
		SeqNegative:  true,
		SeqMaxDigits: defaultSeqMaxDigits,
	}
}

func (o Options) normalized() Options {
	if o.SeqMaxDigits <= 0 {
		o.SeqMaxDigits = defaultSeqMaxDigits
	}
	return o
}

// DirListSort selects the ordering of directory entries.
type DirListSort int

const (
	SortName DirListSort = iota
	SortExtension
	SortSize
	SortTime
)

var dirListSortNames = []string{"Name", "Extension", "Size", "Time"}

func (s DirListSort) String() string {
	if s < 0 || int(s) >= len(dirListSortNames) {
		return fmt.Sprintf("DirListSort(%d)", int(s))
	}
	return dirListSortNames[s]
}

// ParseDirListSort converts a sort name, ignoring case.
func ParseDirListSort(name string) (DirListSort, error) {
	for i, n := range dirListSortNames {
		if strings.EqualFold(n, name) {
			return DirListSort(i), nil
		}
	}
	return SortName, fmt.Errorf("%w: %q", ErrUnknownSort, name)
}

func (s DirListSort) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DirListSort) UnmarshalText(text []byte) error {
	v, err := ParseDirListSort(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DirListOptions control DirList filtering, grouping, and ordering.
type DirListOptions struct {
	Sort         DirListSort `json:"sort" yaml:"sort"`
	SortReverse  bool        `json:"sort_reverse" yaml:"sort_reverse"`
	Filter       string      `json:"filter,omitempty" yaml:"filter,omitempty"`         // Case-insensitive file name substring.
	FilterFiles  bool        `json:"filter_files" yaml:"filter_files"`                 // List directories only.
	FilterExt    []string    `json:"filter_ext,omitempty" yaml:"filter_ext,omitempty"` // Keep files with these extensions.
	Seq          bool        `json:"seq" yaml:"seq"`                                   // Group numbered files into sequences.
	SeqExts      []string    `json:"seq_exts,omitempty" yaml:"seq_exts,omitempty"`     // Restrict grouping to these extensions.
	SeqNegative  bool        `json:"seq_negative" yaml:"seq_negative"`
	SeqMaxDigits int         `json:"seq_max_digits" yaml:"seq_max_digits"`
	Hidden       bool        `json:"hidden" yaml:"hidden"` // Include dot files.
}

// DefaultDirListOptions returns options that sort by name and group
// sequences.
func DefaultDirListOptions() DirListOptions {
	return DirListOptions{
		Sort:         SortName,
		Seq:          true,
		SeqNegative:  true,
		SeqMaxDigits: defaultSeqMaxDigits,
	}
}

// PathOptions returns the parse options embedded in o.
func (o DirListOptions) PathOptions() Options {
	return Options{SeqNegative: o.SeqNegative, SeqMaxDigits: o.SeqMaxDigits}.normalized()
}
