// Package seqpath decomposes file and URL paths into protocol, directory,
// base name, frame number, extension, and request components, and groups
// numbered files into frame sequences.
//
// Example: file:///tmp/render.0001.exr?user=foo;password=bar
//
//	Protocol: file://
//	Dir:      /tmp/
//	Base:     render.
//	Num:      0001
//	Pad:      4
//	Ext:      .exr
//	Request:  ?user=foo;password=bar
//
// Parsing never fails; components that are not present are left empty.
// Every component is an ordinary field and Get rebuilds the path from the
// current field values.
package seqpath

import (
	"slices"
	"strconv"
	"strings"
)

const (
	numbers        = "0123456789#"
	pathSeparators = "/\\"
)

// Path is a path split into its components.
type Path struct {
	Protocol string
	Dir      string
	Base     string
	Num      string
	Pad      int
	Ext      string
	Request  string

	// Frames is the frame range covered by the path. It is meaningful only
	// when Num is set.
	Frames Range

	opts Options
}

// Parse splits s using DefaultOptions.
func Parse(s string) Path {
	return ParseWithOptions(s, DefaultOptions())
}

// ParseWithOptions splits s into its components.
// A non-positive SeqMaxDigits selects the default.
func ParseWithOptions(s string, opts Options) Path {
	opts = opts.normalized()
	p := Path{opts: opts}
	size := len(s)

	if i := strings.IndexByte(s, '?'); i >= 0 {
		p.Request = s[i:]
		size = i
	}

	protocolSize := 0
	for i := 0; i+3 < size; i++ {
		if s[i] == ':' && s[i+1] == '/' && s[i+2] == '/' {
			protocolSize = i + 3
			p.Protocol = s[:protocolSize]
			break
		}
	}

	dirEnd := protocolSize
	if i := strings.LastIndexAny(s[protocolSize:size], pathSeparators); i >= 0 {
		dirEnd = protocolSize + i + 1
		p.Dir = s[protocolSize:dirEnd]
	} else if protocolSize == 0 && size > 1 && s[0] >= 'A' && s[0] <= 'Z' && s[1] == ':' {
		dirEnd = 2
		p.Dir = s[:2]
	}

	if i := strings.LastIndexByte(s[dirEnd:size], '.'); i > 0 && dirEnd+i < size-1 {
		p.Ext = s[dirEnd+i : size]
		size = dirEnd + i
	}

	if numPos := findNum(s, dirEnd, size, opts); numPos >= 0 {
		p.Num = s[numPos:size]
		p.Pad = padFor(p.Num, opts)
		frame := parseFrame(p.Num)
		p.Frames = Range{Min: frame, Max: frame}
		size = numPos
	}

	if size > dirEnd {
		p.Base = s[dirEnd:size]
	}
	return p
}

// findNum returns the start of the trailing frame number in s[start:end],
// or -1.
func findNum(s string, start, end int, opts Options) int {
	pos := -1
	for i := end - 1; i >= start; i-- {
		if strings.IndexByte(numbers, s[i]) < 0 {
			break
		}
		pos = i
	}
	if pos < 0 || end-pos > opts.SeqMaxDigits {
		return -1
	}
	if opts.SeqNegative && pos > start && s[pos-1] == '-' {
		pos--
	}
	return pos
}

func padFor(num string, opts Options) int {
	switch {
	case num[0] == '0' || num[0] == '#':
		return len(num)
	case opts.SeqNegative && num[0] == '-' && len(num) > 1 && num[1] == '0':
		return len(num) - 1
	}
	return 0
}

// parseFrame converts a frame number to an integer. Wildcards and
// malformed numbers yield 0.
func parseFrame(num string) int64 {
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Join parses dir and fileName joined with a separator.
func Join(dir, fileName string, opts Options) Path {
	return ParseWithOptions(AppendSeparator(dir)+fileName, opts)
}

// Get returns the full path built from the current components.
func (p Path) Get() string {
	return p.Protocol + p.Dir + p.FileName() + p.Request
}

func (p Path) String() string {
	return p.Get()
}

// FileName returns the base name, padded frame number, and extension.
func (p Path) FileName() string {
	return p.Base + padNum(p.Num, p.Pad) + p.Ext
}

// padNum left-pads the digits of a numeric frame number with zeros up to
// pad. Numbers that already have pad digits, and wildcards, are unchanged.
func padNum(num string, pad int) string {
	if num == "" || pad <= 0 {
		return num
	}
	sign, digits := "", num
	if num[0] == '-' {
		sign, digits = "-", num[1:]
	}
	if digits == "" || len(digits) >= pad || strings.ContainsFunc(digits, notDigit) {
		return num
	}
	return sign + strings.Repeat("0", pad-len(digits)) + digits
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

// SetFileName replaces the base name, frame number, padding, extension, and
// frames with those parsed from name.
func (p *Path) SetFileName(name string) {
	f := ParseWithOptions(name, p.options())
	p.Base, p.Num, p.Pad, p.Ext, p.Frames = f.Base, f.Num, f.Pad, f.Ext, f.Frames
}

// Options returns the options the path was parsed with.
func (p Path) Options() Options {
	return p.options()
}

func (p Path) options() Options {
	if p.opts.SeqMaxDigits == 0 {
		return DefaultOptions()
	}
	return p.opts
}

func (p Path) IsEmpty() bool     { return p.Get() == "" }
func (p Path) HasProtocol() bool { return p.Protocol != "" }
func (p Path) HasDir() bool      { return p.Dir != "" }
func (p Path) HasBase() bool     { return p.Base != "" }
func (p Path) HasNum() bool      { return p.Num != "" }
func (p Path) HasExt() bool      { return p.Ext != "" }
func (p Path) HasRequest() bool  { return p.Request != "" }

// IsAbs reports whether the directory is rooted or starts with a drive.
func (p Path) IsAbs() bool {
	switch {
	case p.Dir == "":
		return false
	case strings.IndexByte(pathSeparators, p.Dir[0]) >= 0:
		return true
	case len(p.Dir) > 1 && p.Dir[1] == ':':
		return true
	}
	return false
}

// TestExt reports whether the extension matches one of exts, ignoring case.
func (p Path) TestExt(exts []string) bool {
	return slices.ContainsFunc(exts, func(ext string) bool {
		return strings.EqualFold(ext, p.Ext)
	})
}

// Equal reports whether both paths render the same and cover the same
// frames.
func (p Path) Equal(other Path) bool {
	return p.Get() == other.Get() && p.Frames == other.Frames
}
