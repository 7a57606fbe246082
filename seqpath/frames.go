package seqpath

import (
	"strconv"
	"strings"
)

// Range is an inclusive frame range.
type Range struct {
	Min int64 `json:"min" yaml:"min"`
	Max int64 `json:"max" yaml:"max"`
}

// Expand returns the smallest range covering r and other.
func (r Range) Expand(other Range) Range {
	return Range{Min: min(r.Min, other.Min), Max: max(r.Max, other.Max)}
}

// Single reports whether the range covers one frame.
func (r Range) Single() bool {
	return r.Min == r.Max
}

// FormatFrame formats a frame number with its digits zero-padded to pad.
func FormatFrame(frame int64, pad int) string {
	s := strconv.FormatInt(frame, 10)
	sign := ""
	if frame < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) < pad {
		s = strings.Repeat("0", pad-len(s)) + s
	}
	return sign + s
}

// IsSeq reports whether the path covers more than one frame.
func (p Path) IsSeq() bool {
	return p.HasNum() && !p.Frames.Single()
}

// HasSeqWildcard reports whether the frame number contains '#'.
func (p Path) HasSeqWildcard() bool {
	return strings.Contains(p.Num, "#")
}

// FrameAt returns the file name for the given frame, prefixed with the
// directory when withDir is set. Paths without a frame number are returned
// unchanged.
func (p Path) FrameAt(frame int64, withDir bool) string {
	name := p.Base + p.Ext
	if p.HasNum() {
		name = p.Base + FormatFrame(frame, p.Pad) + p.Ext
	}
	if withDir {
		return p.Dir + name
	}
	return name
}

// FrameRange formats the frame range as "1" or "1-100".
func (p Path) FrameRange() string {
	if !p.HasNum() {
		return ""
	}
	if p.Frames.Single() {
		return FormatFrame(p.Frames.Min, p.Pad)
	}
	return FormatFrame(p.Frames.Min, p.Pad) + "-" + FormatFrame(p.Frames.Max, p.Pad)
}

// Seq reports whether other is a frame of the same sequence as p.
func (p Path) Seq(other Path) bool {
	return p.HasNum() &&
		other.HasNum() &&
		p.Protocol == other.Protocol &&
		p.Dir == other.Dir &&
		p.Base == other.Base &&
		p.Ext == other.Ext
}

// AddSeq merges other into the sequence when Seq reports true.
func (p *Path) AddSeq(other Path) bool {
	if !p.Seq(other) {
		return false
	}
	p.Frames = p.Frames.Expand(other.Frames)
	p.Pad = max(p.Pad, other.Pad)
	return true
}
