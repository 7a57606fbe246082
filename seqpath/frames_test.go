package seqpath_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/seqkit/seqpath"
)

func TestFormatFrame(t *testing.T) {
	tests := []struct {
		frame int64
		pad   int
		want  string
	}{
		{0, 0, "0"},
		{1, 4, "0001"},
		{-1, 4, "-0001"},
		{12345, 3, "12345"},
		{100, 6, "000100"},
	}
	for _, tt := range tests {
		if got := seqpath.FormatFrame(tt.frame, tt.pad); got != tt.want {
			t.Errorf("FormatFrame(%d, %d) = %q, want %q", tt.frame, tt.pad, got, tt.want)
		}
	}
}

func TestPath_FrameAt(t *testing.T) {
	p := seqpath.Parse("/tmp/render.0001.exr")

	if got, want := p.FrameAt(42, false), "render.0042.exr"; got != want {
		t.Errorf("FrameAt(42, false) = %q, want %q", got, want)
	}
	if got, want := p.FrameAt(42, true), "/tmp/render.0042.exr"; got != want {
		t.Errorf("FrameAt(42, true) = %q, want %q", got, want)
	}

	plain := seqpath.Parse("/tmp/render.exr")
	if got, want := plain.FrameAt(42, true), "/tmp/render.exr"; got != want {
		t.Errorf("FrameAt on plain file = %q, want %q", got, want)
	}
}

func TestPath_AddSeq(t *testing.T) {
	p := seqpath.Parse("/tmp/render.1.exr")

	if p.IsSeq() {
		t.Fatal("single frame reported as sequence")
	}
	if got, want := p.FrameRange(), "1"; got != want {
		t.Errorf("FrameRange() = %q, want %q", got, want)
	}

	if !p.AddSeq(seqpath.Parse("/tmp/render.100.exr")) {
		t.Fatal("AddSeq(render.100.exr) = false, want true")
	}
	if !p.AddSeq(seqpath.Parse("/tmp/render.0050.exr")) {
		t.Fatal("AddSeq(render.0050.exr) = false, want true")
	}

	rejected := []string{
		"/tmp/render.2.png",
		"/tmp/other.2.exr",
		"/var/render.2.exr",
		"/tmp/render.exr",
		"file:///tmp/render.2.exr",
	}
	for _, r := range rejected {
		if p.AddSeq(seqpath.Parse(r)) {
			t.Errorf("AddSeq(%q) = true, want false", r)
		}
	}

	if !p.IsSeq() {
		t.Error("IsSeq() = false, want true")
	}
	if diff := cmp.Diff(seqpath.Range{Min: 1, Max: 100}, p.Frames); diff != "" {
		t.Errorf("Frames mismatch (-want +got):\n%s", diff)
	}
	if p.Pad != 4 {
		t.Errorf("Pad = %d, want 4", p.Pad)
	}
	if got, want := p.FrameRange(), "0001-0100"; got != want {
		t.Errorf("FrameRange() = %q, want %q", got, want)
	}
}

func TestPath_HasSeqWildcard(t *testing.T) {
	if !seqpath.Parse("render.####.exr").HasSeqWildcard() {
		t.Error("HasSeqWildcard() = false, want true")
	}
	if seqpath.Parse("render.0001.exr").HasSeqWildcard() {
		t.Error("HasSeqWildcard() = true, want false")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"/", []string{"/"}},
		{"/tmp/render", []string{"/", "tmp", "render"}},
		{"a/b/c/", []string{"a", "b", "c"}},
		{"a//b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, seqpath.Split(tt.path)); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}
