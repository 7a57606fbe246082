package seqpath_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tailored-agentic-units/seqkit/seqpath"
)

func TestParseDirListSort(t *testing.T) {
	for _, name := range []string{"name", "Extension", "SIZE", "time"} {
		if _, err := seqpath.ParseDirListSort(name); err != nil {
			t.Errorf("ParseDirListSort(%q): %v", name, err)
		}
	}
	if _, err := seqpath.ParseDirListSort("random"); !errors.Is(err, seqpath.ErrUnknownSort) {
		t.Errorf("err = %v, want ErrUnknownSort", err)
	}
}

func TestDirListOptions_JSON(t *testing.T) {
	input := `{"sort":"Time","sort_reverse":true,"seq":true,"seq_exts":[".exr"],"seq_max_digits":6}`

	var got seqpath.DirListOptions
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := seqpath.DirListOptions{
		Sort:         seqpath.SortTime,
		SortReverse:  true,
		Seq:          true,
		SeqExts:      []string{".exr"},
		SeqMaxDigits: 6,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`{"sort":"Color"}`), &got); !errors.Is(err, seqpath.ErrUnknownSort) {
		t.Errorf("err = %v, want ErrUnknownSort", err)
	}
}

func TestDirListOptions_PathOptions(t *testing.T) {
	got := seqpath.DirListOptions{}.PathOptions()
	want := seqpath.Options{SeqMaxDigits: 9}
	if got != want {
		t.Errorf("PathOptions() = %+v, want %+v", got, want)
	}
}

func TestUserPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, u := range seqpath.UserPaths() {
		parsed, err := seqpath.ParseUserPath(u.String())
		if err != nil || parsed != u {
			t.Errorf("ParseUserPath(%q) = %v, %v", u.String(), parsed, err)
		}
	}

	dir, err := seqpath.UserPathDir(seqpath.UserDownloads)
	if err != nil {
		t.Fatalf("UserPathDir: %v", err)
	}
	if want := filepath.Join(home, "Downloads"); dir != want {
		t.Errorf("UserPathDir(Downloads) = %q, want %q", dir, want)
	}

	if _, err := seqpath.ParseUserPath("Music"); !errors.Is(err, seqpath.ErrUnknownUserPath) {
		t.Errorf("err = %v, want ErrUnknownUserPath", err)
	}
}

func TestDrives(t *testing.T) {
	if len(seqpath.Drives()) == 0 {
		t.Error("Drives() returned no entries")
	}
}
