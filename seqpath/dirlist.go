package seqpath

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// DirEntry is one row of a directory listing. A sequence of numbered files
// is reported as a single entry whose Path covers every frame.
type DirEntry struct {
	Path    Path
	IsDir   bool
	Size    int64     // Sum of all frames for sequences; 0 for directories.
	ModTime time.Time // Latest modification across all frames.
}

// DirList lists dir, applying the filters, sequence grouping, and ordering
// in opts. Sequence entries are renumbered to their first frame.
func DirList(ctx context.Context, dir string, opts DirListOptions) ([]DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrListFailed, dir, err)
	}

	pathOpts := opts.PathOptions()
	var out []DirEntry

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := e.Name()
		isDir := e.IsDir()
		path := ParseWithOptions(filepath.Join(dir, name), pathOpts)

		if !keepEntry(name, isDir, path, opts) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("%w: %s: %v", ErrListFailed, name, err)
		}

		var size int64
		if !isDir {
			size = info.Size()
		}

		if !isDir && opts.Seq && seqExt(path, opts.SeqExts) && addToSeq(out, path, size, info.ModTime()) {
			continue
		}

		out = append(out, DirEntry{
			Path:    path,
			IsDir:   isDir,
			Size:    size,
			ModTime: info.ModTime(),
		})
	}

	for i := range out {
		if p := &out[i].Path; p.IsSeq() {
			p.Num = FormatFrame(p.Frames.Min, p.Pad)
		}
	}

	sortEntries(out, opts)
	return out, nil
}

func keepEntry(name string, isDir bool, path Path, opts DirListOptions) bool {
	switch {
	case !opts.Hidden && IsDotFile(name):
		return false
	case !isDir && len(opts.FilterExt) > 0 && !path.TestExt(opts.FilterExt):
		return false
	case opts.Filter != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(opts.Filter)):
		return false
	case opts.FilterFiles && !isDir:
		return false
	}
	return true
}

func seqExt(path Path, exts []string) bool {
	return len(exts) == 0 || path.TestExt(exts)
}

func addToSeq(out []DirEntry, path Path, size int64, modTime time.Time) bool {
	for i := range out {
		if out[i].IsDir {
			continue
		}
		if out[i].Path.AddSeq(path) {
			out[i].Size += size
			if modTime.After(out[i].ModTime) {
				out[i].ModTime = modTime
			}
			return true
		}
	}
	return false
}

func sortEntries(out []DirEntry, opts DirListOptions) {
	var compare func(a, b DirEntry) int
	switch opts.Sort {
	case SortExtension:
		compare = func(a, b DirEntry) int { return cmp.Compare(a.Path.Ext, b.Path.Ext) }
	case SortSize:
		compare = func(a, b DirEntry) int { return cmp.Compare(a.Size, b.Size) }
	case SortTime:
		compare = func(a, b DirEntry) int { return a.ModTime.Compare(b.ModTime) }
	default:
		compare = func(a, b DirEntry) int { return cmp.Compare(a.Path.FileName(), b.Path.FileName()) }
	}
	if opts.SortReverse {
		forward := compare
		compare = func(a, b DirEntry) int { return forward(b, a) }
	}
	slices.SortStableFunc(out, compare)

	// Directories first.
	slices.SortStableFunc(out, func(a, b DirEntry) int {
		switch {
		case a.IsDir == b.IsDir:
			return 0
		case a.IsDir:
			return -1
		}
		return 1
	})
}
