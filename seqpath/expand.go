package seqpath

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ExpandSeq searches the directory of file for the frames of its sequence.
// It reports false when file has no frame number, its extension is not in
// seqExts (when given), or no matching frame exists. The returned path is
// renumbered to the first frame.
func ExpandSeq(ctx context.Context, file string, opts Options, seqExts ...string) (Path, bool, error) {
	opts = opts.normalized()
	file = filepath.Clean(file)
	target := ParseWithOptions(file, opts)
	if !target.HasNum() || !seqExt(target, seqExts) {
		return target, false, nil
	}

	dir := filepath.Dir(file)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return target, false, fmt.Errorf("%w: %s: %v", ErrListFailed, dir, err)
	}

	var (
		out   Path
		found bool
	)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return target, false, err
		}
		if e.IsDir() {
			continue
		}

		entry := ParseWithOptions(filepath.Join(dir, e.Name()), opts)
		if !found {
			if len(entry.Num) < opts.SeqMaxDigits && target.Seq(entry) {
				out, found = entry, true
			}
			continue
		}
		out.AddSeq(entry)
	}

	if !found {
		return target, false, nil
	}
	if out.IsSeq() {
		out.Num = FormatFrame(out.Frames.Min, out.Pad)
	}
	return out, true, nil
}
