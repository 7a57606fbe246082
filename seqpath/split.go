package seqpath

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDotFile reports whether name starts with a dot followed by at least one
// more character.
func IsDotFile(name string) bool {
	return len(name) > 1 && name[0] == '.'
}

// AppendSeparator adds a trailing '/' to a non-empty path that lacks one.
func AppendSeparator(s string) string {
	if s == "" || strings.IndexByte(pathSeparators, s[len(s)-1]) >= 0 {
		return s
	}
	return s + "/"
}

// Split breaks a path into its root (volume and leading separator, if any)
// followed by each non-empty component.
//
//	Split("/tmp/render") // ["/", "tmp", "render"]
//	Split("a/b/c/")      // ["a", "b", "c"]
func Split(path string) []string {
	var out []string

	root := filepath.VolumeName(path)
	rest := path[len(root):]
	if rest != "" && os.IsPathSeparator(rest[0]) {
		root += rest[:1]
		rest = rest[1:]
	}
	if root != "" {
		out = append(out, root)
	}

	for _, part := range strings.FieldsFunc(rest, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	}) {
		out = append(out, part)
	}
	return out
}
