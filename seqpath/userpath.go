package seqpath

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// UserPath names a well-known per-user directory.
type UserPath int

const (
	UserHome UserPath = iota
	UserDesktop
	UserDocuments
	UserDownloads
)

var userPathNames = []string{"Home", "Desktop", "Documents", "Downloads"}

// UserPaths returns every UserPath in declaration order.
func UserPaths() []UserPath {
	return []UserPath{UserHome, UserDesktop, UserDocuments, UserDownloads}
}

func (u UserPath) String() string {
	if u < 0 || int(u) >= len(userPathNames) {
		return fmt.Sprintf("UserPath(%d)", int(u))
	}
	return userPathNames[u]
}

// ParseUserPath converts a user path name, ignoring case.
func ParseUserPath(name string) (UserPath, error) {
	for i, n := range userPathNames {
		if strings.EqualFold(n, name) {
			return UserPath(i), nil
		}
	}
	return UserHome, fmt.Errorf("%w: %q", ErrUnknownUserPath, name)
}

// UserPathDir returns the directory for u under the current user's home.
func UserPathDir(u UserPath) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home: %w", err)
	}
	switch u {
	case UserHome:
		return home, nil
	case UserDesktop, UserDocuments, UserDownloads:
		return filepath.Join(home, u.String()), nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownUserPath, int(u))
}

// Drives returns the filesystem root followed by mounted volumes.
func Drives() []string {
	switch runtime.GOOS {
	case "windows":
		var out []string
		for c := 'A'; c <= 'Z'; c++ {
			root := string(c) + `:\`
			if _, err := os.Stat(root); err == nil {
				out = append(out, root)
			}
		}
		return out
	case "darwin":
		return append([]string{"/"}, subdirs("/Volumes")...)
	default:
		return append([]string{"/"}, subdirs("/mnt")...)
	}
}

func subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out
}
