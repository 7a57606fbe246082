// Package settings persists small named documents (recent files, browser
// state) as files under a settings directory.
package settings

import "context"

// Entry is one stored document. Keys are /-separated relative paths such as
// "recent.json".
type Entry struct {
	Key   string
	Value []byte
}

// Store reads and writes settings documents. Implementations perform I/O on
// every call.
type Store interface {
	// List returns every stored key in lexical order.
	List(ctx context.Context) ([]string, error)
	// Load returns the entries for keys. A missing key fails with
	// ErrKeyNotFound.
	Load(ctx context.Context, keys ...string) ([]Entry, error)
	// Save creates or replaces entries.
	Save(ctx context.Context, entries ...Entry) error
	// Delete removes entries. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
