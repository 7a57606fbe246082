package watch

import "errors"

// Sentinel errors for watcher operations.
var (
	ErrClosed      = errors.New("watcher closed")
	ErrWatchFailed = errors.New("watch failed")
)
