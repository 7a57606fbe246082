package seqpath

import "errors"

// Sentinel errors for directory and option operations.
var (
	ErrListFailed      = errors.New("list failed")
	ErrUnknownSort     = errors.New("unknown sort")
	ErrUnknownUserPath = errors.New("unknown user path")
)
