package service

import "errors"

var (
	// ErrShareNotFound indicates the configured share name is not among
	// the shared folders the NAS reports for this session. Nothing has
	// been written remotely when this is returned.
	ErrShareNotFound = errors.New("share not found on file station")
)
