package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrReadOnly indicates an edit or save was attempted on a read-only engine.
	ErrReadOnly = errors.New("buffer is read-only")
)
