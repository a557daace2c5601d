package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	// ErrDecode indicates file content is not valid UTF-8.
	ErrDecode = errors.New("invalid UTF-8 content")

	// ErrNoFilename indicates a save was requested for an unnamed buffer.
	ErrNoFilename = errors.New("no file name")

	// ErrOutOfBounds is wrapped by every BoundsError.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// FileError represents a failed open or save.
type FileError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// BoundsError is the panic value used when a Line or Buffer edit receives a
// position outside its valid range. Reaching one means the caller computed a
// position that no input sequence should produce.
type BoundsError struct {
	Op    string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
