package engine

import (
	"github.com/xolve/hecto/internal/engine/buffer"
)

// Default viewport size used until the first ReconcileViewport call.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithBuffer sets the buffer to edit.
func WithBuffer(b *buffer.Buffer) Option {
	return func(e *Engine) {
		e.buf = b
	}
}

// WithViewportSize sets the initial viewport size.
func WithViewportSize(width, height int) Option {
	return func(e *Engine) {
		e.view.Resize(width, height)
	}
}

// WithReadOnly creates a read-only engine.
// Edit and save operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
