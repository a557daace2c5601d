package renderer

import (
	"strings"

	"github.com/xolve/hecto/internal/renderer/backend"
	"github.com/xolve/hecto/internal/renderer/core"
	"github.com/xolve/hecto/internal/renderer/statusline"
)

// EmptyRowMarker is drawn on rows past the end of the buffer.
const EmptyRowMarker = '~'

// Option configures a Renderer.
type Option func(*Renderer)

// WithWelcome sets the welcome text shown over an empty buffer.
func WithWelcome(text string) Option {
	return func(r *Renderer) {
		r.welcome = text
		r.showWelcome = text != ""
	}
}

// WithoutWelcome disables the welcome text.
func WithoutWelcome() Option {
	return func(r *Renderer) {
		r.showWelcome = false
	}
}

// Renderer draws frames to a backend: the text area, the empty-row markers,
// the optional welcome text and the status bar on the row below the text.
type Renderer struct {
	backend     backend.Backend
	status      *statusline.StatusLine
	welcome     string
	showWelcome bool
	textStyle   core.Style
	frameCount  uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts ...Option) *Renderer {
	r := &Renderer{
		backend:   b,
		status:    statusline.New(),
		textStyle: core.DefaultStyle(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TextArea returns the text area size for a terminal of the given size:
// the full width and every row except the status bar.
func TextArea(width, height int) (int, int) {
	return max(width, 1), max(height-1, 1)
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// Render draws f and flushes it to the display.
func (r *Renderer) Render(f Frame) {
	r.backend.HideCursor()
	r.backend.Clear()

	for row := 0; row < f.Height; row++ {
		switch {
		case row < len(f.Lines):
			r.drawText(row, f.Lines[row], f.Width)
		case f.Empty && r.showWelcome && row == f.Height/2:
			r.drawText(row, r.welcomeLine(f.Width), f.Width)
		default:
			r.backend.SetCell(0, row, core.NewStyledCell(EmptyRowMarker, r.textStyle))
		}
	}

	r.status.Resize(f.Width)
	r.status.Update(f.Status)
	r.status.Render(r.backend, f.Height)

	if !f.Status.Prompting {
		r.backend.ShowCursor(f.Cursor.Col, f.Cursor.Row)
	}

	r.backend.Show()
	r.frameCount++
}

// drawText draws one row of text clipped to width. Tabs and other zero-width
// runes occupy a single blank column.
func (r *Renderer) drawText(row int, text string, width int) {
	col := 0
	for _, ch := range text {
		if col >= width {
			return
		}

		w := core.RuneWidth(ch)
		if w < 1 {
			ch, w = ' ', 1
		}
		r.backend.SetCell(col, row, core.NewStyledCell(ch, r.textStyle))
		if w == 2 {
			r.backend.SetCell(col+1, row, core.Cell{Style: r.textStyle})
		}
		col += w
	}
}

// welcomeLine centers the welcome text after the empty-row marker.
func (r *Renderer) welcomeLine(width int) string {
	text := r.welcome
	if len(text) > width {
		text = text[:width]
	}

	padding := (width - len(text)) / 2
	if padding == 0 {
		return text
	}
	return string(EmptyRowMarker) + strings.Repeat(" ", padding-1) + text
}
