// Package statusline provides the status bar and prompt line UI component.
package statusline

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/xolve/hecto/internal/renderer/backend"
	"github.com/xolve/hecto/internal/renderer/core"
)

// NoName is shown in place of the filename for an unnamed buffer.
const NoName = "[No Name]"

// Info is the state shown on the status bar for one frame.
type Info struct {
	Filename string // Current filename (empty for an unnamed buffer)
	Modified bool   // Buffer has unsaved changes
	Line     int    // Cursor line (1-indexed for display)
	Total    int    // Total lines in buffer

	// Message replaces the filename part when set.
	Message string

	// Prompting places the cursor after Message.
	Prompting bool
}

// StatusLine renders the bottom status bar in reverse video.
type StatusLine struct {
	info  Info
	width int
	style core.Style
}

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{style: core.DefaultStyle().Reverse()}
}

// Update replaces the displayed state.
func (s *StatusLine) Update(info Info) {
	s.info = info
}

// Info returns the displayed state.
func (s *StatusLine) Info() Info {
	return s.info
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = max(0, width)
}

// Text returns the status bar content padded or truncated to the width.
func (s *StatusLine) Text() string {
	return Format(s.info, s.width)
}

// CursorColumn returns the prompt cursor column, clipped to the width.
func (s *StatusLine) CursorColumn() int {
	return min(runewidth.StringWidth(s.info.Message), max(0, s.width-1))
}

// Render draws the status bar to the backend at the given row. While
// prompting, the terminal cursor is moved to the end of the prompt.
func (s *StatusLine) Render(b backend.Backend, row int) {
	b.Fill(core.RectFromSize(row, 0, 1, s.width), core.NewStyledCell(' ', s.style))

	col := 0
	for _, r := range s.Text() {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetCell(col, row, core.NewStyledCell(r, s.style))
		if w == 2 {
			b.SetCell(col+1, row, core.Cell{Style: s.style})
		}
		col += w
	}

	if s.info.Prompting {
		b.ShowCursor(s.CursorColumn(), row)
	}
}

// Format lays out the status bar text for the given width. The left part
// (message, or filename with modified marker) is truncated first so the
// right part (line/total) stays visible.
func Format(info Info, width int) string {
	if width <= 0 {
		return ""
	}

	left := info.Message
	if left == "" {
		left = info.Filename
		if left == "" {
			left = NoName
		}
		if info.Modified {
			left += " (modified)"
		}
	}
	right := strconv.Itoa(max(info.Line, 1)) + "/" + strconv.Itoa(info.Total)

	rightWidth := runewidth.StringWidth(right)
	if rightWidth+1 >= width {
		return runewidth.FillRight(runewidth.Truncate(left, width, ""), width)
	}

	left = runewidth.Truncate(left, width-rightWidth-1, "")
	gap := width - runewidth.StringWidth(left) - rightWidth
	return left + strings.Repeat(" ", gap) + right
}
