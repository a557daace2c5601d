package buffer

import "unicode/utf8"

// Line is a single row of text. It caches its length in codepoints.
//
// Every mutation rebuilds the underlying string, so edits are O(n) in the
// line length. Lines are short in practice; a gap buffer or rope can replace
// this type behind the same methods if that stops being true.
type Line struct {
	data   string
	length int
}

// NewLine creates a line holding s. s must not contain a line terminator.
func NewLine(s string) *Line {
	l := &Line{data: s}
	l.updateLen()
	return l
}

// Len returns the number of codepoints in the line.
func (l *Line) Len() int {
	return l.length
}

// String returns the line content without a terminator.
func (l *Line) String() string {
	return l.data
}

// Render returns the codepoints in columns [start, end).
// Both bounds are clamped to the line length; inverted or out-of-range
// bounds yield an empty string.
func (l *Line) Render(start, end int) string {
	end = min(end, l.length)
	start = max(0, min(start, end))
	if start >= end {
		return ""
	}

	runes := []rune(l.data)
	return string(runes[start:end])
}

// Insert inserts ch before column col. It panics with a *BoundsError unless
// 0 <= col <= Len().
func (l *Line) Insert(col int, ch rune) {
	if col < 0 || col > l.length {
		panic(&BoundsError{Op: "line insert", Index: col, Len: l.length})
	}

	runes := []rune(l.data)
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:col]...)
	out = append(out, ch)
	out = append(out, runes[col:]...)

	l.data = string(out)
	l.updateLen()
}

// Delete removes the codepoint at column col. It panics with a *BoundsError
// unless 0 <= col < Len().
func (l *Line) Delete(col int) {
	if col < 0 || col >= l.length {
		panic(&BoundsError{Op: "line delete", Index: col, Len: l.length})
	}

	runes := []rune(l.data)
	l.data = string(runes[:col]) + string(runes[col+1:])
	l.updateLen()
}

// Append concatenates other onto the end of l.
func (l *Line) Append(other *Line) {
	if other == nil {
		return
	}
	l.data += other.data
	l.updateLen()
}

// split returns the halves [0, col) and [col, Len()).
func (l *Line) split(col int) (*Line, *Line) {
	if col < 0 || col > l.length {
		panic(&BoundsError{Op: "line split", Index: col, Len: l.length})
	}

	runes := []rune(l.data)
	return NewLine(string(runes[:col])), NewLine(string(runes[col:]))
}

func (l *Line) updateLen() {
	l.length = utf8.RuneCountInString(l.data)
}
