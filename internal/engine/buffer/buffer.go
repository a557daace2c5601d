package buffer

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Buffer is an ordered collection of Lines representing one file.
// An empty file is represented as zero Lines; a Buffer never holds a nil Line.
type Buffer struct {
	lines    []*Line
	filename string
	modified bool
	perm     fs.FileMode
}

// New creates an empty, unmodified buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		perm: 0o644,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFromString creates a buffer from text. A final terminator does not
// produce a trailing empty line.
func NewFromString(text string, opts ...Option) *Buffer {
	b := New(opts...)
	b.lines = splitLines(text)
	return b
}

// NewFromReader creates a buffer from r. It returns ErrDecode if the content
// is not valid UTF-8.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrDecode
	}
	return NewFromString(string(data), opts...), nil
}

// Open loads the file at path. A path that does not exist yields an empty
// buffer bound to that filename, so the first save creates the file.
// Unreadable or undecodable files return a *FileError.
func Open(path string, opts ...Option) (*Buffer, error) {
	opts = append(opts, WithFilename(path))

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(opts...), nil
		}
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := statFile(f)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	opts = append(opts, WithPerm(info.Mode().Perm()))

	b, err := NewFromReader(f, opts...)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	return b, nil
}

// splitLines splits text on '\n', dropping the empty segment after a final
// terminator and a '\r' before each terminator.
func splitLines(text string) []*Line {
	if text == "" {
		return nil
	}

	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	lines := make([]*Line, len(parts))
	for i, p := range parts {
		lines[i] = NewLine(strings.TrimSuffix(p, "\r"))
	}
	return lines
}

// Read Operations

// Line returns the line at row y, or nil if y is outside [0, LineCount()).
func (b *Buffer) Line(y int) *Line {
	if y < 0 || y >= len(b.lines) {
		return nil
	}
	return b.lines[y]
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of row y in codepoints. Rows past the end,
// including the synthetic end-of-buffer row, have length 0.
func (b *Buffer) LineLen(y int) int {
	if l := b.Line(y); l != nil {
		return l.Len()
	}
	return 0
}

// IsEmpty returns true if the buffer has no lines.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// Text returns the content with lines joined by '\n' and no final terminator.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, l := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.data)
	}
	return sb.String()
}

// Filename returns the file the buffer is bound to, or "" for a new buffer.
func (b *Buffer) Filename() string {
	return b.filename
}

// IsModified returns true if the buffer changed since it was opened or saved.
func (b *Buffer) IsModified() bool {
	return b.modified
}

// Write Operations

// Insert inserts ch at pos. A '\n' splits the line instead. Inserting on the
// synthetic end-of-buffer row first appends an empty line.
func (b *Buffer) Insert(pos Position, ch rune) {
	if ch == '\n' {
		b.SplitLine(pos)
		return
	}

	b.checkRow("insert", pos.Y)
	if pos.Y == len(b.lines) {
		if pos.X != 0 {
			panic(&BoundsError{Op: "insert", Index: pos.X, Len: 0})
		}
		b.lines = append(b.lines, NewLine(""))
	}
	b.lines[pos.Y].Insert(pos.X, ch)
	b.modified = true
}

// SplitLine splits row pos.Y at column pos.X into [0, X) and [X, end),
// shifting the following lines down by one. On the synthetic end-of-buffer
// row it appends an empty line.
func (b *Buffer) SplitLine(pos Position) {
	b.checkRow("split", pos.Y)
	if pos.Y == len(b.lines) {
		if pos.X != 0 {
			panic(&BoundsError{Op: "split", Index: pos.X, Len: 0})
		}
		b.lines = append(b.lines, NewLine(""))
		b.modified = true
		return
	}

	before, after := b.lines[pos.Y].split(pos.X)

	lines := make([]*Line, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:pos.Y]...)
	lines = append(lines, before, after)
	lines = append(lines, b.lines[pos.Y+1:]...)
	b.lines = lines
	b.modified = true
}

// Delete removes the codepoint at pos. At or past the end of a line it joins
// the next line onto it. Positions on the synthetic end-of-buffer row and the
// end of the last line are no-ops and leave the modified flag alone.
func (b *Buffer) Delete(pos Position) {
	if pos.Y < 0 {
		panic(&BoundsError{Op: "delete", Index: pos.Y, Len: len(b.lines)})
	}
	if pos.Y >= len(b.lines) {
		return
	}

	line := b.lines[pos.Y]
	if pos.X < line.Len() {
		line.Delete(pos.X)
		b.modified = true
		return
	}

	if pos.Y+1 >= len(b.lines) {
		return
	}

	line.Append(b.lines[pos.Y+1])
	b.lines = append(b.lines[:pos.Y+1], b.lines[pos.Y+2:]...)
	b.modified = true
}

// checkRow panics unless 0 <= y <= LineCount().
func (b *Buffer) checkRow(op string, y int) {
	if y < 0 || y > len(b.lines) {
		panic(&BoundsError{Op: op, Index: y, Len: len(b.lines)})
	}
}

// Persistence

// WriteTo writes every line followed by '\n' to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range b.lines {
		written, err := bw.WriteString(l.data)
		n += int64(written)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Save writes the buffer to its filename and clears the modified flag.
// On failure the flag is left unchanged.
func (b *Buffer) Save() error {
	if b.filename == "" {
		return &FileError{Op: "save", Err: ErrNoFilename}
	}
	return b.SaveAs(b.filename)
}

// SaveAs writes the buffer to path, binds the buffer to it and clears the
// modified flag. The content is written to a temporary file in the same
// directory and renamed over path, so a failed save leaves any existing file
// intact. On failure neither the filename nor the flag change.
func (b *Buffer) SaveAs(path string) error {
	if path == "" {
		return &FileError{Op: "save", Err: ErrNoFilename}
	}

	if err := b.writeFile(path); err != nil {
		return &FileError{Op: "save", Path: path, Err: err}
	}

	b.filename = path
	b.modified = false
	return nil
}

func (b *Buffer) writeFile(path string) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := b.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(b.perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return renameFile(tmpName, path)
}

// Replaced in tests.
var (
	statFile   = (*os.File).Stat
	renameFile = os.Rename
)
