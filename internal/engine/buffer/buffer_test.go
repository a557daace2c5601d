package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func lineTexts(b *Buffer) []string {
	out := make([]string, b.LineCount())
	for i := range out {
		out[i] = b.Line(i).String()
	}
	return out
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewBuffer(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", b.LineCount())
	}
	if b.IsModified() {
		t.Error("new buffer should not be modified")
	}
	if b.Filename() != "" {
		t.Errorf("expected no filename, got %q", b.Filename())
	}
}

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"single line", "hello", []string{"hello"}},
		{"final terminator", "hello\n", []string{"hello"}},
		{"lone terminator", "\n", []string{""}},
		{"blank middle line", "a\n\nb", []string{"a", "", "b"}},
		{"two terminators", "a\n\n", []string{"a", ""}},
		{"crlf", "one\r\ntwo\r\n", []string{"one", "two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.text)
			if got := lineTexts(b); !equalLines(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if b.IsModified() {
				t.Error("loaded buffer should not be modified")
			}
		})
	}
}

func TestNewBufferFromReaderInvalidUTF8(t *testing.T) {
	_, err := NewFromReader(strings.NewReader("ok\n\xff\xfe\n"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestBufferLine(t *testing.T) {
	b := NewFromString("a\nb")

	if b.Line(1).String() != "b" {
		t.Errorf("expected b, got %q", b.Line(1).String())
	}
	if b.Line(2) != nil {
		t.Error("expected nil for row past end")
	}
	if b.Line(-1) != nil {
		t.Error("expected nil for negative row")
	}
	if b.LineLen(2) != 0 {
		t.Errorf("expected synthetic row length 0, got %d", b.LineLen(2))
	}
}

func TestOpenNonexistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	b, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if !b.IsEmpty() {
		t.Error("expected empty buffer for missing file")
	}
	if b.Filename() != path {
		t.Errorf("expected filename %q, got %q", path, b.Filename())
	}
}

func TestOpenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if got := lineTexts(b); !equalLines(got, []string{"first", "second"}) {
		t.Errorf("unexpected lines %q", got)
	}
}

func TestOpenInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Open(path)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}

	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "open" || fe.Path != path {
		t.Errorf("expected *FileError for open %s, got %v", path, err)
	}
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(t.TempDir())

	var fe *FileError
	if !errors.As(err, &fe) {
		t.Errorf("expected *FileError, got %v", err)
	}
}

func TestOpenStatFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	statErr := errors.New("stat failed")
	orig := statFile
	statFile = func(*os.File) (os.FileInfo, error) { return nil, statErr }
	defer func() { statFile = orig }()

	_, err := Open(path)

	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "open" || !errors.Is(err, statErr) {
		t.Errorf("expected open *FileError wrapping the stat error, got %v", err)
	}
}

func TestBufferInsert(t *testing.T) {
	b := NewFromString("hllo")
	b.Insert(Position{X: 1, Y: 0}, 'e')

	if b.Text() != "hello" {
		t.Errorf("expected hello, got %q", b.Text())
	}
	if !b.IsModified() {
		t.Error("insert should set modified")
	}
}

func TestBufferInsertAtEndRow(t *testing.T) {
	b := NewFromString("abc")
	b.Insert(Position{X: 0, Y: 1}, 'x')

	if got := lineTexts(b); !equalLines(got, []string{"abc", "x"}) {
		t.Errorf("expected [abc x], got %q", got)
	}

	empty := New()
	empty.Insert(Position{}, 'z')
	if got := lineTexts(empty); !equalLines(got, []string{"z"}) {
		t.Errorf("expected [z], got %q", got)
	}
}

func TestBufferInsertOutOfRange(t *testing.T) {
	b := NewFromString("abc")

	expectBoundsPanic(t, func() { b.Insert(Position{X: 0, Y: 2}, 'x') })
	expectBoundsPanic(t, func() { b.Insert(Position{X: 4, Y: 0}, 'x') })
	expectBoundsPanic(t, func() { b.Insert(Position{X: 1, Y: 1}, 'x') })
}

func TestBufferInsertNewline(t *testing.T) {
	b := NewFromString("hello")
	b.Insert(Position{X: 2, Y: 0}, '\n')

	if got := lineTexts(b); !equalLines(got, []string{"he", "llo"}) {
		t.Errorf("expected [he llo], got %q", got)
	}
	if !b.IsModified() {
		t.Error("split should set modified")
	}
}

func TestBufferSplitLineShiftsFollowing(t *testing.T) {
	b := NewFromString("one\ntwo\nthree")
	b.SplitLine(Position{X: 1, Y: 1})

	want := []string{"one", "t", "wo", "three"}
	if got := lineTexts(b); !equalLines(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBufferSplitLineAtEdges(t *testing.T) {
	b := NewFromString("abc")
	b.SplitLine(Position{X: 0, Y: 0})
	b.SplitLine(Position{X: 3, Y: 1})

	want := []string{"", "abc", ""}
	if got := lineTexts(b); !equalLines(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBufferSplitLineAtEndRow(t *testing.T) {
	b := NewFromString("abc")
	b.SplitLine(Position{X: 0, Y: 1})

	want := []string{"abc", ""}
	if got := lineTexts(b); !equalLines(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBufferDelete(t *testing.T) {
	b := NewFromString("hello")
	b.Delete(Position{X: 4, Y: 0})

	if b.Text() != "hell" {
		t.Errorf("expected hell, got %q", b.Text())
	}
	if !b.IsModified() {
		t.Error("delete should set modified")
	}
}

func TestBufferDeleteJoinsLines(t *testing.T) {
	b := NewFromString("hello\nworld\n!")
	b.Delete(Position{X: 5, Y: 0})

	want := []string{"helloworld", "!"}
	if got := lineTexts(b); !equalLines(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBufferDeletePastLineEndJoins(t *testing.T) {
	b := NewFromString("ab\ncd")
	b.Delete(Position{X: 7, Y: 0})

	if b.Text() != "abcd" {
		t.Errorf("expected abcd, got %q", b.Text())
	}
}

func TestBufferDeleteAtEndOfLastLine(t *testing.T) {
	b := NewFromString("hello\nworld")
	b.Delete(Position{X: 5, Y: 1})

	if got := lineTexts(b); !equalLines(got, []string{"hello", "world"}) {
		t.Errorf("expected unchanged buffer, got %q", got)
	}
	if b.IsModified() {
		t.Error("no-op delete should not set modified")
	}
}

func TestBufferDeleteOnEndRow(t *testing.T) {
	b := NewFromString("abc")
	b.Delete(Position{X: 0, Y: 1})
	b.Delete(Position{X: 0, Y: 9})

	if b.Text() != "abc" || b.IsModified() {
		t.Errorf("expected untouched buffer, got %q modified=%v", b.Text(), b.IsModified())
	}

	expectBoundsPanic(t, func() { b.Delete(Position{X: 0, Y: -1}) })
}

func TestBufferInsertDeleteIdentity(t *testing.T) {
	original := "ab\nc€\n"
	positions := []Position{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}}

	for _, p := range positions {
		b := NewFromString(original)
		before := b.Text()
		b.Insert(p, 'x')
		b.Delete(p)
		after := b.Text()

		// Typing on the synthetic row materializes an empty line.
		if p.Y == 2 {
			before += "\n"
		}
		if after != before {
			t.Errorf("at %v: expected %q, got %q", p, before, after)
		}
	}
}

func TestBufferSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	b := NewFromString("alpha\nbeta", WithFilename(path))
	b.Insert(Position{X: 4, Y: 1}, '!')

	if err := b.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if b.IsModified() {
		t.Error("save should clear modified")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "alpha\nbeta!\n" {
		t.Errorf("expected trailing terminator per line, got %q", data)
	}
}

func TestBufferSaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	b := New(WithFilename(path))

	if err := b.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", data)
	}
}

func TestBufferSaveOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.txt")
	original := NewFromString("one\n\nthree\n", WithFilename(path))

	if err := original.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if got, want := lineTexts(reopened), lineTexts(original); !equalLines(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBufferSaveNoFilename(t *testing.T) {
	b := NewFromString("text")
	b.Insert(Position{}, 'x')

	err := b.Save()
	if !errors.Is(err, ErrNoFilename) {
		t.Errorf("expected ErrNoFilename, got %v", err)
	}
	if !b.IsModified() {
		t.Error("failed save should keep modified")
	}
}

func TestBufferSaveFailureKeepsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "out.txt")
	b := NewFromString("x", WithFilename(path))
	b.Insert(Position{}, 'y')

	err := b.Save()

	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "save" {
		t.Fatalf("expected save *FileError, got %v", err)
	}
	if !b.IsModified() {
		t.Error("failed save should keep modified")
	}
}

func TestBufferSaveFailureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keep.txt")
	if err := os.WriteFile(path, []byte("original\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	b.Insert(Position{}, 'x')

	orig := renameFile
	renameFile = func(string, string) error { return errors.New("rename failed") }
	defer func() { renameFile = orig }()

	if err := b.Save(); err == nil {
		t.Fatal("expected save to fail")
	}
	if !b.IsModified() {
		t.Error("failed save should keep modified")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original\n" {
		t.Errorf("existing file changed by a failed save: %q", data)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary file left behind: %v", entries)
	}
}

func TestBufferSaveKeepsPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.sh")
	if err := os.WriteFile(path, []byte("echo\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, 0o755); err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	b.Insert(Position{}, '#')

	if err := b.Save(); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("expected mode 0755, got %v", info.Mode().Perm())
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 1 {
		t.Errorf("temporary file left behind: %v", entries)
	}
}

func TestBufferSaveAs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "named.txt")
	b := NewFromString("x")

	if err := b.SaveAs(path); err != nil {
		t.Fatalf("save as failed: %v", err)
	}
	if b.Filename() != path {
		t.Errorf("expected filename %q, got %q", path, b.Filename())
	}
}

func TestBufferWriteTo(t *testing.T) {
	var sb strings.Builder
	b := NewFromString("a\nbc")

	n, err := b.WriteTo(&sb)
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if sb.String() != "a\nbc\n" || n != 5 {
		t.Errorf("expected %q (5 bytes), got %q (%d bytes)", "a\nbc\n", sb.String(), n)
	}
}

func TestPositionCompare(t *testing.T) {
	a := Position{X: 5, Y: 0}
	b := Position{X: 0, Y: 1}

	if !a.Before(b) {
		t.Error("expected row to dominate column")
	}
	if a.Compare(a) != 0 {
		t.Error("expected equal positions to compare 0")
	}
	if !(Position{}).IsZero() {
		t.Error("expected zero position")
	}
	if a.String() != "(0:5)" {
		t.Errorf("unexpected string %q", a.String())
	}
}
