package buffer

import (
	"errors"
	"testing"
	"unicode/utf8"
)

func expectBoundsPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds panic, got %v", r)
		}
	}()
	fn()
}

func TestNewLine(t *testing.T) {
	l := NewLine("héllo")

	if l.Len() != 5 {
		t.Errorf("expected length 5, got %d", l.Len())
	}
	if l.String() != "héllo" {
		t.Errorf("expected %q, got %q", "héllo", l.String())
	}
}

func TestLineRender(t *testing.T) {
	l := NewLine("hello")

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"full", 0, 5, "hello"},
		{"middle", 1, 3, "el"},
		{"end past length", 2, 100, "llo"},
		{"start past length", 10, 20, ""},
		{"inverted", 4, 2, ""},
		{"negative start", -3, 2, "he"},
		{"empty range", 3, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Render(tt.start, tt.end); got != tt.want {
				t.Errorf("Render(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestLineRenderMultibyte(t *testing.T) {
	l := NewLine("añb€c")

	if got := l.Render(1, 4); got != "ñb€" {
		t.Errorf("expected %q, got %q", "ñb€", got)
	}
}

func TestLineInsert(t *testing.T) {
	l := NewLine("hllo")
	l.Insert(1, 'e')

	if l.String() != "hello" {
		t.Errorf("expected hello, got %q", l.String())
	}
	if l.Len() != 5 {
		t.Errorf("expected length 5, got %d", l.Len())
	}

	l.Insert(5, '!')
	l.Insert(0, '¡')
	if l.String() != "¡hello!" {
		t.Errorf("expected ¡hello!, got %q", l.String())
	}
}

func TestLineInsertOutOfRange(t *testing.T) {
	l := NewLine("abc")

	expectBoundsPanic(t, func() { l.Insert(4, 'x') })
	expectBoundsPanic(t, func() { l.Insert(-1, 'x') })

	if l.String() != "abc" {
		t.Errorf("line changed after failed insert: %q", l.String())
	}
}

func TestLineDelete(t *testing.T) {
	l := NewLine("h€llo")
	l.Delete(1)

	if l.String() != "hllo" {
		t.Errorf("expected hllo, got %q", l.String())
	}
	if l.Len() != 4 {
		t.Errorf("expected length 4, got %d", l.Len())
	}
}

func TestLineDeleteOutOfRange(t *testing.T) {
	l := NewLine("abc")

	expectBoundsPanic(t, func() { l.Delete(3) })
	expectBoundsPanic(t, func() { l.Delete(-1) })
	expectBoundsPanic(t, func() { NewLine("").Delete(0) })
}

func TestLineAppend(t *testing.T) {
	l := NewLine("foo")
	l.Append(NewLine("bär"))

	if l.String() != "foobär" {
		t.Errorf("expected foobär, got %q", l.String())
	}
	if l.Len() != 6 {
		t.Errorf("expected length 6, got %d", l.Len())
	}

	l.Append(nil)
	if l.Len() != 6 {
		t.Errorf("append nil changed length to %d", l.Len())
	}
}

func TestLineLengthNeverDesyncs(t *testing.T) {
	l := NewLine("")
	edits := []rune("a€b😀c")

	for i, r := range edits {
		l.Insert(i, r)
		if l.Len() != utf8.RuneCountInString(l.String()) {
			t.Fatalf("after insert %d: cached %d, actual %d", i, l.Len(), utf8.RuneCountInString(l.String()))
		}
	}

	for l.Len() > 0 {
		l.Delete(l.Len() / 2)
		if l.Len() != utf8.RuneCountInString(l.String()) {
			t.Fatalf("after delete: cached %d, actual %d", l.Len(), utf8.RuneCountInString(l.String()))
		}
	}
}

func TestLineSplitJoinRoundTrip(t *testing.T) {
	original := "split€me"

	for col := 0; col <= utf8.RuneCountInString(original); col++ {
		before, after := NewLine(original).split(col)
		if before.Len() != col {
			t.Errorf("col %d: before length %d", col, before.Len())
		}
		before.Append(after)
		if before.String() != original {
			t.Errorf("col %d: round trip produced %q", col, before.String())
		}
	}
}

func TestLineInsertDeleteIdentity(t *testing.T) {
	original := "ab€d"

	for col := 0; col <= 4; col++ {
		l := NewLine(original)
		l.Insert(col, 'x')
		l.Delete(col)
		if l.String() != original {
			t.Errorf("col %d: expected %q, got %q", col, original, l.String())
		}
	}
}
