package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/xolve/hecto/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetCell(t *testing.T) {
	b := NewNullBackend(10, 3)

	cell := core.NewStyledCell('X', core.DefaultStyle().Reverse())
	b.SetCell(4, 1, cell)

	if got := b.Cell(4, 1); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)
	if got := b.Cell(-1, 0); got != core.EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFillAndClear(t *testing.T) {
	b := NewNullBackend(10, 5)

	b.Fill(core.RectFromSize(1, 2, 2, 3), core.NewStyledCell('.', core.DefaultStyle()))
	if b.Row(1) != "  ..." || b.Row(2) != "  ..." {
		t.Errorf("unexpected rows %q %q", b.Row(1), b.Row(2))
	}
	if b.Row(0) != "" || b.Row(3) != "" {
		t.Error("rows outside rect should be blank")
	}

	b.Clear()
	if b.Row(1) != "" {
		t.Errorf("clear should reset all cells, got %q", b.Row(1))
	}
}

func TestNullBackendRowSkipsContinuationCells(t *testing.T) {
	b := NewNullBackend(4, 1)
	b.SetCell(0, 0, core.NewStyledCell('世', core.DefaultStyle()))
	b.SetCell(1, 0, core.Cell{})
	b.SetCell(2, 0, core.NewStyledCell('a', core.DefaultStyle()))

	if b.Row(0) != "世a" {
		t.Errorf("expected 世a, got %q", b.Row(0))
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	if _, _, visible = b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)

	b.PostEvent(RuneEvent('a'))
	b.PostEvent(KeyEvent(KeyCtrlQ))

	if ev := b.PollEvent(); ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'a' {
		t.Errorf("unexpected first event %+v", ev)
	}
	if ev := b.PollEvent(); ev.Key != KeyCtrlQ {
		t.Errorf("unexpected second event %+v", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventInterrupt {
		t.Errorf("drained queue should yield interrupt, got %+v", ev)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Resize(100, 40)

	if w, _ := b.Size(); w != 80 {
		t.Error("resize should take effect when the event is polled")
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("unexpected event %+v", ev)
	}
	if w, h := b.Size(); w != 100 || h != 40 {
		t.Errorf("expected (100, 40), got (%d, %d)", w, h)
	}
}

func TestModMaskHas(t *testing.T) {
	m := ModCtrl | ModShift

	if !m.Has(ModCtrl) || !m.Has(ModShift) {
		t.Error("expected ctrl and shift")
	}
	if m.Has(ModAlt) {
		t.Error("did not expect alt")
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyRune, KeyRune},
		{tcell.KeyEnter, KeyEnter},
		{tcell.KeyBackspace, KeyBackspace},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyPgDn, KeyPageDown},
		{tcell.KeyCtrlQ, KeyCtrlQ},
		{tcell.KeyCtrlS, KeyCtrlS},
		{tcell.KeyF5, KeyNone},
	}

	for _, tt := range tests {
		if got := convertKey(tt.in); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertStyleReverse(t *testing.T) {
	style := convertStyle(core.DefaultStyle().Reverse())

	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrReverse == 0 {
		t.Error("expected reverse attribute")
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := newTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer term.Shutdown()

	screen.SetSize(20, 5)
	term.PostEvent(KeyEvent(KeyCtrlS))
	term.PostEvent(Event{Type: EventInterrupt})

	var got []Event
	for len(got) < 2 {
		ev := term.PollEvent()
		if ev.Type == EventResize || ev.Type == EventNone {
			continue
		}
		got = append(got, ev)
	}

	if got[0].Type != EventKey || got[0].Key != KeyCtrlS {
		t.Errorf("expected Ctrl-S, got %+v", got[0])
	}
	if got[1].Type != EventInterrupt {
		t.Errorf("expected interrupt, got %+v", got[1])
	}
}
