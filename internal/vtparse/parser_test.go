package vtparse

import (
	"errors"
	"testing"

	"github.com/helmutg/tcvt/internal/attr"
	"github.com/helmutg/tcvt/internal/canvas"
	"github.com/helmutg/tcvt/internal/grid"
)

func feed(t *testing.T, p *Parser, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		if err := p.Feed(s[i]); err != nil {
			t.Fatalf("Feed(%q) at byte %d: %v", s, i, err)
		}
	}
}

func TestParser_PlainText(t *testing.T) {
	f := canvas.NewFake(5, 10)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	feed(t, p, "AB")
	y, x := g.YX()
	if y != 0 || x != 2 {
		t.Fatalf("YX() = (%d,%d), want (0,2)", y, x)
	}
	if got := f.Row(0); got[:2] != "AB" {
		t.Fatalf("Row(0) = %q, want leading \"AB\"", got)
	}
}

func TestParser_HomeAndErase(t *testing.T) {
	f := canvas.NewFake(3, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	feed(t, p, "hello")
	feed(t, p, "\x1b[2J")
	feed(t, p, "\x1b[H")
	y, x := g.YX()
	if y != 0 || x != 0 {
		t.Fatalf("YX() after home = (%d,%d), want (0,0)", y, x)
	}
	for row := 0; row < 3; row++ {
		if got := f.Row(row); got != "     " {
			t.Fatalf("Row(%d) = %q, want blank", row, got)
		}
	}
}

func TestParser_SGRCompound(t *testing.T) {
	f := canvas.NewFake(2, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	feed(t, p, "\x1b[1;31;44mX")

	ch, a := f.CellAt(0, 0)
	if ch != 'X' {
		t.Fatalf("cell char = %q, want 'X'", ch)
	}
	if a&attr.Bold == 0 {
		t.Errorf("cell attrs = %v, want Bold set", a)
	}
	if got := a.Pair(); got != 20 {
		t.Errorf("cell color pair = %d, want 20", got)
	}
}

func TestParser_GraphicsRoundTrip(t *testing.T) {
	f := canvas.NewFake(1, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil) // nil graphics map -> no translation, bytes pass through
	feed(t, p, "\x1b[11mq\x1b[10mq")

	ch0, _ := f.CellAt(0, 0)
	ch1, _ := f.CellAt(0, 1)
	if ch0 != 'q' {
		t.Errorf("first q (graphics mode, no translation table) = %q, want passthrough 'q'", ch0)
	}
	if ch1 != 'q' {
		t.Errorf("second q (back in simple mode) = %q, want plain 'q'", ch1)
	}
}

func TestParser_GraphicsTranslation(t *testing.T) {
	f := canvas.NewFake(1, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, map[byte]rune{'q': '─'})
	feed(t, p, "\x1b[11mq")
	ch, _ := f.CellAt(0, 0)
	if ch != '─' {
		t.Errorf("translated q = %q, want U+2500", ch)
	}
}

func TestParser_LFNotAtBottomResetsColumn(t *testing.T) {
	f := canvas.NewFake(3, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	feed(t, p, "AB")
	if err := p.Feed('\n'); err != nil {
		t.Fatalf("Feed(LF): %v", err)
	}
	y, x := g.YX()
	if y != 1 || x != 0 {
		t.Fatalf("YX() after LF not at bottom = (%d,%d), want (1,0) (column resets)", y, x)
	}
}

func TestParser_LFAtBottomScrollsAndResetsColumn(t *testing.T) {
	f := canvas.NewFake(2, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	feed(t, p, "AB")
	g.Move(1, 2)
	if err := p.Feed('\n'); err != nil {
		t.Fatalf("Feed(LF): %v", err)
	}
	y, x := g.YX()
	if y != 1 || x != 0 {
		t.Fatalf("YX() after LF at bottom = (%d,%d), want (1,0)", y, x)
	}
}

func TestParser_CSIParamMotionRepeatsNTimes(t *testing.T) {
	f := canvas.NewFake(3, 10)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	g.Move(2, 0)
	feed(t, p, "\x1b[5C")
	_, x := g.YX()
	if x != 5 {
		t.Fatalf("x after ESC[5C = %d, want 5", x)
	}
}

func TestParser_UnknownByteReturnsErrUnhandledAndReset(t *testing.T) {
	f := canvas.NewFake(2, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	err := p.Feed(0x01)
	if !errors.Is(err, ErrUnhandled) {
		t.Fatalf("Feed(0x01) error = %v, want ErrUnhandled", err)
	}
	p.Reset()
	feed(t, p, "A")
	ch, _ := f.CellAt(0, 0)
	if ch != 'A' {
		t.Fatalf("cell after Reset+feed = %q, want 'A'", ch)
	}
}

func TestParser_EraseToCursorPreservesCurrentAttrs(t *testing.T) {
	f := canvas.NewFake(1, 5)
	f.ScrollOk(true)
	g := grid.NewSimple(f)
	p := New(g, nil)
	feed(t, p, "\x1b[1mABC")
	g.Move(0, 2)
	feed(t, p, "\x1b[1K")
	_, a := f.CellAt(0, 0)
	if a&attr.Bold == 0 {
		t.Errorf("erased cell attrs = %v, want Bold carried over from current mask", a)
	}
	if got := f.Row(0); got != "     " {
		t.Fatalf("Row(0) after erase-to-cursor = %q, want blank (cols 0-2 erased, 3-4 untouched but also blank initially)", got)
	}
}
