package session

import (
	"testing"

	"github.com/helmutg/tcvt/internal/termquery"
)

func TestSymbolicKey_Arrows(t *testing.T) {
	cases := map[int]termquery.Key{
		keyLeft:  termquery.KeyLeft,
		keyRight: termquery.KeyRight,
		keyUp:    termquery.KeyUp,
		keyDown:  termquery.KeyDown,
		keyEnter: termquery.KeyEnter,
		keyHome:  termquery.KeyHome,
	}
	for raw, want := range cases {
		got, ok := symbolicKey(raw)
		if !ok || got != want {
			t.Errorf("symbolicKey(%#o) = (%v, %v), want (%v, true)", raw, got, ok, want)
		}
	}
}

func TestSymbolicKey_FunctionKeyRange(t *testing.T) {
	got, ok := symbolicKey(keyFn(3))
	if !ok || got != termquery.KeyF3 {
		t.Fatalf("symbolicKey(F3) = (%v, %v), want (KeyF3, true)", got, ok)
	}
	got, ok = symbolicKey(keyFn(9))
	if !ok || got != termquery.KeyF9 {
		t.Fatalf("symbolicKey(F9) = (%v, %v), want (KeyF9, true)", got, ok)
	}
}

func TestSymbolicKey_PlainByteIsNotSymbolic(t *testing.T) {
	if _, ok := symbolicKey('a'); ok {
		t.Errorf("symbolicKey('a') claimed to be symbolic")
	}
	if _, ok := symbolicKey(modeToggleKey); ok {
		t.Errorf("symbolicKey(modeToggleKey) claimed to be symbolic; it must be handled before classification")
	}
}

func TestSymbolicKey_ModeToggleKeyIsNotClassifiedAsSymbolic(t *testing.T) {
	// handleKey must check modeToggleKey before consulting symbolicKey, since
	// 0xb3 is otherwise just an ordinary byte in the 0x00-0xFF forwarding
	// range; this pins the assumption that symbolicKey never claims it.
	if _, ok := symbolicKey(modeToggleKey); ok {
		t.Errorf("symbolicKey(modeToggleKey) = ok, want unclassified so handleKey's explicit check is what routes it")
	}
}
