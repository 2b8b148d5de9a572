package session

import "github.com/helmutg/tcvt/internal/termquery"

// Raw key codes below are the standard curses key-code constants (the
// values curses.h has assigned KEY_* since 4BSD curses; ncurses has never
// renumbered them), reproduced here so this package can classify a
// Keyboard.GetChar() result without importing the ncurses binding itself —
// canvas is the only package that talks to goncurses directly.
const (
	keyBackspace = 0407
	keyDown      = 0402
	keyUp        = 0403
	keyLeft      = 0404
	keyRight     = 0405
	keyHome      = 0406
	keyF0        = 0410
	keyDC        = 0512
	keyIC        = 0513
	keyPPage     = 0523
	keyNPage     = 0522
	keyEnter     = 0527
)

func keyFn(n int) int { return keyF0 + n }

// modeToggleKey is the reserved key that flips between Columns and Simple
// mode; it is consumed by the event loop and never forwarded to the child.
const modeToggleKey = 0xb3

// symbolicKey classifies a raw GetChar result as one of termquery's
// symbolic keys, if it is one of the keys the bootstrap table resolved.
func symbolicKey(key int) (termquery.Key, bool) {
	switch key {
	case keyEnter:
		return termquery.KeyEnter, true
	case keyLeft:
		return termquery.KeyLeft, true
	case keyDown:
		return termquery.KeyDown, true
	case keyRight:
		return termquery.KeyRight, true
	case keyUp:
		return termquery.KeyUp, true
	case keyHome:
		return termquery.KeyHome, true
	case keyIC:
		return termquery.KeyInsert, true
	case keyBackspace:
		return termquery.KeyBackspace, true
	case keyPPage:
		return termquery.KeyPgUp, true
	case keyNPage:
		return termquery.KeyPgDn, true
	}
	if key >= keyFn(1) && key <= keyFn(9) {
		return termquery.KeyF1 + termquery.Key(key-keyFn(1)), true
	}
	return 0, false
}
