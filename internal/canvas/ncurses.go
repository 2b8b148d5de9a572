package canvas

import (
	gc "github.com/rthornton8/goncurses"

	"github.com/helmutg/tcvt/internal/attr"
)

// attrBits translates an attr.Mask into the goncurses attribute constants
// OR'd together, the same bits curses.A_BOLD/A_UNDERLINE/etc represent in
// original_source/tcvt.py.
func attrBits(m attr.Mask) gc.Char {
	var out gc.Char
	if m&attr.Bold != 0 {
		out |= gc.A_BOLD
	}
	if m&attr.Underline != 0 {
		out |= gc.A_UNDERLINE
	}
	if m&attr.Reverse != 0 {
		out |= gc.A_REVERSE
	}
	if m&attr.Blink != 0 {
		out |= gc.A_BLINK
	}
	if m&attr.Invis != 0 {
		out |= gc.A_INVIS
	}
	if pair := m.Pair(); pair != 0 {
		out |= gc.ColorPair(pair)
	}
	return out
}

// NCursesCanvas adapts a *goncurses.Window to the Canvas interface. It is
// the real CellCanvas backend: every call forwards straight to the ncurses
// library the way Python's curses module does in original_source/tcvt.py.
type NCursesCanvas struct {
	win *gc.Window
}

// NewNCursesCanvas wraps an already-initialized ncurses window.
func NewNCursesCanvas(win *gc.Window) *NCursesCanvas {
	return &NCursesCanvas{win: win}
}

func (c *NCursesCanvas) MaxYX() (int, int) {
	return c.win.MaxYX()
}

func (c *NCursesCanvas) YX() (int, int) {
	return c.win.CursYX()
}

func (c *NCursesCanvas) Move(row, col int) {
	c.win.Move(row, col)
}

func (c *NCursesCanvas) AddCh(ch rune, attrs attr.Mask) {
	c.win.AddChar(gc.Char(ch) | attrBits(attrs))
}

func (c *NCursesCanvas) InsCh(ch rune, attrs attr.Mask) {
	c.win.InsChar(gc.Char(ch) | attrBits(attrs))
}

func (c *NCursesCanvas) DelCh() {
	c.win.DelChar()
}

func (c *NCursesCanvas) InCh() (rune, attr.Mask) {
	ch := c.win.InChar()
	return rune(ch & gc.A_CHARTEXT), maskFromChar(ch)
}

// maskFromChar extracts the boolean attribute bits and the color-pair
// number from a packed curses chtype, packing the pair into the returned
// attr.Mask the same way attrBits unpacks it.
func maskFromChar(ch gc.Char) attr.Mask {
	var m attr.Mask
	if ch&gc.A_BOLD != 0 {
		m |= attr.Bold
	}
	if ch&gc.A_UNDERLINE != 0 {
		m |= attr.Underline
	}
	if ch&gc.A_REVERSE != 0 {
		m |= attr.Reverse
	}
	if ch&gc.A_BLINK != 0 {
		m |= attr.Blink
	}
	if ch&gc.A_INVIS != 0 {
		m |= attr.Invis
	}
	return m.WithPair(int(gc.PairNumber(ch)))
}

func (c *NCursesCanvas) Scroll(n int) {
	c.win.Scroll(n)
}

func (c *NCursesCanvas) ScrollOk(on bool) {
	c.win.ScrollOk(on)
}

func (c *NCursesCanvas) Clear() {
	c.win.Clear()
}

func (c *NCursesCanvas) ClrToBot() {
	c.win.ClearToBottom()
}

func (c *NCursesCanvas) ClrToEOL() {
	c.win.ClearToEOL()
}

func (c *NCursesCanvas) InsertLn() {
	c.win.InsertLine()
}

func (c *NCursesCanvas) DeleteLn() {
	c.win.DeleteLine()
}

func (c *NCursesCanvas) VLine(row, col int, ch rune, length int) {
	c.win.VLine(row, col, gc.Char(ch), length)
}

func (c *NCursesCanvas) Refresh() {
	c.win.Refresh()
}

func (c *NCursesCanvas) Derived(height, width, y, x int) Canvas {
	sub := c.win.Derived(height, width, y, x)
	sub.ScrollOk(true)
	return &NCursesCanvas{win: sub}
}

func (c *NCursesCanvas) Beep() {
	gc.Beep()
}

// GetChar reads one keypress off the window, non-blocking (the window must
// already be in NoDelay mode, as Init leaves it). It returns ok=false when
// nothing was waiting, rather than blocking or returning a sentinel rune.
func (c *NCursesCanvas) GetChar() (int, bool) {
	k := c.win.GetChar()
	if k == gc.ERR {
		return 0, false
	}
	return int(k), true
}

func (c *NCursesCanvas) StartColor() error {
	return gc.StartColor()
}

func (c *NCursesCanvas) InitPair(pair int, fg, bg int) error {
	return gc.InitPair(int16(pair), int16(fg), int16(bg))
}

// Init performs the one-time ncurses bootstrap: initscr, non-blocking and
// keypad-enabled reads on the root window. It returns a Canvas wrapping
// stdscr plus a teardown function restoring cooked mode.
func Init() (root Canvas, teardown func(), err error) {
	stdscr, err := gc.Init()
	if err != nil {
		return nil, nil, err
	}
	stdscr.Keypad(true)
	gc.NoDelay(stdscr, true)
	gc.CBreak(true)
	gc.Echo(false)
	gc.Raw(true)

	c := NewNCursesCanvas(stdscr)
	return c, func() {
		gc.Raw(false)
		gc.Echo(true)
		gc.End()
	}, nil
}
