// Package vtparse implements the byte-fed input parser: a state machine
// that consumes the subset of ANSI/VT control sequences hosted programs
// emit and drives a grid.Grid through it.
package vtparse

import (
	"errors"
	"strconv"
	"strings"

	"github.com/helmutg/tcvt/internal/attr"
	"github.com/helmutg/tcvt/internal/grid"
)

// ErrUnhandled is returned by Feed when a byte cannot be classified in the
// current state. The caller decides whether this is fatal (TCVT_DEVEL) or
// should trigger a silent Reset, per the error-handling policy.
var ErrUnhandled = errors.New("vtparse: unhandled byte")

type state int

const (
	stateSimple state = iota
	stateGraphics
	stateESC
	stateCSIInitial
	stateCSIParams
)

// Parser drives g as it consumes bytes. It is not safe for concurrent use.
type Parser struct {
	g            grid.Grid
	graphics     map[byte]rune
	state        state
	graphicsFont bool
	buf          []byte
	lastChar     rune
	fg, bg       int
	mask         attr.Mask

	// Bell is invoked on BEL (0x07). Ringing the bell is a CellCanvas
	// capability outside the Grid contract, so the caller wires it
	// directly to the canvas rather than routing it through Grid.
	Bell func()
}

// New builds a Parser over g. graphics is the byte->rune alternate-charset
// translation table termquery.Bootstrap produces; it may be nil, in which
// case graphics-mode bytes pass through untranslated.
func New(g grid.Grid, graphics map[byte]rune) *Parser {
	return &Parser{g: g, graphics: graphics, state: stateSimple}
}

// Reset returns the parser to its start state (simple or graphics,
// according to the last graphics_font setting), discarding any partial CSI
// accumulator. Invoked by the caller on ErrUnhandled in non-dev mode.
func (p *Parser) Reset() {
	p.buf = p.buf[:0]
	if p.graphicsFont {
		p.state = stateGraphics
	} else {
		p.state = stateSimple
	}
}

// Feed consumes one byte, driving the grid as needed. It returns
// ErrUnhandled if b cannot be classified in the current state.
func (p *Parser) Feed(b byte) error {
	switch p.state {
	case stateSimple:
		return p.feedPrint(b, false)
	case stateGraphics:
		return p.feedPrint(b, true)
	case stateESC:
		return p.feedESC(b)
	case stateCSIInitial:
		return p.feedCSIInitial(b)
	case stateCSIParams:
		return p.feedCSIParams(b)
	}
	return ErrUnhandled
}

func (p *Parser) feedPrint(b byte, graphics bool) error {
	switch b {
	case 0x07: // BEL
		if p.Bell != nil {
			p.Bell()
		}
		return nil
	case 0x0A: // LF
		p.doLF()
		return nil
	case 0x0D: // CR
		y, _ := p.g.YX()
		p.g.Move(y, 0)
		return nil
	case 0x09: // HT
		p.doTab()
		return nil
	case 0x08: // BS
		p.g.RelMove(0, -1)
		return nil
	case 0x1B: // ESC
		p.state = stateESC
		return nil
	}
	ch := rune(b)
	if graphics {
		// feed_graphics has no printable-byte filter of its own: whatever
		// the alternate charset doesn't translate passes straight through.
		if r, ok := p.graphics[b]; ok {
			ch = r
		}
	} else if !isPrintable(b) {
		return ErrUnhandled
	}
	p.g.AddCh(ch)
	p.lastChar = ch
	return nil
}

// doLF reproduces the LF/index quirk verbatim: the cursor's column always
// resets to 0, whether or not the move also scrolls (off the bottom) —
// conflating LF with CRLF unconditionally, the way do_ind does.
func (p *Parser) doLF() {
	y, _ := p.g.YX()
	rows, _ := p.g.MaxYX()
	if y+1 >= rows {
		p.g.Scroll()
		p.g.Move(rows-1, 0)
	} else {
		p.g.Move(y+1, 0)
	}
}

func (p *Parser) doTab() {
	y, x := p.g.YX()
	_, cols := p.g.MaxYX()
	next := ((x / 8) + 1) * 8
	if next >= cols {
		next = cols - 1
	}
	p.g.Move(y, next)
}

func (p *Parser) feedESC(b byte) error {
	if b == '[' {
		p.state = stateCSIInitial
		return nil
	}
	return ErrUnhandled
}

func (p *Parser) feedCSIInitial(b byte) error {
	switch {
	case b >= '0' && b <= '9':
		p.buf = append(p.buf[:0], b)
		p.state = stateCSIParams
		return nil
	case b == 'H':
		p.g.Move(0, 0)
		p.endCSI()
		return nil
	case b == 'J':
		p.g.ClrToBot()
		p.endCSI()
		return nil
	case b == 'K':
		p.g.ClrToEOL()
		p.endCSI()
		return nil
	case b == 'A':
		p.g.RelMove(-1, 0)
		p.endCSI()
		return nil
	case b == 'B':
		p.g.RelMove(1, 0)
		p.endCSI()
		return nil
	case b == 'C':
		p.g.RelMove(0, 1)
		p.endCSI()
		return nil
	case b == 'D':
		p.g.RelMove(0, -1)
		p.endCSI()
		return nil
	case b == 'L':
		p.g.InsertLn()
		p.endCSI()
		return nil
	case b == 'M':
		p.g.DeleteLn()
		p.endCSI()
		return nil
	case b == 'P':
		p.g.DelCh()
		p.endCSI()
		return nil
	case b == 'm':
		if err := p.applySGR(0); err != nil {
			return err
		}
		p.endCSI()
		return nil
	}
	return ErrUnhandled
}

func (p *Parser) feedCSIParams(b byte) error {
	if (b >= '0' && b <= '9') || b == ';' {
		p.buf = append(p.buf, b)
		return nil
	}

	params := parseParams(p.buf)
	n := 0
	if len(params) > 0 {
		n = params[0]
	}

	switch b {
	case 'm':
		if len(params) == 0 {
			if err := p.applySGR(0); err != nil {
				return err
			}
		}
		for _, code := range params {
			if err := p.applySGR(code); err != nil {
				return err
			}
		}
		p.endCSI()
		return nil
	case 'H':
		if len(params) != 2 {
			return ErrUnhandled
		}
		p.g.Move(params[0]-1, params[1]-1)
		p.endCSI()
		return nil
	case 'J':
		if n != 2 {
			return ErrUnhandled
		}
		p.g.Move(0, 0)
		p.g.ClrToBot()
		p.endCSI()
		return nil
	case 'A':
		p.g.RelMove(-n, 0)
		p.endCSI()
		return nil
	case 'B':
		p.g.RelMove(n, 0)
		p.endCSI()
		return nil
	case 'C':
		p.g.RelMove(0, n)
		p.endCSI()
		return nil
	case 'D':
		p.g.RelMove(0, -n)
		p.endCSI()
		return nil
	case 'L':
		for i := 0; i < n; i++ {
			p.g.InsertLn()
		}
		p.endCSI()
		return nil
	case 'M':
		for i := 0; i < n; i++ {
			p.g.DeleteLn()
		}
		p.endCSI()
		return nil
	case 'P':
		for i := 0; i < n; i++ {
			p.g.DelCh()
		}
		p.endCSI()
		return nil
	case 'X':
		for i := 0; i < n; i++ {
			p.g.AddCh(' ')
		}
		p.endCSI()
		return nil
	case '@':
		for i := 0; i < n; i++ {
			p.g.InsCh(' ')
		}
		p.endCSI()
		return nil
	case 'G':
		y, _ := p.g.YX()
		p.g.Move(y, n-1)
		p.endCSI()
		return nil
	case 'd':
		_, x := p.g.YX()
		p.g.Move(n-1, x)
		p.endCSI()
		return nil
	case 'b':
		for i := 0; i < n; i++ {
			p.g.AddCh(p.lastChar)
		}
		p.endCSI()
		return nil
	case 'K':
		if string(p.buf) != "1" {
			return ErrUnhandled
		}
		p.eraseToCursor()
		p.endCSI()
		return nil
	}
	return ErrUnhandled
}

// eraseToCursor reproduces do_el1 (CSI 1 K) verbatim: rebuild the line from
// its start through the cursor by re-running AddCh(' ') at each column, so
// the erased region picks up the current attribute mask rather than a
// blanked one, then restore the cursor.
func (p *Parser) eraseToCursor() {
	y, x := p.g.YX()
	p.g.Move(y, 0)
	for col := 0; col <= x; col++ {
		p.g.AddCh(' ')
	}
	p.g.Move(y, x)
}

func (p *Parser) endCSI() {
	p.buf = p.buf[:0]
	if p.graphicsFont {
		p.state = stateGraphics
	} else {
		p.state = stateSimple
	}
}

// applySGR folds one SGR parameter into the parser's tracked mask and
// pushes the full result to the grid with AttrSet, since the color-pair
// bits must be replaced rather than OR-ed whenever fg or bg changes.
func (p *Parser) applySGR(code int) error {
	switch {
	case code == 0:
		p.fg, p.bg, p.mask = 0, 0, 0
		p.g.AttrSet(0)
		return nil
	case code == 1:
		p.mask = p.mask.On(attr.Bold)
	case code == 4:
		p.mask = p.mask.On(attr.Underline)
	case code == 5:
		p.mask = p.mask.On(attr.Blink)
	case code == 7:
		p.mask = p.mask.On(attr.Reverse)
	case code == 8:
		p.mask = p.mask.On(attr.Invis)
	case code == 10:
		p.graphicsFont = false
		return nil
	case code == 11:
		p.graphicsFont = true
		return nil
	case code >= 30 && code <= 37:
		p.fg = code - 30
		p.mask = p.mask.WithPair(attr.ColorPair(p.fg, p.bg))
	case code == 39:
		p.fg = 7
		p.mask = p.mask.WithPair(attr.ColorPair(p.fg, p.bg))
	case code >= 40 && code <= 47:
		p.bg = code - 40
		p.mask = p.mask.WithPair(attr.ColorPair(p.fg, p.bg))
	case code == 49:
		p.bg = 0
		p.mask = p.mask.WithPair(attr.ColorPair(p.fg, p.bg))
	default:
		return ErrUnhandled
	}
	p.g.AttrSet(p.mask)
	return nil
}

// parseParams splits a CSI accumulator on ';' into integers. An empty
// field parses as 0, matching the common terminal convention for an
// omitted parameter.
func parseParams(buf []byte) []int {
	if len(buf) == 0 {
		return nil
	}
	fields := strings.Split(string(buf), ";")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			out = append(out, 0)
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			out = append(out, 0)
			continue
		}
		out = append(out, n)
	}
	return out
}
