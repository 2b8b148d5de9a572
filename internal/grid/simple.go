package grid

import (
	"github.com/helmutg/tcvt/internal/attr"
	"github.com/helmutg/tcvt/internal/canvas"
)

// Simple is the one-pane Grid variant: logical coordinates equal physical
// coordinates on the single canvas it wraps.
type Simple struct {
	c     canvas.Canvas
	attrs attr.Mask
}

// NewSimple wraps c as a single-pane Grid. c must already have ScrollOk
// enabled by the caller, matching the teacher's canvas-bootstrap convention.
func NewSimple(c canvas.Canvas) *Simple {
	return &Simple{c: c}
}

func (s *Simple) MaxYX() (int, int) { return s.c.MaxYX() }
func (s *Simple) YX() (int, int)    { return s.c.YX() }

func (s *Simple) Move(row, col int) {
	rows, cols := s.c.MaxYX()
	s.c.Move(clamp(row, rows), clamp(col, cols))
}

func (s *Simple) RelMove(dy, dx int) {
	y, x := s.c.YX()
	s.Move(y+dy, x+dx)
}

// AddCh implements the wrap rule from the grid contract: a write at the
// rightmost column is placed via InsCh (so the canvas never wraps on its
// own), and the cursor advances to the next row at column 0, scrolling
// first if that row would be past the bottom.
func (s *Simple) AddCh(ch rune) {
	rows, cols := s.c.MaxYX()
	y, x := s.c.YX()
	if x == cols-1 {
		s.c.InsCh(ch, s.attrs)
		if y+1 >= rows {
			s.Scroll()
			s.c.Move(rows-1, 0)
		} else {
			s.c.Move(y+1, 0)
		}
		return
	}
	s.c.AddCh(ch, s.attrs)
}

func (s *Simple) InsCh(ch rune) { s.c.InsCh(ch, s.attrs) }
func (s *Simple) DelCh()        { s.c.DelCh() }
func (s *Simple) InCh() (rune, attr.Mask) { return s.c.InCh() }

func (s *Simple) Scroll() { s.c.Scroll(1) }

func (s *Simple) ClrToBot() { s.c.ClrToBot() }
func (s *Simple) ClrToEOL() { s.c.ClrToEOL() }
func (s *Simple) InsertLn() { s.c.InsertLn() }
func (s *Simple) DeleteLn() { s.c.DeleteLn() }

func (s *Simple) AttrOn(mask attr.Mask)  { s.attrs = s.attrs.On(mask) }
func (s *Simple) AttrSet(mask attr.Mask) { s.attrs = mask }

func (s *Simple) Refresh() { s.c.Refresh() }
