package grid

import (
	"github.com/helmutg/tcvt/internal/attr"
	"github.com/helmutg/tcvt/internal/canvas"
)

// separatorGlyph draws the vertical rule between adjacent panes. The grid
// layer only needs a visually distinct glyph here; alternate-charset
// translation of real VLINE/ACS glyphs is the parser's concern, not the
// grid's.
const separatorGlyph = '|'

// Columns stripes N panes of a parent canvas into one logically contiguous
// (H*N, W_col) vertical strip. Column i of the logical screen is rows
// i*H .. (i+1)*H-1; the active pane is y_log/H.
type Columns struct {
	parent canvas.Canvas
	panes  []canvas.Canvas
	h      int
	wCol   int
	n      int
	yLog   int
	xLog   int
	attrs  attr.Mask
}

// NewColumns builds an N-pane Columns grid over parent's current size. It
// returns ErrBadWidth if n < 1 or the resulting per-pane width would not be
// positive — n == 1 is accepted as a degenerate but valid configuration.
func NewColumns(parent canvas.Canvas, n int) (*Columns, error) {
	if n < 1 {
		return nil, ErrBadWidth
	}
	rows, cols := parent.MaxYX()
	wCol := (cols - (n - 1)) / n
	if wCol <= 0 {
		return nil, ErrBadWidth
	}

	panes := make([]canvas.Canvas, n)
	for i := 0; i < n; i++ {
		p := parent.Derived(rows, wCol, 0, i*(wCol+1))
		p.ScrollOk(true)
		panes[i] = p
	}

	c := &Columns{parent: parent, panes: panes, h: rows, wCol: wCol, n: n}
	c.drawSeparators()
	c.syncCursor()
	return c, nil
}

func (c *Columns) drawSeparators() {
	for i := 1; i < c.n; i++ {
		c.parent.VLine(0, i*(c.wCol+1)-1, separatorGlyph, c.h)
	}
}

func (c *Columns) syncCursor() {
	k := c.yLog / c.h
	local := c.yLog % c.h
	c.panes[k].Move(local, c.xLog)
}

func (c *Columns) MaxYX() (int, int) { return c.h * c.n, c.wCol }
func (c *Columns) YX() (int, int)    { return c.yLog, c.xLog }

func (c *Columns) Move(row, col int) {
	c.yLog = clamp(row, c.h*c.n)
	c.xLog = clamp(col, c.wCol)
	c.syncCursor()
}

func (c *Columns) RelMove(dy, dx int) {
	c.Move(c.yLog+dy, c.xLog+dx)
}

// AddCh implements the wrap rule: a write at the rightmost logical column
// goes through InsCh (to avoid the pane's own wrap), and the cursor
// advances to the next logical row at column 0, scrolling first if that
// row would run past the bottom.
func (c *Columns) AddCh(ch rune) {
	k := c.yLog / c.h
	if c.xLog == c.wCol-1 {
		c.panes[k].InsCh(ch, c.attrs)
		c.advanceRow()
		return
	}
	c.panes[k].AddCh(ch, c.attrs)
	c.xLog++
}

func (c *Columns) advanceRow() {
	next := c.yLog + 1
	if next >= c.h*c.n {
		c.Scroll()
		c.yLog = c.h*c.n - 1
	} else {
		c.yLog = next
	}
	c.xLog = 0
	c.syncCursor()
}

func (c *Columns) InsCh(ch rune) {
	k := c.yLog / c.h
	c.panes[k].InsCh(ch, c.attrs)
}

func (c *Columns) DelCh() {
	k := c.yLog / c.h
	c.panes[k].DelCh()
}

func (c *Columns) InCh() (rune, attr.Mask) {
	k := c.yLog / c.h
	return c.panes[k].InCh()
}

// spillUp moves pane i's first physical row onto pane i-1's last physical
// row, then scrolls pane i up by one. Both panes' cursors are restored
// afterward.
func (c *Columns) spillUp(i int) {
	src, dst := c.panes[i], c.panes[i-1]
	srcY, srcX := src.YX()
	dstY, dstX := dst.YX()

	for x := 0; x < c.wCol-1; x++ {
		src.Move(0, x)
		ch, a := src.InCh()
		dst.Move(c.h-1, x)
		dst.AddCh(ch, a)
	}
	src.Move(0, c.wCol-1)
	ch, a := src.InCh()
	dst.Move(c.h-1, c.wCol-1)
	dst.InsCh(ch, a)

	src.Scroll(1)

	src.Move(srcY, srcX)
	dst.Move(dstY, dstX)
}

// spillDown scrolls pane i down by one, then copies pane i-1's last
// physical row onto pane i's now-blank first row. Both panes' cursors are
// restored afterward.
func (c *Columns) spillDown(i int) {
	src, dst := c.panes[i-1], c.panes[i]
	srcY, srcX := src.YX()
	dstY, dstX := dst.YX()

	dst.Scroll(-1)

	for x := 0; x < c.wCol-1; x++ {
		src.Move(c.h-1, x)
		ch, a := src.InCh()
		dst.Move(0, x)
		dst.AddCh(ch, a)
	}
	src.Move(c.h-1, c.wCol-1)
	ch, a := src.InCh()
	dst.Move(0, c.wCol-1)
	dst.InsCh(ch, a)

	src.Move(srcY, srcX)
	dst.Move(dstY, dstX)
}

// Scroll scrolls the full logical screen up by one: pane 0 discards its top
// row directly, and every later pane hands its top row up to the bottom of
// its left neighbor via spillUp. Separator columns live on the parent canvas
// and are never touched.
func (c *Columns) Scroll() {
	c.panes[0].Scroll(1)
	for i := 1; i < c.n; i++ {
		c.spillUp(i)
	}
}

func (c *Columns) ClrToBot() {
	k := c.yLog / c.h
	c.panes[k].ClrToBot()
	for i := k + 1; i < c.n; i++ {
		c.panes[i].Clear()
	}
}

func (c *Columns) ClrToEOL() {
	k := c.yLog / c.h
	c.panes[k].ClrToEOL()
}

// InsertLn makes room at the logical cursor row: panes below the cursor's
// pane spill their content down one row each (descending, so nothing is
// overwritten before it is read), then the cursor's own pane gets a local
// InsertLn.
func (c *Columns) InsertLn() {
	k := c.yLog / c.h
	for i := c.n - 1; i > k; i-- {
		c.spillDown(i)
	}
	c.panes[k].InsertLn()
}

// DeleteLn removes the logical cursor row: the cursor's pane gets a local
// DeleteLn, then panes below spill their top row up (ascending) to fill the
// gap that propagates down.
func (c *Columns) DeleteLn() {
	k := c.yLog / c.h
	c.panes[k].DeleteLn()
	for i := k + 1; i < c.n; i++ {
		c.spillUp(i)
	}
}

func (c *Columns) AttrOn(mask attr.Mask)  { c.attrs = c.attrs.On(mask) }
func (c *Columns) AttrSet(mask attr.Mask) { c.attrs = mask }

// Refresh flushes the parent (drawing separators) first, then every
// non-active pane, and the active pane last so the visible hardware cursor
// ends up on the active pane.
func (c *Columns) Refresh() {
	c.parent.Refresh()
	k := c.yLog / c.h
	for i, p := range c.panes {
		if i == k {
			continue
		}
		p.Refresh()
	}
	c.panes[k].Refresh()
}
