package canvas

import "github.com/helmutg/tcvt/internal/attr"

// cell is one stored character plus its attribute mask.
type cell struct {
	ch   rune
	attr attr.Mask
}

// Fake is an in-memory Canvas implementation with no cgo dependency, used
// by grid and vtparse unit tests. It models exactly the operations Canvas
// exposes against a flat buffer; it does not implement ColorAllocator.
type Fake struct {
	rows, cols   int
	originY      int // offset of this canvas within a parent buffer, for Derived
	originX      int
	buf          []cell // shared backing buffer, rows*cols of the root canvas
	bufCols      int    // stride of buf (root canvas's column count)
	cy, cx       int
	scrollOn     bool
	BeepCount    int
	RefreshCount int
}

// NewFake builds a root Fake canvas of the given size.
func NewFake(rows, cols int) *Fake {
	buf := make([]cell, rows*cols)
	for i := range buf {
		buf[i] = cell{ch: ' '}
	}
	return &Fake{rows: rows, cols: cols, buf: buf, bufCols: cols}
}

func (f *Fake) at(row, col int) *cell {
	return &f.buf[(f.originY+row)*f.bufCols+(f.originX+col)]
}

func (f *Fake) MaxYX() (int, int) { return f.rows, f.cols }
func (f *Fake) YX() (int, int)    { return f.cy, f.cx }

func (f *Fake) Move(row, col int) {
	f.cy, f.cx = row, col
}

func (f *Fake) AddCh(ch rune, attrs attr.Mask) {
	*f.at(f.cy, f.cx) = cell{ch: ch, attr: attrs}
	f.cx++
	if f.cx >= f.cols {
		f.cx = 0
		if f.cy+1 < f.rows {
			f.cy++
		} else if f.scrollOn {
			f.Scroll(1)
		}
	}
}

func (f *Fake) InsCh(ch rune, attrs attr.Mask) {
	for col := f.cols - 1; col > f.cx; col-- {
		*f.at(f.cy, col) = *f.at(f.cy, col-1)
	}
	*f.at(f.cy, f.cx) = cell{ch: ch, attr: attrs}
}

func (f *Fake) DelCh() {
	for col := f.cx; col < f.cols-1; col++ {
		*f.at(f.cy, col) = *f.at(f.cy, col+1)
	}
	*f.at(f.cy, f.cols-1) = cell{ch: ' '}
}

func (f *Fake) InCh() (rune, attr.Mask) {
	c := f.at(f.cy, f.cx)
	return c.ch, c.attr
}

func (f *Fake) Scroll(n int) {
	if n > 0 {
		for i := 0; i < n; i++ {
			for row := 0; row < f.rows-1; row++ {
				for col := 0; col < f.cols; col++ {
					*f.at(row, col) = *f.at(row+1, col)
				}
			}
			f.blankRow(f.rows - 1)
		}
	} else {
		for i := 0; i < -n; i++ {
			for row := f.rows - 1; row > 0; row-- {
				for col := 0; col < f.cols; col++ {
					*f.at(row, col) = *f.at(row-1, col)
				}
			}
			f.blankRow(0)
		}
	}
}

func (f *Fake) ScrollOk(on bool) { f.scrollOn = on }

func (f *Fake) blankRow(row int) {
	for col := 0; col < f.cols; col++ {
		*f.at(row, col) = cell{ch: ' '}
	}
}

func (f *Fake) Clear() {
	for row := 0; row < f.rows; row++ {
		f.blankRow(row)
	}
	f.cy, f.cx = 0, 0
}

func (f *Fake) ClrToBot() {
	f.ClrToEOL()
	for row := f.cy + 1; row < f.rows; row++ {
		f.blankRow(row)
	}
}

func (f *Fake) ClrToEOL() {
	for col := f.cx; col < f.cols; col++ {
		*f.at(f.cy, col) = cell{ch: ' '}
	}
}

func (f *Fake) InsertLn() {
	for row := f.rows - 1; row > f.cy; row-- {
		for col := 0; col < f.cols; col++ {
			*f.at(row, col) = *f.at(row-1, col)
		}
	}
	f.blankRow(f.cy)
}

func (f *Fake) DeleteLn() {
	for row := f.cy; row < f.rows-1; row++ {
		for col := 0; col < f.cols; col++ {
			*f.at(row, col) = *f.at(row+1, col)
		}
	}
	f.blankRow(f.rows - 1)
}

func (f *Fake) VLine(row, col int, ch rune, length int) {
	for i := 0; i < length && row+i < f.rows; i++ {
		*f.at(row+i, col) = cell{ch: ch}
	}
}

func (f *Fake) Refresh() { f.RefreshCount++ }

func (f *Fake) Derived(height, width, y, x int) Canvas {
	return &Fake{
		rows: height, cols: width,
		originY: f.originY + y, originX: f.originX + x,
		buf: f.buf, bufCols: f.bufCols,
	}
}

func (f *Fake) Beep() { f.BeepCount++ }

// Row renders row as a plain string, ignoring attributes - for test
// assertions on visible content.
func (f *Fake) Row(row int) string {
	out := make([]rune, f.cols)
	for col := 0; col < f.cols; col++ {
		out[col] = f.at(row, col).ch
	}
	return string(out)
}

// CellAt exposes a cell's attributes directly, for attribute assertions.
func (f *Fake) CellAt(row, col int) (rune, attr.Mask) {
	c := f.at(row, col)
	return c.ch, c.attr
}
