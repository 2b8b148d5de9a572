// Package canvas defines the CellCanvas capability the grid package builds
// on: a thin, opaque wrapper over a curses-like cell-grid rendering
// library. This package never interprets glyphs or attributes; it only
// forwards primitive cell operations to the backing implementation.
package canvas

import "github.com/helmutg/tcvt/internal/attr"

// Canvas is the capability surface the underlying cell-grid rendering
// library must expose: primitive cell write, insert/delete, scroll,
// attributes, and sub-window derivation. Grid never caches cells itself —
// every read goes through InCh.
type Canvas interface {
	// MaxYX returns the canvas's (rows, cols).
	MaxYX() (rows, cols int)
	// YX returns the canvas's own cursor position.
	YX() (row, col int)
	// Move places the canvas's cursor. Callers are responsible for
	// clamping; Canvas implementations do not re-validate bounds.
	Move(row, col int)
	// AddCh writes ch with attrs at the cursor and advances the cursor,
	// triggering the backing library's own wrap/scroll if the cursor was
	// on the last column (grid.Columns avoids this by inserting at the
	// rightmost column instead of adding).
	AddCh(ch rune, attrs attr.Mask)
	// InsCh inserts ch at the cursor, shifting the remainder of the row
	// right by one and dropping the rightmost cell, without moving the
	// cursor and without provoking a wrap.
	InsCh(ch rune, attrs attr.Mask)
	// DelCh deletes the cell at the cursor, shifting the remainder of the
	// row left by one and blanking the new rightmost cell.
	DelCh()
	// InCh reads the cell at the cursor.
	InCh() (rune, attr.Mask)
	// Scroll scrolls the canvas by n lines; positive scrolls up (content
	// moves up, blank line appears at the bottom), negative scrolls down.
	Scroll(n int)
	// ScrollOk enables or disables scrolling on the canvas; callers must
	// enable it once before the first Scroll call.
	ScrollOk(on bool)
	// Clear blanks the entire canvas and homes the cursor.
	Clear()
	// ClrToBot clears from the cursor (inclusive) to the end of canvas.
	ClrToBot()
	// ClrToEOL clears from the cursor (inclusive) to the end of the row.
	ClrToEOL()
	// InsertLn inserts a blank line at the cursor row, pushing rows below
	// down by one; the last row falls off.
	InsertLn()
	// DeleteLn removes the cursor's row, pulling rows below up by one;
	// the last row becomes blank.
	DeleteLn()
	// VLine draws a vertical line of length cells of ch starting at
	// (row, col).
	VLine(row, col int, ch rune, length int)
	// Refresh flushes dirty state to the physical screen.
	Refresh()
	// Derived returns a sub-canvas of the given size positioned at (y, x)
	// relative to this canvas's origin — the Go name for curses derwin.
	Derived(height, width, y, x int) Canvas
	// Beep rings the terminal bell.
	Beep()
}

// ColorAllocator is implemented by Canvas backends that can actually map
// color-pair indices to real colors (the ncurses adapter). The in-memory
// fake used by tests implements Canvas but not ColorAllocator.
type ColorAllocator interface {
	StartColor() error
	InitPair(pair int, fg, bg int) error
}

// Keyboard is implemented by Canvas backends that can read raw keypresses
// off the root window (the ncurses adapter's stdscr, opened non-blocking).
// GetChar returns ok=false when no key is currently available, mirroring
// curses' ERR sentinel in NoDelay mode.
type Keyboard interface {
	GetChar() (key int, ok bool)
}
