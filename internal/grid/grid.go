// Package grid implements the logical-screen abstraction: an addressable
// grid of cells backed by one or more canvas.Canvas panes. Simple wraps a
// single pane directly; Columns stripes N panes into one logically
// contiguous vertical strip via the spill algorithm in columns.go.
package grid

import (
	"errors"

	"github.com/helmutg/tcvt/internal/attr"
)

// ErrBadWidth is returned by NewColumns when the requested column count
// cannot yield panes of positive width.
var ErrBadWidth = errors.New("grid: column width must be positive")

// Grid is the operation set the input parser drives. Simple and Columns
// both implement it; the parser never distinguishes between them.
type Grid interface {
	MaxYX() (rows, cols int)
	YX() (row, col int)
	Move(row, col int)
	RelMove(dy, dx int)
	AddCh(ch rune)
	InsCh(ch rune)
	DelCh()
	InCh() (rune, attr.Mask)
	Scroll()
	ClrToBot()
	ClrToEOL()
	InsertLn()
	DeleteLn()
	AttrOn(mask attr.Mask)
	AttrSet(mask attr.Mask)
	Refresh()
}

// clamp restricts v to [0, max-1], or 0 if max <= 0.
func clamp(v, max int) int {
	if max <= 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}
