// Package attr holds the terminal attribute bitmask and color-pair model
// shared by the grid and parser packages.
package attr

// Mask is a bitset of character attributes plus a packed color-pair index,
// the Go equivalent of a curses chtype's attribute/color bits. Bits 0-4 are
// the boolean attributes; bits 8-13 hold the pair index (0-63) so both
// travel together through Grid.AttrOn/AttrSet and Canvas.AddCh without a
// separate color parameter.
type Mask uint16

const (
	Bold Mask = 1 << iota
	Underline
	Reverse
	Blink
	Invis
)

const (
	pairShift = 8
	pairBits  = 0x3F
	pairMask  = Mask(pairBits) << pairShift
)

// On returns mask with bits OR-ed in — the semantics of curses attron().
// bits is expected to carry only boolean attribute flags; use WithPair to
// set the color pair.
func (m Mask) On(bits Mask) Mask {
	return m | bits
}

// WithPair returns mask with its color-pair bits replaced by pair (0-63).
func (m Mask) WithPair(pair int) Mask {
	return (m &^ pairMask) | (Mask(pair&pairBits) << pairShift)
}

// Pair extracts the color-pair index packed into mask.
func (m Mask) Pair() int {
	return int((m & pairMask) >> pairShift)
}

// NumPairs is the number of non-default color pairs pre-initialized at
// startup: 8 backgrounds x 8 foregrounds, minus the reserved pair 0.
const NumPairs = 63

// ColorPair returns the color-pair index for the given SGR foreground and
// background values (0-7, standard ncurses COLOR_BLACK..COLOR_WHITE
// ordering). fg is rotated by one so a real SGR code never lands on the
// reserved default pair 0.
func ColorPair(fg, bg int) int {
	return ((fg+1)%8)*8 + bg
}

// PairColors is one (pair index, fg color, bg color) triple to pass to the
// canvas's InitPair during startup. FG and BG are ncurses COLOR_* values
// (0-7), matching the 0-7 range ColorPair accepts directly.
type PairColors struct {
	Pair   int
	FG, BG int
}

// EnumeratePairs returns the 63 (pair, fg, bg) triples the startup routine
// must call InitPair for, in an order matching the original init_color_pairs
// loop nesting (background outermost), skipping the reserved pair 0.
func EnumeratePairs() []PairColors {
	out := make([]PairColors, 0, NumPairs)
	for bg := 0; bg < 8; bg++ {
		for fi := 0; fi < 8; fi++ {
			if fi == 0 && bg == 0 {
				continue
			}
			fg := (fi + 7) % 8 // inverse of ColorPair's (fg+1)%8 rotation
			out = append(out, PairColors{Pair: fi*8 + bg, FG: fg, BG: bg})
		}
	}
	return out
}
