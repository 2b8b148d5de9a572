// Package termquery performs the one-shot terminfo lookup the session
// needs at startup: the symbolic key-sequence table and the
// alternate-character-set translation the parser's graphics mode uses.
package termquery

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2/terminfo"
)

// Key is one of the symbolic keys the event loop maps a keyboard read onto
// before writing a terminfo sequence to the child.
type Key int

const (
	KeyEnter Key = iota
	KeyLeft
	KeyDown
	KeyRight
	KeyUp
	KeyHome
	KeyInsert
	KeyBackspace
	KeyPgUp
	KeyPgDn
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
)

// Bootstrapped holds the two immutable maps a session needs for its entire
// lifetime: resolved key sequences and the graphics-mode glyph table.
type Bootstrapped struct {
	Keys     map[Key][]byte
	Graphics map[byte]rune
}

// Bootstrap queries the "ansi" terminfo entry once, the same query tcvt.py
// performs under a forced TERM=ansi before restoring the caller's own TERM.
func Bootstrap() (*Bootstrapped, error) {
	old, hadOld := os.LookupEnv("TERM")
	os.Setenv("TERM", "ansi")
	defer func() {
		if hadOld {
			os.Setenv("TERM", old)
		} else {
			os.Unsetenv("TERM")
		}
	}()

	ti, err := terminfo.LookupTerminfo("ansi")
	if err != nil {
		return nil, fmt.Errorf("termquery: lookup terminfo: %w", err)
	}

	keys := map[Key][]byte{
		KeyEnter:     []byte("\r"), // "cr" capability: plain carriage return
		KeyLeft:      capBytes(ti.KeyLeft),
		KeyDown:      capBytes(ti.KeyDown),
		KeyRight:     capBytes(ti.KeyRight),
		KeyUp:        capBytes(ti.KeyUp),
		KeyHome:      capBytes(ti.KeyHome),
		KeyInsert:    capBytes(ti.KeyInsert),
		KeyBackspace: capBytes(ti.KeyBackspace),
		KeyPgUp:      capBytes(ti.KeyPgup),
		KeyPgDn:      capBytes(ti.KeyPgdn),
		KeyF1:        capBytes(ti.KeyF1),
		KeyF2:        capBytes(ti.KeyF2),
		KeyF3:        capBytes(ti.KeyF3),
		KeyF4:        capBytes(ti.KeyF4),
		KeyF5:        capBytes(ti.KeyF5),
		KeyF6:        capBytes(ti.KeyF6),
		KeyF7:        capBytes(ti.KeyF7),
		KeyF8:        capBytes(ti.KeyF8),
		KeyF9:        capBytes(ti.KeyF9),
	}
	for k, v := range keys {
		if len(v) == 0 {
			delete(keys, k)
		}
	}

	return &Bootstrapped{
		Keys:     keys,
		Graphics: composeGraphicsMap(parseAltChars(ti.AltChars)),
	}, nil
}

// capBytes resolves a terminfo capability string to its output bytes.
// Entries pulled from the compiled terminfo database already carry real
// control bytes, but a defensive textual "\E" is replaced with ESC too, in
// case a capability was composed from a textual source.
func capBytes(s string) []byte {
	if s == "" {
		return nil
	}
	b := []byte(s)
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '\\' && i+1 < len(b) && b[i+1] == 'E' {
			out = append(out, 0x1b)
			i++
			continue
		}
		out = append(out, b[i])
	}
	return out
}

// parseAltChars parses a terminfo acsc string into a byte->rune map. acsc
// is an even-length string of (identifier, replacement) byte pairs.
func parseAltChars(s string) map[byte]rune {
	out := make(map[byte]rune, len(s)/2)
	b := []byte(s)
	for i := 0; i+1 < len(b); i += 2 {
		out[b[i]] = rune(b[i+1])
	}
	return out
}
