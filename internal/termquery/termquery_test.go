package termquery

import "testing"

func TestParseAltChars_PairsBytes(t *testing.T) {
	// "q-x|" -> identifier 'q' maps to '-', identifier 'x' maps to '|'.
	got := parseAltChars("q-x|")
	if got['q'] != '-' {
		t.Errorf("parseAltChars()['q'] = %q, want '-'", got['q'])
	}
	if got['x'] != '|' {
		t.Errorf("parseAltChars()['x'] = %q, want '|'", got['x'])
	}
}

func TestParseAltChars_OddLengthIgnoresTrailingByte(t *testing.T) {
	got := parseAltChars("q-x")
	if len(got) != 1 {
		t.Fatalf("parseAltChars() len = %d, want 1 (trailing unpaired byte dropped)", len(got))
	}
}

func TestComposeGraphicsMap_UsesAcscWhenPresent(t *testing.T) {
	// identifier 'q' (hline) paired with replacement byte 0xC4, the byte a
	// hosted program in graphics mode actually emits under the real "ansi"
	// terminfo entry — the map must be keyed by that replacement byte.
	acsc := map[byte]rune{'q': rune(0xC4)}
	got := composeGraphicsMap(acsc)
	if got[0xC4] != rune(0xC4) {
		t.Errorf("composeGraphicsMap()[0xC4] = %q, want 0xC4", got[0xC4])
	}
	if _, ok := got['q']; ok {
		t.Errorf("composeGraphicsMap() should not key the identifier byte 'q' when acsc is present")
	}
}

func TestComposeGraphicsMap_FallsBackWithoutAcsc(t *testing.T) {
	got := composeGraphicsMap(map[byte]rune{})
	if got['q'] != '-' {
		t.Errorf("composeGraphicsMap()['q'] (no acsc) = %q, want fallback '-'", got['q'])
	}
	if got['x'] != '|' {
		t.Errorf("composeGraphicsMap()['x'] (no acsc) = %q, want fallback '|'", got['x'])
	}
}

func TestCapBytes_ReplacesTextualEsc(t *testing.T) {
	got := capBytes(`\EOA`)
	if len(got) != 3 || got[0] != 0x1b || got[1] != 'O' || got[2] != 'A' {
		t.Fatalf("capBytes() = %v, want [0x1b 'O' 'A']", got)
	}
}

func TestCapBytes_EmptyIsNil(t *testing.T) {
	if got := capBytes(""); got != nil {
		t.Errorf("capBytes(\"\") = %v, want nil", got)
	}
}
