package vtparse

// isPrintable reports whether b is in the byte set the parser's printing
// states accept directly: the core ASCII punctuation/alnum set plus a
// fixed handful of Latin-1 extras hosted programs are known to emit.
func isPrintable(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '@', ':', '~', '$', ' ', '.', '#', '!', '/', '_',
		'(', ')', ',', '[', ']', '=', '-', '+', '*', '\'', '"',
		'|', '<', '>', '%', '&', '\\', '?', ';', '`', '^', '{', '}':
		return true
	}
	return latin1Extra[b]
}

var latin1Extra = map[byte]bool{
	0xB4: true, 0xB6: true, 0xB7: true, 0xC3: true, 0xC4: true,
	0xD6: true, 0xDC: true, 0xE4: true, 0xE9: true, 0xFC: true, 0xF6: true,
}
