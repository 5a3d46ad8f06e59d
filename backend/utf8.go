package backend

import "unicode/utf8"

// readChar assembles one code point from a UTF-8 lead byte and a
// continuation-byte supplier. Malformed input yields utf8.RuneError
// rather than an error; character decoding is total.
func readChar(first byte, next func() byte) rune {
	if first < 0x80 {
		return rune(first)
	}

	var length int
	switch {
	case first&0xE0 == 0xC0:
		length = 2
	case first&0xF0 == 0xE0:
		length = 3
	case first&0xF8 == 0xF0:
		length = 4
	default:
		// Continuation byte or invalid lead
		return utf8.RuneError
	}

	if next == nil {
		return utf8.RuneError
	}

	buf := make([]byte, 1, 4)
	buf[0] = first
	for len(buf) < length {
		buf = append(buf, next())
	}

	r, _ := utf8.DecodeRune(buf)
	return r
}
