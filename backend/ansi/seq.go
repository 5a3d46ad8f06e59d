package ansi

// The parser turns escape sequences into the same numeric key codes
// the decoder tables expect. The numbers mirror the ncurses KEY_*
// values; both sides of the protocol must agree on them.

// Plain navigation codes
const (
	seqCodeDown      = 258
	seqCodeUp        = 259
	seqCodeLeft      = 260
	seqCodeRight     = 261
	seqCodeHome      = 262
	seqCodeF1        = 265
	seqCodeDel       = 330
	seqCodeIns       = 331
	seqCodeSDown     = 336
	seqCodeSUp       = 337
	seqCodePageDown  = 338
	seqCodePageUp    = 339
	seqCodeBTab      = 353
	seqCodeEnd       = 360
	seqCodeSDel      = 383
	seqCodeSEnd      = 386
	seqCodeSHome     = 391
	seqCodeSLeft     = 393
	seqCodeSPageDown = 396
	seqCodeSPageUp   = 398
	seqCodeSRight    = 402
	seqCodeResize    = 410
)

// Modified function-key bands, 12 wide each
const (
	seqCodeShiftF1     = 277
	seqCodeCtrlF1      = 289
	seqCodeCtrlShiftF1 = 301
	seqCodeAltF1       = 313
)

// modKey carries the extended-code block base for one navigation key
// plus its dedicated shift code (0 when the key has none)
type modKey struct {
	plain int
	shift int
	// altBase starts the 5-code run Alt, Alt+Shift, Ctrl,
	// Ctrl+Shift, Ctrl+Alt
	altBase int
}

var modKeys = map[byte]modKey{
	'A': {seqCodeUp, seqCodeSUp, 567},
	'B': {seqCodeDown, seqCodeSDown, 526},
	'C': {seqCodeRight, seqCodeSRight, 561},
	'D': {seqCodeLeft, seqCodeSLeft, 546},
	'H': {seqCodeHome, seqCodeSHome, 536},
	'F': {seqCodeEnd, seqCodeSEnd, 531},
}

// tildeKeys maps the leading number of "ESC [ n ~" sequences
var tildeKeys = map[int]modKey{
	1: {seqCodeHome, seqCodeSHome, 536},
	2: {seqCodeIns, 0, 541},
	3: {seqCodeDel, seqCodeSDel, 520},
	4: {seqCodeEnd, seqCodeSEnd, 531},
	5: {seqCodePageUp, seqCodeSPageUp, 556},
	6: {seqCodePageDown, seqCodeSPageDown, 551},
	7: {seqCodeHome, seqCodeSHome, 536},
	8: {seqCodeEnd, seqCodeSEnd, 531},
}

// tildeFKeys maps "ESC [ n ~" numbers to function keys 1-12
var tildeFKeys = map[int]int{
	11: 1, 12: 2, 13: 3, 14: 4, 15: 5, 17: 6,
	18: 7, 19: 8, 20: 9, 21: 10, 23: 11, 24: 12,
}

// withMod applies an xterm modifier parameter (2=Shift, 3=Alt,
// 4=Alt+Shift, 5=Ctrl, 6=Ctrl+Shift, 7=Ctrl+Alt) to a key
func (k modKey) withMod(mod int) (int, bool) {
	switch mod {
	case 0, 1:
		return k.plain, true
	case 2:
		if k.shift == 0 {
			return 0, false
		}
		return k.shift, true
	case 3, 4, 5, 6, 7:
		if k.altBase == 0 {
			return 0, false
		}
		return k.altBase + (mod - 3), true
	}
	return 0, false
}

// fKeyCode returns the code for function key n with an xterm modifier
// parameter applied
func fKeyCode(n, mod int) (int, bool) {
	if n < 1 || n > 12 {
		return 0, false
	}
	switch mod {
	case 0, 1:
		return seqCodeF1 + n - 1, true
	case 2:
		return seqCodeShiftF1 + n - 1, true
	case 3:
		return seqCodeAltF1 + n - 1, true
	case 5:
		return seqCodeCtrlF1 + n - 1, true
	case 6:
		return seqCodeCtrlShiftF1 + n - 1, true
	}
	return 0, false
}

// parseSequence consumes one escape sequence from the head of data.
// consumed is 0 when the sequence is incomplete; ok is false when a
// syntactically valid sequence maps to nothing and must be swallowed.
func parseSequence(data []byte) (consumed int, code int, ok bool) {
	if len(data) < 2 || data[0] != 0x1b {
		return 0, 0, false
	}

	switch data[1] {
	case '[':
		return parseCSI(data)
	case 'O':
		return parseSS3(data)
	}
	return 0, 0, false
}

func parseCSI(data []byte) (int, int, bool) {
	if len(data) < 3 {
		return 0, 0, false
	}

	// Scan parameters up to the final byte
	end := 2
	maxScan := min(len(data), 16)
	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			break
		}
		if b != ';' && (b < '0' || b > '9') {
			// Not a key sequence; swallow through the final byte
			return end + 1, 0, false
		}
		end++
	}
	if end >= maxScan && end >= len(data) {
		return 0, 0, false
	}
	if end >= maxScan {
		// Oversized, swallow what was scanned
		return end, 0, false
	}

	final := data[end]
	num, mod := splitParams(data[2:end])

	switch {
	case final == 'Z':
		return end + 1, seqCodeBTab, true

	case final == '~':
		if f, isF := tildeFKeys[num]; isF {
			if c, valid := fKeyCode(f, mod); valid {
				return end + 1, c, true
			}
			return end + 1, 0, false
		}
		if k, known := tildeKeys[num]; known {
			if c, valid := k.withMod(mod); valid {
				return end + 1, c, true
			}
		}
		return end + 1, 0, false

	case final >= 'P' && final <= 'S':
		if c, valid := fKeyCode(int(final-'P')+1, mod); valid {
			return end + 1, c, true
		}
		return end + 1, 0, false

	default:
		if k, known := modKeys[final]; known {
			if c, valid := k.withMod(mod); valid {
				return end + 1, c, true
			}
		}
		return end + 1, 0, false
	}
}

func parseSS3(data []byte) (int, int, bool) {
	if len(data) < 3 {
		return 0, 0, false
	}
	switch data[2] {
	case 'A':
		return 3, seqCodeUp, true
	case 'B':
		return 3, seqCodeDown, true
	case 'C':
		return 3, seqCodeRight, true
	case 'D':
		return 3, seqCodeLeft, true
	case 'H':
		return 3, seqCodeHome, true
	case 'F':
		return 3, seqCodeEnd, true
	case 'P', 'Q', 'R', 'S':
		return 3, seqCodeF1 + int(data[2]-'P'), true
	}
	// Unknown SS3, swallow to keep garbage off the screen
	return 3, 0, false
}

// splitParams reads "n" or "n;m" parameter bytes
func splitParams(params []byte) (num, mod int) {
	cur := 0
	seenSep := false
	for _, b := range params {
		if b == ';' {
			num = cur
			cur = 0
			seenSep = true
			continue
		}
		cur = cur*10 + int(b-'0')
	}
	if seenSep {
		mod = cur
	} else {
		num = cur
	}
	return num, mod
}
