// Package event defines the closed input-event vocabulary shared by
// every backend driver and every view. Drivers must decode raw input
// into exactly this set; unrecognized input becomes an Unknown event,
// never an error.
package event

// Type distinguishes event categories
type Type uint8

const (
	// Refresh is the periodic tick produced when no input arrived
	// within the poll interval
	Refresh Type = iota

	// Char is a printable character
	Char

	// CtrlChar is Ctrl plus an ASCII letter
	CtrlChar

	// KeyPress is a named key, optionally with a modifier
	KeyPress

	// WindowResize reports a terminal size change
	WindowResize

	// Unknown carries up to 4 undecoded bytes for forward compatibility
	Unknown
)

// Key identifies a named non-printable key
type Key uint8

const (
	KeyNone Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyIns
	KeyDel
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyNumpadCenter
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// FromF returns the function key for n in [1,12], KeyNone otherwise
func FromF(n int) Key {
	if n < 1 || n > 12 {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}

// Mod is a modifier combination attached to a named key
type Mod uint8

const (
	ModNone Mod = iota
	ModShift
	ModAlt
	ModAltShift
	ModCtrl
	ModCtrlShift
	ModCtrlAlt
)

// Event is one input occurrence. The zero value is a Refresh tick.
// Events are plain comparable values.
type Event struct {
	Type Type
	Key  Key
	Mod  Mod

	// Ch holds the character for Char events and the lowercase ASCII
	// letter for CtrlChar events
	Ch rune

	// Raw holds the little-endian bytes of an Unknown code
	Raw [4]byte
}

// NewRefresh returns a refresh tick event
func NewRefresh() Event {
	return Event{Type: Refresh}
}

// NewResize returns a window-resize event
func NewResize() Event {
	return Event{Type: WindowResize}
}

// NewChar returns a printable-character event
func NewChar(r rune) Event {
	return Event{Type: Char, Ch: r}
}

// NewCtrlChar returns a control-character event for an ASCII letter
func NewCtrlChar(r rune) Event {
	return Event{Type: CtrlChar, Ch: r}
}

// NewKey returns a bare named-key event
func NewKey(k Key) Event {
	return Event{Type: KeyPress, Key: k}
}

// Shifted returns a Shift-modified named-key event
func Shifted(k Key) Event {
	return Event{Type: KeyPress, Key: k, Mod: ModShift}
}

// Alted returns an Alt-modified named-key event
func Alted(k Key) Event {
	return Event{Type: KeyPress, Key: k, Mod: ModAlt}
}

// AltShifted returns an Alt+Shift-modified named-key event
func AltShifted(k Key) Event {
	return Event{Type: KeyPress, Key: k, Mod: ModAltShift}
}

// Ctrled returns a Ctrl-modified named-key event
func Ctrled(k Key) Event {
	return Event{Type: KeyPress, Key: k, Mod: ModCtrl}
}

// CtrlShifted returns a Ctrl+Shift-modified named-key event
func CtrlShifted(k Key) Event {
	return Event{Type: KeyPress, Key: k, Mod: ModCtrlShift}
}

// CtrlAlted returns a Ctrl+Alt-modified named-key event
func CtrlAlted(k Key) Event {
	return Event{Type: KeyPress, Key: k, Mod: ModCtrlAlt}
}

// NewUnknown returns an event carrying the 4 little-endian bytes of an
// undecoded driver code
func NewUnknown(code int32) Event {
	e := Event{Type: Unknown}
	for i := 0; i < 4; i++ {
		e.Raw[i] = byte(code >> (8 * i))
	}
	return e
}
