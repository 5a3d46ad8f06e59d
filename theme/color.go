package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode selects how a Color is interpreted
type ColorMode uint8

const (
	// ColorDefault uses the terminal's own default color
	ColorDefault ColorMode = iota

	// Color256 is an index into the xterm 256-color palette
	Color256

	// ColorRGB is a 24-bit color, reduced by the driver if unsupported
	ColorRGB
)

// Color is an abstract color. Plain comparable value; usable as a map key.
type Color struct {
	Mode  ColorMode
	Index uint8    // Color256
	R     uint8    // ColorRGB
	G     uint8
	B     uint8
}

// TerminalDefault is the terminal's default color
var TerminalDefault = Color{Mode: ColorDefault}

// FromIndex returns a 256-palette color
func FromIndex(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// LowRes returns a color from the 6x6x6 cube of the 256-color palette.
// r, g, b must be in [0,5]; out-of-range values are clamped.
func LowRes(r, g, b uint8) Color {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return FromIndex(16 + 36*r + 6*g + b)
}

// Base 16 palette indices
const (
	Black uint8 = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = map[string]Color{
	"default":        TerminalDefault,
	"black":          FromIndex(Black),
	"red":            FromIndex(Red),
	"green":          FromIndex(Green),
	"yellow":         FromIndex(Yellow),
	"blue":           FromIndex(Blue),
	"magenta":        FromIndex(Magenta),
	"cyan":           FromIndex(Cyan),
	"white":          FromIndex(White),
	"light black":    FromIndex(BrightBlack),
	"light red":      FromIndex(BrightRed),
	"light green":    FromIndex(BrightGreen),
	"light yellow":   FromIndex(BrightYellow),
	"light blue":     FromIndex(BrightBlue),
	"light magenta":  FromIndex(BrightMagenta),
	"light cyan":     FromIndex(BrightCyan),
	"light white":    FromIndex(BrightWhite),
}

// ParseColor reads a color from its text form: a known name, a palette
// index ("@208"), or a hex value ("#ff8800", "#f80")
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if c, ok := colorNames[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "@") {
		n, err := strconv.ParseUint(s[1:], 10, 8)
		if err != nil {
			return TerminalDefault, fmt.Errorf("invalid palette index %q: %w", s, err)
		}
		return FromIndex(uint8(n)), nil
	}

	if strings.HasPrefix(s, "#") {
		hex := s
		// Expand short form #f80 -> #ff8800
		if len(hex) == 4 {
			hex = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return TerminalDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}

	return TerminalDefault, fmt.Errorf("unknown color %q", s)
}

// ColorPair is an ordered foreground/background combination. It is the
// key of the backend's pair cache.
type ColorPair struct {
	Front Color
	Back  Color
}

// Pair creates a ColorPair
func Pair(front, back Color) ColorPair {
	return ColorPair{Front: front, Back: back}
}

// Invert returns the pair with foreground and background swapped
func (p ColorPair) Invert() ColorPair {
	return ColorPair{Front: p.Back, Back: p.Front}
}
