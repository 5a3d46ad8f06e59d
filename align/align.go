// Package align computes placement offsets for content inside a larger
// container, e.g. a dialog's button row inside its interior width.
package align

// HAlign is a horizontal alignment
type HAlign uint8

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
)

// VAlign is a vertical alignment
type VAlign uint8

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// Align combines a horizontal and a vertical alignment
type Align struct {
	H HAlign
	V VAlign
}

// TopLeft returns a top-left alignment
func TopLeft() Align {
	return Align{H: HAlignLeft, V: VAlignTop}
}

// TopRight returns a top-right alignment
func TopRight() Align {
	return Align{H: HAlignRight, V: VAlignTop}
}

// Center returns a centered alignment
func Center() Align {
	return Align{H: HAlignCenter, V: VAlignCenter}
}

// BottomRight returns a bottom-right alignment
func BottomRight() Align {
	return Align{H: HAlignRight, V: VAlignBottom}
}

// GetOffset returns the x offset for content of the given width inside
// a container of the given width. Oversized content pins to zero.
func (h HAlign) GetOffset(content, container int) int {
	if content >= container {
		return 0
	}
	switch h {
	case HAlignCenter:
		return (container - content) / 2
	case HAlignRight:
		return container - content
	default:
		return 0
	}
}

// GetOffset returns the y offset for content of the given height inside
// a container of the given height. Oversized content pins to zero.
func (v VAlign) GetOffset(content, container int) int {
	if content >= container {
		return 0
	}
	switch v {
	case VAlignCenter:
		return (container - content) / 2
	case VAlignBottom:
		return container - content
	default:
		return 0
	}
}
