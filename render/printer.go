// Package render provides the scoped drawing context handed to views.
// A Printer grants access to a rectangular sub-region of the screen;
// everything painted through it is clipped to that region, so a view
// cannot draw outside the space its parent granted.
package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkit/backend"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// Printer paints into one region of the screen
type Printer struct {
	backend backend.Backend
	theme   *theme.Theme
	offset  vec.Vec2
	size    vec.Vec2
	focused bool
}

// New creates a root printer covering a full-screen region
func New(b backend.Backend, th *theme.Theme, size vec.Vec2) *Printer {
	return &Printer{
		backend: b,
		theme:   th,
		size:    size,
		focused: true,
	}
}

// Size returns the region size
func (p *Printer) Size() vec.Vec2 { return p.size }

// Focused reports whether the view drawing through this printer holds focus
func (p *Printer) Focused() bool { return p.focused }

// Theme returns the active theme
func (p *Printer) Theme() *theme.Theme { return p.theme }

// Sub returns a printer for a sub-region at the given offset. The child
// region is clipped to the parent's bounds, and its focus flag is the
// parent's combined with focused.
func (p *Printer) Sub(offset, size vec.Vec2, focused bool) *Printer {
	avail := p.size.SaturatingSub(offset)
	return &Printer{
		backend: p.backend,
		theme:   p.theme,
		offset:  p.offset.Add(offset),
		size:    size.Min(avail),
		focused: p.focused && focused,
	}
}

// Print paints text at a position inside the region, truncated at the
// region's right edge by display width
func (p *Printer) Print(pos vec.Vec2, text string) {
	if pos.Y < 0 || pos.Y >= p.size.Y || pos.X < 0 || pos.X >= p.size.X {
		return
	}

	avail := p.size.X - pos.X
	width := 0
	end := len(text)
	for i, r := range text {
		w := runewidth.RuneWidth(r)
		if width+w > avail {
			end = i
			break
		}
		width += w
	}
	if end == 0 {
		return
	}

	p.backend.PrintAt(p.offset.Add(pos), text[:end])
}

// PrintHLine paints a horizontal run of the given rune
func (p *Printer) PrintHLine(start vec.Vec2, width int, r rune) {
	if start.Y < 0 || start.Y >= p.size.Y {
		return
	}
	for x := max(start.X, 0); x < start.X+width && x < p.size.X; x++ {
		p.backend.PrintAt(p.offset.AddXY(x, start.Y), string(r))
	}
}

// PrintVLine paints a vertical run of the given rune
func (p *Printer) PrintVLine(start vec.Vec2, height int, r rune) {
	if start.X < 0 || start.X >= p.size.X {
		return
	}
	for y := max(start.Y, 0); y < start.Y+height && y < p.size.Y; y++ {
		p.backend.PrintAt(p.offset.AddXY(start.X, y), string(r))
	}
}

// PrintBox draws a border box. With outset borders, invert swaps which
// edges get the highlighted color.
func (p *Printer) PrintBox(start, size vec.Vec2, invert bool) {
	if p.theme.Borders == theme.BordersNone {
		return
	}
	if size.X < 2 || size.Y < 2 {
		return
	}

	// Top and left edges carry the high border
	p.WithHighBorder(invert, func(hp *Printer) {
		hp.Print(start, "┌")
		hp.PrintHLine(start.AddXY(1, 0), size.X-2, '─')
		hp.PrintVLine(start.AddXY(0, 1), size.Y-2, '│')
	})

	// Bottom and right edges carry the low border
	p.WithLowBorder(invert, func(lp *Printer) {
		lp.Print(start.AddXY(size.X-1, 0), "┐")
		lp.Print(start.AddXY(0, size.Y-1), "└")
		lp.Print(start.AddXY(size.X-1, size.Y-1), "┘")
		lp.PrintHLine(start.AddXY(1, size.Y-1), size.X-2, '─')
		lp.PrintVLine(start.AddXY(size.X-1, 1), size.Y-2, '│')
	})
}

// WithColor applies a palette style for the duration of fn
func (p *Printer) WithColor(style theme.ColorStyle, fn func(*Printer)) {
	p.WithPair(style.Resolve(p.theme), fn)
}

// WithPair applies an explicit color pair for the duration of fn
func (p *Printer) WithPair(pair theme.ColorPair, fn func(*Printer)) {
	p.backend.WithColor(pair, func() {
		fn(p)
	})
}

// WithEffect applies a visual effect for the duration of fn
func (p *Printer) WithEffect(effect theme.Effect, fn func(*Printer)) {
	p.backend.WithEffect(effect, func() {
		fn(p)
	})
}

// WithSelection applies reverse video when selected, for focus marking
func (p *Printer) WithSelection(selected bool, fn func(*Printer)) {
	if selected && p.focused {
		p.WithEffect(theme.EffectReverse, fn)
		return
	}
	fn(p)
}

// WithHighBorder applies the highlighted border color. Only outset
// border themes distinguish high from low edges.
func (p *Printer) WithHighBorder(invert bool, fn func(*Printer)) {
	style := theme.StylePrimary
	if p.theme.Borders == theme.BordersOutset && !invert {
		style = theme.StyleTertiary
	}
	p.WithColor(style, fn)
}

// WithLowBorder applies the shaded border color
func (p *Printer) WithLowBorder(invert bool, fn func(*Printer)) {
	style := theme.StylePrimary
	if p.theme.Borders == theme.BordersOutset && invert {
		style = theme.StyleTertiary
	}
	p.WithColor(style, fn)
}
