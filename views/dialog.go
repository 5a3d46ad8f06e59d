package views

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkit/align"
	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/render"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// focusContent marks dialog focus on the content view; any other value
// is a button index
const focusContent = -1

// Dialog is a bordered box around one content view with an optional
// title and a row of buttons underneath.
//
// Focus is a small state machine: either the content holds it or one
// button does. With no buttons, focus is always on the content.
type Dialog struct {
	title   string
	content View
	buttons []*Sized

	padding vec.Vec4
	borders vec.Vec4

	focus int

	align align.Align
}

// NewDialog creates a dialog with placeholder content
func NewDialog() *Dialog {
	return Around(NewDummy())
}

// Around creates a dialog wrapping the given content view
func Around(v View) *Dialog {
	return &Dialog{
		content: v,
		focus:   focusContent,
		padding: vec.NewVec4(1, 1, 0, 0),
		borders: vec.NewVec4(1, 1, 1, 1),
		align:   align.TopRight(),
	}
}

// Text creates a dialog around a simple text content
func Text(content string) *Dialog {
	return Around(NewTextView(content))
}

// Info creates an infobox: the given text and an Ok dismiss button
func Info(content string) *Dialog {
	return Text(content).DismissButton("Ok")
}

// SetContent replaces the content view. The previous content is dropped.
func (d *Dialog) SetContent(v View) {
	d.content = v
}

// Content sets the content view. Chainable variant.
func (d *Dialog) Content(v View) *Dialog {
	d.SetContent(v)
	return d
}

// Button appends a button with the given label and deferred action
func (d *Dialog) Button(label string, cb Callback) *Dialog {
	d.buttons = append(d.buttons, WithSize(NewButton(label, cb)))
	return d
}

// DismissButton appends a button that pops the dialog's layer
func (d *Dialog) DismissButton(label string) *Dialog {
	return d.Button(label, func(ctx Context) {
		ctx.PopLayer()
	})
}

// SetTitle sets the title shown in the top border
func (d *Dialog) SetTitle(title string) {
	d.title = title
}

// Title sets the title. Chainable variant.
func (d *Dialog) Title(title string) *Dialog {
	d.SetTitle(title)
	return d
}

// HAlign sets the horizontal alignment of the button row
func (d *Dialog) HAlign(h align.HAlign) *Dialog {
	d.align.H = h
	return d
}

// VAlign sets the vertical alignment of the button row
func (d *Dialog) VAlign(v align.VAlign) *Dialog {
	d.align.V = v
	return d
}

// Padding sets the inset around content and buttons
func (d *Dialog) Padding(p vec.Vec4) *Dialog {
	d.padding = p
	return d
}

// PaddingTop sets the top padding, under the title
func (d *Dialog) PaddingTop(n int) *Dialog {
	d.padding.Top = n
	return d
}

// PaddingBottom sets the bottom padding, under the buttons
func (d *Dialog) PaddingBottom(n int) *Dialog {
	d.padding.Bottom = n
	return d
}

// PaddingLeft sets the left padding
func (d *Dialog) PaddingLeft(n int) *Dialog {
	d.padding.Left = n
	return d
}

// PaddingRight sets the right padding
func (d *Dialog) PaddingRight(n int) *Dialog {
	d.padding.Right = n
	return d
}

// Borders sets the border widths (each side 0 or 1)
func (d *Dialog) Borders(b vec.Vec4) *Dialog {
	d.borders = b
	return d
}

func (d *Dialog) Draw(p *render.Printer) {
	// Sum of the button sizes plus one-column gaps
	width := 0
	for _, b := range d.buttons {
		width += b.Size().X
	}
	if len(d.buttons) > 1 {
		width += len(d.buttons) - 1
	}

	overhead := d.padding.Add(d.borders)
	if p.Size().X < overhead.Horizontal() {
		return
	}
	offset := overhead.Left +
		d.align.H.GetOffset(width, p.Size().X-overhead.Horizontal())

	overheadBottom := d.padding.Bottom + d.borders.Bottom + 1
	if overheadBottom > p.Size().Y {
		return
	}
	y := p.Size().Y - overheadBottom

	buttonsHeight := 0
	for i, b := range d.buttons {
		size := b.Size()
		b.Draw(p.Sub(vec.New(offset, y), size, d.focus == i))
		// Keep one blank between buttons, one blank above the row
		offset += size.X + 1
		buttonsHeight = max(buttonsHeight, size.Y+1)
	}

	// What's left goes to the content
	taken := vec.New(0, buttonsHeight).
		Add(d.borders.Combined()).
		Add(d.padding.Combined())
	innerSize, ok := p.Size().CheckedSub(taken)
	if !ok {
		return
	}

	d.content.Draw(p.Sub(
		d.borders.TopLeft().Add(d.padding.TopLeft()),
		innerSize,
		d.focus == focusContent,
	))

	p.PrintBox(vec.Zero, p.Size(), false)

	if d.title != "" {
		length := runewidth.StringWidth(d.title)
		if length+4 > p.Size().X {
			// Too narrow, skip the title this frame
			return
		}
		x := (p.Size().X - length) / 2
		p.WithHighBorder(false, func(bp *render.Printer) {
			bp.Print(vec.New(x-2, 0), "┤ ")
			bp.Print(vec.New(x+length, 0), " ├")
		})
		p.WithColor(theme.StyleTitlePrimary, func(tp *render.Printer) {
			tp.Print(vec.New(x, 0), d.title)
		})
	}
}

func (d *Dialog) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	// Padding and borders are not available for children
	nomansLand := d.padding.Combined().Add(d.borders.Combined())

	// Buttons are not flexible; their size doesn't depend on ours
	buttonsSize := vec.Zero
	if len(d.buttons) > 1 {
		buttonsSize.X = len(d.buttons) - 1
	}
	for _, b := range d.buttons {
		s := b.View.RequiredSize(constraint)
		buttonsSize.X += s.X
		buttonsSize.Y = max(buttonsSize.Y, s.Y+1)
	}

	taken := nomansLand.Add(vec.New(0, buttonsSize.Y))
	contentReq, ok := constraint.CheckedSub(taken)
	if !ok {
		// Degraded but termination-safe: report the bare overhead
		return taken
	}

	contentSize := d.content.RequiredSize(contentReq)

	// Vertically buttons and content stack; horizontally take the max
	inner := vec.New(
		max(contentSize.X, buttonsSize.X),
		contentSize.Y+buttonsSize.Y,
	).Add(d.padding.Combined()).Add(d.borders.Combined())

	if d.title != "" {
		// Room for the title plus its corner decorations
		inner.X = max(inner.X, runewidth.StringWidth(d.title)+6)
	}

	return inner
}

func (d *Dialog) Layout(size vec.Vec2) {
	// Padding and borders are taken off the top
	taken := d.borders.Combined().Add(d.padding.Combined())
	size = size.SaturatingSub(taken)

	// Buttons get everything they ask for, laid out in reverse
	buttonsHeight := 0
	for i := len(d.buttons) - 1; i >= 0; i-- {
		b := d.buttons[i]
		s := b.View.RequiredSize(size)
		buttonsHeight = max(buttonsHeight, s.Y+1)
		b.Layout(s)
	}

	// Content makes do with what's left
	if buttonsHeight > size.Y {
		buttonsHeight = size.Y
	}
	d.content.Layout(size.SaturatingSub(vec.New(0, buttonsHeight)))
}

func (d *Dialog) OnEvent(e event.Event) EventResult {
	if d.focus == focusContent {
		// On the content, we can only go down to the buttons
		if res := d.content.OnEvent(e); res.Consumed {
			return res
		}
		if len(d.buttons) == 0 {
			return Ignored
		}
		switch e {
		case event.NewKey(event.KeyDown),
			event.NewKey(event.KeyTab),
			event.Shifted(event.KeyTab):
			// Default to the leftmost button when going down
			d.focus = 0
			return Consume(nil)
		}
		return Ignored
	}

	// On a button there is more choice
	i := d.focus
	if res := d.buttons[i].OnEvent(e); res.Consumed {
		return res
	}
	switch {
	case e == event.NewKey(event.KeyUp):
		// Up goes back to the content
		if d.content.TakeFocus(direction.FromDown()) {
			d.focus = focusContent
			return Consume(nil)
		}
	case e == event.Shifted(event.KeyTab):
		if d.content.TakeFocus(direction.FromBack()) {
			d.focus = focusContent
			return Consume(nil)
		}
	case e == event.NewKey(event.KeyTab):
		if d.content.TakeFocus(direction.FromFront()) {
			d.focus = focusContent
			return Consume(nil)
		}
	case e == event.NewKey(event.KeyRight) && i+1 < len(d.buttons):
		d.focus = i + 1
		return Consume(nil)
	case e == event.NewKey(event.KeyLeft) && i > 0:
		d.focus = i - 1
		return Consume(nil)
	}
	return Ignored
}

func (d *Dialog) TakeFocus(source direction.Direction) bool {
	// Content gets first refusal regardless of entry direction
	if d.content.TakeFocus(source) {
		d.focus = focusContent
		return true
	}
	if len(d.buttons) > 0 {
		d.focus = 0
		return true
	}
	return false
}

func (d *Dialog) CallOnAny(sel Selector, fn func(View)) {
	d.content.CallOnAny(sel, fn)
}
