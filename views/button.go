package views

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/render"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// Button is a simple "<label>" button firing a callback on Enter
type Button struct {
	label    string
	callback Callback
}

// NewButton creates a button with a label and a deferred action
func NewButton(label string, cb Callback) *Button {
	return &Button{label: label, callback: cb}
}

// Label returns the button's label
func (b *Button) Label() string {
	return b.label
}

func (b *Button) Draw(p *render.Printer) {
	style := theme.StyleHighlightInactive
	if p.Focused() {
		style = theme.StyleHighlight
	}
	p.WithColor(style, func(cp *render.Printer) {
		cp.Print(vec.Zero, "<"+b.label+">")
	})
}

func (b *Button) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	return vec.New(runewidth.StringWidth(b.label)+2, 1)
}

func (b *Button) Layout(size vec.Vec2) {}

func (b *Button) OnEvent(e event.Event) EventResult {
	if e == event.NewKey(event.KeyEnter) {
		return Consume(b.callback)
	}
	return Ignored
}

func (b *Button) TakeFocus(source direction.Direction) bool {
	return true
}

func (b *Button) CallOnAny(sel Selector, fn func(View)) {}
