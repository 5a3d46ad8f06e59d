package views

import (
	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/render"
	"github.com/lixenwraith/termkit/vec"
)

// Dummy is a neutral placeholder view: draws nothing, refuses focus
type Dummy struct{}

// NewDummy creates a placeholder view
func NewDummy() *Dummy {
	return &Dummy{}
}

func (d *Dummy) Draw(p *render.Printer) {}

func (d *Dummy) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	return vec.New(1, 1)
}

func (d *Dummy) Layout(size vec.Vec2) {}

func (d *Dummy) OnEvent(e event.Event) EventResult {
	return Ignored
}

func (d *Dummy) TakeFocus(source direction.Direction) bool {
	return false
}

func (d *Dummy) CallOnAny(sel Selector, fn func(View)) {}
