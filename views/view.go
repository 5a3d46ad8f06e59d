// Package views defines the contract every on-screen element
// implements, the composite Dialog, and the basic leaf views.
//
// A view negotiates geometry in two passes: RequiredSize reports the
// desired size bottom-up, Layout assigns the final size top-down. A
// parent exclusively owns its children; the tree is acyclic and torn
// down depth-first with its owner.
package views

import (
	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/render"
	"github.com/lixenwraith/termkit/vec"
)

// View is the widget contract
type View interface {
	// Draw paints the view through a printer scoped to its region
	Draw(p *render.Printer)

	// RequiredSize returns the desired size given an upper-bound box.
	// Idempotent for a fixed input absent intervening mutation.
	RequiredSize(constraint vec.Vec2) vec.Vec2

	// Layout assigns the definitive size. The view caches whatever
	// geometry Draw needs.
	Layout(size vec.Vec2)

	// OnEvent handles one input event
	OnEvent(e event.Event) EventResult

	// TakeFocus attempts to make this view the focus target when
	// entered from the given direction
	TakeFocus(source direction.Direction) bool

	// CallOnAny applies fn to every descendant matching the selector
	CallOnAny(sel Selector, fn func(View))
}

// Selector matches views by the name given to them via Named
type Selector string

// Context is the slice of the event loop that deferred callbacks may
// act on
type Context interface {
	// Quit stops the event loop
	Quit()

	// AddLayer pushes a view onto the layer stack
	AddLayer(v View)

	// PopLayer removes the top layer
	PopLayer()
}

// Callback is a deferred action produced by event handling and run by
// the event loop after dispatch completes
type Callback func(ctx Context)

// EventResult is the outcome of OnEvent
type EventResult struct {
	// Consumed reports whether the event was claimed
	Consumed bool

	// Callback is an optional deferred action, only meaningful when
	// the event was consumed
	Callback Callback
}

// Ignored is the result for events the view did not claim
var Ignored = EventResult{}

// Consume marks an event consumed, with an optional deferred action
func Consume(cb Callback) EventResult {
	return EventResult{Consumed: true, Callback: cb}
}
