// Package gui runs the event loop: it owns the backend, a stack of
// view layers, and the theme, and turns backend events into view
// dispatch plus deferred callbacks.
package gui

import (
	"github.com/lixenwraith/termkit/align"
	"github.com/lixenwraith/termkit/backend"
	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/render"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
	"github.com/lixenwraith/termkit/views"
)

// App owns the backend and the layer stack. Only the top layer
// receives events; all layers are drawn bottom-up, centered.
type App struct {
	backend backend.Backend
	theme   theme.Theme
	layers  []*views.Sized
	running bool
}

// New creates an app over a backend with the default theme
func New(b backend.Backend) *App {
	return &App{
		backend: b,
		theme:   theme.Default(),
	}
}

// SetTheme replaces the active theme
func (a *App) SetTheme(t theme.Theme) {
	a.theme = t
}

// Theme returns the active theme
func (a *App) Theme() *theme.Theme {
	return &a.theme
}

// SetRefreshRate asks the backend to produce periodic refresh events
// at the given frequency; 0 blocks indefinitely on input
func (a *App) SetRefreshRate(fps int) {
	a.backend.SetRefreshRate(fps)
}

// Quit stops the event loop after the current iteration
func (a *App) Quit() {
	a.running = false
}

// AddLayer pushes a view on top of the stack; it becomes the event
// target
func (a *App) AddLayer(v views.View) {
	a.layers = append(a.layers, views.WithSize(v))
	v.TakeFocus(direction.FromFront())
}

// PopLayer removes the top layer. The layer below, if any, becomes
// the event target.
func (a *App) PopLayer() {
	if len(a.layers) == 0 {
		return
	}
	a.layers = a.layers[:len(a.layers)-1]
}

// CallOnAny applies fn to every view matching the selector, across
// all layers
func (a *App) CallOnAny(sel views.Selector, fn func(views.View)) {
	for _, l := range a.layers {
		l.CallOnAny(sel, fn)
	}
}

// Run drives the loop until Quit is called or the last layer is
// popped. The backend is released before returning.
func (a *App) Run() {
	defer a.backend.Finish()

	a.running = true
	for a.running && len(a.layers) > 0 {
		a.draw()
		a.dispatch(a.backend.PollEvent())
	}
}

// Step runs a single draw-poll-dispatch iteration; it reports whether
// the loop should continue
func (a *App) Step() bool {
	if !a.running || len(a.layers) == 0 {
		return false
	}
	a.draw()
	a.dispatch(a.backend.PollEvent())
	return a.running && len(a.layers) > 0
}

func (a *App) draw() {
	screen := a.backend.ScreenSize()
	a.backend.Clear(a.theme.Colors.Background)

	for i, l := range a.layers {
		req := l.View.RequiredSize(screen)
		size := req.Min(screen)
		l.Layout(size)

		offset := vec.New(
			align.Center().H.GetOffset(size.X, screen.X),
			align.Center().V.GetOffset(size.Y, screen.Y),
		)
		focused := i == len(a.layers)-1
		root := render.New(a.backend, &a.theme, screen)
		root.WithColor(theme.StylePrimary, func(p *render.Printer) {
			l.Draw(p.Sub(offset, size, focused))
		})
	}

	a.backend.Refresh()
}

func (a *App) dispatch(e event.Event) {
	// Ctrl+C always quits, before any view sees it
	if e == event.NewCtrlChar('c') {
		a.running = false
		return
	}
	if e.Type == event.WindowResize {
		// Geometry is renegotiated on the next draw
		return
	}
	if len(a.layers) == 0 {
		return
	}

	res := a.layers[len(a.layers)-1].OnEvent(e)
	if res.Consumed && res.Callback != nil {
		// Deferred so handlers never mutate the stack mid-dispatch
		res.Callback(a)
	}
}
