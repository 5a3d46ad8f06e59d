// Package backend defines the driver contract for one physical terminal
// session, plus the driver-facing machinery shared by implementations:
// the color-pair pool and the raw-code event decoder.
//
// A backend owns the screen. Everything above it (printer, views, event
// loop) talks to the terminal exclusively through this interface, so
// drivers are interchangeable: raw ANSI, tcell, or headless.
package backend

import (
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// Backend abstracts one terminal driver. Implementations are used from
// a single goroutine; no method is safe for concurrent use.
type Backend interface {
	// ScreenSize returns the current size as (columns, rows)
	ScreenSize() vec.Vec2

	// HasColors reports whether the terminal supports color output
	HasColors() bool

	// Finish shuts the driver down and restores the terminal.
	// Safe to call more than once.
	Finish()

	// WithColor applies a color pair for the duration of fn, restoring
	// the previous style afterward on every exit path
	WithColor(pair theme.ColorPair, fn func())

	// WithEffect applies a visual effect for the duration of fn
	WithEffect(effect theme.Effect, fn func())

	// Clear fills the screen with the given background color
	Clear(color theme.Color)

	// Refresh flushes pending output to the physical terminal
	Refresh()

	// PrintAt paints text starting at the given column/row
	PrintAt(pos vec.Vec2, text string)

	// PollEvent blocks for the next input event. With a nonzero refresh
	// rate it returns a Refresh tick when the poll interval elapses
	// without input.
	PollEvent() event.Event

	// SetRefreshRate sets the poll timeout from a rate in events per
	// second. Zero means block indefinitely.
	SetRefreshRate(fps int)
}
