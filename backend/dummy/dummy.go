// Package dummy provides a headless backend: every operation is a
// no-op and input polling only ever reports refresh ticks. Useful for
// tests and for running the toolkit without a terminal.
package dummy

import (
	"github.com/lixenwraith/termkit/backend"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// Backend is a no-op terminal driver with a fixed screen size
type Backend struct {
	size vec.Vec2
}

// New creates a dummy backend with the given screen size
func New(size vec.Vec2) *Backend {
	return &Backend{size: size}
}

var _ backend.Backend = (*Backend)(nil)

func (b *Backend) ScreenSize() vec.Vec2 { return b.size }

func (b *Backend) HasColors() bool { return false }

func (b *Backend) Finish() {}

func (b *Backend) WithColor(pair theme.ColorPair, fn func()) { fn() }

func (b *Backend) WithEffect(effect theme.Effect, fn func()) { fn() }

func (b *Backend) Clear(color theme.Color) {}

func (b *Backend) Refresh() {}

func (b *Backend) PrintAt(pos vec.Vec2, text string) {}

func (b *Backend) PollEvent() event.Event { return event.NewRefresh() }

func (b *Backend) SetRefreshRate(fps int) {}
