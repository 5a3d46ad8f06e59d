// Package tc adapts a tcell screen to the terminal contract. It is the
// portable fallback for platforms where the raw ANSI driver does not
// apply.
package tc

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/backend"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// Backend drives a tcell screen
type Backend struct {
	screen tcell.Screen

	// Current output style, rebuilt by the With wrappers
	style tcell.Style

	tickStopCh chan struct{}
}

// New initializes a tcell screen
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &Backend{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

func (b *Backend) Finish() {
	if b.tickStopCh != nil {
		close(b.tickStopCh)
		b.tickStopCh = nil
	}
	b.screen.Fini()
}

func (b *Backend) ScreenSize() vec.Vec2 {
	w, h := b.screen.Size()
	return vec.New(w, h)
}

func (b *Backend) HasColors() bool {
	return b.screen.Colors() > 0
}

func (b *Backend) WithColor(pair theme.ColorPair, fn func()) {
	prev := b.style
	b.style = b.style.
		Foreground(toTcell(pair.Front)).
		Background(toTcell(pair.Back))
	fn()
	b.style = prev
}

func (b *Backend) WithEffect(effect theme.Effect, fn func()) {
	prev := b.style
	if effect == theme.EffectReverse {
		b.style = b.style.Reverse(true)
	}
	fn()
	b.style = prev
}

func (b *Backend) Clear(color theme.Color) {
	b.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(color)))
}

func (b *Backend) Refresh() {
	b.screen.Show()
}

func (b *Backend) PrintAt(pos vec.Vec2, text string) {
	x := pos.X
	for _, r := range text {
		b.screen.SetContent(x, pos.Y, r, nil, b.style)
		x++
	}
}

// SetRefreshRate posts periodic wakeups so PollEvent returns refresh
// events between key presses
func (b *Backend) SetRefreshRate(fps int) {
	if b.tickStopCh != nil {
		close(b.tickStopCh)
		b.tickStopCh = nil
	}
	if fps <= 0 {
		return
	}

	stopCh := make(chan struct{})
	b.tickStopCh = stopCh
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				b.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()
}

func (b *Backend) PollEvent() event.Event {
	for {
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventResize:
			b.screen.Sync()
			return event.NewResize()
		case *tcell.EventInterrupt:
			return event.NewRefresh()
		case *tcell.EventKey:
			return translateKey(ev)
		case nil:
			// Screen finalized
			return event.NewCtrlChar('c')
		}
	}
}

// toTcell converts an abstract color to tcell's encoding
func toTcell(c theme.Color) tcell.Color {
	switch c.Mode {
	case theme.Color256:
		return tcell.PaletteColor(int(c.Index))
	case theme.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

// translateKey maps a tcell key event to the toolkit vocabulary
func translateKey(ev *tcell.EventKey) event.Event {
	mods := ev.Modifiers()
	shift := mods&tcell.ModShift != 0
	alt := mods&tcell.ModAlt != 0
	ctrl := mods&tcell.ModCtrl != 0

	if ev.Key() == tcell.KeyRune {
		return event.NewChar(ev.Rune())
	}

	// Backtab already encodes the shift
	if ev.Key() == tcell.KeyBacktab {
		return event.Shifted(event.KeyTab)
	}

	if key, ok := namedKey(ev.Key()); ok {
		switch {
		case ctrl && shift:
			return event.CtrlShifted(key)
		case ctrl && alt:
			return event.CtrlAlted(key)
		case ctrl:
			return event.Ctrled(key)
		case alt && shift:
			return event.AltShifted(key)
		case alt:
			return event.Alted(key)
		case shift:
			return event.Shifted(key)
		}
		return event.NewKey(key)
	}

	// tcell reports Ctrl+letter as the control code itself
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return event.NewCtrlChar(rune('a' + ev.Key() - tcell.KeyCtrlA))
	}

	return event.NewUnknown(int32(ev.Key()))
}

func namedKey(k tcell.Key) (event.Key, bool) {
	switch k {
	case tcell.KeyEnter:
		return event.KeyEnter, true
	case tcell.KeyTab:
		return event.KeyTab, true
	case tcell.KeyEsc:
		return event.KeyEsc, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return event.KeyBackspace, true
	case tcell.KeyUp:
		return event.KeyUp, true
	case tcell.KeyDown:
		return event.KeyDown, true
	case tcell.KeyLeft:
		return event.KeyLeft, true
	case tcell.KeyRight:
		return event.KeyRight, true
	case tcell.KeyHome:
		return event.KeyHome, true
	case tcell.KeyEnd:
		return event.KeyEnd, true
	case tcell.KeyPgUp:
		return event.KeyPageUp, true
	case tcell.KeyPgDn:
		return event.KeyPageDown, true
	case tcell.KeyInsert:
		return event.KeyIns, true
	case tcell.KeyDelete:
		return event.KeyDel, true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return event.FromF(int(k-tcell.KeyF1) + 1), true
	}
	return event.KeyNone, false
}

var _ backend.Backend = (*Backend)(nil)
