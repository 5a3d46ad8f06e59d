// Package ansi drives a raw Unix terminal with ANSI escape output and
// an ncurses-compatible key-code pipeline on input.
package ansi

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/termkit/backend"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// maxPairs bounds the active color-pair table
const maxPairs = 256

// Config tunes the driver. Zero values select defaults.
type Config struct {
	// In and Out default to stdin/stdout
	In  *os.File
	Out *os.File

	// EscapeDelay is how long a lone ESC byte may wait for sequence
	// continuation before resolving to the Escape key. Defaults to
	// 50ms.
	EscapeDelay time.Duration
}

// Backend implements the terminal contract over ANSI escapes
type Backend struct {
	in       *os.File
	out      *bufio.Writer
	inFd     int
	outFd    int
	oldState *term.State

	codes  chan int
	reader *reader

	// frame is the poll timeout between refresh events; 0 blocks
	frame time.Duration

	pairs *backend.PairPool
	slots [maxPairs]theme.ColorPair

	sigCh      chan os.Signal
	sigStopCh  chan struct{}
	currentFg  theme.Color
	currentBg  theme.Color
	styleKnown bool
	finished   bool
}

// New puts the terminal in raw mode and starts the input pipeline
func New(cfg Config) (*Backend, error) {
	in, out := cfg.In, cfg.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	escapeDelay := cfg.EscapeDelay
	if escapeDelay == 0 {
		escapeDelay = 50 * time.Millisecond
	}

	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, fmt.Errorf("input is not a terminal")
	}
	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}

	b := &Backend{
		in:       in,
		out:      bufio.NewWriterSize(out, 64*1024),
		inFd:     inFd,
		outFd:    int(out.Fd()),
		oldState: oldState,
		codes:    make(chan int, 256),
	}
	b.pairs = backend.NewPairPool(b)

	// Alternate screen, no cursor
	b.out.WriteString("\x1b[?1049h\x1b[?25l\x1b[2J\x1b[H")
	b.out.Flush()

	b.reader = newReader(inFd, escapeDelay, b.codes)
	b.reader.start()
	b.watchResize()

	return b, nil
}

// watchResize forwards SIGWINCH as the resize key code
func (b *Backend) watchResize() {
	b.sigCh = make(chan os.Signal, 1)
	b.sigStopCh = make(chan struct{})
	signal.Notify(b.sigCh, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case <-b.sigStopCh:
				return
			case <-b.sigCh:
				select {
				case b.codes <- seqCodeResize:
				case <-b.sigStopCh:
					return
				}
			}
		}
	}()
}

func (b *Backend) Finish() {
	if b.finished {
		return
	}
	b.finished = true

	signal.Stop(b.sigCh)
	close(b.sigStopCh)
	b.reader.stop()

	b.out.WriteString("\x1b[0m\x1b[?25h\x1b[?1049l")
	b.out.Flush()
	if b.oldState != nil {
		term.Restore(b.inFd, b.oldState)
	}
}

func (b *Backend) ScreenSize() vec.Vec2 {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return vec.New(80, 24)
	}
	return vec.New(int(ws.Col), int(ws.Row))
}

func (b *Backend) HasColors() bool {
	return true
}

// SetRefreshRate makes PollEvent time out fps times per second with a
// refresh event instead of blocking on input
func (b *Backend) SetRefreshRate(fps int) {
	if fps <= 0 {
		b.frame = 0
		return
	}
	b.frame = time.Second / time.Duration(fps)
}

func (b *Backend) PollEvent() event.Event {
	var code int
	if b.frame > 0 {
		select {
		case code = <-b.codes:
		case <-time.After(b.frame):
			code = -1
		}
	} else {
		code = <-b.codes
	}
	return backend.Decode(code, b.nextByte)
}

// nextByte supplies UTF-8 continuation bytes. The reader only
// releases a lead byte once its continuations are queued, so the
// timeout here only fires on a broken stream.
func (b *Backend) nextByte() byte {
	select {
	case c := <-b.codes:
		if c >= 0 && c <= 255 {
			return byte(c)
		}
	case <-time.After(10 * time.Millisecond):
	}
	return 0
}

// PairCount reports the driver's pair capacity to the pool
func (b *Backend) PairCount() int {
	return maxPairs
}

// InitPair binds a pool slot to a concrete color pair
func (b *Backend) InitPair(slot int16, pair theme.ColorPair) {
	b.slots[slot] = pair
}

func (b *Backend) WithColor(pair theme.ColorPair, fn func()) {
	prevFg, prevBg, prevKnown := b.currentFg, b.currentBg, b.styleKnown
	slot := b.pairs.GetOrCreate(pair)
	b.applyPair(b.slots[slot])
	fn()
	if prevKnown {
		b.applyPair(theme.Pair(prevFg, prevBg))
	} else {
		b.out.WriteString("\x1b[39;49m")
		b.styleKnown = false
	}
}

func (b *Backend) WithEffect(effect theme.Effect, fn func()) {
	if effect == theme.EffectReverse {
		b.out.WriteString("\x1b[7m")
		fn()
		b.out.WriteString("\x1b[27m")
		return
	}
	fn()
}

func (b *Backend) applyPair(pair theme.ColorPair) {
	if idx, concrete := reduce(pair.Front); concrete {
		fmt.Fprintf(b.out, "\x1b[38;5;%dm", idx)
	} else {
		b.out.WriteString("\x1b[39m")
	}
	if idx, concrete := reduce(pair.Back); concrete {
		fmt.Fprintf(b.out, "\x1b[48;5;%dm", idx)
	} else {
		b.out.WriteString("\x1b[49m")
	}
	b.currentFg = pair.Front
	b.currentBg = pair.Back
	b.styleKnown = true
}

func (b *Backend) Clear(color theme.Color) {
	b.applyPair(theme.Pair(color, color))
	b.out.WriteString("\x1b[2J\x1b[H")
}

func (b *Backend) Refresh() {
	b.out.Flush()
}

func (b *Backend) PrintAt(pos vec.Vec2, text string) {
	// ANSI rows and columns are 1-based
	fmt.Fprintf(b.out, "\x1b[%d;%dH%s", pos.Y+1, pos.X+1, text)
}

var _ backend.Backend = (*Backend)(nil)
var _ backend.PairDriver = (*Backend)(nil)
