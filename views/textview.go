package views

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/render"
	"github.com/lixenwraith/termkit/vec"
)

// TextView displays static multi-line text. It does not scroll and
// does not take focus.
type TextView struct {
	lines []string
}

// NewTextView creates a text view from content; lines split on '\n'
func NewTextView(content string) *TextView {
	t := &TextView{}
	t.SetContent(content)
	return t
}

// SetContent replaces the displayed text
func (t *TextView) SetContent(content string) {
	t.lines = strings.Split(content, "\n")
}

// Content returns the displayed text
func (t *TextView) Content() string {
	return strings.Join(t.lines, "\n")
}

func (t *TextView) Draw(p *render.Printer) {
	for y, line := range t.lines {
		p.Print(vec.New(0, y), line)
	}
}

func (t *TextView) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	width := 0
	for _, line := range t.lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return vec.New(width, len(t.lines))
}

func (t *TextView) Layout(size vec.Vec2) {}

func (t *TextView) OnEvent(e event.Event) EventResult {
	return Ignored
}

func (t *TextView) TakeFocus(source direction.Direction) bool {
	return false
}

func (t *TextView) CallOnAny(sel Selector, fn func(View)) {}
