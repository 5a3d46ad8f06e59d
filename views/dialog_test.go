package views

import (
	"testing"

	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/render"
	"github.com/lixenwraith/termkit/theme"
	"github.com/lixenwraith/termkit/vec"
)

// stubView has a fixed desired size and configurable focus/event behavior
type stubView struct {
	desired    vec.Vec2
	focusable  bool
	consumeAll bool

	laidOut  []vec.Vec2
	received []event.Event
}

func (s *stubView) Draw(p *render.Printer) {}

func (s *stubView) RequiredSize(constraint vec.Vec2) vec.Vec2 {
	return s.desired
}

func (s *stubView) Layout(size vec.Vec2) {
	s.laidOut = append(s.laidOut, size)
}

func (s *stubView) OnEvent(e event.Event) EventResult {
	s.received = append(s.received, e)
	if s.consumeAll {
		return Consume(nil)
	}
	return Ignored
}

func (s *stubView) TakeFocus(source direction.Direction) bool {
	return s.focusable
}

func (s *stubView) CallOnAny(sel Selector, fn func(View)) {}

func TestDialogRequiredSize(t *testing.T) {
	content := &stubView{desired: vec.New(10, 5)}
	d := Around(content).
		Padding(vec.NewVec4(1, 1, 1, 0)).
		Borders(vec.NewVec4(1, 1, 1, 1))

	got := d.RequiredSize(vec.New(100, 100))
	expected := vec.New(10+1+1+1+1, 5+1+0+1+1)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestDialogRequiredSizeWithButtons(t *testing.T) {
	content := &stubView{desired: vec.New(10, 5)}
	d := Around(content).
		Padding(vec.NewVec4(0, 0, 0, 0)).
		Borders(vec.NewVec4(1, 1, 1, 1)).
		Button("Ok", nil).
		Button("Cancel", nil)

	// Buttons: "<Ok>"=4 + gap 1 + "<Cancel>"=8 -> 13; row height 1+1
	got := d.RequiredSize(vec.New(100, 100))
	expected := vec.New(13+2, 5+2+2)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestDialogRequiredSizeTitleFloor(t *testing.T) {
	content := &stubView{desired: vec.New(4, 1)}
	d := Around(content).Title("Long dialog title")

	got := d.RequiredSize(vec.New(100, 100))
	if expected := len("Long dialog title") + 6; got.X != expected {
		t.Errorf("Expected title to force width %d, got %d", expected, got.X)
	}
}

func TestDialogRequiredSizeUnderflow(t *testing.T) {
	content := &stubView{desired: vec.New(10, 5)}
	d := Around(content).
		Padding(vec.NewVec4(2, 2, 2, 2)).
		Borders(vec.NewVec4(1, 1, 1, 1))

	// Constraint smaller than the overhead: report the bare overhead
	got := d.RequiredSize(vec.New(3, 3))
	if got != vec.New(6, 6) {
		t.Errorf("Expected bare overhead (6,6), got %v", got)
	}
	if len(content.laidOut) != 0 {
		t.Error("Expected content untouched on underflow")
	}
}

func TestDialogLayoutGivesContentTheRest(t *testing.T) {
	content := &stubView{desired: vec.New(10, 5)}
	d := Around(content).
		Padding(vec.NewVec4(1, 1, 0, 0)).
		Borders(vec.NewVec4(1, 1, 1, 1)).
		Button("Ok", nil)

	d.Layout(vec.New(20, 10))

	if len(content.laidOut) != 1 {
		t.Fatalf("Expected 1 content layout, got %d", len(content.laidOut))
	}
	// Interior: 20-4 x 10-2, minus button row height 2
	if content.laidOut[0] != vec.New(16, 6) {
		t.Errorf("Expected content size (16,6), got %v", content.laidOut[0])
	}
	if d.buttons[0].Size() != vec.New(4, 1) {
		t.Errorf("Expected button size (4,1), got %v", d.buttons[0].Size())
	}
}

func TestDialogLayoutClampsButtonRow(t *testing.T) {
	content := &stubView{desired: vec.New(10, 5)}
	d := Around(content).
		Padding(vec.NewVec4(0, 0, 0, 0)).
		Borders(vec.NewVec4(1, 1, 1, 1)).
		Button("Ok", nil)

	// Interior height is 1; the 2-row button row clamps to it
	d.Layout(vec.New(10, 3))
	if content.laidOut[0] != vec.New(8, 0) {
		t.Errorf("Expected content squeezed to (8,0), got %v", content.laidOut[0])
	}
}

func TestDialogFocusDownToButton(t *testing.T) {
	content := &stubView{desired: vec.New(10, 5)}
	d := Around(content).Button("Ok", nil)

	res := d.OnEvent(event.NewKey(event.KeyDown))
	if !res.Consumed {
		t.Error("Expected Down to be consumed")
	}
	if res.Callback != nil {
		t.Error("Expected no deferred action on focus move")
	}
	if d.focus != 0 {
		t.Errorf("Expected focus on button 0, got %d", d.focus)
	}

	// Left at the leftmost button stays put and is ignored
	res = d.OnEvent(event.NewKey(event.KeyLeft))
	if res.Consumed {
		t.Error("Expected Left at button 0 to be ignored")
	}
	if d.focus != 0 {
		t.Errorf("Expected focus unchanged, got %d", d.focus)
	}
}

func TestDialogFocusTabEntersButtons(t *testing.T) {
	for _, e := range []event.Event{
		event.NewKey(event.KeyTab),
		event.Shifted(event.KeyTab),
		event.NewKey(event.KeyDown),
	} {
		d := Around(&stubView{desired: vec.New(4, 1)}).Button("Ok", nil)
		if res := d.OnEvent(e); !res.Consumed {
			t.Errorf("Expected %+v to move focus to buttons", e)
		}
		if d.focus != 0 {
			t.Errorf("Expected focus on button 0 after %+v", e)
		}
	}
}

func TestDialogFocusIgnoredWithoutButtons(t *testing.T) {
	content := &stubView{desired: vec.New(4, 1)}
	d := Around(content)

	if res := d.OnEvent(event.NewKey(event.KeyDown)); res.Consumed {
		t.Error("Expected Down ignored with no buttons")
	}
	if d.focus != focusContent {
		t.Error("Expected focus to stay on content")
	}
}

func TestDialogFocusBetweenButtons(t *testing.T) {
	d := Around(&stubView{desired: vec.New(4, 1)}).
		Button("A", nil).
		Button("B", nil)
	d.focus = 0

	if res := d.OnEvent(event.NewKey(event.KeyRight)); !res.Consumed || d.focus != 1 {
		t.Errorf("Expected Right to move to button 1, focus %d", d.focus)
	}
	if res := d.OnEvent(event.NewKey(event.KeyRight)); res.Consumed || d.focus != 1 {
		t.Errorf("Expected Right at last button ignored, focus %d", d.focus)
	}
	if res := d.OnEvent(event.NewKey(event.KeyLeft)); !res.Consumed || d.focus != 0 {
		t.Errorf("Expected Left to move back to button 0, focus %d", d.focus)
	}
}

func TestDialogFocusReturnsToContent(t *testing.T) {
	content := &stubView{desired: vec.New(4, 1), focusable: true}
	d := Around(content).Button("Ok", nil)
	d.focus = 0

	if res := d.OnEvent(event.NewKey(event.KeyUp)); !res.Consumed {
		t.Error("Expected Up to re-enter content")
	}
	if d.focus != focusContent {
		t.Error("Expected focus back on content")
	}
}

func TestDialogFocusStaysOnButtonWhenContentRefuses(t *testing.T) {
	content := &stubView{desired: vec.New(4, 1), focusable: false}
	d := Around(content).Button("Ok", nil)
	d.focus = 0

	for _, e := range []event.Event{
		event.NewKey(event.KeyUp),
		event.NewKey(event.KeyTab),
		event.Shifted(event.KeyTab),
	} {
		if res := d.OnEvent(e); res.Consumed {
			t.Errorf("Expected %+v ignored when content refuses focus", e)
		}
		if d.focus != 0 {
			t.Errorf("Expected focus to stay on button after %+v", e)
		}
	}
}

func TestDialogContentConsumesFirst(t *testing.T) {
	content := &stubView{desired: vec.New(4, 1), consumeAll: true}
	d := Around(content).Button("Ok", nil)

	if res := d.OnEvent(event.NewKey(event.KeyDown)); !res.Consumed {
		t.Error("Expected content to consume the event")
	}
	if d.focus != focusContent {
		t.Error("Expected focus unchanged when content consumes")
	}
}

func TestDialogTakeFocus(t *testing.T) {
	// Content first, regardless of direction
	content := &stubView{desired: vec.New(4, 1), focusable: true}
	d := Around(content).Button("Ok", nil)
	d.focus = 0
	if !d.TakeFocus(direction.FromFront()) || d.focus != focusContent {
		t.Error("Expected content to claim focus first")
	}

	// Buttons as fallback
	d2 := Around(&stubView{desired: vec.New(4, 1)}).Button("Ok", nil)
	if !d2.TakeFocus(direction.FromUp()) || d2.focus != 0 {
		t.Error("Expected button fallback to claim focus")
	}

	// Nothing focusable
	d3 := Around(&stubView{desired: vec.New(4, 1)})
	if d3.TakeFocus(direction.FromUp()) {
		t.Error("Expected focus refusal with no focusable children")
	}
}

func TestButtonFiresOnEnter(t *testing.T) {
	fired := false
	b := NewButton("Ok", func(ctx Context) { fired = true })

	res := b.OnEvent(event.NewKey(event.KeyEnter))
	if !res.Consumed || res.Callback == nil {
		t.Fatal("Expected Enter to produce a deferred action")
	}
	res.Callback(nil)
	if !fired {
		t.Error("Expected callback to run")
	}

	if res := b.OnEvent(event.NewChar('x')); res.Consumed {
		t.Error("Expected other events ignored")
	}
}

// boundsBackend fails the test if anything is painted outside the
// region granted to the root printer
type boundsBackend struct {
	t    *testing.T
	size vec.Vec2
}

func (b *boundsBackend) ScreenSize() vec.Vec2                   { return b.size }
func (b *boundsBackend) HasColors() bool                        { return true }
func (b *boundsBackend) Finish()                                {}
func (b *boundsBackend) WithColor(p theme.ColorPair, fn func()) { fn() }
func (b *boundsBackend) WithEffect(e theme.Effect, fn func())   { fn() }
func (b *boundsBackend) Clear(c theme.Color)                    {}
func (b *boundsBackend) Refresh()                               {}
func (b *boundsBackend) PollEvent() event.Event                 { return event.NewRefresh() }
func (b *boundsBackend) SetRefreshRate(fps int)                 {}

func (b *boundsBackend) PrintAt(pos vec.Vec2, text string) {
	if pos.X < 0 || pos.Y < 0 || pos.X >= b.size.X || pos.Y >= b.size.Y {
		b.t.Errorf("Expected writes inside %v, got write at %v", b.size, pos)
	}
	if pos.X+len([]rune(text)) > b.size.X {
		b.t.Errorf("Expected text to stop at column %d, got %q at %v", b.size.X, text, pos)
	}
}

// TestDialogLayoutSafety checks that measure-then-layout-then-draw
// never paints outside the granted region, across a sweep of sizes
func TestDialogLayoutSafety(t *testing.T) {
	th := theme.Default()
	for _, size := range []vec.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1},
		{X: 5, Y: 4}, {X: 8, Y: 3}, {X: 14, Y: 8}, {X: 30, Y: 12},
	} {
		d := Text("Hello world!\nSecond line").
			Title("Warning").
			Button("Ok", nil).
			Button("Cancel", nil)

		req := d.RequiredSize(size)
		final := req.Min(size)
		d.Layout(final)

		bb := &boundsBackend{t: t, size: final}
		d.Draw(render.New(bb, &th, final))
	}
}
