package views

import (
	"testing"

	"github.com/lixenwraith/termkit/direction"
	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/vec"
)

func TestTextViewRequiredSize(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected vec.Vec2
	}{
		{"single line", "hello", vec.New(5, 1)},
		{"multi line", "one\nlonger line\ntwo", vec.New(11, 3)},
		{"empty", "", vec.New(0, 1)},
		{"wide runes", "世界", vec.New(4, 1)},
		{"trailing newline", "a\n", vec.New(1, 2)},
	}

	for _, tt := range tests {
		tv := NewTextView(tt.content)
		if got := tv.RequiredSize(vec.New(100, 100)); got != tt.expected {
			t.Errorf("%s: Expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}

func TestTextViewSetContent(t *testing.T) {
	tv := NewTextView("old")
	tv.SetContent("new\ntext")
	if got := tv.Content(); got != "new\ntext" {
		t.Errorf("Expected content round-trip, got %q", got)
	}
	if got := tv.RequiredSize(vec.New(100, 100)); got != vec.New(4, 2) {
		t.Errorf("Expected size to follow content, got %v", got)
	}
}

func TestTextViewRefusesFocusAndEvents(t *testing.T) {
	tv := NewTextView("static")
	if tv.TakeFocus(direction.FromFront()) {
		t.Error("Expected focus refusal")
	}
	if res := tv.OnEvent(event.NewKey(event.KeyEnter)); res.Consumed {
		t.Error("Expected events ignored")
	}
}

func TestNamedCallOnAny(t *testing.T) {
	inner := NewTextView("x")
	n := NewNamed("target", inner)

	var hits []View
	n.CallOnAny("target", func(v View) { hits = append(hits, v) })
	if len(hits) != 1 || hits[0] != View(inner) {
		t.Errorf("Expected the wrapped view once, got %d hits", len(hits))
	}

	hits = nil
	n.CallOnAny("other", func(v View) { hits = append(hits, v) })
	if len(hits) != 0 {
		t.Error("Expected no hits for a different selector")
	}
}

func TestDialogCallOnAnyReachesContent(t *testing.T) {
	inner := NewTextView("x")
	d := Around(NewNamed("status", inner))

	found := false
	d.CallOnAny("status", func(v View) {
		if tv, ok := v.(*TextView); ok {
			tv.SetContent("updated")
		}
		found = true
	})
	if !found {
		t.Fatal("Expected selector to reach the named content")
	}
	if inner.Content() != "updated" {
		t.Error("Expected mutation through the selector")
	}
}

func TestSizedRecordsLayout(t *testing.T) {
	s := WithSize(NewTextView("ab"))
	s.Layout(vec.New(7, 3))
	if s.Size() != vec.New(7, 3) {
		t.Errorf("Expected recorded size (7,3), got %v", s.Size())
	}
}

func TestDummyRefusesEverything(t *testing.T) {
	d := NewDummy()
	if got := d.RequiredSize(vec.New(100, 100)); got != vec.New(1, 1) {
		t.Errorf("Expected (1,1), got %v", got)
	}
	if d.TakeFocus(direction.FromUp()) {
		t.Error("Expected focus refusal")
	}
}
