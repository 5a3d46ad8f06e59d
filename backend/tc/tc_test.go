package tc

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/event"
	"github.com/lixenwraith/termkit/theme"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		in       *tcell.EventKey
		expected event.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', 0), event.NewChar('x')},
		{"wide rune", tcell.NewEventKey(tcell.KeyRune, '世', 0), event.NewChar('世')},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, 0), event.NewKey(event.KeyEnter)},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, 0), event.NewKey(event.KeyTab)},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), event.Shifted(event.KeyTab)},
		{"esc", tcell.NewEventKey(tcell.KeyEsc, 0, 0), event.NewKey(event.KeyEsc)},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, 0), event.NewKey(event.KeyUp)},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), event.Shifted(event.KeyUp)},
		{"ctrl left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl), event.Ctrled(event.KeyLeft)},
		{"alt down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModAlt), event.Alted(event.KeyDown)},
		{"ctrl shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl|tcell.ModShift), event.CtrlShifted(event.KeyRight)},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), event.NewKey(event.KeyBackspace)},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, 0), event.NewKey(event.KeyDel)},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, 0), event.NewKey(event.KeyF1)},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, 0), event.NewKey(event.KeyF12)},
		{"ctrl a", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), event.NewCtrlChar('a')},
		{"ctrl z", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), event.NewCtrlChar('z')},
	}

	for _, tt := range tests {
		if got := translateKey(tt.in); got != tt.expected {
			t.Errorf("%s: Expected %+v, got %+v", tt.name, tt.expected, got)
		}
	}
}

func TestToTcell(t *testing.T) {
	if got := toTcell(theme.TerminalDefault); got != tcell.ColorDefault {
		t.Errorf("Expected default color, got %v", got)
	}
	if got := toTcell(theme.FromIndex(42)); got != tcell.PaletteColor(42) {
		t.Errorf("Expected palette 42, got %v", got)
	}
	if got := toTcell(theme.RGB(10, 20, 30)); got != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("Expected RGB color, got %v", got)
	}
}
