package event

import "testing"

func TestEventsComparable(t *testing.T) {
	if NewKey(KeyTab) != NewKey(KeyTab) {
		t.Error("Expected identical key events to compare equal")
	}
	if NewKey(KeyTab) == Shifted(KeyTab) {
		t.Error("Expected modifier to distinguish events")
	}
	if NewChar('a') == NewCtrlChar('a') {
		t.Error("Expected Char and CtrlChar to differ")
	}
	if (Event{}) != NewRefresh() {
		t.Error("Expected zero value to be a Refresh tick")
	}
}

func TestFromF(t *testing.T) {
	if got := FromF(1); got != KeyF1 {
		t.Errorf("Expected KeyF1, got %v", got)
	}
	if got := FromF(12); got != KeyF12 {
		t.Errorf("Expected KeyF12, got %v", got)
	}
	if got := FromF(0); got != KeyNone {
		t.Errorf("Expected KeyNone for 0, got %v", got)
	}
	if got := FromF(13); got != KeyNone {
		t.Errorf("Expected KeyNone for 13, got %v", got)
	}
}

func TestNewUnknown(t *testing.T) {
	e := NewUnknown(0x01020304)
	expected := [4]byte{0x04, 0x03, 0x02, 0x01}
	if e.Raw != expected {
		t.Errorf("Expected little-endian bytes %v, got %v", expected, e.Raw)
	}
	if e.Type != Unknown {
		t.Errorf("Expected Unknown type, got %v", e.Type)
	}
}
