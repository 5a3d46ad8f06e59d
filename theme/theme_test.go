package theme

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected Color
	}{
		{"red", FromIndex(Red)},
		{"light blue", FromIndex(BrightBlue)},
		{"default", TerminalDefault},
		{"@208", FromIndex(208)},
		{"#ff8800", RGB(255, 136, 0)},
		{"#f80", RGB(255, 136, 0)},
		{" White ", FromIndex(White)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, input := range []string{"", "chartreuse-ish", "@999", "#zzz"} {
		if _, err := ParseColor(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestLowResClamps(t *testing.T) {
	if LowRes(0, 0, 0) != FromIndex(16) {
		t.Error("Expected cube origin at index 16")
	}
	if LowRes(5, 5, 5) != FromIndex(231) {
		t.Error("Expected cube max at index 231")
	}
	if LowRes(9, 0, 0) != LowRes(5, 0, 0) {
		t.Error("Expected out-of-range component to clamp")
	}
}

func TestParseTheme(t *testing.T) {
	data := `
shadow = false
borders = "outset"

[colors]
background = "#303030"
title_primary = "light red"
highlight = "@214"
`
	th, err := Parse(data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if th.Shadow {
		t.Error("Expected shadow disabled")
	}
	if th.Borders != BordersOutset {
		t.Errorf("Expected outset borders, got %v", th.Borders)
	}
	if th.Colors.Background != RGB(0x30, 0x30, 0x30) {
		t.Errorf("Expected #303030 background, got %v", th.Colors.Background)
	}
	if th.Colors.TitlePrimary != FromIndex(BrightRed) {
		t.Errorf("Expected light red title, got %v", th.Colors.TitlePrimary)
	}
	if th.Colors.Highlight != FromIndex(214) {
		t.Errorf("Expected palette 214 highlight, got %v", th.Colors.Highlight)
	}
	// Unset roles keep defaults
	if th.Colors.View != Default().Colors.View {
		t.Error("Expected unset role to keep default")
	}
}

func TestParseThemeErrors(t *testing.T) {
	if _, err := Parse(`borders = "fancy"`); err == nil {
		t.Error("Expected error for unknown border style")
	}
	if _, err := Parse("[colors]\nnope = \"red\""); err == nil {
		t.Error("Expected error for unknown palette role")
	}
	if _, err := Parse("[colors]\nprimary = \"nope\""); err == nil {
		t.Error("Expected error for bad color value")
	}
}

func TestResolve(t *testing.T) {
	th := Default()
	pair := StyleTitlePrimary.Resolve(&th)
	if pair.Front != th.Colors.TitlePrimary || pair.Back != th.Colors.View {
		t.Errorf("Expected title front over view back, got %v", pair)
	}
	if StyleBackground.Resolve(&th) != Pair(th.Colors.Background, th.Colors.Background) {
		t.Error("Expected background style to be uniform")
	}
}

func TestInvert(t *testing.T) {
	p := Pair(FromIndex(Red), FromIndex(Blue))
	if p.Invert() != Pair(FromIndex(Blue), FromIndex(Red)) {
		t.Error("Expected front/back swap")
	}
}
