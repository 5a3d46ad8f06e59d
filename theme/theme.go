// Package theme defines abstract colors, palette roles, and visual
// effects, plus loading a palette from a TOML file.
//
// Colors are abstract: drivers that cannot represent a color reduce it
// to the closest one they support.
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Effect is a visual effect applied for the duration of a scoped block
type Effect uint8

const (
	EffectSimple Effect = iota
	EffectReverse
)

// BorderStyle selects how view borders are drawn
type BorderStyle uint8

const (
	// BordersSimple draws plain borders
	BordersSimple BorderStyle = iota

	// BordersOutset draws borders with a highlighted top-left edge
	BordersOutset

	// BordersNone skips borders entirely
	BordersNone
)

// Palette assigns a concrete color to each role views draw with
type Palette struct {
	Background        Color
	Shadow            Color
	View              Color
	Primary           Color
	Secondary         Color
	Tertiary          Color
	TitlePrimary      Color
	TitleSecondary    Color
	Highlight         Color
	HighlightInactive Color
}

// Theme is the visual configuration shared by all views of an app
type Theme struct {
	Shadow  bool
	Borders BorderStyle
	Colors  Palette
}

// Default returns the stock theme
func Default() Theme {
	return Theme{
		Shadow:  true,
		Borders: BordersSimple,
		Colors: Palette{
			Background:        FromIndex(Blue),
			Shadow:            FromIndex(Black),
			View:              FromIndex(White),
			Primary:           FromIndex(Black),
			Secondary:         FromIndex(Blue),
			Tertiary:          FromIndex(White),
			TitlePrimary:      FromIndex(Red),
			TitleSecondary:    FromIndex(Yellow),
			Highlight:         FromIndex(Red),
			HighlightInactive: FromIndex(Blue),
		},
	}
}

// ColorStyle names a palette role resolved against the theme at draw time
type ColorStyle uint8

const (
	StyleBackground ColorStyle = iota
	StyleShadow
	StylePrimary
	StyleSecondary
	StyleTertiary
	StyleTitlePrimary
	StyleTitleSecondary
	StyleHighlight
	StyleHighlightInactive
)

// Resolve returns the concrete pair for a style under the given theme
func (cs ColorStyle) Resolve(t *Theme) ColorPair {
	p := &t.Colors
	switch cs {
	case StyleBackground:
		return Pair(p.Background, p.Background)
	case StyleShadow:
		return Pair(p.Shadow, p.Shadow)
	case StyleSecondary:
		return Pair(p.Secondary, p.View)
	case StyleTertiary:
		return Pair(p.Tertiary, p.View)
	case StyleTitlePrimary:
		return Pair(p.TitlePrimary, p.View)
	case StyleTitleSecondary:
		return Pair(p.TitleSecondary, p.View)
	case StyleHighlight:
		return Pair(p.View, p.Highlight)
	case StyleHighlightInactive:
		return Pair(p.View, p.HighlightInactive)
	default:
		return Pair(p.Primary, p.View)
	}
}

// themeFile is the on-disk TOML shape
type themeFile struct {
	Shadow  *bool             `toml:"shadow"`
	Borders string            `toml:"borders"`
	Colors  map[string]string `toml:"colors"`
}

// Load reads a theme from a TOML file, applying it over the default
// theme so partial files are valid
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read theme: %w", err)
	}
	return Parse(string(data))
}

// Parse reads a theme from TOML text
func Parse(data string) (Theme, error) {
	t := Default()

	var f themeFile
	if _, err := toml.Decode(data, &f); err != nil {
		return t, fmt.Errorf("decode theme: %w", err)
	}

	if f.Shadow != nil {
		t.Shadow = *f.Shadow
	}

	switch f.Borders {
	case "", "simple":
		t.Borders = BordersSimple
	case "outset":
		t.Borders = BordersOutset
	case "none":
		t.Borders = BordersNone
	default:
		return t, fmt.Errorf("unknown border style %q", f.Borders)
	}

	for name, value := range f.Colors {
		c, err := ParseColor(value)
		if err != nil {
			return t, fmt.Errorf("color %q: %w", name, err)
		}
		switch name {
		case "background":
			t.Colors.Background = c
		case "shadow":
			t.Colors.Shadow = c
		case "view":
			t.Colors.View = c
		case "primary":
			t.Colors.Primary = c
		case "secondary":
			t.Colors.Secondary = c
		case "tertiary":
			t.Colors.Tertiary = c
		case "title_primary":
			t.Colors.TitlePrimary = c
		case "title_secondary":
			t.Colors.TitleSecondary = c
		case "highlight":
			t.Colors.Highlight = c
		case "highlight_inactive":
			t.Colors.HighlightInactive = c
		default:
			return t, fmt.Errorf("unknown palette role %q", name)
		}
	}

	return t, nil
}
