package ansi

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/termkit/theme"
)

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// base16 approximates the 16 standard colors most terminals ship with
var base16 = [16][3]uint8{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// palette256 holds the full xterm palette in Lab-convertible form,
// built once at startup
var palette256 = buildPalette()

func buildPalette() [256]colorful.Color {
	var p [256]colorful.Color
	for i, c := range base16 {
		p[i] = rgbColor(c[0], c[1], c[2])
	}
	// 6x6x6 cube: index = 16 + 36r + 6g + b
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[16+36*r+6*g+b] = rgbColor(cubeLevels[r], cubeLevels[g], cubeLevels[b])
			}
		}
	}
	// Grayscale ramp: 232-255, level 8 + 10*step
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p[232+i] = rgbColor(v, v, v)
	}
	return p
}

func rgbColor(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// closest256 maps an arbitrary RGB color to the perceptually nearest
// xterm palette index. Comparison happens in Lab space; plain RGB
// distance picks visibly wrong grays.
func closest256(r, g, b uint8) uint8 {
	target := rgbColor(r, g, b)
	best := 0
	bestDist := target.DistanceLab(palette256[0])
	for i := 1; i < 256; i++ {
		if d := target.DistanceLab(palette256[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

// reduce resolves a color to a concrete palette index; the boolean is
// false for the terminal default color
func reduce(c theme.Color) (uint8, bool) {
	switch c.Mode {
	case theme.Color256:
		return c.Index, true
	case theme.ColorRGB:
		return closest256(c.R, c.G, c.B), true
	}
	return 0, false
}
