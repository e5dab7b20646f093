// pkg/render/color.go
package render

import (
	"image/color"

	"go-ring-escape/internal/utils"
)

// Mode selects how ring colors are assigned across the field.
const (
	ModeGradient    = "gradient"    // smooth blend between the first two palette colors
	ModeAlternating = "alternating" // cycle through the palette
)

// RingColor returns the color for the ring at index i out of total,
// using the given palette and mode.
func RingColor(i, total int, palette []color.RGBA, mode string) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	switch mode {
	case ModeAlternating:
		return palette[i%len(palette)]
	case ModeGradient:
		if len(palette) < 2 {
			return palette[0]
		}
		t := 0.0
		if total > 1 {
			t = float64(i%total) / float64(total-1)
		}
		return LerpColor(palette[0], palette[1], t)
	}
	return palette[0]
}

// LerpColor linearly interpolates between two colors.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(utils.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(utils.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(utils.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(utils.Lerp(float64(a.A), float64(b.A), t)),
	}
}

// Fade scales a color's alpha by t in [0, 1].
func Fade(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	c.A = uint8(float64(c.A) * t)
	return c
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
