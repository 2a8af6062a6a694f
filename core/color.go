package core

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/snowfall/parameter"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Hex returns the #rrggbb encoding
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Scale multiplies each channel by factor (for dimming the background)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// ShadeFor maps a flake or pile mass to a greyscale shade.
// Each channel is (mass+155)/255, so mass 0 is already a light grey
// and mass >= 100 saturates to white. Negative mass clamps toward
// black rather than erroring; the simulation never produces it.
func ShadeFor(mass float64) RGB {
	v := (mass + 155.0) / 255.0
	c := colorful.Color{R: v, G: v, B: v}.Clamped()
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// GlyphFor selects a flake glyph and shade from its mass.
// Thresholds are checked most restrictive first.
func GlyphFor(mass float64) (rune, RGB) {
	shade := ShadeFor(mass)
	switch {
	case mass >= parameter.FlakeHeavyMass:
		return '❄', shade
	case mass >= parameter.FlakeMediumMass:
		return '*', shade
	default:
		return '.', shade
	}
}
