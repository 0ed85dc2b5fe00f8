package ink

import (
	stdcolor "image/color"

	intcolor "github.com/inklab/ink/internal/color"
)

// Color is a straight (non-premultiplied) 8-bit RGBA color, the domain
// the compositor and jitter generator work in.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from 8-bit channels.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// HSV returns the color in the integer HSV domain used by the jitter
// generator and the channel locks: hue 0-360, saturation and value
// 0-100. Alpha is not part of the conversion.
func (c Color) HSV() (h, s, v int) {
	return intcolor.RGBToHSV(c.R, c.G, c.B)
}

// FromHSV creates a color from integer HSV channels (hue 0-360,
// saturation/value 0-100) and an 8-bit alpha. Out-of-range channels are
// clamped.
func FromHSV(h, s, v int, a uint8) Color {
	r, g, b := intcolor.HSVToRGB(h, s, v)
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}
)
