// Package color converts between the RGB and HSV channel domains used by
// the jitter generator and the channel-lock blending stages.
//
// HSV uses integer ranges: hue 0-360, saturation 0-100, value 0-100.
// These match the slider domains of the brush settings, so jitter bounds
// expressed in slider units apply directly to the converted channels.
package color

import "math"

// RGBToHSV converts 8-bit RGB channels to integer HSV.
// Hue is in [0, 360], saturation and value in [0, 100].
func RGBToHSV(r, g, b uint8) (h, s, v int) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	var hue float64
	switch {
	case delta == 0:
		hue = 0
	case maxC == rf:
		hue = 60 * math.Mod((gf-bf)/delta, 6)
	case maxC == gf:
		hue = 60 * ((bf-rf)/delta + 2)
	default:
		hue = 60 * ((rf-gf)/delta + 4)
	}
	if hue < 0 {
		hue += 360
	}

	var sat float64
	if maxC > 0 {
		sat = delta / maxC
	}

	h = int(math.Round(hue))
	s = int(math.Round(sat * 100))
	v = int(math.Round(maxC * 100))
	return h, s, v
}

// HSVToRGB converts integer HSV (hue 0-360, saturation/value 0-100) to
// 8-bit RGB channels. Out-of-range inputs are clamped; a hue of 360 is
// treated as 0.
func HSVToRGB(h, s, v int) (r, g, b uint8) {
	hf := math.Mod(float64(h), 360)
	if hf < 0 {
		hf += 360
	}
	sf := clamp01(float64(s) / 100)
	vf := clamp01(float64(v) / 100)

	c := vf * sf
	x := c * (1 - math.Abs(math.Mod(hf/60, 2)-1))
	m := vf - c

	var rf, gf, bf float64
	switch {
	case hf < 60:
		rf, gf, bf = c, x, 0
	case hf < 120:
		rf, gf, bf = x, c, 0
	case hf < 180:
		rf, gf, bf = 0, c, x
	case hf < 240:
		rf, gf, bf = 0, x, c
	case hf < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	r = round255(rf + m)
	g = round255(gf + m)
	b = round255(bf + m)
	return r, g, b
}

// clamp01 clamps a float64 to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// round255 maps a [0,1] channel to uint8 with rounding.
func round255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
