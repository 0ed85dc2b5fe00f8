// Package blend implements the per-pixel blending stages of the dab
// compositor: the blend-mode catalog, channel/HSV lock restoration, and
// ordered alpha-threshold dithering.
//
// All functions operate on straight (non-premultiplied) 8-bit RGBA
// channels, matching the canvas pixel buffers.
package blend

import "github.com/inklab/ink/internal/color"

// Mode identifies how a source pixel combines with a destination pixel.
type Mode uint8

const (
	// Normal performs standard alpha blending (source over destination).
	Normal Mode = iota

	// Multiply multiplies source and destination channels. dst*src
	Multiply

	// Additive adds source to destination, saturating at white.
	Additive

	// ColorBurn darkens the destination to reflect the source.
	ColorBurn

	// ColorDodge brightens the destination to reflect the source.
	ColorDodge

	// Reflect brightens per dst²/(1−src); useful for glare effects.
	Reflect

	// Glow is Reflect with source and destination swapped.
	Glow

	// Overlay multiplies dark destination areas and screens bright ones.
	Overlay

	// Difference takes the absolute channel difference.
	Difference

	// Negation inverts the summed distance from white.
	Negation

	// Lighten keeps the lighter channel.
	Lighten

	// Darken keeps the darker channel.
	Darken

	// Screen performs inverse multiply for lighter results.
	Screen

	// Xor combines the channel bits with exclusive-or.
	Xor

	// Overwrite replaces destination color and alpha, scaled by source
	// alpha so anti-aliased dab edges overwrite partially.
	Overwrite
)

// String returns the display name of the blend mode.
func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Multiply:
		return "Multiply"
	case Additive:
		return "Additive"
	case ColorBurn:
		return "ColorBurn"
	case ColorDodge:
		return "ColorDodge"
	case Reflect:
		return "Reflect"
	case Glow:
		return "Glow"
	case Overlay:
		return "Overlay"
	case Difference:
		return "Difference"
	case Negation:
		return "Negation"
	case Lighten:
		return "Lighten"
	case Darken:
		return "Darken"
	case Screen:
		return "Screen"
	case Xor:
		return "Xor"
	case Overwrite:
		return "Overwrite"
	default:
		return "Unknown"
	}
}

// Pixel blends a straight-alpha source pixel over a destination pixel
// using the given mode and returns the resulting straight-alpha pixel.
//
// Normal is Porter-Duff source-over. The separable modes compute a
// per-channel combined color first and then composite it over the
// destination weighted by source alpha. Overwrite interpolates both
// color and alpha toward the source by source alpha.
func Pixel(mode Mode, sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}

	switch mode {
	case Normal:
		return over(sr, sg, sb, sa, dr, dg, db, da)
	case Overwrite:
		return lerpPixel(dr, dg, db, da, sr, sg, sb, sa, sa)
	default:
		br := channel(mode, int(sr), int(dr))
		bg := channel(mode, int(sg), int(dg))
		bb := channel(mode, int(sb), int(db))
		return over(uint8(br), uint8(bg), uint8(bb), sa, dr, dg, db, da)
	}
}

// channel combines one 0..255 channel pair per the separable mode
// formulas. The caller guarantees mode is neither Normal nor Overwrite.
func channel(mode Mode, s, d int) int {
	switch mode {
	case Multiply:
		return s * d / 255
	case Additive:
		return min(255, s+d)
	case ColorBurn:
		if s == 0 {
			return 0
		}
		return 255 - min(255, (255-d)*255/s)
	case ColorDodge:
		if s == 255 {
			return 255
		}
		return min(255, d*255/(255-s))
	case Reflect:
		if s == 255 {
			return 255
		}
		return min(255, d*d/(255-s))
	case Glow:
		if d == 255 {
			return 255
		}
		return min(255, s*s/(255-d))
	case Overlay:
		if d < 128 {
			return 2 * s * d / 255
		}
		return 255 - 2*(255-s)*(255-d)/255
	case Difference:
		if s > d {
			return s - d
		}
		return d - s
	case Negation:
		v := 255 - s - d
		if v < 0 {
			v = -v
		}
		return 255 - v
	case Lighten:
		return max(s, d)
	case Darken:
		return min(s, d)
	case Screen:
		return 255 - (255-s)*(255-d)/255
	case Xor:
		return s ^ d
	default:
		return s
	}
}

// over is Porter-Duff source-over on straight-alpha channels.
func over(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	if sa == 255 || da == 0 {
		return sr, sg, sb, sa
	}

	srcA := int(sa)
	dstA := int(da) * (255 - srcA) / 255
	outA := srcA + dstA
	if outA == 0 {
		return 0, 0, 0, 0
	}

	r = uint8((int(sr)*srcA + int(dr)*dstA) / outA)
	g = uint8((int(sg)*srcA + int(dg)*dstA) / outA)
	b = uint8((int(sb)*srcA + int(db)*dstA) / outA)
	return r, g, b, uint8(outA)
}

// lerpPixel interpolates every channel of (ar..aa) toward (br..ba) by
// t/255.
func lerpPixel(ar, ag, ab, aa, br, bg, bb, ba, t uint8) (r, g, b, a uint8) {
	ti := int(t)
	r = uint8(int(ar) + (int(br)-int(ar))*ti/255)
	g = uint8(int(ag) + (int(bg)-int(ag))*ti/255)
	b = uint8(int(ab) + (int(bb)-int(ab))*ti/255)
	a = uint8(int(aa) + (int(ba)-int(aa))*ti/255)
	return r, g, b, a
}

// Locks selects color channels of the destination that must survive a
// blend unchanged.
type Locks struct {
	Alpha   bool
	R, G, B bool
	H, S, V bool
}

// Any reports whether at least one lock is set.
func (l Locks) Any() bool {
	return l.Alpha || l.R || l.G || l.B || l.H || l.S || l.V
}

// anyHSV reports whether an HSV channel lock is set.
func (l Locks) anyHSV() bool { return l.H || l.S || l.V }

// Apply restores locked channels of the destination pixel in the
// blended result. RGB locks copy destination channels directly; HSV
// locks convert both pixels to the HSV domain, restore the locked
// channels there, and convert back.
func (l Locks) Apply(br, bg, bb, ba, dr, dg, db, da uint8) (r, g, b, a uint8) {
	r, g, b, a = br, bg, bb, ba
	if l.Alpha {
		a = da
	}
	if l.R {
		r = dr
	}
	if l.G {
		g = dg
	}
	if l.B {
		b = db
	}
	if l.anyHSV() {
		bh, bs, bv := color.RGBToHSV(r, g, b)
		dh, ds, dv := color.RGBToHSV(dr, dg, db)
		if l.H {
			bh = dh
		}
		if l.S {
			bs = ds
		}
		if l.V {
			bv = dv
		}
		r, g, b = color.HSVToRGB(bh, bs, bv)
	}
	return r, g, b, a
}

// bayer4 is the classic 4x4 ordered-dither matrix. Entries span 0..15;
// scaled by 16 they spread thresholds evenly across 0..255.
var bayer4 = [4][4]uint8{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 7},
	{15, 13, 5, 9},
}

// Threshold re-quantizes an alpha value to 0 or 255 for the jagged
// smoothing mode. Without dithering the cut is at mid-range; with
// dithering the cut point varies per pixel by the ordered Bayer matrix,
// which breaks up banding along soft dab edges.
func Threshold(a uint8, x, y int, dither bool) uint8 {
	t := uint8(128)
	if dither {
		t = bayer4[y&3][x&3]*16 + 8
	}
	if a >= t {
		return 255
	}
	return 0
}
