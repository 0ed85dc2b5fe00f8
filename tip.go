package ink

import (
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// BrushTip is the brush-image preparation cache. It holds the raw
// square-padded tip image plus two derived variants:
//
//   - downsized: the tip capped to the maximum diameter any dab can
//     currently reach, rebuilt only when that requirement grows past
//     the cached capacity or shrinks meaningfully below it;
//   - effects: the downsized variant recolored for the current brush
//     color, flow, and colorize toggle - the bitmap actually stamped.
//
// Per-dab rotated, scaled, and flipped instances are produced
// transiently by stamp and never cached, because rotation differs per
// dab.
type BrushTip struct {
	source *image.NRGBA

	downsized *image.NRGBA
	capacity  int // requirement the downsized variant was built for

	fx         *image.NRGBA
	fxOK       bool
	fxColor    Color
	fxFlow     int
	fxColorize bool
}

// NewBrushTip creates a tip from an arbitrary decoded brush image.
// Non-square images are padded to a centered square with transparent
// fill, so rotation never clips the ink shape.
func NewBrushTip(img image.Image) *BrushTip {
	b := img.Bounds()
	edge := max(b.Dx(), b.Dy())
	if edge < 1 {
		edge = 1
	}
	sq := image.NewNRGBA(image.Rect(0, 0, edge, edge))
	off := image.Pt((edge-b.Dx())/2, (edge-b.Dy())/2)
	stddraw.Draw(sq, image.Rectangle{Min: off, Max: off.Add(b.Size())}, img, b.Min, stddraw.Src)
	return &BrushTip{source: sq}
}

// NewRoundTip creates a procedural round tip: a white disc with a
// radial alpha falloff. Hardness 1 gives a hard-edged circle, 0 the
// softest gradient. This is the default tip, so the engine is usable
// without external brush assets.
func NewRoundTip(diameter int, hardness float64) *BrushTip {
	if diameter < 1 {
		diameter = 1
	}
	if hardness < 0 {
		hardness = 0
	}
	if hardness > 1 {
		hardness = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, diameter, diameter))
	radius := float64(diameter) / 2
	hard := hardness * radius
	// The opaque core never shrinks below one pixel, so even the
	// softest tip keeps a fully inked center.
	if hard < 1 {
		hard = 1
	}
	if hard > radius {
		hard = radius
	}
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - radius
			dy := float64(y) + 0.5 - radius
			r := dx*dx + dy*dy
			var a float64
			switch {
			case r <= hard*hard:
				a = 1
			case r >= radius*radius:
				a = 0
			default:
				d := (math.Sqrt(r) - hard) / (radius - hard)
				a = 1 - d
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(a*255 + 0.5)})
		}
	}
	return &BrushTip{source: img}
}

// Size returns the edge length of the square source image.
func (t *BrushTip) Size() int { return t.source.Rect.Dx() }

// ensureDownsized rebuilds the capped variant when the required maximum
// diameter exceeds the cached capacity, or when it drops below half of
// it. The hysteresis keeps slider wiggling from thrashing the cache.
func (t *BrushTip) ensureDownsized(required int, smoothing SmoothingMode) {
	if t.downsized != nil && required <= t.capacity && required >= t.capacity/2 {
		return
	}
	edge := min(required, t.Size())
	if edge < 1 {
		edge = 1
	}
	if edge == t.Size() {
		t.downsized = t.source
	} else {
		dst := image.NewNRGBA(image.Rect(0, 0, edge, edge))
		scaler(smoothing).Scale(dst, dst.Rect, t.source, t.source.Rect, xdraw.Src, nil)
		t.downsized = dst
	}
	t.capacity = required
	t.fxOK = false
	Logger().Debug("ink: tip downsized rebuilt", "required", required, "edge", edge)
}

// ensureEffects rebuilds the recolored variant when the brush color,
// the flow-derived alpha multiplier, or the colorize toggle changed.
// With colorize on, tip RGB is replaced wholesale by the brush color
// and alpha is multiplied by flow; with it off only alpha is
// multiplied, treating the tip as a mask-style brush.
func (t *BrushTip) ensureEffects(c Color, flow int, colorize bool) {
	if t.fxOK && t.fxColor == c && t.fxFlow == flow && t.fxColorize == colorize {
		return
	}
	if colorize {
		t.fx = imaging.AdjustFunc(t.downsized, func(px color.NRGBA) color.NRGBA {
			a := int(px.A) * flow / MaxChannel * int(c.A) / MaxChannel
			return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
		})
	} else {
		t.fx = imaging.AdjustFunc(t.downsized, func(px color.NRGBA) color.NRGBA {
			px.A = uint8(int(px.A) * flow / MaxChannel)
			return px
		})
	}
	t.fxOK = true
	t.fxColor = c
	t.fxFlow = flow
	t.fxColorize = colorize
}

// stamp produces the transient per-dab bitmap: the effects variant
// resized to the final diameter, flipped for mirrored placements, and
// rotated by the final angle in degrees (positive is counter-clockwise).
// Requesting a diameter above the prepared capacity is a stroke-state
// bug, not a drawing condition, and panics.
func (t *BrushTip) stamp(diameter int, angle float64, flipX, flipY bool, smoothing SmoothingMode) *image.NRGBA {
	if diameter > t.capacity {
		panic(fmt.Sprintf("ink: dab diameter %d exceeds cached capacity %d", diameter, t.capacity))
	}
	img := t.fx
	if img.Rect.Dx() != diameter {
		img = imaging.Resize(img, diameter, diameter, filter(smoothing))
	}
	if flipX {
		img = imaging.FlipH(img)
	}
	if flipY {
		img = imaging.FlipV(img)
	}
	if angle != 0 {
		img = imaging.Rotate(img, angle, color.Transparent)
	}
	return img
}

// scaler maps a smoothing mode to the x/image scaler used for the
// cached downsized rebuild.
func scaler(m SmoothingMode) xdraw.Scaler {
	switch m {
	case SmoothingJagged:
		return xdraw.NearestNeighbor
	case SmoothingSmooth:
		return xdraw.CatmullRom
	default:
		return xdraw.ApproxBiLinear
	}
}

// filter maps a smoothing mode to the imaging resample filter used for
// transient per-dab resizes.
func filter(m SmoothingMode) imaging.ResampleFilter {
	switch m {
	case SmoothingJagged:
		return imaging.NearestNeighbor
	case SmoothingSmooth:
		return imaging.CatmullRom
	default:
		return imaging.Linear
	}
}
