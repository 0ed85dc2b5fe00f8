package ink

import (
	"image"
	"math"

	"github.com/inklab/ink/internal/blend"
)

// drawTransformed is the direct-matrix dab path: it blits src into dst
// through the affine matrix m (mapping source pixels to destination
// pixels) with bilinear sampling and plain alpha-over. Anything needing
// per-pixel masking or a non-Normal write goes through the masked
// compositor loop instead.
//
// Returns the destination rectangle actually touched.
func drawTransformed(dst *Pixmap, src *image.NRGBA, m Matrix) image.Rectangle {
	w := src.Rect.Dx()
	h := src.Rect.Dy()
	if w == 0 || h == 0 {
		return image.Rectangle{}
	}

	// Destination bounding box of the transformed source corners,
	// padded by one pixel for sampling overshoot.
	corners := [4]Point{
		m.TransformPoint(Pt(0, 0)),
		m.TransformPoint(Pt(float64(w), 0)),
		m.TransformPoint(Pt(0, float64(h))),
		m.TransformPoint(Pt(float64(w), float64(h))),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}
	box := image.Rect(int(minX)-1, int(minY)-1, int(maxX)+2, int(maxY)+2).Intersect(dst.Bounds())
	if box.Empty() {
		return image.Rectangle{}
	}

	inv := m.Invert()
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			sp := inv.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
			if sp.X < 0 || sp.X > float64(w) || sp.Y < 0 || sp.Y > float64(h) {
				continue
			}
			sr, sg, sb, sa := sampleBilinear(src, sp.X-0.5, sp.Y-0.5)
			if sa == 0 {
				continue
			}
			dr, dg, db, da := dst.RGBAAt(x, y)
			r, g, b, a := blend.Pixel(blend.Normal, sr, sg, sb, sa, dr, dg, db, da)
			dst.SetRGBA(x, y, r, g, b, a)
		}
	}
	return box
}

// sampleBilinear samples a straight-alpha NRGBA image at continuous
// pixel coordinates. Channel weights are premultiplied by alpha during
// accumulation so transparent texels never bleed their color into the
// result. Texels outside the image read as transparent, letting dab
// edges fade cleanly.
func sampleBilinear(src *image.NRGBA, fx, fy float64) (r, g, b, a uint8) {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	var accR, accG, accB, accA float64
	for i := 0; i < 4; i++ {
		sx := x0 + i%2
		sy := y0 + i/2
		wx := tx
		if i%2 == 0 {
			wx = 1 - tx
		}
		wy := ty
		if i/2 == 0 {
			wy = 1 - ty
		}
		weight := wx * wy
		if weight == 0 {
			continue
		}
		tr, tg, tb, ta := texel(src, sx, sy)
		af := float64(ta) * weight
		accR += float64(tr) * af
		accG += float64(tg) * af
		accB += float64(tb) * af
		accA += af
	}
	if accA == 0 {
		return 0, 0, 0, 0
	}
	return uint8(accR/accA + 0.5), uint8(accG/accA + 0.5), uint8(accB/accA + 0.5), uint8(accA + 0.5)
}

// texel reads one source pixel; out-of-bounds reads are transparent.
func texel(src *image.NRGBA, x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= src.Rect.Dx() || y >= src.Rect.Dy() {
		return 0, 0, 0, 0
	}
	i := src.PixOffset(src.Rect.Min.X+x, src.Rect.Min.Y+y)
	return src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3]
}
