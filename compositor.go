package ink

import (
	"image"
	"math"

	"github.com/inklab/ink/internal/blend"
)

// dabPlan is the per-dab drawing strategy, selected once from the
// settings snapshot instead of re-branching at every call site.
//
// Two drawing paths exist. The direct path blits the effects bitmap
// through an affine matrix (translate, rotate, negative-scale flips)
// with bilinear sampling; it is valid only when no per-pixel masking is
// needed. The masked path walks the dab's bounding rectangle pixel by
// pixel, applying the fixed stage order: wrap coordinate, blend,
// channel-lock restore, dither.
type dabPlan struct {
	direct bool
	staged bool

	mode  blend.Mode // stroke blend mode, applied when staged flattens
	locks blend.Locks

	eraser   bool
	seamless bool
	dither   bool
	jagged   bool

	smoothing SmoothingMode
}

// planDab derives the strategy from the settings snapshot. A dab routes
// to the staged layer when erasing is off and either a non-Normal blend
// mode is selected, stroke opacity is below maximum, or the stroke
// already began using staged. The direct path applies when nothing
// requires per-pixel masking.
func planDab(s *BrushSettings, strokeStaged bool) dabPlan {
	p := dabPlan{
		mode:      s.Blend,
		locks:     s.Locks,
		eraser:    s.Eraser,
		seamless:  s.Seamless,
		dither:    s.DitherAlpha,
		jagged:    s.Smoothing == SmoothingJagged,
		smoothing: s.Smoothing,
	}
	p.staged = !s.Eraser && (s.Blend != BlendNormal || s.Opacity < MaxChannel || strokeStaged)
	p.direct = !s.Eraser && !s.Seamless && !s.DitherAlpha && !p.jagged && !s.Locks.Any() &&
		(s.Blend == BlendNormal || s.Blend == BlendOverwrite)
	return p
}

// compositor blends placed dab bitmaps into the canvas buffers and
// flattens the staged layer incrementally or at stroke end.
type compositor struct {
	canvas *Canvas
}

// stampDab composites one symmetry placement of a dab at pos and
// returns the destination rectangle it touched. The staged alpha is
// capped at the dab's resolved opacity afterward, which is how the
// stroke-wide opacity ceiling is enforced.
func (cp *compositor) stampDab(tip *BrushTip, pos Point, pl Placement, prm dabParams, plan dabPlan) image.Rectangle {
	if prm.diameter <= 0 || prm.flow == 0 {
		return image.Rectangle{}
	}

	dst := cp.canvas.committed
	if plan.staged {
		cp.canvas.beginStaged()
		dst = cp.canvas.staged
	}

	var rect image.Rectangle
	if plan.direct {
		edge := tip.fx.Rect.Dx()
		sx := float64(prm.diameter) / float64(edge)
		sy := sx
		// Mirrored placements flip the image by negative scale; the
		// accumulated rotation is intentionally not mirrored.
		if pl.FlipX {
			sx = -sx
		}
		if pl.FlipY {
			sy = -sy
		}
		m := DabTransform(pos, -prm.angle*math.Pi/180, sx, sy, edge, edge)
		rect = drawTransformed(dst, tip.fx, m)
	} else {
		img := tip.stamp(prm.diameter, prm.angle, pl.FlipX, pl.FlipY, plan.smoothing)
		rect = cp.maskedStamp(dst, img, pos, plan)
	}

	if !rect.Empty() {
		if plan.staged {
			capAlpha(cp.canvas.staged, rect, uint8(prm.opacity))
		}
		// Committed-path dabs queue their rect too, so the preview
		// tracks direct strokes; flattening a rect whose staged pixels
		// are transparent degenerates to a copy of committed.
		cp.canvas.pushMerge(rect)
	}
	return rect
}

// maskedStamp is the per-pixel dab path. For every destination pixel in
// the dab's bounding rectangle it wraps the coordinate if seamless
// drawing is on, blends per the plan, restores locked channels, and
// writes - unless erasing, which instead reduces destination alpha
// directly and always targets committed.
func (cp *compositor) maskedStamp(dst *Pixmap, img *image.NRGBA, center Point, plan dabPlan) image.Rectangle {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	left := int(math.Round(center.X - float64(w)/2))
	top := int(math.Round(center.Y - float64(h)/2))
	cw, ch := dst.Width(), dst.Height()

	touched := image.Rectangle{}
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			x, y := left+ix, top+iy
			if plan.seamless {
				x, y = wrapCoord(x, cw), wrapCoord(y, ch)
			} else if x < 0 || y < 0 || x >= cw || y >= ch {
				continue
			}

			i := img.PixOffset(img.Rect.Min.X+ix, img.Rect.Min.Y+iy)
			sr, sg, sb, sa := img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
			if plan.jagged {
				sa = blend.Threshold(sa, x, y, plan.dither)
			}
			if sa == 0 {
				continue
			}

			dr, dg, db, da := dst.RGBAAt(x, y)
			switch {
			case plan.eraser:
				// Erasing reduces destination alpha in proportion to
				// the dab coverage; soft tips erase softly.
				na := int(da) * (MaxChannel - int(sa)) / MaxChannel
				dst.SetRGBA(x, y, dr, dg, db, uint8(na))
			case plan.staged:
				// Dabs accumulate into staged with plain alpha-over;
				// the stroke blend mode and locks apply at flatten.
				r, g, b, a := blend.Pixel(blend.Normal, sr, sg, sb, sa, dr, dg, db, da)
				dst.SetRGBA(x, y, r, g, b, a)
			default:
				r, g, b, a := blend.Pixel(plan.mode, sr, sg, sb, sa, dr, dg, db, da)
				r, g, b, a = plan.locks.Apply(r, g, b, a, dr, dg, db, da)
				dst.SetRGBA(x, y, r, g, b, a)
			}
			touched = growRect(touched, x, y)
		}
	}
	return touched
}

// flattenRect blends the staged pixels inside r over dst using the
// stroke blend mode and channel locks. Used both for the incremental
// merge into the preview and the final merge-down into committed.
func (cp *compositor) flattenRect(dst *Pixmap, r image.Rectangle, mode blend.Mode, locks blend.Locks) {
	r = r.Intersect(dst.Bounds())
	staged := cp.canvas.staged
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sr, sg, sb, sa := staged.RGBAAt(x, y)
			if sa == 0 {
				continue
			}
			dr, dg, db, da := dst.RGBAAt(x, y)
			br, bg, bb, ba := blend.Pixel(mode, sr, sg, sb, sa, dr, dg, db, da)
			br, bg, bb, ba = locks.Apply(br, bg, bb, ba, dr, dg, db, da)
			dst.SetRGBA(x, y, br, bg, bb, ba)
		}
	}
}

// refreshMerged drains the merge queue, re-flattening only the touched
// rectangles of staged over committed into the preview buffer. Returns
// the rectangles for the display layer's incremental redraw.
func (cp *compositor) refreshMerged(mode blend.Mode, locks blend.Locks) []image.Rectangle {
	rects := cp.canvas.merge.Drain()
	for _, r := range rects {
		cp.canvas.merged.CopyRect(cp.canvas.committed, r)
		cp.flattenRect(cp.canvas.merged, r, mode, locks)
	}
	return rects
}

// finishStroke merges the whole staged buffer down into committed once,
// then clears it back to fully transparent.
func (cp *compositor) finishStroke(mode blend.Mode, locks blend.Locks) {
	cp.flattenRect(cp.canvas.committed, cp.canvas.committed.Bounds(), mode, locks)
	cp.canvas.resetStaged()
}

// capAlpha clamps the alpha of every pixel inside r to limit.
func capAlpha(p *Pixmap, r image.Rectangle, limit uint8) {
	if limit == MaxChannel {
		return
	}
	r = r.Intersect(p.Bounds())
	pix := p.Pix()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * p.Width() * 4
		for x := r.Min.X; x < r.Max.X; x++ {
			i := row + x*4 + 3
			if pix[i] > limit {
				pix[i] = limit
			}
		}
	}
}

// wrapCoord folds a coordinate into [0, n) toroidally.
func wrapCoord(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// growRect extends r to include pixel (x, y).
func growRect(r image.Rectangle, x, y int) image.Rectangle {
	px := image.Rect(x, y, x+1, y+1)
	if r.Empty() {
		return px
	}
	return r.Union(px)
}
