package ink

import (
	"math/rand"

	"github.com/inklab/ink/internal/num"
)

// dabParams is the ephemeral per-dab parameter record: everything the
// compositor needs to stamp one dab, computed once from the settings
// snapshot, the pressure ratio, and random draws. Never persisted.
type dabParams struct {
	diameter int
	angle    float64 // degrees
	offset   Point   // positional scatter, canvas units
	color    Color
	flow     int // resolved per-dab alpha, [0, MaxChannel]
	opacity  int
}

// jitterer draws the randomized per-dab offsets. The rand source is
// injected so tests can run deterministically.
type jitterer struct {
	rng *rand.Rand
}

// intIn returns a uniform integer in [0, bound]. Non-positive bounds
// yield 0.
func (j *jitterer) intIn(bound int) int {
	if bound <= 0 {
		return 0
	}
	return j.rng.Intn(bound + 1)
}

// rangeDraw resolves both bounds of a JitterRange through the pressure
// mapper, then draws the down and up variations.
func (j *jitterer) rangeDraw(r JitterRange, maxRange, ratio float64) (down, up int) {
	db := int(r.Pressure.Apply(float64(r.Down), maxRange, ratio))
	ub := int(r.Pressure.Apply(float64(r.Up), maxRange, ratio))
	return j.intIn(db), j.intIn(ub)
}

// boundDraw resolves a one-sided bound through the pressure mapper and
// draws from it.
func (j *jitterer) boundDraw(b BoundJitter, maxRange, ratio float64) int {
	bound := int(b.Pressure.Apply(float64(b.Bound), maxRange, ratio))
	return j.intIn(bound)
}

// resolveDab computes the parameters for one dab. ratio is the 0..1
// pressure ratio of the current pointer sample; canvasW/canvasH scale
// the percent-based positional jitter.
func (j *jitterer) resolveDab(s *BrushSettings, ratio float64, canvasW, canvasH int) dabParams {
	var p dabParams

	// Size: pressure-resolved base, shrunk and grown by independent
	// draws, clamped so a dab never exceeds the cached tip capacity.
	size := int(s.SizePressure.Apply(float64(s.Size), MaxBrushSize, ratio))
	shrink, grow := j.rangeDraw(s.SizeJitter, MaxBrushSize, ratio)
	p.diameter = num.Clamp(size-shrink+grow, 0, s.maxDabDiameter())

	// Rotation: left and right draws sum the same way; the result wraps
	// into the angle domain rather than clamping.
	rot := int(s.RotationPressure.Apply(float64(s.Rotation), MaxRotation, ratio))
	left, right := j.rangeDraw(s.RotationJitter, MaxRotation, ratio)
	p.angle = float64(wrapRotation(rot - left + right))

	// Position scatter: each axis shifts by -range/2 + U[0, range],
	// where range is a percent of the canvas dimension.
	if hr := j.hRange(s, ratio, canvasW); hr > 0 {
		p.offset.X = -float64(hr)/2 + float64(j.intIn(hr))
	}
	if vr := j.vRange(s, ratio, canvasH); vr > 0 {
		p.offset.Y = -float64(vr)/2 + float64(j.intIn(vr))
	}

	// Flow: pressure-resolved, reduced by the flow-loss draw.
	flow := int(s.FlowPressure.Apply(float64(s.Flow), MaxChannel, ratio))
	flow -= j.boundDraw(s.FlowLossJitter, MaxChannel, ratio)
	p.flow = num.Clamp(flow, 0, MaxChannel)

	p.opacity = num.Clamp(int(s.OpacityPressure.Apply(float64(s.Opacity), MaxChannel, ratio)), 0, MaxChannel)
	p.color = j.jitterColor(s, ratio)
	return p
}

// hRange resolves the horizontal scatter range in canvas units.
func (j *jitterer) hRange(s *BrushSettings, ratio float64, canvasW int) int {
	pct := s.HorizontalJitter.Pressure.Apply(float64(s.HorizontalJitter.Bound), MaxPercent, ratio)
	return int(pct / 100 * float64(canvasW))
}

// vRange resolves the vertical scatter range in canvas units.
func (j *jitterer) vRange(s *BrushSettings, ratio float64, canvasH int) int {
	pct := s.VerticalJitter.Pressure.Apply(float64(s.VerticalJitter.Bound), MaxPercent, ratio)
	return int(pct / 100 * float64(canvasH))
}

// jitterColor perturbs the brush color per the configured channel
// bounds. The HSV and RGB domains are mutually exclusive: any nonzero
// HSV bound converts the color to HSV, jitters there, and converts
// back. Every channel clamps to its domain.
func (j *jitterer) jitterColor(s *BrushSettings, ratio float64) Color {
	c := s.Color
	cj := s.ColorJitter

	if cj.useHSV() {
		h, sat, v := c.HSV()
		down, up := j.rangeDraw(cj.H, 360, ratio)
		h = num.Clamp(h-down+up, 0, 360)
		down, up = j.rangeDraw(cj.S, 100, ratio)
		sat = num.Clamp(sat-down+up, 0, 100)
		down, up = j.rangeDraw(cj.V, 100, ratio)
		v = num.Clamp(v-down+up, 0, 100)
		return FromHSV(h, sat, v, c.A)
	}

	c.R = jitterChannel(j, cj.R, c.R, ratio)
	c.G = jitterChannel(j, cj.G, c.G, ratio)
	c.B = jitterChannel(j, cj.B, c.B, ratio)
	return c
}

// jitterChannel applies one RGB channel's jitter range.
func jitterChannel(j *jitterer, r JitterRange, base uint8, ratio float64) uint8 {
	down, up := j.rangeDraw(r, MaxChannel, ratio)
	return uint8(num.Clamp(int(base)-down+up, 0, MaxChannel))
}
