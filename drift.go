package ink

// driftState carries the persistent direction flags for the size,
// rotation, and flow auto-drift ("shift"). After each dab the
// configured shift amount advances the live slider value in the current
// direction. Size and flow bounce: hitting either end of the domain
// flips the direction. Rotation instead wraps by subtracting twice the
// bound, producing continuous rotation rather than oscillation; that
// asymmetry is deliberate and load-bearing for brushes that spin.
type driftState struct {
	sizeDir     int
	rotationDir int
	flowDir     int
}

// newDriftState starts every parameter drifting upward.
func newDriftState() driftState {
	return driftState{sizeDir: 1, rotationDir: 1, flowDir: 1}
}

// apply advances the live settings by one dab's worth of drift.
// It mutates s in place so the UI and the next dab both observe the
// shifted sliders.
func (d *driftState) apply(s *BrushSettings) {
	if s.SizeShift != 0 {
		s.Size, d.sizeDir = bounce(s.Size, s.SizeShift*d.sizeDir, MinBrushSize, MaxBrushSize, d.sizeDir)
	}
	if s.FlowShift != 0 {
		s.Flow, d.flowDir = bounce(s.Flow, s.FlowShift*d.flowDir, 0, MaxChannel, d.flowDir)
	}
	if s.RotationShift != 0 {
		s.Rotation = wrapRotation(s.Rotation + s.RotationShift*d.rotationDir)
	}
}

// bounce advances v by delta within [lo, hi]. On crossing either bound
// the value clamps to the bound and the direction flips.
func bounce(v, delta, lo, hi, dir int) (int, int) {
	v += delta
	if v >= hi {
		return hi, -dir
	}
	if v <= lo {
		return lo, -dir
	}
	return v, dir
}
