package ink

// strokeState is the per-stroke bookkeeping, created at pointer-down
// and zeroed at pointer-up. The three booleans gate one-time costs:
// started marks the active stroke, canvasChanged gates the single undo
// snapshot, stagedChanged gates the final merge-down.
type strokeState struct {
	started       bool
	canvasChanged bool
	stagedChanged bool

	last      Point // last pointer sample
	lastDrawn Point // last successfully drawn dab position
	hasDrawn  bool
	carry     float64 // distance accumulated toward the next density interval
}

// begin initializes the state at pointer-down.
func (st *strokeState) begin(pos Point) {
	*st = strokeState{started: true, last: pos}
}

// end zeroes the state at pointer-up.
func (st *strokeState) end() {
	*st = strokeState{}
}

// spacing computes where dabs land along a pointer movement segment.
//
// With density 0 a dab is placed at every sample position. Otherwise
// the interval is diameter/density canvas units: the segment from the
// previous sample to pos is walked in interval steps, carrying the
// fractional remainder into the next sample so high pointer speed does
// not open gaps and low speed does not stack redundant dabs.
func (st *strokeState) spacing(pos Point, diameter float64, density int) []Point {
	from := st.last
	st.last = pos

	if density <= 0 {
		return []Point{pos}
	}
	interval := diameter / float64(density)
	if interval <= 0 {
		return []Point{pos}
	}

	dist := from.Distance(pos)
	if dist == 0 {
		return nil
	}

	var out []Point
	// First dab lands once the carried distance reaches a full
	// interval; subsequent dabs every interval along the segment.
	next := interval - st.carry
	for next <= dist {
		out = append(out, from.Lerp(pos, next/dist))
		next += interval
	}
	st.carry = dist - (next - interval)
	return out
}
