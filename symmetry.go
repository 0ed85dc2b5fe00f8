package ink

import (
	"math"

	"github.com/inklab/ink/internal/num"
)

// SymmetryMode selects how one logical dab placement expands into
// actual placements.
type SymmetryMode uint8

const (
	// SymmetryNone places each dab once.
	SymmetryNone SymmetryMode = iota

	// SymmetryHorizontal mirrors each placement across the vertical
	// axis through the symmetry origin.
	SymmetryHorizontal

	// SymmetryVertical mirrors each placement across the horizontal
	// axis through the symmetry origin.
	SymmetryVertical

	// SymmetryPoint2 mirrors across both axes, producing four
	// placements.
	SymmetryPoint2

	// SymmetryRadial repeats each placement around the origin at
	// evenly spaced angles. The repeat count is SymmetryState.Order.
	SymmetryRadial

	// SymmetryPointSet places one dab per user-stored offset point.
	SymmetryPointSet
)

// Radial repeat-count domain.
const (
	MinRadialOrder = 3
	MaxRadialOrder = 12
)

// String returns the display name of the symmetry mode.
func (m SymmetryMode) String() string {
	switch m {
	case SymmetryNone:
		return "None"
	case SymmetryHorizontal:
		return "Horizontal"
	case SymmetryVertical:
		return "Vertical"
	case SymmetryPoint2:
		return "2-Point"
	case SymmetryRadial:
		return "Radial"
	case SymmetryPointSet:
		return "PointSet"
	default:
		return "Unknown"
	}
}

// Placement is one actual dab position produced by the symmetry
// expansion. Mirrored placements flip the dab image via the flags; the
// dab's accumulated rotation is deliberately not mirrored, so brush art
// reflects instead of rotating unnaturally.
type Placement struct {
	Pos          Point
	FlipX, FlipY bool
}

// SymmetryState is the active symmetry configuration: the mode, the
// origin point, the radial repeat count, and — for the point-set mode —
// the ordered offsets captured relative to the origin at the moment
// point-set editing began.
type SymmetryState struct {
	Mode   SymmetryMode
	Order  int
	Origin Point

	points []Point
}

// SetOrigin moves the symmetry origin.
func (s *SymmetryState) SetOrigin(p Point) { s.Origin = p }

// AddPoint stores a point-set placement. The point is given in canvas
// space and stored as an offset from the current origin.
func (s *SymmetryState) AddPoint(p Point) {
	s.points = append(s.points, p.Sub(s.Origin))
}

// ClearPoints discards the stored point set.
func (s *SymmetryState) ClearPoints() { s.points = nil }

// Points returns a copy of the stored offsets.
func (s *SymmetryState) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Placements expands one canvas-space dab position into the 1..N
// positions the active mode calls for.
func (s *SymmetryState) Placements(p Point) []Placement {
	switch s.Mode {
	case SymmetryHorizontal:
		return []Placement{
			{Pos: p},
			{Pos: Pt(2*s.Origin.X-p.X, p.Y), FlipX: true},
		}
	case SymmetryVertical:
		return []Placement{
			{Pos: p},
			{Pos: Pt(p.X, 2*s.Origin.Y-p.Y), FlipY: true},
		}
	case SymmetryPoint2:
		return []Placement{
			{Pos: p},
			{Pos: Pt(2*s.Origin.X-p.X, p.Y), FlipX: true},
			{Pos: Pt(p.X, 2*s.Origin.Y-p.Y), FlipY: true},
			{Pos: Pt(2*s.Origin.X-p.X, 2*s.Origin.Y-p.Y), FlipX: true, FlipY: true},
		}
	case SymmetryRadial:
		n := num.Clamp(s.Order, MinRadialOrder, MaxRadialOrder)
		rel := p.Sub(s.Origin)
		dist := rel.Length()
		angle := rel.Angle()
		out := make([]Placement, n)
		for k := 0; k < n; k++ {
			a := angle + float64(k)*2*math.Pi/float64(n)
			out[k] = Placement{Pos: s.Origin.Add(FromPolar(dist, a))}
		}
		return out
	case SymmetryPointSet:
		if len(s.points) == 0 {
			return []Placement{{Pos: p}}
		}
		out := make([]Placement, len(s.points))
		for i, off := range s.points {
			out[i] = Placement{Pos: p.Add(off)}
		}
		return out
	default:
		return []Placement{{Pos: p}}
	}
}
