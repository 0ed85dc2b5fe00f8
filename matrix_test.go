package ink

import (
	"math"
	"testing"
)

func pointsClose(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 2), Pt(11, -3)},
		{"scale", Scale(2, 3), Pt(4, 5), Pt(8, 15)},
		{"mirror x", Scale(-1, 1), Pt(4, 5), Pt(-4, 5)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate 180deg", Rotate(math.Pi), Pt(1, 0), Pt(-1, 0)},
		{"translate then scale", Translate(10, 10).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointsClose(got, tt.want, 1e-9) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(7, -3)},
		{"scale", Scale(2, 0.5)},
		{"negative scale", Scale(-2, 3)},
		{"rotate", Rotate(1.23)},
		{"composite", Translate(5, 5).Multiply(Rotate(math.Pi / 3)).Multiply(Scale(2, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(13, -7)
			back := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if !pointsClose(back, p, 1e-9) {
				t.Errorf("invert round trip moved %v to %v", p, back)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	if got := (Matrix{}).Invert(); got != Identity() {
		t.Errorf("singular matrix inverse = %+v, want identity", got)
	}
	if got := Scale(0, 0).Invert(); got != Identity() {
		t.Errorf("zero-scale inverse = %+v, want identity", got)
	}
}

func TestDabTransformCentersOnPos(t *testing.T) {
	// The source-image center must always land exactly on the dab
	// position, whatever the rotation and scale.
	tests := []struct {
		name   string
		angle  float64
		sx, sy float64
		w, h   int
	}{
		{"plain", 0, 1, 1, 64, 64},
		{"scaled down", 0, 0.25, 0.25, 64, 64},
		{"rotated", math.Pi / 3, 1, 1, 64, 64},
		{"flipped x", 0, -0.5, 0.5, 64, 64},
		{"flipped both rotated", 2.1, -1, -1, 48, 48},
	}
	pos := Pt(100, 60)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DabTransform(pos, tt.angle, tt.sx, tt.sy, tt.w, tt.h)
			center := m.TransformPoint(Pt(float64(tt.w)/2, float64(tt.h)/2))
			if !pointsClose(center, pos, 1e-9) {
				t.Errorf("source center maps to %v, want %v", center, pos)
			}
		})
	}
}

func TestDabTransformScale(t *testing.T) {
	// A 64px source scaled by 0.25 must span 16 canvas units.
	m := DabTransform(Pt(0, 0), 0, 0.25, 0.25, 64, 64)
	left := m.TransformPoint(Pt(0, 32))
	right := m.TransformPoint(Pt(64, 32))
	if got := right.Sub(left).Length(); math.Abs(got-16) > 1e-9 {
		t.Errorf("scaled span = %v, want 16", got)
	}
}

func TestDabTransformNegativeScaleMirrors(t *testing.T) {
	pos := Pt(50, 50)
	m := DabTransform(pos, 0, -1, 1, 10, 10)

	// With sx negative, the source's left edge lands right of center.
	left := m.TransformPoint(Pt(0, 5))
	if left.X <= pos.X {
		t.Errorf("mirrored left edge at x=%v, want > %v", left.X, pos.X)
	}
	// The y axis is untouched.
	if math.Abs(left.Y-pos.Y) > 1e-9 {
		t.Errorf("mirror leaked into y: %v", left.Y)
	}
}

func TestDabTransformRotationDirection(t *testing.T) {
	// Positive angle rotates the source's +x axis toward +y (screen
	// clockwise in image coordinates).
	m := DabTransform(Pt(0, 0), math.Pi/2, 1, 1, 2, 2)
	p := m.TransformPoint(Pt(2, 1)) // right edge midpoint, 1 unit from center
	if !pointsClose(p, Pt(0, 1), 1e-9) {
		t.Errorf("rotated right edge at %v, want (0,1)", p)
	}
}
