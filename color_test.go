package ink

import (
	stdcolor "image/color"
	"testing"
)

func TestColorConstructors(t *testing.T) {
	if got := NewColor(1, 2, 3, 4); got != (Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("NewColor = %+v", got)
	}
	if got := RGB(10, 20, 30); got.A != 255 {
		t.Errorf("RGB alpha = %d, want 255", got.A)
	}
	if Transparent != (Color{}) {
		t.Error("Transparent must be the zero color")
	}
}

func TestColorNRGBARoundTrip(t *testing.T) {
	c := NewColor(12, 34, 56, 200)
	if got := FromColor(c.NRGBA()); got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestFromColorPremultiplied(t *testing.T) {
	// A premultiplied RGBA converts back to straight channels.
	in := stdcolor.RGBA{R: 100, G: 50, B: 0, A: 100}
	got := FromColor(in)
	if got.A != 100 {
		t.Fatalf("alpha = %d, want 100", got.A)
	}
	if got.R != 255 || got.G < 125 || got.G > 129 {
		t.Errorf("unpremultiplied channels = %+v", got)
	}
}

func TestColorHSVRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		h, s, v int
	}{
		{"black", Black, 0, 0, 0},
		{"white", White, 0, 0, 100},
		{"red", RGB(255, 0, 0), 0, 100, 100},
		{"green", RGB(0, 255, 0), 120, 100, 100},
		{"blue", RGB(0, 0, 255), 240, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := tt.c.HSV()
			if h != tt.h || s != tt.s || v != tt.v {
				t.Errorf("HSV() = (%d,%d,%d), want (%d,%d,%d)", h, s, v, tt.h, tt.s, tt.v)
			}
			if got := FromHSV(h, s, v, tt.c.A); got != tt.c {
				t.Errorf("FromHSV round trip = %+v, want %+v", got, tt.c)
			}
		})
	}
}

func TestFromHSVClamps(t *testing.T) {
	// Out-of-range channels clamp instead of wrapping garbage.
	if got := FromHSV(0, 0, 200, 255); got != White {
		t.Errorf("overdriven value = %+v, want white", got)
	}
	if got := FromHSV(0, 999, 100, 255); got != RGB(255, 0, 0) {
		t.Errorf("overdriven saturation = %+v, want pure red", got)
	}
	if got := FromHSV(0, -5, -5, 255); got != Black {
		t.Errorf("negative saturation/value = %+v, want black", got)
	}
}
