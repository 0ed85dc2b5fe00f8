package color

import "testing"

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, v int
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 100},
		{"red", 255, 0, 0, 0, 100, 100},
		{"green", 0, 255, 0, 120, 100, 100},
		{"blue", 0, 0, 255, 240, 100, 100},
		{"yellow", 255, 255, 0, 60, 100, 100},
		{"cyan", 0, 255, 255, 180, 100, 100},
		{"magenta", 255, 0, 255, 300, 100, 100},
		{"mid gray", 128, 128, 128, 0, 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.r, tt.g, tt.b)
			if h != tt.h || s != tt.s || v != tt.v {
				t.Errorf("RGBToHSV(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					tt.r, tt.g, tt.b, h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v int
		r, g, b uint8
	}{
		{"red", 0, 100, 100, 255, 0, 0},
		{"green", 120, 100, 100, 0, 255, 0},
		{"blue", 240, 100, 100, 0, 0, 255},
		{"hue 360 wraps to red", 360, 100, 100, 255, 0, 0},
		{"negative hue wraps", -120, 100, 100, 0, 0, 255},
		{"zero saturation is gray", 200, 0, 50, 128, 128, 128},
		{"zero value is black", 200, 100, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.h, tt.s, tt.v)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HSVToRGB(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)",
					tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRoundTripNearLossless(t *testing.T) {
	// The integer HSV domain is coarser than RGB, so the round trip may
	// drift by a few counts per channel but no more.
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				h, s, v := RGBToHSV(uint8(r), uint8(g), uint8(b))
				rr, gg, bb := HSVToRGB(h, s, v)
				if absDiff(rr, uint8(r)) > 6 || absDiff(gg, uint8(g)) > 6 || absDiff(bb, uint8(b)) > 6 {
					t.Fatalf("(%d,%d,%d) round-tripped to (%d,%d,%d)", r, g, b, rr, gg, bb)
				}
			}
		}
	}
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
