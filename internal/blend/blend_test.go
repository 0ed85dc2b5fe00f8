package blend

import "testing"

func TestPixelNormal(t *testing.T) {
	tests := []struct {
		name                           string
		sr, sg, sb, sa, dr, dg, db, da uint8
		wr, wg, wb, wa                 uint8
	}{
		{"opaque source wins", 200, 10, 10, 255, 0, 0, 200, 255, 200, 10, 10, 255},
		{"transparent source keeps dst", 200, 10, 10, 0, 0, 0, 200, 128, 0, 0, 200, 128},
		{"source over empty dst", 40, 50, 60, 100, 0, 0, 0, 0, 40, 50, 60, 100},
		{"half over opaque", 255, 255, 255, 128, 0, 0, 0, 255, 128, 128, 128, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := Pixel(Normal, tt.sr, tt.sg, tt.sb, tt.sa, tt.dr, tt.dg, tt.db, tt.da)
			if r != tt.wr || g != tt.wg || b != tt.wb || a != tt.wa {
				t.Errorf("got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					r, g, b, a, tt.wr, tt.wg, tt.wb, tt.wa)
			}
		})
	}
}

func TestChannelFormulas(t *testing.T) {
	tests := []struct {
		mode Mode
		s, d int
		want int
	}{
		{Multiply, 255, 100, 100},
		{Multiply, 128, 128, 64},
		{Multiply, 0, 200, 0},
		{Additive, 200, 100, 255},
		{Additive, 50, 100, 150},
		{ColorBurn, 0, 100, 0},
		{ColorBurn, 255, 100, 100},
		{ColorDodge, 255, 1, 255},
		{ColorDodge, 0, 100, 100},
		{Reflect, 255, 10, 255},
		{Glow, 10, 255, 255},
		{Overlay, 128, 0, 0},
		{Overlay, 128, 255, 255},
		{Difference, 200, 50, 150},
		{Difference, 50, 200, 150},
		{Negation, 255, 255, 0},
		{Negation, 0, 0, 0},
		{Lighten, 10, 200, 200},
		{Darken, 10, 200, 10},
		{Screen, 255, 100, 255},
		{Screen, 0, 100, 100},
		{Xor, 0xF0, 0x0F, 0xFF},
		{Xor, 0xFF, 0xFF, 0},
	}
	for _, tt := range tests {
		if got := channel(tt.mode, tt.s, tt.d); got != tt.want {
			t.Errorf("channel(%v, %d, %d) = %d, want %d", tt.mode, tt.s, tt.d, got, tt.want)
		}
	}
}

func TestChannelStaysInRange(t *testing.T) {
	modes := []Mode{
		Multiply, Additive, ColorBurn, ColorDodge, Reflect, Glow,
		Overlay, Difference, Negation, Lighten, Darken, Screen, Xor,
	}
	for _, mode := range modes {
		for s := 0; s <= 255; s += 15 {
			for d := 0; d <= 255; d += 15 {
				if got := channel(mode, s, d); got < 0 || got > 255 {
					t.Fatalf("channel(%v, %d, %d) = %d out of range", mode, s, d, got)
				}
			}
		}
	}
}

func TestPixelOverwrite(t *testing.T) {
	// Full source alpha replaces both color and alpha.
	r, g, b, a := Pixel(Overwrite, 10, 20, 30, 255, 200, 200, 200, 200)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("opaque overwrite = (%d,%d,%d,%d)", r, g, b, a)
	}
	// Partial source alpha interpolates alpha too — unlike Normal, the
	// destination alpha can decrease.
	_, _, _, a = Pixel(Overwrite, 0, 0, 0, 128, 0, 0, 0, 255)
	if a >= 255 {
		t.Errorf("partial overwrite alpha = %d, want < 255", a)
	}
}

func TestPixelSeparableCompositesOverDst(t *testing.T) {
	// A Multiply dab at half alpha over an opaque destination: the
	// result sits between the destination and the full multiply.
	r, _, _, a := Pixel(Multiply, 255, 255, 255, 128, 100, 100, 100, 255)
	if a != 255 {
		t.Fatalf("alpha = %d, want 255 over opaque dst", a)
	}
	if r != 100 {
		// Multiply by white is the identity; compositing at any alpha
		// must still give the destination back.
		t.Errorf("multiply-by-white = %d, want 100", r)
	}
}

func TestLocksApply(t *testing.T) {
	blended := [4]uint8{10, 20, 30, 40}
	dst := [4]uint8{200, 210, 220, 230}

	tests := []struct {
		name  string
		locks Locks
		want  [4]uint8
	}{
		{"none", Locks{}, blended},
		{"alpha", Locks{Alpha: true}, [4]uint8{10, 20, 30, 230}},
		{"red", Locks{R: true}, [4]uint8{200, 20, 30, 40}},
		{"rgb", Locks{R: true, G: true, B: true}, [4]uint8{200, 210, 220, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.locks.Apply(
				blended[0], blended[1], blended[2], blended[3],
				dst[0], dst[1], dst[2], dst[3])
			if got := [4]uint8{r, g, b, a}; got != tt.want {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocksAny(t *testing.T) {
	if (Locks{}).Any() {
		t.Error("zero locks must report Any() = false")
	}
	for _, l := range []Locks{
		{Alpha: true}, {R: true}, {G: true}, {B: true},
		{H: true}, {S: true}, {V: true},
	} {
		if !l.Any() {
			t.Errorf("%+v must report Any() = true", l)
		}
	}
}

func TestLocksHueLock(t *testing.T) {
	// Blending pure green over pure red with the hue locked: the result
	// keeps red's hue (the red channel stays dominant).
	r, g, b, _ := Locks{H: true}.Apply(0, 255, 0, 255, 255, 0, 0, 255)
	if r < g || r < b {
		t.Errorf("hue-locked result (%d,%d,%d) lost the destination hue", r, g, b)
	}
}

func TestThreshold(t *testing.T) {
	// Plain threshold cuts at mid-range everywhere.
	if Threshold(127, 3, 9, false) != 0 {
		t.Error("127 below plain threshold must drop to 0")
	}
	if Threshold(128, 3, 9, false) != 255 {
		t.Error("128 at plain threshold must rise to 255")
	}
	if Threshold(0, 0, 0, true) != 0 {
		t.Error("zero alpha must stay 0 even dithered")
	}

	// Dithering varies the cut per pixel: a mid alpha maps to a mix of
	// 0 and 255 across a 4x4 tile.
	var lows, highs int
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			switch Threshold(128, x, y, true) {
			case 0:
				lows++
			case 255:
				highs++
			default:
				t.Fatal("Threshold must only produce 0 or 255")
			}
		}
	}
	if lows == 0 || highs == 0 {
		t.Errorf("dithered mid alpha gave %d lows / %d highs, want a mix", lows, highs)
	}
}

func TestModeString(t *testing.T) {
	if Multiply.String() != "Multiply" || Normal.String() != "Normal" {
		t.Error("mode display names broken")
	}
	if Mode(250).String() != "Unknown" {
		t.Error("unknown mode must report Unknown")
	}
}
