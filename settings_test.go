package ink

import "testing"

func TestDefaultSettingsSane(t *testing.T) {
	s := DefaultSettings()
	n := s
	n.Normalize()
	if s != n {
		t.Error("DefaultSettings must already be normalized")
	}
	if s.Size != 20 || s.Flow != MaxChannel || s.Opacity != MaxChannel {
		t.Errorf("unexpected defaults: size=%d flow=%d opacity=%d", s.Size, s.Flow, s.Opacity)
	}
	if s.Blend != BlendNormal || !s.Colorize {
		t.Error("defaults must be Normal blend with colorize on")
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name string
		in   BrushSettings
		want func(BrushSettings) bool
	}{
		{"size above max", BrushSettings{Size: 9999}, func(s BrushSettings) bool { return s.Size == MaxBrushSize }},
		{"size below min", BrushSettings{Size: -3}, func(s BrushSettings) bool { return s.Size == MinBrushSize }},
		{"flow above max", BrushSettings{Size: 1, Flow: 400}, func(s BrushSettings) bool { return s.Flow == MaxChannel }},
		{"negative flow", BrushSettings{Size: 1, Flow: -1}, func(s BrushSettings) bool { return s.Flow == 0 }},
		{"opacity above max", BrushSettings{Size: 1, Opacity: 300}, func(s BrushSettings) bool { return s.Opacity == MaxChannel }},
		{"density above max", BrushSettings{Size: 1, Density: 500}, func(s BrushSettings) bool { return s.Density == MaxDensity }},
		{"negative density", BrushSettings{Size: 1, Density: -5}, func(s BrushSettings) bool { return s.Density == 0 }},
		{"draw distance", BrushSettings{Size: 1, MinDrawDistance: 1e6}, func(s BrushSettings) bool { return s.MinDrawDistance == MaxDrawDistance }},
		{"negative shifts", BrushSettings{Size: 1, SizeShift: -2, FlowShift: -9}, func(s BrushSettings) bool { return s.SizeShift == 0 && s.FlowShift == 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			if !tt.want(tt.in) {
				t.Errorf("Normalize left %+v", tt.in)
			}
		})
	}
}

func TestWrapRotation(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0},
		{179, 179},
		{180, -180},
		{-180, -180},
		{-181, 179},
		{359, -1},
		{360, 0},
		{540, -180},
		{-360, 0},
		{900, -180},
	}
	for _, tt := range tests {
		if got := wrapRotation(tt.in); got != tt.want {
			t.Errorf("wrapRotation(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestJitterRangeZero(t *testing.T) {
	if !(JitterRange{}).zero() {
		t.Error("empty range must be zero")
	}
	if (JitterRange{Up: 1}).zero() {
		t.Error("range with an Up bound is not zero")
	}
	// A pressure policy can expand the bounds even when both are zero.
	j := JitterRange{Pressure: PressureMap{Offset: 10, Policy: PressureAdd}}
	if j.zero() {
		t.Error("pressure-mapped range is not zero")
	}
}

func TestColorJitterDomainSelection(t *testing.T) {
	var c ColorJitter
	if c.useHSV() {
		t.Error("empty jitter must use the RGB domain")
	}
	c.R = JitterRange{Up: 5}
	if c.useHSV() {
		t.Error("RGB-only jitter must use the RGB domain")
	}
	c.S = JitterRange{Down: 3}
	if !c.useHSV() {
		t.Error("any HSV bound must switch to the HSV domain")
	}
}

func TestMaxDabDiameter(t *testing.T) {
	s := BrushSettings{Size: 40}
	if got := s.maxDabDiameter(); got != 40 {
		t.Errorf("plain size: %d, want 40", got)
	}

	s.SizeJitter = JitterRange{Down: 10, Up: 25}
	if got := s.maxDabDiameter(); got != 65 {
		t.Errorf("with grow jitter: %d, want 65 (shrink jitter ignored)", got)
	}

	s.SizePressure = PressureMap{Offset: 100, Policy: PressureAdd}
	if got := s.maxDabDiameter(); got != 165 {
		t.Errorf("with pressure headroom: %d, want 165", got)
	}

	s.Size = MaxBrushSize
	if got := s.maxDabDiameter(); got != MaxBrushSize {
		t.Errorf("clamped: %d, want %d", got, MaxBrushSize)
	}
}
