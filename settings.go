package ink

import "github.com/inklab/ink/internal/num"

// Slider domains. Every settings field clamps into these ranges; the
// pressure mapper deliberately does not clamp, so Normalize is the
// single place domains are enforced.
const (
	MinBrushSize = 1
	MaxBrushSize = 500

	// MaxChannel is the ceiling for 8-bit parameters: flow, opacity,
	// color channels, and flow-loss jitter.
	MaxChannel = 255

	// MaxRotation bounds the rotation domain [-MaxRotation, MaxRotation).
	MaxRotation = 180

	MaxDensity      = 100
	MaxDrawDistance = 500

	// MaxPercent is the full range of percent-domain parameters, such
	// as the positional jitter bounds.
	MaxPercent = 100
)

// SmoothingMode selects the interpolation used when the brush tip is
// resized and rotated.
type SmoothingMode uint8

const (
	// SmoothingJagged disables interpolation and re-quantizes dab alpha
	// to hard 0/255 edges.
	SmoothingJagged SmoothingMode = iota

	// SmoothingNormal uses bilinear interpolation.
	SmoothingNormal

	// SmoothingSmooth uses Catmull-Rom interpolation for the softest
	// edges.
	SmoothingSmooth
)

// String returns the display name of the smoothing mode.
func (m SmoothingMode) String() string {
	switch m {
	case SmoothingJagged:
		return "Jagged"
	case SmoothingNormal:
		return "Normal"
	case SmoothingSmooth:
		return "Smooth"
	default:
		return "Unknown"
	}
}

// JitterRange is a two-sided random variation bound. Each dab draws
// independent uniform integers in [0, Down] and [0, Up]; the first is
// subtracted from the base value and the second added. Both bounds are
// resolved through Pressure before drawing, so the effective jitter
// range shrinks or grows with pen pressure.
type JitterRange struct {
	Down, Up int
	Pressure PressureMap
}

// zero reports whether the range can never produce a variation.
func (j JitterRange) zero() bool {
	return j.Down == 0 && j.Up == 0 && j.Pressure.Policy == PressureNone
}

// BoundJitter is a one-sided random variation bound: each dab draws one
// uniform integer in [0, Bound]. Used for positional scatter (Bound is
// a percent of the canvas dimension) and flow loss (Bound is an alpha
// amount).
type BoundJitter struct {
	Bound    int
	Pressure PressureMap
}

// ColorJitter holds per-channel jitter bounds for both color domains.
// The domains are mutually exclusive: if any HSV bound is nonzero the
// color is converted to HSV, jittered there, and converted back;
// otherwise the RGB channels are jittered directly.
type ColorJitter struct {
	R, G, B JitterRange
	H, S, V JitterRange
}

// useHSV reports whether the HSV domain is active.
func (c ColorJitter) useHSV() bool {
	return !c.H.zero() || !c.S.zero() || !c.V.zero()
}

// BrushSettings is the flat record of every slider and toggle the
// engine reads. It has value semantics: the stroke controller works on
// a copy taken at pointer-down, and live mutation happens only through
// Engine.Patch. Auto-drift writes back into the live record so the UI
// and the next dab see the advanced values.
type BrushSettings struct {
	// Core sliders.
	Size            int // dab diameter, [MinBrushSize, MaxBrushSize]
	Flow            int // per-dab alpha intensity, [0, MaxChannel]
	Opacity         int // stroke alpha ceiling, [0, MaxChannel]
	Rotation        int // dab angle in degrees, [-MaxRotation, MaxRotation)
	Density         int // dabs per diameter; 0 draws at every sample
	MinDrawDistance int // canvas units the pointer must travel between dabs

	// Brush color and tip treatment.
	Color    Color
	Colorize bool // replace tip RGB with Color; off treats the tip as an alpha mask

	// Tool and compositing toggles.
	Eraser      bool
	Seamless    bool // toroidal wrap at canvas edges
	DitherAlpha bool // ordered dither of the jagged alpha threshold
	Smoothing   SmoothingMode
	Blend       BlendMode
	Locks       ChannelLocks

	// Auto-drift amounts applied after each dab.
	SizeShift     int
	RotationShift int
	FlowShift     int

	// Pressure response per core parameter.
	SizePressure     PressureMap
	RotationPressure PressureMap
	FlowPressure     PressureMap
	OpacityPressure  PressureMap
	DensityPressure  PressureMap
	DistancePressure PressureMap

	// Per-dab jitter bounds.
	SizeJitter       JitterRange // Down shrinks, Up grows
	RotationJitter   JitterRange // Down rotates left, Up right
	HorizontalJitter BoundJitter // percent of canvas width
	VerticalJitter   BoundJitter // percent of canvas height
	FlowLossJitter   BoundJitter // alpha reduction
	ColorJitter      ColorJitter
}

// DefaultSettings returns the settings a freshly activated brush tool
// starts with: a 20px normal-blend brush at full flow and opacity.
func DefaultSettings() BrushSettings {
	return BrushSettings{
		Size:      20,
		Flow:      MaxChannel,
		Opacity:   MaxChannel,
		Density:   10,
		Color:     Black,
		Colorize:  true,
		Smoothing: SmoothingNormal,
		Blend:     BlendNormal,
	}
}

// Normalize clamps every field into its valid domain. Called after
// Patch and after auto-drift so out-of-range values never reach the
// jitter generator or the compositor.
func (s *BrushSettings) Normalize() {
	s.Size = num.Clamp(s.Size, MinBrushSize, MaxBrushSize)
	s.Flow = num.Clamp(s.Flow, 0, MaxChannel)
	s.Opacity = num.Clamp(s.Opacity, 0, MaxChannel)
	s.Rotation = wrapRotation(s.Rotation)
	s.Density = num.Clamp(s.Density, 0, MaxDensity)
	s.MinDrawDistance = num.Clamp(s.MinDrawDistance, 0, MaxDrawDistance)
	s.SizeShift = num.Clamp(s.SizeShift, 0, MaxBrushSize)
	s.RotationShift = num.Clamp(s.RotationShift, 0, 2*MaxRotation)
	s.FlowShift = num.Clamp(s.FlowShift, 0, MaxChannel)
}

// wrapRotation folds an angle into [-MaxRotation, MaxRotation).
func wrapRotation(deg int) int {
	for deg >= MaxRotation {
		deg -= 2 * MaxRotation
	}
	for deg < -MaxRotation {
		deg += 2 * MaxRotation
	}
	return deg
}

// maxDabDiameter returns the largest diameter a dab can reach under the
// current settings: the size slider resolved at full pressure plus the
// largest possible grow-jitter, also at full pressure. The tip cache
// sizes its downsized variant to this value.
func (s *BrushSettings) maxDabDiameter() int {
	size := s.SizePressure.Apply(float64(s.Size), MaxBrushSize, 1)
	grow := s.SizeJitter.Pressure.Apply(float64(s.SizeJitter.Up), MaxBrushSize, 1)
	d := int(size) + max(int(grow), 0)
	return num.Clamp(d, MinBrushSize, MaxBrushSize)
}
