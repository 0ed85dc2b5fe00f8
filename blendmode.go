package ink

import "github.com/inklab/ink/internal/blend"

// BlendMode defines how dab pixels combine with canvas pixels.
type BlendMode = blend.Mode

// Blend modes. Normal is plain alpha-over; the rest apply a per-channel
// combine before compositing. Any mode other than Normal routes the
// stroke through the staged layer and applies at flatten time.
const (
	BlendNormal     = blend.Normal
	BlendMultiply   = blend.Multiply
	BlendAdditive   = blend.Additive
	BlendColorBurn  = blend.ColorBurn
	BlendColorDodge = blend.ColorDodge
	BlendReflect    = blend.Reflect
	BlendGlow       = blend.Glow
	BlendOverlay    = blend.Overlay
	BlendDifference = blend.Difference
	BlendNegation   = blend.Negation
	BlendLighten    = blend.Lighten
	BlendDarken     = blend.Darken
	BlendScreen     = blend.Screen
	BlendXor        = blend.Xor
	BlendOverwrite  = blend.Overwrite
)

// ChannelLocks selects color channels of the destination that survive
// blending unchanged. RGB locks preserve raw channels; HSV locks
// preserve the hue, saturation, or value of the destination pixel.
type ChannelLocks = blend.Locks
