package ink

// PressurePolicy selects how a pressure-linked offset modifies a base
// slider value.
type PressurePolicy uint8

const (
	// PressureNone ignores the pressure offset entirely.
	PressureNone PressurePolicy = iota

	// PressureAdd adds offset scaled by the pressure ratio.
	PressureAdd

	// PressureAddPercent treats offset as a percentage of the
	// parameter's full range and adds that, scaled by pressure.
	PressureAddPercent

	// PressureAddPercentCurrent treats offset as a percentage of the
	// current base value and adds that, scaled by pressure.
	PressureAddPercentCurrent

	// PressureMatchValue interpolates from base toward offset as an
	// absolute target; the pressure ratio selects the point between
	// them rather than adding a delta.
	PressureMatchValue

	// PressureMatchPercent interpolates from base toward offset as a
	// percentage of the full range.
	PressureMatchPercent
)

// String returns the display name of the policy.
func (p PressurePolicy) String() string {
	switch p {
	case PressureNone:
		return "None"
	case PressureAdd:
		return "Add"
	case PressureAddPercent:
		return "AddPercent"
	case PressureAddPercentCurrent:
		return "AddPercentCurrent"
	case PressureMatchValue:
		return "MatchValue"
	case PressureMatchPercent:
		return "MatchPercent"
	default:
		return "Unknown"
	}
}

// Resolve computes the effective value of a pressure-sensitive
// parameter from its base slider value, the pressure-linked offset, the
// parameter's full range, and the 0..1 pressure ratio.
//
// Resolve is pure and performs no clamping; callers clamp the result to
// the parameter's valid domain. It is the single building block reused
// for every pressure-sensitive parameter: size, rotation, flow,
// opacity, per-channel jitter bounds, draw distance, and density.
func Resolve(base, offset, maxRange, ratio float64, policy PressurePolicy) float64 {
	switch policy {
	case PressureAdd:
		return base + offset*ratio
	case PressureAddPercent:
		return base + offset/100*maxRange*ratio
	case PressureAddPercentCurrent:
		return base + offset/100*base*ratio
	case PressureMatchValue:
		return base + (offset-base)*ratio
	case PressureMatchPercent:
		return base + (offset/100*maxRange-base)*ratio
	default:
		return base
	}
}

// PressureMap binds a pressure offset and policy to one parameter.
// The zero value is inert: any pressure ratio leaves the base value
// unchanged.
type PressureMap struct {
	Offset float64
	Policy PressurePolicy
}

// Apply resolves the base value through the map at the given pressure
// ratio within the parameter's full range.
func (m PressureMap) Apply(base, maxRange, ratio float64) float64 {
	return Resolve(base, m.Offset, maxRange, ratio, m.Policy)
}
