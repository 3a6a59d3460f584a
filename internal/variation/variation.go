package variation

import (
	"math"

	"github.com/jmylchreest/varia/internal/colour"
)

const (
	// HalfWidth is the number of variations on each side of the base colour.
	HalfWidth = 4
	// Slots is the number of colours in a row, including the base.
	Slots = 2*HalfWidth + 1
	// CenterSlot holds the unmodified base colour.
	CenterSlot = HalfWidth

	MinStrength     = 1.0
	MaxStrength     = 100.0
	DefaultStrength = 30.0

	// hslDivisor maps strength*offset onto HSL components in [0, 1].
	hslDivisor = 400.0
	// labDivisor maps strength*offset onto Lab L in [0, 100].
	labDivisor = 4.0
)

// Compute returns base with axis perturbed by strength*offset.
// Hue wraps around the colour wheel; every other component is clamped.
// Callers never pass offset 0; it yields the base after a round trip
// through the axis' colour space.
func Compute(base colour.Colour, axis Axis, strength float64, offset int) colour.Colour {
	info := axis.Info()
	amount := info.Multiplier * strength * float64(offset)

	switch axis {
	case HSLHue:
		hsl := colour.ToHSL(base)
		hsl.H = colour.Wrap(hsl.H + amount/hslDivisor)
		return hsl.Colour()
	case HSLSaturation:
		hsl := colour.ToHSL(base)
		hsl.S = colour.Clamp(hsl.S+amount/hslDivisor, 0, 1)
		return hsl.Colour()
	case HSLLightness:
		hsl := colour.ToHSL(base)
		hsl.L = colour.Clamp(hsl.L+amount/hslDivisor, 0, 1)
		return hsl.Colour()
	default:
		lab := colour.ToLabD50(base)
		lab.L = colour.Clamp(lab.L+amount/labDivisor, 0, 100)
		return colour.Normalize(lab.Colour())
	}
}

// Set is one row of variations. Slot CenterSlot holds the base colour.
type Set [Slots]colour.Colour

// Row computes every slot of a row. The centre slot is base, untouched.
func Row(base colour.Colour, axis Axis, strength float64) Set {
	var s Set
	for slot := range s {
		if slot == CenterSlot {
			s[slot] = base
			continue
		}
		s[slot] = Compute(base, axis, strength, OffsetForSlot(slot))
	}
	return s
}

// Base returns the unmodified base colour of the row.
func (s Set) Base() colour.Colour {
	return s[CenterSlot]
}

// Variations returns the derived colours in offset order, skipping the base.
func (s Set) Variations() []colour.Colour {
	out := make([]colour.Colour, 0, Slots-1)
	out = append(out, s[:CenterSlot]...)
	return append(out, s[CenterSlot+1:]...)
}

// OffsetForSlot converts a slot index in [0, Slots) to its offset in [-HalfWidth, HalfWidth].
func OffsetForSlot(slot int) int {
	return slot - HalfWidth
}

// SlotForOffset converts an offset to its slot index.
func SlotForOffset(offset int) int {
	return offset + HalfWidth
}

// ValidStrength reports whether v is a number within [MinStrength, MaxStrength].
func ValidStrength(v float64) bool {
	return !math.IsNaN(v) && v >= MinStrength && v <= MaxStrength
}

// ClampStrength restricts v to the strength range. NaN yields DefaultStrength.
func ClampStrength(v float64) float64 {
	if math.IsNaN(v) {
		return DefaultStrength
	}
	return colour.Clamp(v, MinStrength, MaxStrength)
}
