// Package variation derives colour variations by perturbing one component
// of a base colour in HSL or Lab space.
package variation

import (
	"errors"
	"fmt"
)

// ErrUnknownAxis is returned by ParseAxis for identifiers not in the axis table.
var ErrUnknownAxis = errors.New("unknown variation axis")

// Axis selects the colour component a row's variations perturb.
type Axis int

const (
	HSLHue Axis = iota
	HSLSaturation
	HSLLightness
	LabLightness
)

// DefaultAxis is used for rows with no stored or an unrecognised axis.
const DefaultAxis = LabLightness

// AxisInfo is the constant data attached to an axis.
type AxisInfo struct {
	// Name is the human readable name.
	Name string
	// Symbol is the short label drawn on a row's base colour.
	Symbol string
	// ID is the stable identifier written to settings files. It must never
	// change once released.
	ID string
	// Multiplier scales strength for this axis.
	Multiplier float64
}

var axisTable = [...]AxisInfo{
	HSLHue:        {Name: "Hue", Symbol: "H(hsl)", ID: "hsl_hue", Multiplier: 1},
	HSLSaturation: {Name: "Saturation", Symbol: "S(hsl)", ID: "hsl_saturation", Multiplier: 1},
	HSLLightness:  {Name: "Lightness", Symbol: "L(hsl)", ID: "hsl_lightness", Multiplier: 1},
	LabLightness:  {Name: "Lightness (Lab)", Symbol: "L(lab)", ID: "lab_lightness", Multiplier: 1},
}

// Axes returns every axis in display order.
func Axes() []Axis {
	axes := make([]Axis, len(axisTable))
	for i := range axisTable {
		axes[i] = Axis(i)
	}
	return axes
}

// Valid reports whether a is one of the defined axes.
func (a Axis) Valid() bool {
	return a >= 0 && int(a) < len(axisTable)
}

// Info returns the axis' constant data. Invalid axes report the default axis.
func (a Axis) Info() AxisInfo {
	if !a.Valid() {
		return axisTable[DefaultAxis]
	}
	return axisTable[a]
}

// String returns the axis' stable identifier.
func (a Axis) String() string {
	return a.Info().ID
}

// Next returns the following axis, cycling back to the first.
func (a Axis) Next() Axis {
	return Axis((int(a) + 1) % len(axisTable))
}

// ParseAxis looks an axis up by its stable identifier.
func ParseAxis(id string) (Axis, error) {
	for i, info := range axisTable {
		if info.ID == id {
			return Axis(i), nil
		}
	}
	return DefaultAxis, fmt.Errorf("%w: %q", ErrUnknownAxis, id)
}

// AxisOrDefault resolves id, falling back to DefaultAxis when it is unknown.
func AxisOrDefault(id string) Axis {
	a, err := ParseAxis(id)
	if err != nil {
		return DefaultAxis
	}
	return a
}

// MarshalText encodes the axis as its identifier.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an axis identifier.
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
