// Package settings persists the variations panel between sessions.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmylchreest/varia/internal/colour"
	"github.com/jmylchreest/varia/internal/variation"
)

// Rows is the number of rows stored in a settings document.
const Rows = 3

// ErrUnknownKey is returned by Get and Set for keys that are not part of
// the settings document.
var ErrUnknownKey = errors.New("unknown settings key")

// Settings is the persisted snapshot of the panel.
// Axis and colour values are stored as strings so that documents written by
// newer versions survive a round trip through older ones.
type Settings struct {
	Strength  float64 `toml:"strength"`
	Type0     string  `toml:"type0"`
	Type1     string  `toml:"type1"`
	Type2     string  `toml:"type2"`
	Color0    string  `toml:"color0"`
	Color1    string  `toml:"color1"`
	Color2    string  `toml:"color2"`
	AllColors string  `toml:"all_colors"`
}

// Default returns the settings used when nothing has been persisted.
func Default() Settings {
	axis := variation.DefaultAxis.String()
	grey := colour.MidGrey.Hex()
	return Settings{
		Strength:  variation.DefaultStrength,
		Type0:     axis,
		Type1:     axis,
		Type2:     axis,
		Color0:    grey,
		Color1:    grey,
		Color2:    grey,
		AllColors: grey,
	}
}

// Keys lists every settings key in document order.
func Keys() []string {
	return []string{"strength", "type0", "type1", "type2", "color0", "color1", "color2", "all_colors"}
}

func (s *Settings) typeField(i int) *string {
	switch i {
	case 0:
		return &s.Type0
	case 1:
		return &s.Type1
	case 2:
		return &s.Type2
	}
	return nil
}

func (s *Settings) colorField(i int) *string {
	switch i {
	case 0:
		return &s.Color0
	case 1:
		return &s.Color1
	case 2:
		return &s.Color2
	}
	return nil
}

// Axis resolves the axis of row i by identifier. Unknown identifiers and
// out-of-range rows resolve to the default axis.
func (s Settings) Axis(i int) variation.Axis {
	f := s.typeField(i)
	if f == nil {
		return variation.DefaultAxis
	}
	return variation.AxisOrDefault(*f)
}

// SetAxis stores the axis of row i.
func (s *Settings) SetAxis(i int, a variation.Axis) {
	if f := s.typeField(i); f != nil {
		*f = a.String()
	}
}

// Colour resolves the base colour of row i, falling back to mid-grey.
func (s Settings) Colour(i int) colour.Colour {
	f := s.colorField(i)
	if f == nil {
		return colour.MidGrey
	}
	return colourOrDefault(*f)
}

// SetColour stores the base colour of row i.
func (s *Settings) SetColour(i int, c colour.Colour) {
	if f := s.colorField(i); f != nil {
		*f = c.Hex()
	}
}

// AllColours resolves the all-colours swatch.
func (s Settings) AllColours() colour.Colour {
	return colourOrDefault(s.AllColors)
}

// ClampedStrength returns the stored strength limited to the slider range.
func (s Settings) ClampedStrength() float64 {
	return variation.ClampStrength(s.Strength)
}

func colourOrDefault(hex string) colour.Colour {
	c, err := colour.ParseHex(hex)
	if err != nil {
		return colour.MidGrey
	}
	return c
}

// Get returns the raw stored value for key.
func (s Settings) Get(key string) (string, error) {
	switch {
	case key == "strength":
		return strconv.FormatFloat(s.Strength, 'g', -1, 64), nil
	case key == "all_colors":
		return s.AllColors, nil
	}
	if kind, i, ok := rowKey(key); ok {
		if kind == "type" {
			return *s.typeField(i), nil
		}
		return *s.colorField(i), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set validates and stores value under key.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch {
	case key == "strength":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid strength %q: %w", value, err)
		}
		if !variation.ValidStrength(v) {
			return fmt.Errorf("strength %g out of range [%g, %g]", v, variation.MinStrength, variation.MaxStrength)
		}
		s.Strength = v
		return nil
	case key == "all_colors":
		c, err := colour.ParseHex(value)
		if err != nil {
			return err
		}
		s.AllColors = c.Hex()
		return nil
	}

	kind, i, ok := rowKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if kind == "type" {
		a, err := variation.ParseAxis(value)
		if err != nil {
			return err
		}
		s.SetAxis(i, a)
		return nil
	}
	c, err := colour.ParseHex(value)
	if err != nil {
		return err
	}
	s.SetColour(i, c)
	return nil
}

// rowKey splits "type1" or "color2" into its kind and row index.
func rowKey(key string) (kind string, row int, ok bool) {
	for _, prefix := range []string{"type", "color"} {
		rest, found := strings.CutPrefix(key, prefix)
		if !found || len(rest) != 1 {
			continue
		}
		i := int(rest[0] - '0')
		if i < 0 || i >= Rows {
			return "", 0, false
		}
		return prefix, i, true
	}
	return "", 0, false
}
