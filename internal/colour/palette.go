// Package colour provides the colour types and colour-space conversions used by varia.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a hex colour string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex colour")

// Colour is a display-space (sRGB) colour with components in [0, 1].
// Components may fall outside [0, 1] after a Lab conversion; Normalize
// brings them back into gamut.
type Colour struct {
	R, G, B float64
}

// MidGrey is the default colour for rows and the all-colours swatch.
var MidGrey = Grey(0.5)

// Grey returns the achromatic colour with all components set to v.
func Grey(v float64) Colour {
	return Colour{R: v, G: v, B: v}
}

// FromColor converts an image/color value to a Colour.
func FromColor(c color.Color) Colour {
	cf, _ := colorful.MakeColor(c)
	return fromColorful(cf)
}

// FromRGB converts an 8-bit RGB triple to a Colour.
func FromRGB(rgb RGB) Colour {
	return Colour{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) Colour {
	return Colour{R: c.R, G: c.G, B: c.B}
}

func (c Colour) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// RGB quantises the colour to 8 bits per channel, clipping out-of-gamut components.
func (c Colour) RGB() RGB {
	r, g, b := c.colorful().Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex returns the colour as a lowercase "#rrggbb" string.
func (c Colour) Hex() string {
	return c.RGB().Hex()
}

// String implements fmt.Stringer.
func (c Colour) String() string {
	return c.Hex()
}

// RGBA implements color.Color so a Colour can be handed to image and
// terminal libraries directly.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return c.colorful().Clamped().RGBA()
}

// InGamut reports whether every component lies within [0, 1].
func (c Colour) InGamut() bool {
	return c.colorful().IsValid()
}

// MarshalText encodes the colour as hex so it can be stored in settings files.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex colour.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a hex colour string.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func ParseHex(hex string) (Colour, error) {
	rgb, err := ParseHexRGB(hex)
	if err != nil {
		return Colour{}, err
	}
	return FromRGB(rgb), nil
}

// ParseHexRGB parses a hex colour string into an 8-bit RGB triple.
func ParseHexRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w %q: expected 6 hex digits, got %d", ErrInvalidHex, hex, len(s))
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %w", ErrInvalidHex, hex, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
