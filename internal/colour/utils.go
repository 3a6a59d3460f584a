package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL is a colour in the HSL space.
// Hue is a fraction of a full turn in [0, 1); saturation and lightness are in [0, 1].
type HSL struct {
	H, S, L float64
}

// Lab is a CIE L*a*b* colour relative to the D50 white point.
// L is in [0, 100].
type Lab struct {
	L, A, B float64
}

// Bradford chromatic adaptation between the sRGB (D65) and D50 white points.
// http://www.brucelindbloom.com/index.html?Eqn_ChromAdapt.html
var (
	bradfordD65ToD50 = [3][3]float64{
		{1.0478112, 0.0228866, -0.0501270},
		{0.0295424, 0.9904844, -0.0170491},
		{-0.0092345, 0.0150436, 0.7521316},
	}
	bradfordD50ToD65 = [3][3]float64{
		{0.9555766, -0.0230393, 0.0631636},
		{-0.0282895, 1.0099416, 0.0210077},
		{0.0122982, -0.0204830, 1.3299098},
	}
)

// ToHSL converts a display colour to HSL.
func ToHSL(c Colour) HSL {
	h, s, l := c.colorful().Hsl()
	return HSL{H: Wrap(h / 360.0), S: s, L: l}
}

// Colour converts HSL back to display space.
// Results are in gamut whenever S and L are within [0, 1].
func (hsl HSL) Colour() Colour {
	return fromColorful(colorful.Hsl(Wrap(hsl.H)*360.0, hsl.S, hsl.L))
}

// ToLabD50 converts a display colour to Lab under the D50 white point.
func ToLabD50(c Colour) Lab {
	x, y, z := c.colorful().Xyz()
	x, y, z = adapt(bradfordD65ToD50, x, y, z)
	l, a, b := colorful.XyzToLabWhiteRef(x, y, z, colorful.D50)
	// go-colorful scales L to [0, 1].
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// Colour converts Lab back to display space. The result is not clamped and
// may lie outside the sRGB gamut; pass it through Normalize before display.
func (lab Lab) Colour() Colour {
	x, y, z := colorful.LabToXyzWhiteRef(lab.L/100, lab.A/100, lab.B/100, colorful.D50)
	x, y, z = adapt(bradfordD50ToD65, x, y, z)
	return fromColorful(colorful.Xyz(x, y, z))
}

func adapt(m [3][3]float64, x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// Normalize brings an out-of-gamut colour back into the displayable range
// by clipping each component to [0, 1].
func Normalize(c Colour) Colour {
	return fromColorful(c.colorful().Clamped())
}

// Wrap maps v onto the cyclic interval [0, 1).
func Wrap(v float64) float64 {
	v -= math.Floor(v)
	if v >= 1 {
		// -tiny wraps to 1 - tiny which can round up to exactly 1.
		return 0
	}
	return v
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual(a, b Colour, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps &&
		math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	rf := gammaCorrect(float64(r>>8) / 255.0)
	gf := gammaCorrect(float64(g>>8) / 255.0)
	bf := gammaCorrect(float64(b>>8) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// TextColour picks black or white, whichever contrasts better against bg.
func TextColour(bg color.Color) Colour {
	black, white := Grey(0), Grey(1)
	if ContrastRatio(bg, black) >= ContrastRatio(bg, white) {
		return black
	}
	return white
}
