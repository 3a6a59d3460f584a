package variation

import (
	"errors"
	"math"
	"testing"

	"github.com/jmylchreest/varia/internal/colour"
)

const eps = 1e-6

// hueDelta returns b-a on the unit circle, in (-0.5, 0.5].
func hueDelta(a, b float64) float64 {
	d := colour.Wrap(b - a)
	if d > 0.5 {
		d -= 1
	}
	return d
}

func TestHueWraps(t *testing.T) {
	base := colour.HSL{H: 0.95, S: 1, L: 0.5}.Colour()

	tests := []struct {
		name     string
		strength float64
		offset   int
		wantHue  float64
	}{
		{name: "full turn", strength: 100, offset: 4, wantHue: 0.95},
		{name: "past the top", strength: 100, offset: 1, wantHue: 0.2},
		{name: "small step past the top", strength: 40, offset: 1, wantHue: 0.05},
		{name: "below zero", strength: 100, offset: -4, wantHue: 0.95},
		{name: "downwards", strength: 20, offset: -2, wantHue: 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colour.ToHSL(Compute(base, HSLHue, tt.strength, tt.offset))
			if got.H < 0 || got.H >= 1 {
				t.Fatalf("hue %v outside [0, 1)", got.H)
			}
			if math.Abs(hueDelta(tt.wantHue, got.H)) > eps {
				t.Errorf("hue = %v, want %v", got.H, tt.wantHue)
			}
			if math.Abs(got.S-1) > eps || math.Abs(got.L-0.5) > eps {
				t.Errorf("hue variation changed S/L: %+v", got)
			}
		})
	}
}

func TestHSLComponentsClamp(t *testing.T) {
	tests := []struct {
		name   string
		base   colour.HSL
		axis   Axis
		offset int
		check  func(colour.HSL) bool
	}{
		{
			name:   "lightness clamps to 1",
			base:   colour.HSL{H: 0.3, S: 0.5, L: 0.95},
			axis:   HSLLightness,
			offset: 4,
			check:  func(h colour.HSL) bool { return h.L == 1.0 },
		},
		{
			name:   "lightness clamps to 0",
			base:   colour.HSL{H: 0.3, S: 0.5, L: 0.05},
			axis:   HSLLightness,
			offset: -4,
			check:  func(h colour.HSL) bool { return h.L == 0.0 },
		},
		{
			name:   "saturation clamps to 1",
			base:   colour.HSL{H: 0.6, S: 0.9, L: 0.5},
			axis:   HSLSaturation,
			offset: 3,
			check:  func(h colour.HSL) bool { return math.Abs(h.S-1) < eps },
		},
		{
			name:   "saturation clamps to 0",
			base:   colour.HSL{H: 0.6, S: 0.1, L: 0.5},
			axis:   HSLSaturation,
			offset: -2,
			check:  func(h colour.HSL) bool { return h.S == 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.base.Colour(), tt.axis, 100, tt.offset)
			if !got.InGamut() {
				t.Fatalf("result %+v out of gamut", got)
			}
			if hsl := colour.ToHSL(got); !tt.check(hsl) {
				t.Errorf("result HSL = %+v", hsl)
			}
		})
	}
}

func TestLabLightnessClampsAndNormalizes(t *testing.T) {
	t.Run("near white", func(t *testing.T) {
		base := colour.Normalize(colour.Lab{L: 98}.Colour())
		got := Compute(base, LabLightness, 100, 4)
		if !got.InGamut() {
			t.Fatalf("result %+v out of gamut", got)
		}
		if l := colour.ToLabD50(got).L; math.Abs(l-100) > 0.1 {
			t.Errorf("L = %v, want 100", l)
		}
	})

	t.Run("saturated blue pushed out of gamut", func(t *testing.T) {
		base := colour.Colour{B: 1}
		lab := colour.ToLabD50(base)
		lab.L = 100
		if lab.Colour().InGamut() {
			t.Fatal("expected the unnormalized result to be out of gamut")
		}

		got := Compute(base, LabLightness, 100, 4)
		if !got.InGamut() {
			t.Errorf("result %+v out of gamut", got)
		}
	})

	t.Run("near black", func(t *testing.T) {
		got := Compute(colour.Grey(0.02), LabLightness, 100, -4)
		if !colour.ApproxEqual(got, colour.Grey(0), 1e-4) {
			t.Errorf("result = %+v, want black", got)
		}
	})
}

func TestSymmetricOffsets(t *testing.T) {
	// Low chroma and mid lightness keep every offset clear of clamping and
	// of the sRGB gamut boundary.
	base := colour.HSL{H: 0.5, S: 0.2, L: 0.5}.Colour()
	const strength = 10

	component := map[Axis]func(colour.Colour) float64{
		HSLSaturation: func(c colour.Colour) float64 { return colour.ToHSL(c).S },
		HSLLightness:  func(c colour.Colour) float64 { return colour.ToHSL(c).L },
		LabLightness:  func(c colour.Colour) float64 { return colour.ToLabD50(c).L },
	}

	for axis, get := range component {
		t.Run(axis.String(), func(t *testing.T) {
			centre := get(base)
			for k := 1; k <= HalfWidth; k++ {
				up := get(Compute(base, axis, strength, k)) - centre
				down := get(Compute(base, axis, strength, -k)) - centre
				if up <= 0 || down >= 0 {
					t.Errorf("offset ±%d: deltas %v, %v have the wrong sign", k, up, down)
				}
				if math.Abs(up+down) > 1e-3 {
					t.Errorf("offset ±%d: deltas %v, %v are not symmetric", k, up, down)
				}
			}
		})
	}

	t.Run(HSLHue.String(), func(t *testing.T) {
		h := colour.ToHSL(base).H
		for k := 1; k <= HalfWidth; k++ {
			up := hueDelta(h, colour.ToHSL(Compute(base, HSLHue, strength, k)).H)
			down := hueDelta(h, colour.ToHSL(Compute(base, HSLHue, strength, -k)).H)
			want := strength * float64(k) / hslDivisor
			if math.Abs(up-want) > eps || math.Abs(down+want) > eps {
				t.Errorf("offset ±%d: hue deltas %v, %v, want ±%v", k, up, down, want)
			}
		}
	})
}

func TestVanishingStrengthConvergesToBase(t *testing.T) {
	bases := []colour.Colour{
		colour.MidGrey,
		{R: 0.8, G: 0.3, B: 0.1},
		{R: 0.1, G: 0.6, B: 0.9},
	}

	for _, axis := range Axes() {
		for _, base := range bases {
			for _, offset := range []int{-4, -1, 1, 4} {
				got := Compute(base, axis, 1e-9, offset)
				if !colour.ApproxEqual(got, base, 1e-4) {
					t.Errorf("%s offset %d: %+v, want ~%+v", axis, offset, got, base)
				}
			}
		}
	}
}

func TestRow(t *testing.T) {
	base := colour.Colour{R: 0.7, G: 0.2, B: 0.4}

	for _, axis := range Axes() {
		t.Run(axis.String(), func(t *testing.T) {
			row := Row(base, axis, 50)
			if row.Base() != base {
				t.Errorf("centre slot = %+v, want the unmodified base", row.Base())
			}
			if got := len(row.Variations()); got != Slots-1 {
				t.Fatalf("len(Variations()) = %d, want %d", got, Slots-1)
			}
			for slot, c := range row {
				if slot == CenterSlot {
					continue
				}
				if want := Compute(base, axis, 50, OffsetForSlot(slot)); c != want {
					t.Errorf("slot %d = %+v, want %+v", slot, c, want)
				}
				if !c.InGamut() {
					t.Errorf("slot %d = %+v out of gamut", slot, c)
				}
			}
			vars := row.Variations()
			if vars[0] != row[0] || vars[len(vars)-1] != row[Slots-1] {
				t.Error("Variations() should keep offset order")
			}
		})
	}
}

func TestSlotOffsetMapping(t *testing.T) {
	if OffsetForSlot(0) != -HalfWidth || OffsetForSlot(Slots-1) != HalfWidth || OffsetForSlot(CenterSlot) != 0 {
		t.Error("OffsetForSlot() does not span [-HalfWidth, HalfWidth]")
	}
	for slot := range Slots {
		if got := SlotForOffset(OffsetForSlot(slot)); got != slot {
			t.Errorf("SlotForOffset(OffsetForSlot(%d)) = %d", slot, got)
		}
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		id   string
		want Axis
	}{
		{"hsl_hue", HSLHue},
		{"hsl_saturation", HSLSaturation},
		{"hsl_lightness", HSLLightness},
		{"lab_lightness", LabLightness},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := ParseAxis(tt.id)
			if err != nil {
				t.Fatalf("ParseAxis(%q) unexpected error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.id, got, tt.want)
			}
			if got.String() != tt.id {
				t.Errorf("String() = %q, want %q", got.String(), tt.id)
			}
		})
	}

	if _, err := ParseAxis("lab_hue"); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("ParseAxis(lab_hue) error = %v, want ErrUnknownAxis", err)
	}
	if got := AxisOrDefault("bogus"); got != LabLightness {
		t.Errorf("AxisOrDefault(bogus) = %v, want lab_lightness", got)
	}
}

func TestAxisTable(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Axes() {
		info := a.Info()
		if info.Multiplier != 1 {
			t.Errorf("%s multiplier = %v, want 1", info.ID, info.Multiplier)
		}
		if info.Name == "" || info.Symbol == "" {
			t.Errorf("%s has an empty name or symbol", info.ID)
		}
		if seen[info.ID] {
			t.Errorf("duplicate axis id %s", info.ID)
		}
		seen[info.ID] = true
	}

	if got := LabLightness.Next(); got != HSLHue {
		t.Errorf("LabLightness.Next() = %v, want hsl_hue", got)
	}
	if Axis(42).Valid() {
		t.Error("Axis(42) should be invalid")
	}
}

func TestAxisTextMarshalling(t *testing.T) {
	var a Axis
	if err := a.UnmarshalText([]byte("hsl_saturation")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if a != HSLSaturation {
		t.Errorf("UnmarshalText() = %v, want hsl_saturation", a)
	}
	if err := a.UnmarshalText([]byte("nope")); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("UnmarshalText(nope) error = %v, want ErrUnknownAxis", err)
	}
}

func TestClampStrength(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0, MinStrength},
		{250, MaxStrength},
		{42, 42},
		{math.NaN(), DefaultStrength},
		{math.Inf(1), MaxStrength},
		{math.Inf(-1), MinStrength},
	}

	for _, tt := range tests {
		if got := ClampStrength(tt.input); got != tt.want {
			t.Errorf("ClampStrength(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidStrength(t *testing.T) {
	tests := []struct {
		input float64
		want  bool
	}{
		{MinStrength, true},
		{MaxStrength, true},
		{55.5, true},
		{0.5, false},
		{100.1, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}

	for _, tt := range tests {
		if got := ValidStrength(tt.input); got != tt.want {
			t.Errorf("ValidStrength(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
