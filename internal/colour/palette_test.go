package colour

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "long with hash", input: "#1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "long without hash", input: "ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "shorthand", input: "#fa0", want: RGB{R: 255, G: 170, B: 0}},
		{name: "uppercase", input: "#ABCDEF", want: RGB{R: 0xab, G: 0xcd, B: 0xef}},
		{name: "surrounding space", input: "  #000000 ", want: RGB{}},
		{name: "too short", input: "#12", wantErr: true},
		{name: "too long", input: "#1234567", wantErr: true},
		{name: "not hex", input: "#zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexRGB(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Fatalf("ParseHexRGB(%q) error = %v, want ErrInvalidHex", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexRGB(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexRGB(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColourHex(t *testing.T) {
	tests := []struct {
		name   string
		colour Colour
		want   string
	}{
		{name: "black", colour: Grey(0), want: "#000000"},
		{name: "white", colour: Grey(1), want: "#ffffff"},
		{name: "mid grey", colour: MidGrey, want: "#808080"},
		{name: "out of gamut clips", colour: Colour{R: 1.4, G: -0.2, B: 0.5}, want: "#ff0080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#1a2b3c", "#c0ffee", "#808080"} {
		c, err := ParseHex(hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) unexpected error: %v", hex, err)
		}
		if got := c.Hex(); got != hex {
			t.Errorf("ParseHex(%q).Hex() = %s", hex, got)
		}
	}
}

func TestColourTextMarshalling(t *testing.T) {
	var c Colour
	if err := c.UnmarshalText([]byte("#336699")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	text, err := c.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "#336699" {
		t.Errorf("MarshalText() = %s, want #336699", text)
	}

	if err := c.UnmarshalText([]byte("nope")); !errors.Is(err, ErrInvalidHex) {
		t.Errorf("UnmarshalText(nope) error = %v, want ErrInvalidHex", err)
	}
}

func TestFromColor(t *testing.T) {
	c := FromColor(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	if math.Abs(c.R-1) > 1e-9 || c.G != 0 || math.Abs(c.B-0.2) > 1e-9 {
		t.Errorf("FromColor() = %+v, want {1 0 0.2}", c)
	}
}

func TestInGamut(t *testing.T) {
	if !MidGrey.InGamut() {
		t.Error("mid grey should be in gamut")
	}
	if (Colour{R: 1.01, G: 0.5, B: 0.5}).InGamut() {
		t.Error("R > 1 should be out of gamut")
	}
	if (Colour{R: 0.5, G: -0.01, B: 0.5}).InGamut() {
		t.Error("G < 0 should be out of gamut")
	}
}
