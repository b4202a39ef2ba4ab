package colorx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var opaqueRed = Color{R: 255, G: 0, B: 0, A: 1}

func TestParse_RGBFunctions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Color
	}{
		{"rgb red", "rgb(255,0,0)", opaqueRed},
		{"rgb with spaces", "rgb( 255 , 0 , 0 )", opaqueRed},
		{"rgba with alpha", "rgba(0,128,255,0.5)", Color{R: 0, G: 128, B: 255, A: 0.5}},
		{"channels clamped high", "rgb(300,0,0)", opaqueRed},
		{"channels clamped low", "rgb(-20,0,0)", Color{R: 0, G: 0, B: 0, A: 1}},
		{"alpha clamped", "rgba(255,0,0,7)", opaqueRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw, DefaultEvent))
		})
	}
}

func TestParse_DecimalPackedARGB(t *testing.T) {
	// 16711680 == 0x00FF0000: no alpha byte set, treated as opaque red.
	assert.Equal(t, opaqueRed, Parse("16711680", DefaultEvent))

	// 0x80FF0000: explicit half alpha.
	got := Parse("2164195328", DefaultEvent)
	assert.Equal(t, uint8(255), got.R)
	assert.InDelta(t, 0.5, got.A, 0.01)
}

func TestParse_HexForms(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Color
	}{
		{"hash 6", "#FF0000", opaqueRed},
		{"0x 6", "0xFF0000", opaqueRed},
		{"bare 6", "FF0000", opaqueRed},
		{"short 3", "#F00", opaqueRed},
		{"short 4 argb", "#8F00", Color{R: 255, G: 0, B: 0, A: float64(0x88) / 255}},
		{"8 digit aarrggbb", "#FFFF0000", opaqueRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw, DefaultEvent))
		})
	}
}

func TestParse_NamedColors(t *testing.T) {
	assert.Equal(t, opaqueRed, Parse("red", DefaultEvent))
	assert.Equal(t, opaqueRed, Parse("RED", DefaultEvent))
}

func TestParse_FallsBackOnGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "chartreuse-ish", "#GGGGGG", "rgb(a,b,c)", "#12345"} {
		assert.Equal(t, DefaultShift, Parse(raw, DefaultShift), "raw=%q", raw)
	}
}

func TestHexRGB_DropsAlpha(t *testing.T) {
	c := Color{R: 0xAB, G: 0x0C, B: 0xD9, A: 0.25}
	assert.Equal(t, "AB0CD9", c.HexRGB())
}

func TestParse_RoundTripThroughHexRGB(t *testing.T) {
	orig := Color{R: 18, G: 52, B: 86, A: 1}
	assert.Equal(t, orig, Parse(orig.HexRGB(), DefaultEvent))
}
