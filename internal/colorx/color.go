// Package colorx parses the color strings the backend emits for calendar
// entries. The wire format is not pinned down server-side, so several
// representations are accepted; anything unparsable falls back to a
// caller-supplied default instead of failing.
package colorx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Color is an RGB value with a [0,1] alpha channel.
type Color struct {
	R, G, B uint8
	A       float64
}

// Package defaults, distinct so events and shifts stay visually apart
// when the backend sends no usable color.
var (
	DefaultEvent = Color{R: 0x21, G: 0x96, B: 0xF3, A: 1} // blue 500
	DefaultShift = Color{R: 0x4C, G: 0xAF, B: 0x50, A: 1} // green 500
)

var rgbPattern = regexp.MustCompile(`^rgba?\(\s*(-?\d+)\s*,\s*(-?\d+)\s*,\s*(-?\d+)\s*(?:,\s*(-?\d*\.?\d+)\s*)?\)$`)

// named covers the color keywords the backend has been seen sending.
var named = map[string]Color{
	"black":   {0x00, 0x00, 0x00, 1},
	"white":   {0xFF, 0xFF, 0xFF, 1},
	"red":     {0xFF, 0x00, 0x00, 1},
	"green":   {0x00, 0xFF, 0x00, 1},
	"blue":    {0x00, 0x00, 0xFF, 1},
	"yellow":  {0xFF, 0xFF, 0x00, 1},
	"cyan":    {0x00, 0xFF, 0xFF, 1},
	"magenta": {0xFF, 0x00, 0xFF, 1},
	"gray":    {0x88, 0x88, 0x88, 1},
	"grey":    {0x88, 0x88, 0x88, 1},
	"orange":  {0xFF, 0xA5, 0x00, 1},
	"purple":  {0x80, 0x00, 0x80, 1},
}

// Parse resolves a raw color string, trying in order:
//
//  1. rgb(r,g,b) / rgba(r,g,b,a) - channels clamped to [0,255], alpha
//     defaults to 1 and is clamped to [0,1];
//  2. a bare decimal integer, read as a packed ARGB value;
//  3. hex with an optional "0x" or "#" prefix, 3/4/6/8 digits. An 8-digit
//     value is tried as AARRGGBB first and reinterpreted as RRGGBBAA
//     (trailing alpha moved to the front) if that fails;
//  4. a color keyword.
//
// Every failure falls through to the supplied fallback.
func Parse(raw string, fallback Color) Color {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	if m := rgbPattern.FindStringSubmatch(raw); m != nil {
		return fromRGBMatch(m)
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return fromPackedARGB(uint32(v))
	}

	hex := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "#")
	if c, ok := parseHex(hex); ok {
		return c
	}

	if c, ok := named[strings.ToLower(raw)]; ok {
		return c
	}
	return fallback
}

func fromRGBMatch(m []string) Color {
	r, _ := strconv.Atoi(m[1])
	g, _ := strconv.Atoi(m[2])
	b, _ := strconv.Atoi(m[3])
	a := 1.0
	if m[4] != "" {
		a, _ = strconv.ParseFloat(m[4], 64)
	}
	return Color{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
		A: clampAlpha(a),
	}
}

// fromPackedARGB unpacks an Android-style color int. Values that fit in
// 24 bits carry no alpha byte and are treated as fully opaque.
func fromPackedARGB(v uint32) Color {
	a := float64(v>>24&0xFF) / 255
	if v <= 0xFFFFFF {
		a = 1
	}
	return Color{
		R: uint8(v >> 16 & 0xFF),
		G: uint8(v >> 8 & 0xFF),
		B: uint8(v & 0xFF),
		A: a,
	}
}

func parseHex(hex string) (Color, bool) {
	switch len(hex) {
	case 3: // RGB
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{
			R: expandNibble(uint8(v >> 8 & 0xF)),
			G: expandNibble(uint8(v >> 4 & 0xF)),
			B: expandNibble(uint8(v & 0xF)),
			A: 1,
		}, true
	case 4: // ARGB
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return Color{
			R: expandNibble(uint8(v >> 8 & 0xF)),
			G: expandNibble(uint8(v >> 4 & 0xF)),
			B: expandNibble(uint8(v & 0xF)),
			A: float64(expandNibble(uint8(v>>12&0xF))) / 255,
		}, true
	case 6: // RRGGBB
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, false
		}
		return fromPackedARGB(uint32(v)), true
	case 8:
		// Ambiguous between AARRGGBB and RRGGBBAA; try as-is first,
		// then move the trailing alpha pair to the front and retry.
		if v, err := strconv.ParseUint(hex, 16, 64); err == nil {
			return fromPackedARGB(uint32(v)), true
		}
		rotated := hex[6:] + hex[:6]
		if v, err := strconv.ParseUint(rotated, 16, 64); err == nil {
			return fromPackedARGB(uint32(v)), true
		}
		return Color{}, false
	default:
		return Color{}, false
	}
}

func expandNibble(n uint8) uint8 { return n<<4 | n }

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clampAlpha(a float64) float64 {
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// HexRGB renders the color as a 6-hex-digit RGB string for create/patch
// payloads. Alpha is intentionally dropped; the backend does not store it.
func (c Color) HexRGB() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
