package gfx

import (
	"fmt"
	"strconv"
	"strings"
)

// PackedCol is an 8-bit RGBA colour, laid out as the GPU reads it.
type PackedCol struct {
	R, G, B, A uint8
}

// Common colours.
var (
	White = PackedCol{255, 255, 255, 255}
	Black = PackedCol{0, 0, 0, 255}
)

// RGB creates an opaque colour.
func RGB(r, g, b uint8) PackedCol {
	return PackedCol{R: r, G: g, B: b, A: 255}
}

// ParseHex parses "#RRGGBB", "RRGGBB" or the same with a trailing AA.
func ParseHex(s string) (PackedCol, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return PackedCol{}, fmt.Errorf("invalid colour %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return PackedCol{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return PackedCol{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// Hex formats the colour as "#RRGGBB", adding AA when not opaque.
func (c PackedCol) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// Floats returns the colour as normalized components.
func (c PackedCol) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

// FromFloats packs normalized components, clamping them to [0, 1].
func FromFloats(r, g, b, a float32) PackedCol {
	return PackedCol{R: unorm(r), G: unorm(g), B: unorm(b), A: unorm(a)}
}

func unorm(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
