// Package graphics holds the paint-side vocabulary of the toolkit: colors,
// paints, text styles, box decorations, and the Painter interface that
// render objects draw through.
package graphics

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Bytes returns the raw color components.
func (c Color) Bytes() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Alpha returns the alpha channel as a 0.0-1.0 fraction.
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// IsTransparent reports whether the color has zero alpha.
func (c Color) IsTransparent() bool {
	return uint8(c>>24) == 0
}

// MarshalYAML encodes the color as "#AARRGGBB".
func (c Color) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%08X", uint32(c)), nil
}

// UnmarshalYAML accepts "#RRGGBB" (opaque), "#AARRGGBB", or a raw integer.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	// An unquoted integer scalar also decodes into a string, so the tag
	// decides which form this is.
	if node.Tag == "!!int" {
		var n uint32
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("color: %w", err)
		}
		*c = Color(n)
		return nil
	}
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("color: expected hex string or integer, got %q", node.Value)
	}
	hex := strings.TrimPrefix(raw, "#")
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fmt.Errorf("color: invalid hex %q: %w", raw, err)
	}
	switch len(hex) {
	case 6:
		*c = Color(0xFF000000 | uint32(value))
	case 8:
		*c = Color(uint32(value))
	default:
		return fmt.Errorf("color: hex %q must have 6 or 8 digits", raw)
	}
	return nil
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
