package graphics

import "fmt"

// TextAlign controls horizontal text alignment within the layout width.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// String returns a human-readable representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// TextStyle controls the font, size, and color of drawn text.
type TextStyle struct {
	// FontFamily names the font; empty selects the backend default.
	FontFamily string `yaml:"font_family"`
	// FontSize is the size in logical pixels. Zero selects the default (16).
	FontSize float64 `yaml:"font_size"`
	// Color is the fill color. Zero value draws opaque black.
	Color Color `yaml:"color"`
	// Bold requests a heavier weight where the backend supports it.
	Bold bool `yaml:"bold"`
	// LineSpacing is an extra multiplier on line height; 0 means 1.0.
	LineSpacing float64 `yaml:"line_spacing"`
}

// EffectiveFontSize returns the font size, defaulting zero to 16.
func (s TextStyle) EffectiveFontSize() float64 {
	if s.FontSize <= 0 {
		return 16
	}
	return s.FontSize
}

// EffectiveColor returns the color, defaulting the zero value to opaque black.
func (s TextStyle) EffectiveColor() Color {
	if s.Color == 0 {
		return ColorBlack
	}
	return s.Color
}
