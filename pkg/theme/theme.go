// Package theme defines the visual styling shared by the built-in widgets.
// A Theme bundles per-component styles that widgets fall back to when no
// explicit style is set, and can be loaded from a YAML file so games can
// reskin the UI without recompiling.
package theme

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
)

// Theme contains the styling for all built-in widgets.
type Theme struct {
	// Background is the scene clear color.
	Background graphics.Color `yaml:"background"`

	// TextStyle is the base text style components derive from.
	TextStyle graphics.TextStyle `yaml:"text_style"`

	// Component themes. Nil fields derive from the base styles.
	DialogBox  *DialogBoxTheme  `yaml:"dialog_box"`
	ChoiceMenu *ChoiceMenuTheme `yaml:"choice_menu"`
	Button     *ButtonTheme     `yaml:"button"`
}

// DialogBoxTheme styles the dialog box and its typewriter text.
type DialogBoxTheme struct {
	// Background fills the box.
	Background graphics.Color `yaml:"background"`
	// BorderColor outlines the box; zero alpha draws no border.
	BorderColor graphics.Color `yaml:"border_color"`
	// BorderWidth is the outline stroke width.
	BorderWidth float64 `yaml:"border_width"`
	// CornerRadius rounds the box corners.
	CornerRadius float64 `yaml:"corner_radius"`
	// Padding insets the text from the box edges.
	Padding geometry.EdgeInsets `yaml:"padding"`
	// TextStyle styles the dialog text.
	TextStyle graphics.TextStyle `yaml:"text_style"`
	// NameStyle styles the speaker name line.
	NameStyle graphics.TextStyle `yaml:"name_style"`
	// RevealSpeed is how many characters appear per second. Zero or
	// negative shows the full text immediately.
	RevealSpeed float64 `yaml:"reveal_speed"`
}

// ChoiceMenuTheme styles the choice menu options.
type ChoiceMenuTheme struct {
	// ItemBackground fills each option.
	ItemBackground graphics.Color `yaml:"item_background"`
	// ItemHoverBackground fills the option under the pointer.
	ItemHoverBackground graphics.Color `yaml:"item_hover_background"`
	// CornerRadius rounds the option corners.
	CornerRadius float64 `yaml:"corner_radius"`
	// Padding insets the option label.
	Padding geometry.EdgeInsets `yaml:"padding"`
	// Spacing is the vertical gap between options.
	Spacing float64 `yaml:"spacing"`
	// TextStyle styles the option labels.
	TextStyle graphics.TextStyle `yaml:"text_style"`
}

// ButtonTheme styles plain buttons.
type ButtonTheme struct {
	// Background fills the button.
	Background graphics.Color `yaml:"background"`
	// HoverBackground fills the button under the pointer.
	HoverBackground graphics.Color `yaml:"hover_background"`
	// CornerRadius rounds the button corners.
	CornerRadius float64 `yaml:"corner_radius"`
	// Padding insets the label.
	Padding geometry.EdgeInsets `yaml:"padding"`
	// TextStyle styles the label.
	TextStyle graphics.TextStyle `yaml:"text_style"`
}

// Default returns the standard dark visual-novel theme.
func Default() *Theme {
	base := graphics.TextStyle{
		FontSize: 16,
		Color:    graphics.ColorWhite,
	}
	return &Theme{
		Background: graphics.RGB(0x10, 0x10, 0x18),
		TextStyle:  base,
	}
}

// DialogBoxOf returns the dialog box theme, derived from the base styles
// when not set.
func (t *Theme) DialogBoxOf() DialogBoxTheme {
	if t.DialogBox != nil {
		return *t.DialogBox
	}
	name := t.TextStyle
	name.Bold = true
	return DialogBoxTheme{
		Background:   graphics.RGBA(0x00, 0x00, 0x00, 0xC0),
		BorderColor:  graphics.RGBA(0xFF, 0xFF, 0xFF, 0x60),
		BorderWidth:  1,
		CornerRadius: 8,
		Padding:      geometry.InsetsAll(16),
		TextStyle:    t.TextStyle,
		NameStyle:    name,
		RevealSpeed:  40,
	}
}

// ChoiceMenuOf returns the choice menu theme, derived from the base styles
// when not set.
func (t *Theme) ChoiceMenuOf() ChoiceMenuTheme {
	if t.ChoiceMenu != nil {
		return *t.ChoiceMenu
	}
	return ChoiceMenuTheme{
		ItemBackground:      graphics.RGBA(0x00, 0x00, 0x00, 0xA0),
		ItemHoverBackground: graphics.RGBA(0x40, 0x40, 0x60, 0xD0),
		CornerRadius:        6,
		Padding:             geometry.InsetsSymmetric(24, 10),
		Spacing:             8,
		TextStyle:           t.TextStyle,
	}
}

// ButtonOf returns the button theme, derived from the base styles when not
// set.
func (t *Theme) ButtonOf() ButtonTheme {
	if t.Button != nil {
		return *t.Button
	}
	return ButtonTheme{
		Background:      graphics.RGBA(0x30, 0x30, 0x48, 0xFF),
		HoverBackground: graphics.RGBA(0x48, 0x48, 0x68, 0xFF),
		CornerRadius:    6,
		Padding:         geometry.InsetsSymmetric(16, 8),
		TextStyle:       t.TextStyle,
	}
}
