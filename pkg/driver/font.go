// Package driver renders the UI tree through Ebitengine: a Painter backed
// by the vector and text/v2 packages, an input adapter that feeds the
// gesture queue, and a Game loop that drives the whole pipeline.
package driver

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/novelui/pkg/errors"
	"github.com/go-drift/novelui/pkg/graphics"
)

// FontRegistry maps font family names to loaded TrueType sources. Styles
// naming an unregistered family fall back to a built-in 7x13 bitmap face,
// which ignores the requested size.
type FontRegistry struct {
	sources  map[string]*text.GoTextFaceSource
	fallback text.Face
}

// NewFontRegistry creates a registry with only the built-in fallback face.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		sources:  make(map[string]*text.GoTextFaceSource),
		fallback: text.NewGoXFace(basicfont.Face7x13),
	}
}

// LoadTTF registers a TrueType/OpenType font under a family name.
func (f *FontRegistry) LoadTTF(family string, data []byte) error {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return &errors.UIError{
			Op:   "driver.LoadTTF",
			Kind: errors.KindResource,
			Err:  fmt.Errorf("parse font %s: %w", family, err),
		}
	}
	f.sources[family] = source
	return nil
}

// Face resolves a text style to a concrete face.
func (f *FontRegistry) Face(style graphics.TextStyle) text.Face {
	source, ok := f.sources[style.FontFamily]
	if !ok {
		return f.fallback
	}
	return &text.GoTextFace{
		Source: source,
		Size:   style.EffectiveFontSize(),
	}
}

// lineHeight returns the face's natural line advance.
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
