package widgets

import (
	"image"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Background fills all available space with a color and an optional image.
// The image is scaled by Fit and clipped to the bounds, so ImageFitCover
// crops instead of overflowing onto neighbors.
type Background struct {
	WidgetKey tree.Key
	Color     graphics.Color
	Source    image.Image
	Fit       graphics.ImageFit
}

func (b Background) Key() tree.Key { return b.WidgetKey }

func (b Background) Children() []tree.Widget { return nil }

func (b Background) CreateRenderObject() tree.RenderObject {
	return tree.Init(&renderBackground{color: b.Color, source: b.Source, fit: b.Fit})
}

func (b Background) UpdateRenderObject(ro tree.RenderObject) {
	if bg, ok := ro.(*renderBackground); ok {
		bg.color = b.Color
		bg.source = b.Source
		bg.fit = b.Fit
	}
}

func (b Background) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Background)
	return !ok || o != b
}

type renderBackground struct {
	tree.RenderBase
	color  graphics.Color
	source image.Image
	fit    graphics.ImageFit
}

func (r *renderBackground) PerformLayout(constraints geometry.Constraints, _ graphics.TextMeasurer) geometry.Size {
	return constraints.Biggest()
}

func (r *renderBackground) PaintSelf(p graphics.Painter) {
	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, r.Size())
	if !r.color.IsTransparent() {
		p.DrawRect(bounds, graphics.Paint{Color: r.color, Style: graphics.PaintStyleFill, Alpha: 1})
	}
	if r.source == nil {
		return
	}
	p.Save()
	p.ClipRect(bounds)
	dst := r.fit.FitRect(imageSize(r.source), r.Size())
	p.DrawImageRect(r.source, geometry.Rect{}, dst)
	p.Restore()
}
