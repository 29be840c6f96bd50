package widgets

import (
	"image"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Image draws an image scaled into its box. With no explicit Width/Height
// the box takes the image's natural size.
type Image struct {
	WidgetKey tree.Key
	Source    image.Image
	Width     float64
	Height    float64
	Fit       graphics.ImageFit
}

func (i Image) Key() tree.Key { return i.WidgetKey }

func (i Image) Children() []tree.Widget { return nil }

func (i Image) CreateRenderObject() tree.RenderObject {
	return tree.Init(&renderImage{source: i.Source, width: i.Width, height: i.Height, fit: i.Fit})
}

func (i Image) UpdateRenderObject(ro tree.RenderObject) {
	if img, ok := ro.(*renderImage); ok {
		img.source = i.Source
		img.width = i.Width
		img.height = i.Height
		img.fit = i.Fit
	}
}

func (i Image) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Image)
	return !ok || o.Source != i.Source || o.Width != i.Width ||
		o.Height != i.Height || o.Fit != i.Fit
}

type renderImage struct {
	tree.RenderBase
	source image.Image
	width  float64
	height float64
	fit    graphics.ImageFit
}

// imageSize returns an image's natural size in logical pixels.
func imageSize(img image.Image) geometry.Size {
	if img == nil {
		return geometry.Size{}
	}
	bounds := img.Bounds()
	return geometry.Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
}

func (r *renderImage) PerformLayout(constraints geometry.Constraints, _ graphics.TextMeasurer) geometry.Size {
	size := imageSize(r.source)
	if r.width > 0 {
		size.Width = r.width
	}
	if r.height > 0 {
		size.Height = r.height
	}
	return constraints.Constrain(size)
}

func (r *renderImage) PaintSelf(p graphics.Painter) {
	if r.source == nil {
		return
	}
	dst := r.fit.FitRect(imageSize(r.source), r.Size())
	p.DrawImageRect(r.source, geometry.Rect{}, dst)
}
