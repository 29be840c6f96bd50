package widgets

import (
	"image"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Sprite draws a character or prop image at a uniform scale, optionally
// flipped horizontally for characters facing the other way. Sprites size
// themselves to the scaled image; position them with [Positioned] inside a
// [Stack].
type Sprite struct {
	WidgetKey tree.Key
	Source    image.Image
	Scale     float64 // 0 means 1.0
	FlipX     bool
	Opacity   float64 // 0 means fully opaque
}

func (s Sprite) Key() tree.Key { return s.WidgetKey }

func (s Sprite) Children() []tree.Widget { return nil }

func (s Sprite) CreateRenderObject() tree.RenderObject {
	sprite := tree.Init(&renderSprite{})
	s.apply(sprite)
	return sprite
}

func (s Sprite) UpdateRenderObject(ro tree.RenderObject) {
	if sprite, ok := ro.(*renderSprite); ok {
		s.apply(sprite)
	}
}

func (s Sprite) apply(sprite *renderSprite) {
	sprite.source = s.Source
	sprite.scale = s.Scale
	if sprite.scale <= 0 {
		sprite.scale = 1
	}
	sprite.flipX = s.FlipX
	sprite.opacity = s.Opacity
	if sprite.opacity <= 0 {
		sprite.opacity = 1
	}
}

func (s Sprite) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Sprite)
	return !ok || o != s
}

type renderSprite struct {
	tree.RenderBase
	source  image.Image
	scale   float64
	flipX   bool
	opacity float64
}

func (r *renderSprite) PerformLayout(constraints geometry.Constraints, _ graphics.TextMeasurer) geometry.Size {
	natural := imageSize(r.source)
	return constraints.Constrain(geometry.Size{
		Width:  natural.Width * r.scale,
		Height: natural.Height * r.scale,
	})
}

func (r *renderSprite) PaintSelf(p graphics.Painter) {
	if r.source == nil {
		return
	}
	size := r.Size()
	dst := geometry.RectFromOffsetSize(geometry.Offset{}, size)

	translucent := r.opacity < 1
	if translucent {
		p.SaveLayerAlpha(dst, r.opacity)
	}
	if r.flipX {
		p.Save()
		p.Translate(size.Width, 0)
		p.Scale(-1, 1)
	}
	p.DrawImageRect(r.source, geometry.Rect{}, dst)
	if r.flipX {
		p.Restore()
	}
	if translucent {
		p.Restore()
	}
}
