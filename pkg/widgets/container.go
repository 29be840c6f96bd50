package widgets

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Container combines sizing, padding, alignment, and box decoration in one
// widget.
//
//	Container{
//		Width:      300,
//		Padding:    geometry.InsetsAll(12),
//		Decoration: &graphics.BoxDecoration{Color: graphics.ColorWhite, CornerRadius: 8},
//		Child:      Text{Content: "hello"},
//	}
type Container struct {
	WidgetKey  tree.Key
	Width      float64
	Height     float64
	Padding    geometry.EdgeInsets
	Alignment  *geometry.Alignment
	Decoration *graphics.BoxDecoration
	Child      tree.Widget
}

func (c Container) Key() tree.Key { return c.WidgetKey }

func (c Container) Children() []tree.Widget { return singleChild(c.Child) }

func (c Container) CreateRenderObject() tree.RenderObject {
	box := tree.Init(&renderContainer{})
	c.apply(box)
	box.SetChildren(tree.CreateChildRenderObjects(c))
	return box
}

func (c Container) UpdateRenderObject(ro tree.RenderObject) {
	if box, ok := ro.(*renderContainer); ok {
		c.apply(box)
	}
}

func (c Container) apply(box *renderContainer) {
	box.width = c.Width
	box.height = c.Height
	box.padding = c.Padding
	box.alignment = c.Alignment
	if c.Decoration != nil {
		deco := *c.Decoration
		box.decoration = &deco
	} else {
		box.decoration = nil
	}
}

func (c Container) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Container)
	if !ok {
		return true
	}
	if o.Width != c.Width || o.Height != c.Height || o.Padding != c.Padding {
		return true
	}
	if (o.Alignment == nil) != (c.Alignment == nil) ||
		(o.Alignment != nil && *o.Alignment != *c.Alignment) {
		return true
	}
	if (o.Decoration == nil) != (c.Decoration == nil) {
		return true
	}
	if o.Decoration != nil && decorationChanged(*o.Decoration, *c.Decoration) {
		return true
	}
	return false
}

func decorationChanged(a, b graphics.BoxDecoration) bool {
	if a.Color != b.Color || a.BorderColor != b.BorderColor ||
		a.BorderWidth != b.BorderWidth || a.CornerRadius != b.CornerRadius {
		return true
	}
	if (a.Shadow == nil) != (b.Shadow == nil) {
		return true
	}
	return a.Shadow != nil && *a.Shadow != *b.Shadow
}

type renderContainer struct {
	tree.RenderBase
	width      float64
	height     float64
	padding    geometry.EdgeInsets
	alignment  *geometry.Alignment
	decoration *graphics.BoxDecoration
}

func (r *renderContainer) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	cc := constraints
	if r.width > 0 {
		cc.MinWidth, cc.MaxWidth = r.width, r.width
	}
	if r.height > 0 {
		cc.MinHeight, cc.MaxHeight = r.height, r.height
	}

	child := firstChild(r)
	if child == nil {
		return constraints.Constrain(cc.Constrain(geometry.Size{
			Width:  r.padding.Horizontal(),
			Height: r.padding.Vertical(),
		}))
	}

	childSize := child.Layout(cc.Loosen().Deflate(r.padding), measurer)
	size := cc.Constrain(geometry.Size{
		Width:  childSize.Width + r.padding.Horizontal(),
		Height: childSize.Height + r.padding.Vertical(),
	})

	inner := geometry.Size{
		Width:  size.Width - r.padding.Horizontal(),
		Height: size.Height - r.padding.Vertical(),
	}
	offset := geometry.Offset{X: r.padding.Left, Y: r.padding.Top}
	if r.alignment != nil {
		offset = offset.Add(r.alignment.Resolve(inner, childSize))
	}
	child.SetOffset(offset)
	return constraints.Constrain(size)
}

func (r *renderContainer) PaintSelf(p graphics.Painter) {
	if r.decoration == nil {
		return
	}
	deco := r.decoration
	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, r.Size())

	if deco.Shadow != nil && !deco.Shadow.Color.IsTransparent() {
		p.DrawRRect(bounds.Translate(deco.Shadow.Offset.X, deco.Shadow.Offset.Y), deco.CornerRadius, graphics.Paint{
			Color: deco.Shadow.Color,
			Style: graphics.PaintStyleFill,
			Alpha: 1,
		})
	}
	if !deco.Color.IsTransparent() {
		p.DrawRRect(bounds, deco.CornerRadius, graphics.Paint{
			Color: deco.Color,
			Style: graphics.PaintStyleFill,
			Alpha: 1,
		})
	}
	if deco.HasBorder() {
		p.DrawRRect(bounds, deco.CornerRadius, graphics.Paint{
			Color:       deco.BorderColor,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: deco.BorderWidth,
			Alpha:       1,
		})
	}
}
