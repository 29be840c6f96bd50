package widgets

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Padding insets its child on each side.
type Padding struct {
	WidgetKey tree.Key
	Insets    geometry.EdgeInsets
	Child     tree.Widget
}

func (p Padding) Key() tree.Key { return p.WidgetKey }

func (p Padding) Children() []tree.Widget { return singleChild(p.Child) }

func (p Padding) CreateRenderObject() tree.RenderObject {
	pad := tree.Init(&renderPadding{insets: p.Insets})
	pad.SetChildren(tree.CreateChildRenderObjects(p))
	return pad
}

func (p Padding) UpdateRenderObject(ro tree.RenderObject) {
	if pad, ok := ro.(*renderPadding); ok {
		pad.insets = p.Insets
	}
}

func (p Padding) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Padding)
	return !ok || o.Insets != p.Insets
}

type renderPadding struct {
	tree.RenderBase
	insets geometry.EdgeInsets
}

func (r *renderPadding) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	child := firstChild(r)
	if child == nil {
		return constraints.Constrain(geometry.Size{
			Width:  r.insets.Horizontal(),
			Height: r.insets.Vertical(),
		})
	}
	childSize := child.Layout(constraints.Deflate(r.insets), measurer)
	child.SetOffset(geometry.Offset{X: r.insets.Left, Y: r.insets.Top})
	return constraints.Constrain(geometry.Size{
		Width:  childSize.Width + r.insets.Horizontal(),
		Height: childSize.Height + r.insets.Vertical(),
	})
}
