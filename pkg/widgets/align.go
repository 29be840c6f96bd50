package widgets

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Align positions its child within the available space according to an
// alignment. The align box expands to fill bounded constraints; on unbounded
// axes it shrinks to the child.
type Align struct {
	WidgetKey tree.Key
	Alignment geometry.Alignment
	Child     tree.Widget
}

// Center returns an Align that centers its child.
func Center(child tree.Widget) Align {
	return Align{Alignment: geometry.AlignCenter, Child: child}
}

func (a Align) Key() tree.Key { return a.WidgetKey }

func (a Align) Children() []tree.Widget { return singleChild(a.Child) }

func (a Align) CreateRenderObject() tree.RenderObject {
	align := tree.Init(&renderAlign{alignment: a.Alignment})
	align.SetChildren(tree.CreateChildRenderObjects(a))
	return align
}

func (a Align) UpdateRenderObject(ro tree.RenderObject) {
	if align, ok := ro.(*renderAlign); ok {
		align.alignment = a.Alignment
	}
}

func (a Align) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Align)
	return !ok || o.Alignment != a.Alignment
}

type renderAlign struct {
	tree.RenderBase
	alignment geometry.Alignment
}

func (r *renderAlign) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	child := firstChild(r)
	if child == nil {
		return constraints.Biggest()
	}
	childSize := child.Layout(constraints.Loosen(), measurer)

	size := childSize
	if constraints.HasBoundedWidth() {
		size.Width = constraints.MaxWidth
	}
	if constraints.HasBoundedHeight() {
		size.Height = constraints.MaxHeight
	}
	size = constraints.Constrain(size)

	child.SetOffset(r.alignment.Resolve(size, childSize))
	return size
}
