package widgets

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// SizedBox constrains its child to a specific width and/or height. A zero
// dimension leaves that axis to the child's intrinsic size, so a SizedBox
// with only Width set makes a horizontal spacer.
//
//	// Fixed-size box
//	SizedBox{Width: 100, Height: 50, Child: child}
//
//	// Vertical spacer in a Column
//	SizedBox{Height: 24}
type SizedBox struct {
	WidgetKey tree.Key
	Width     float64
	Height    float64
	Child     tree.Widget
}

// HSpace returns a horizontal spacer of the given width.
func HSpace(width float64) SizedBox {
	return SizedBox{Width: width}
}

// VSpace returns a vertical spacer of the given height.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

func (s SizedBox) Key() tree.Key { return s.WidgetKey }

func (s SizedBox) Children() []tree.Widget { return singleChild(s.Child) }

func (s SizedBox) CreateRenderObject() tree.RenderObject {
	box := tree.Init(&renderSizedBox{width: s.Width, height: s.Height})
	box.SetChildren(tree.CreateChildRenderObjects(s))
	return box
}

func (s SizedBox) UpdateRenderObject(ro tree.RenderObject) {
	if box, ok := ro.(*renderSizedBox); ok {
		box.width = s.Width
		box.height = s.Height
	}
}

func (s SizedBox) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(SizedBox)
	return !ok || o.Width != s.Width || o.Height != s.Height
}

type renderSizedBox struct {
	tree.RenderBase
	width  float64
	height float64
}

func (r *renderSizedBox) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	var childSize geometry.Size
	if child := firstChild(r); child != nil {
		cc := constraints.Loosen()
		if r.width > 0 {
			cc.MinWidth, cc.MaxWidth = r.width, r.width
		}
		if r.height > 0 {
			cc.MinHeight, cc.MaxHeight = r.height, r.height
		}
		childSize = child.Layout(cc, measurer)
		child.SetOffset(geometry.Offset{})
	}
	size := childSize
	if r.width > 0 {
		size.Width = r.width
	}
	if r.height > 0 {
		size.Height = r.height
	}
	return constraints.Constrain(size)
}
