package widgets

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Stack layers its items on top of each other, first item at the bottom.
// Plain items are positioned by Alignment; wrap an item in [Positioned] to
// place it at an absolute offset.
//
// Stacks are the backbone of a visual-novel scene: background at the bottom,
// sprites above it, dialog box and menus on top.
type Stack struct {
	WidgetKey tree.Key
	Alignment geometry.Alignment
	Items     []tree.Widget
}

func (s Stack) Key() tree.Key { return s.WidgetKey }

func (s Stack) Children() []tree.Widget { return s.Items }

func (s Stack) CreateRenderObject() tree.RenderObject {
	stack := tree.Init(&renderStack{alignment: s.Alignment})
	stack.SetChildren(tree.CreateChildRenderObjects(s))
	return stack
}

func (s Stack) UpdateRenderObject(ro tree.RenderObject) {
	if stack, ok := ro.(*renderStack); ok {
		stack.alignment = s.Alignment
	}
}

func (s Stack) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Stack)
	return !ok || o.Alignment != s.Alignment
}

type renderStack struct {
	tree.RenderBase
	alignment geometry.Alignment
}

func (r *renderStack) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	children := r.Children()

	// The stack fills bounded constraints; otherwise it wraps the largest
	// aligned child.
	var biggest geometry.Size
	for _, child := range children {
		size := child.Layout(constraints.Loosen(), measurer)
		if _, ok := child.(positionedChild); ok {
			continue
		}
		if size.Width > biggest.Width {
			biggest.Width = size.Width
		}
		if size.Height > biggest.Height {
			biggest.Height = size.Height
		}
	}
	size := biggest
	if constraints.HasBoundedWidth() {
		size.Width = constraints.MaxWidth
	}
	if constraints.HasBoundedHeight() {
		size.Height = constraints.MaxHeight
	}
	size = constraints.Constrain(size)

	for _, child := range children {
		if p, ok := child.(positionedChild); ok {
			child.SetOffset(p.PositionIn(size))
		} else {
			child.SetOffset(r.alignment.Resolve(size, child.Size()))
		}
	}
	return size
}

// Positioned places its child at an absolute offset inside a Stack. The
// Anchor selects which point of the child lands on Position; the zero value
// anchors the child's center, AlignTopLeft its top-left corner.
type Positioned struct {
	WidgetKey tree.Key
	Position  geometry.Offset
	Anchor    geometry.Alignment
	Child     tree.Widget
}

func (p Positioned) Key() tree.Key { return p.WidgetKey }

func (p Positioned) Children() []tree.Widget { return singleChild(p.Child) }

func (p Positioned) CreateRenderObject() tree.RenderObject {
	pos := tree.Init(&renderPositioned{position: p.Position, anchor: p.Anchor})
	pos.SetChildren(tree.CreateChildRenderObjects(p))
	return pos
}

func (p Positioned) UpdateRenderObject(ro tree.RenderObject) {
	if pos, ok := ro.(*renderPositioned); ok {
		pos.position = p.Position
		pos.anchor = p.Anchor
	}
}

func (p Positioned) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Positioned)
	return !ok || o.Position != p.Position || o.Anchor != p.Anchor
}

// positionedChild is implemented by render objects that choose their own
// offset within a Stack.
type positionedChild interface {
	PositionIn(stackSize geometry.Size) geometry.Offset
}

type renderPositioned struct {
	tree.RenderBase
	position geometry.Offset
	anchor   geometry.Alignment
}

func (r *renderPositioned) PositionIn(geometry.Size) geometry.Offset {
	size := r.Size()
	// The anchor maps -1..1 onto the child's own extent.
	return geometry.Offset{
		X: r.position.X - size.Width*(r.anchor.X+1)/2,
		Y: r.position.Y - size.Height*(r.anchor.Y+1)/2,
	}
}

func (r *renderPositioned) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	child := firstChild(r)
	if child == nil {
		return constraints.Smallest()
	}
	size := child.Layout(constraints.Loosen(), measurer)
	child.SetOffset(geometry.Offset{})
	return size
}
