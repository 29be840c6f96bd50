package tree

import (
	"github.com/go-drift/novelui/pkg/errors"
	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
)

// RenderObject is the mutable, long-lived counterpart of a Widget: one
// instance per mounted widget position, carrying live geometry, dirty flags,
// and any animation or interaction state.
//
// Lifecycle: Unmounted (after construction) -> Mounted (after OnMount) ->
// Unmounted (after OnUnmount, terminal; the instance is then dropped).
// A parent's OnMount always precedes its children's; unmount is the exact
// reverse. Structural shape (child count and order) is only ever changed by
// the reconciler through the child mutators, never by widgets directly.
type RenderObject interface {
	// Layout computes the size for the given constraints, lays out children
	// and assigns their offsets, clears the needs-layout flag, and stores
	// the resulting size.
	Layout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size

	// Size returns the size computed by the most recent Layout, or the zero
	// size if layout has not run yet.
	Size() geometry.Size

	// Offset returns the position relative to the parent, assigned by the
	// parent during its layout.
	Offset() geometry.Offset

	// SetOffset assigns the position relative to the parent.
	SetOffset(offset geometry.Offset)

	// Rect returns the bounds in the parent's coordinate space.
	Rect() geometry.Rect

	NeedsLayout() bool
	MarkNeedsLayout()
	NeedsPaint() bool
	MarkNeedsPaint()

	// Paint draws using only the geometry computed by the most recent
	// Layout. It must not mutate layout state. The painter origin is this
	// node's top-left corner.
	Paint(p graphics.Painter)

	// HitTest tests the position, given in this node's local coordinate
	// space, against the local bounds.
	HitTest(position geometry.Offset) events.HitTestResult

	// HandleEvent processes an input event whose coordinates are in this
	// node's local space.
	HandleEvent(event events.InputEvent) events.EventResult

	// OnMount marks the node attached to the live tree.
	OnMount()
	// OnUnmount marks the node detached; the instance is dropped afterward.
	OnUnmount()
	// OnUpdate is invoked after the widget configuration was re-applied.
	OnUpdate()
	// Mounted reports whether the node is between OnMount and OnUnmount.
	Mounted() bool

	// Children returns the ordered, exclusively-owned child render objects.
	Children() []RenderObject
	// AddChild appends a child. Reconciler use only.
	AddChild(child RenderObject)
	// InsertChild inserts a child at index. Reconciler use only.
	InsertChild(index int, child RenderObject)
	// RemoveChild detaches and returns the child at index. Reconciler use only.
	RemoveChild(index int) RenderObject
	// ReplaceChild swaps the child at index. Reconciler use only.
	ReplaceChild(index int, child RenderObject)

	// Tick advances time-based state by delta seconds and reports whether
	// any animation is still running anywhere in the subtree.
	Tick(delta float64) bool
}

// LayoutPerformer is implemented by concrete render objects that size
// themselves; RenderBase.Layout dispatches to it.
type LayoutPerformer interface {
	PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size
}

// SelfPainter is implemented by concrete render objects that draw their own
// content; RenderBase.Paint invokes it before painting children.
type SelfPainter interface {
	PaintSelf(p graphics.Painter)
}

// RenderBase provides the common state and default behavior for render
// objects. Concrete render objects embed it, call SetSelf with themselves
// after construction, and override the hooks they need.
type RenderBase struct {
	self        RenderObject
	offset      geometry.Offset
	size        geometry.Size
	needsLayout bool
	needsPaint  bool
	mounted     bool
	children    []RenderObject
}

// SetSelf registers the concrete render object so that base behavior can
// dispatch to its PerformLayout/PaintSelf hooks. New render objects always
// start dirty for both layout and paint.
func (b *RenderBase) SetSelf(self RenderObject) {
	b.self = self
	b.needsLayout = true
	b.needsPaint = true
}

// Init wires a freshly constructed render object to its base and returns it.
// Widgets call this from CreateRenderObject.
func Init[T RenderObject](ro T) T {
	type selfSetter interface{ SetSelf(RenderObject) }
	if s, ok := any(ro).(selfSetter); ok {
		s.SetSelf(ro)
	}
	return ro
}

// Layout clears the dirty flag, delegates sizing to the concrete
// PerformLayout when present, and stores the result. Without a
// PerformLayout hook, children are laid out with loosened constraints at
// offset zero and the node wraps the largest child.
func (b *RenderBase) Layout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	if performer, ok := b.self.(LayoutPerformer); ok {
		b.size = performer.PerformLayout(constraints, measurer)
	} else {
		var biggest geometry.Size
		for _, child := range b.children {
			childSize := child.Layout(constraints.Loosen(), measurer)
			child.SetOffset(geometry.Offset{})
			if childSize.Width > biggest.Width {
				biggest.Width = childSize.Width
			}
			if childSize.Height > biggest.Height {
				biggest.Height = childSize.Height
			}
		}
		b.size = constraints.Constrain(biggest)
	}
	b.needsLayout = false
	b.needsPaint = true
	return b.size
}

// Paint draws the node's own content, then its children translated into
// their offsets, and clears the needs-paint flag.
func (b *RenderBase) Paint(p graphics.Painter) {
	if painter, ok := b.self.(SelfPainter); ok {
		painter.PaintSelf(p)
	}
	for _, child := range b.children {
		o := child.Offset()
		p.Save()
		p.Translate(o.X, o.Y)
		child.Paint(p)
		p.Restore()
	}
	b.needsPaint = false
}

// Size returns the size computed by the most recent layout.
func (b *RenderBase) Size() geometry.Size {
	return b.size
}

// SetSize stores the size; for concrete layouts that compute it piecemeal.
func (b *RenderBase) SetSize(size geometry.Size) {
	b.size = size
}

// Offset returns the position relative to the parent.
func (b *RenderBase) Offset() geometry.Offset {
	return b.offset
}

// SetOffset assigns the position relative to the parent.
func (b *RenderBase) SetOffset(offset geometry.Offset) {
	b.offset = offset
}

// Rect returns the bounds in the parent's coordinate space.
func (b *RenderBase) Rect() geometry.Rect {
	return geometry.RectFromOffsetSize(b.offset, b.size)
}

func (b *RenderBase) NeedsLayout() bool { return b.needsLayout }

func (b *RenderBase) MarkNeedsLayout() { b.needsLayout = true }

func (b *RenderBase) NeedsPaint() bool { return b.needsPaint }

func (b *RenderBase) MarkNeedsPaint() { b.needsPaint = true }

// HitTest tests against the local bounds. Contained points report
// HitTransparent so events keep propagating past nodes that don't claim
// them; interactive render objects override this to return Hit.
func (b *RenderBase) HitTest(position geometry.Offset) events.HitTestResult {
	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, b.size)
	if bounds.Contains(position) {
		return events.HitTransparent
	}
	return events.HitMiss
}

// HandleEvent ignores the event by default.
func (b *RenderBase) HandleEvent(event events.InputEvent) events.EventResult {
	return events.Ignored()
}

// OnMount marks the node mounted. Overrides must call through.
func (b *RenderBase) OnMount() { b.mounted = true }

// OnUnmount marks the node unmounted. Overrides must call through.
func (b *RenderBase) OnUnmount() { b.mounted = false }

// OnUpdate is a no-op by default.
func (b *RenderBase) OnUpdate() {}

// Mounted reports whether the node is currently mounted.
func (b *RenderBase) Mounted() bool { return b.mounted }

// Children returns the ordered child render objects.
func (b *RenderBase) Children() []RenderObject {
	return b.children
}

// SetChildren installs an initial child list at construction time.
func (b *RenderBase) SetChildren(children []RenderObject) {
	b.children = children
}

// AddChild appends a child and invalidates layout and paint.
func (b *RenderBase) AddChild(child RenderObject) {
	b.children = append(b.children, child)
	b.markStructureDirty()
}

// InsertChild inserts a child at index and invalidates layout and paint.
func (b *RenderBase) InsertChild(index int, child RenderObject) {
	errors.Assertf(index >= 0 && index <= len(b.children),
		"tree.InsertChild", "index %d out of range (len %d)", index, len(b.children))
	b.children = append(b.children, nil)
	copy(b.children[index+1:], b.children[index:])
	b.children[index] = child
	b.markStructureDirty()
}

// RemoveChild detaches and returns the child at index, invalidating layout
// and paint.
func (b *RenderBase) RemoveChild(index int) RenderObject {
	errors.Assertf(index >= 0 && index < len(b.children),
		"tree.RemoveChild", "index %d out of range (len %d)", index, len(b.children))
	child := b.children[index]
	b.children = append(b.children[:index], b.children[index+1:]...)
	b.markStructureDirty()
	return child
}

// ReplaceChild swaps the child at index, invalidating layout and paint.
func (b *RenderBase) ReplaceChild(index int, child RenderObject) {
	errors.Assertf(index >= 0 && index < len(b.children),
		"tree.ReplaceChild", "index %d out of range (len %d)", index, len(b.children))
	b.children[index] = child
	b.markStructureDirty()
}

func (b *RenderBase) markStructureDirty() {
	b.needsLayout = true
	b.needsPaint = true
}

// Tick advances children and reports whether any animation is running.
// Animated render objects override this and combine their own state with
// the embedded base's result.
func (b *RenderBase) Tick(delta float64) bool {
	animating := false
	for _, child := range b.children {
		if child.Tick(delta) {
			animating = true
		}
	}
	return animating
}

// EmptyRenderObject is a zero-size placeholder node.
type EmptyRenderObject struct {
	RenderBase
}

// NewEmptyRenderObject creates a placeholder render object.
func NewEmptyRenderObject() *EmptyRenderObject {
	return Init(&EmptyRenderObject{})
}

// PerformLayout sizes the placeholder to the smallest permitted size.
func (e *EmptyRenderObject) PerformLayout(constraints geometry.Constraints, _ graphics.TextMeasurer) geometry.Size {
	return constraints.Smallest()
}
