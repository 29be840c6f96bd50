package tree

import (
	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/gesture"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
)

// UiTree owns the root render object and drives the per-tick pipeline:
// reconcile, then layout, then paint, then event dispatch and animation
// advancement. Everything runs synchronously on the calling goroutine; the
// enclosing application drives it once per displayed frame.
type UiTree struct {
	root       RenderObject
	rootWidget Widget

	eventQueue      *gesture.Queue
	pendingMessages []events.UIMessage

	constraints geometry.Constraints
	lastSize    geometry.Size
	needsLayout bool
	needsPaint  bool
}

// NewUiTree creates an empty tree with a default 800x600 viewport.
func NewUiTree() *UiTree {
	return &UiTree{
		eventQueue:  gesture.NewQueue(),
		constraints: geometry.Loose(geometry.Size{Width: 800, Height: 600}),
		needsLayout: true,
		needsPaint:  true,
	}
}

// NewUiTreeWithRoot creates a tree and mounts the given root widget.
func NewUiTreeWithRoot(widget Widget) *UiTree {
	t := NewUiTree()
	t.SetRoot(widget)
	return t
}

// SetRoot replaces the whole tree, unmounting any previous root. No diffing
// happens; use UpdateRoot for incremental updates.
func (t *UiTree) SetRoot(widget Widget) {
	if t.root != nil {
		unmountRecursive(t.root)
	}
	t.root = BuildTree(widget)
	t.rootWidget = widget
	t.needsLayout = true
	t.needsPaint = true
}

// UpdateRoot diffs the widget against the configuration the tree was last
// built or updated from and applies the minimal edit script in place. When
// the root identity changed (type or key), the whole tree is replaced.
func (t *UiTree) UpdateRoot(widget Widget) {
	switch {
	case t.root == nil || t.rootWidget == nil:
		t.root = BuildTree(widget)
	default:
		if diff := DiffWidget(t.rootWidget, widget); diff != nil {
			Reconcile(t.root, widget, diff)
		} else {
			t.root = ReplaceSubtree(t.root, widget)
		}
	}
	t.rootWidget = widget
	t.needsLayout = true
	t.needsPaint = true
}

// Teardown unmounts the whole tree. The tree may be reused via SetRoot.
func (t *UiTree) Teardown() {
	if t.root != nil {
		unmountRecursive(t.root)
		t.root = nil
		t.rootWidget = nil
	}
}

// SetConstraints replaces the viewport constraints.
func (t *UiTree) SetConstraints(constraints geometry.Constraints) {
	if t.constraints != constraints {
		t.constraints = constraints
		t.needsLayout = true
	}
}

// SetSize constrains the tree to fit within the given viewport size.
func (t *UiTree) SetSize(width, height float64) {
	t.SetConstraints(geometry.Loose(geometry.Size{Width: width, Height: height}))
}

// LayoutIfNeeded runs a layout pass when anything invalidated it.
func (t *UiTree) LayoutIfNeeded(measurer graphics.TextMeasurer) {
	if t.needsLayout {
		t.Layout(measurer)
	}
}

// Layout forces a layout pass.
func (t *UiTree) Layout(measurer graphics.TextMeasurer) {
	if t.root == nil {
		return
	}
	t.lastSize = t.root.Layout(t.constraints, measurer)
	t.needsLayout = false
	t.needsPaint = true
}

// Paint draws the tree, running layout first when needed (paint reads
// geometry that only layout produces).
func (t *UiTree) Paint(p graphics.Painter) {
	t.LayoutIfNeeded(p)
	if t.root == nil {
		return
	}
	t.root.Paint(p)
	t.needsPaint = false
}

// Tick advances animations by delta seconds. Returns true while any
// animation is still running and more frames are needed.
func (t *UiTree) Tick(delta float64) bool {
	if t.root == nil {
		return false
	}
	animating := t.root.Tick(delta)
	if animating {
		t.needsPaint = true
	}
	return animating
}

// HandleEvent dispatches one event through the tree immediately, bypassing
// the queue. Prefer PushEvent/ProcessEvents, which add gesture detection.
func (t *UiTree) HandleEvent(event events.InputEvent) events.EventResult {
	if t.root == nil {
		return events.Ignored()
	}
	return t.dispatch(t.root, event)
}

// dispatch delivers an event depth-first, children before parent, with
// coordinates translated into each child's local space. Propagation stops
// at the first non-ignored result; messages are collected at the source.
func (t *UiTree) dispatch(ro RenderObject, event events.InputEvent) events.EventResult {
	for _, child := range ro.Children() {
		result := t.dispatch(child, event.WithOffset(child.Offset()))
		if result.ShouldStop() {
			return result
		}
	}
	result := ro.HandleEvent(event)
	if result.Status == events.StatusMessage {
		t.pendingMessages = append(t.pendingMessages, result.Message)
	}
	return result
}

// PushEvent queues an event for the next ProcessEvents call, running it
// through gesture detection.
func (t *UiTree) PushEvent(event events.InputEvent) {
	t.eventQueue.Push(event)
}

// PushEventRaw queues an event without gesture detection.
func (t *UiTree) PushEventRaw(event events.InputEvent) {
	t.eventQueue.PushRaw(event)
}

// ProcessEvents drains the queue through the tree and returns the number of
// events dispatched. UIMessages produced along the way are retained until
// TakeMessages.
func (t *UiTree) ProcessEvents() int {
	count := 0
	for {
		event, ok := t.eventQueue.Pop()
		if !ok {
			break
		}
		t.HandleEvent(event)
		count++
	}
	return count
}

// HasPendingEvents reports whether queued events are waiting.
func (t *UiTree) HasPendingEvents() bool {
	return t.eventQueue.Len() > 0
}

// SetGestureConfig replaces the gesture detection thresholds.
func (t *UiTree) SetGestureConfig(config gesture.Config) {
	t.eventQueue.Detector().SetConfig(config)
}

// ResetGestureState cancels any in-flight gesture, e.g. on focus loss.
func (t *UiTree) ResetGestureState() {
	t.eventQueue.ResetGestureState()
}

// HitTest reports whether the position hits anything in the tree.
func (t *UiTree) HitTest(x, y float64) bool {
	if t.root == nil {
		return false
	}
	return t.root.HitTest(geometry.Offset{X: x, Y: y}).IsHit()
}

// TakeMessages returns and clears the UIMessages produced since the last
// call.
func (t *UiTree) TakeMessages() []events.UIMessage {
	messages := t.pendingMessages
	t.pendingMessages = nil
	return messages
}

// HasMessages reports whether undelivered messages are pending.
func (t *UiTree) HasMessages() bool {
	return len(t.pendingMessages) > 0
}

// Size returns the size computed by the most recent layout pass.
func (t *UiTree) Size() geometry.Size {
	return t.lastSize
}

// NeedsLayout reports whether a layout pass is pending.
func (t *UiTree) NeedsLayout() bool { return t.needsLayout }

// NeedsPaint reports whether a paint pass is pending.
func (t *UiTree) NeedsPaint() bool { return t.needsPaint }

// MarkNeedsLayout schedules a layout pass for the next frame.
func (t *UiTree) MarkNeedsLayout() { t.needsLayout = true }

// MarkNeedsPaint schedules a paint pass for the next frame.
func (t *UiTree) MarkNeedsPaint() { t.needsPaint = true }

// Root exposes the root render object, primarily for tests and tooling.
func (t *UiTree) Root() RenderObject {
	return t.root
}
