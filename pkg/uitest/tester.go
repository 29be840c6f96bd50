package uitest

import (
	"testing"

	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/tree"
)

const (
	// DefaultWidth is the default logical width of the test surface.
	DefaultWidth = 800
	// DefaultHeight is the default logical height of the test surface.
	DefaultHeight = 600
)

// Tester drives a UiTree through the same pipeline the application loop
// uses, with a recording painter in place of a real backend.
type Tester struct {
	Tree    *tree.UiTree
	Painter *RecordingPainter
}

// NewTester creates a tester with a default-sized surface. The tree is torn
// down via t.Cleanup.
func NewTester(t *testing.T) *Tester {
	tester := &Tester{
		Tree:    tree.NewUiTree(),
		Painter: NewRecordingPainter(DefaultWidth, DefaultHeight),
	}
	tester.Tree.SetSize(DefaultWidth, DefaultHeight)
	t.Cleanup(tester.Tree.Teardown)
	return tester
}

// SetSize resizes the test surface.
func (t *Tester) SetSize(width, height float64) {
	t.Tree.SetSize(width, height)
	t.Painter = NewRecordingPainter(width, height)
}

// Pump applies a widget tree and runs layout.
func (t *Tester) Pump(widget tree.Widget) {
	t.Tree.UpdateRoot(widget)
	t.Tree.LayoutIfNeeded(t.Painter)
}

// Paint records a fresh paint pass and returns the painter.
func (t *Tester) Paint() *RecordingPainter {
	t.Painter.Reset()
	t.Tree.Paint(t.Painter)
	return t.Painter
}

// Tick advances animations by delta seconds and reruns layout if needed.
func (t *Tester) Tick(delta float64) bool {
	animating := t.Tree.Tick(delta)
	t.Tree.LayoutIfNeeded(t.Painter)
	return animating
}

// Tap synthesizes a tap at the position and returns the messages it
// produced. The tap bypasses the press/release state machine; use the
// gesture package tests for threshold behavior.
func (t *Tester) Tap(x, y float64) []events.UIMessage {
	t.Tree.PushEventRaw(events.InputEvent{
		Kind:     events.EventTap,
		Position: geometry.Offset{X: x, Y: y},
	})
	t.Tree.ProcessEvents()
	return t.Tree.TakeMessages()
}

// LongPress synthesizes a long press at the position and returns the
// messages it produced.
func (t *Tester) LongPress(x, y float64) []events.UIMessage {
	t.Tree.PushEventRaw(events.InputEvent{
		Kind:     events.EventLongPress,
		Position: geometry.Offset{X: x, Y: y},
	})
	t.Tree.ProcessEvents()
	return t.Tree.TakeMessages()
}

// MoveMouse synthesizes a pointer move to the position.
func (t *Tester) MoveMouse(x, y float64) {
	t.Tree.PushEventRaw(events.InputEvent{
		Kind:     events.EventMouseMove,
		Position: geometry.Offset{X: x, Y: y},
	})
	t.Tree.ProcessEvents()
}
