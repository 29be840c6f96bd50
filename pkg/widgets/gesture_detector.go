package widgets

import (
	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/tree"
)

// GestureDetector reports taps and long presses on its child as
// events.MessageGesture messages carrying the detector's ID.
type GestureDetector struct {
	WidgetKey tree.Key
	ID        string
	Child     tree.Widget
}

func (g GestureDetector) Key() tree.Key { return g.WidgetKey }

func (g GestureDetector) Children() []tree.Widget { return singleChild(g.Child) }

func (g GestureDetector) CreateRenderObject() tree.RenderObject {
	detector := tree.Init(&renderGestureDetector{id: g.ID})
	detector.SetChildren(tree.CreateChildRenderObjects(g))
	return detector
}

func (g GestureDetector) UpdateRenderObject(ro tree.RenderObject) {
	if detector, ok := ro.(*renderGestureDetector); ok {
		detector.id = g.ID
	}
}

func (g GestureDetector) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(GestureDetector)
	return !ok || o.ID != g.ID
}

type renderGestureDetector struct {
	tree.RenderBase
	id string
}

func (r *renderGestureDetector) HitTest(position geometry.Offset) events.HitTestResult {
	if geometry.RectFromOffsetSize(geometry.Offset{}, r.Size()).Contains(position) {
		return events.Hit
	}
	return events.HitMiss
}

func (r *renderGestureDetector) HandleEvent(event events.InputEvent) events.EventResult {
	var gesture events.GestureKind
	switch event.Kind {
	case events.EventTap:
		gesture = events.GestureTap
	case events.EventLongPress:
		gesture = events.GestureLongPress
	default:
		return events.Ignored()
	}
	if !geometry.RectFromOffsetSize(geometry.Offset{}, r.Size()).Contains(event.Position) {
		return events.Ignored()
	}
	return events.Message(events.UIMessage{
		Kind:    events.MessageGesture,
		ID:      r.id,
		Gesture: gesture,
	})
}
