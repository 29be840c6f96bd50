package gesture_test

import (
	"testing"
	"time"

	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/gesture"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/uitest"
)

func newDetector() (*gesture.Detector, *uitest.FakeClock) {
	detector := gesture.NewDetector()
	clock := uitest.NewFakeClock()
	detector.SetClock(clock.Now)
	return detector, clock
}

func press(position geometry.Offset) events.InputEvent {
	return events.InputEvent{Kind: events.EventMouseDown, Position: position}
}

func release(position geometry.Offset) events.InputEvent {
	return events.InputEvent{Kind: events.EventMouseUp, Position: position}
}

// lastKind returns the kind of the final event the detector emitted.
func lastKind(out []events.InputEvent) events.EventKind {
	return out[len(out)-1].Kind
}

func TestDetector_QuickReleaseIsTap(t *testing.T) {
	detector, clock := newDetector()
	at := geometry.Offset{X: 10, Y: 10}

	detector.ProcessEvent(press(at))
	clock.Advance(50 * time.Millisecond)
	out := detector.ProcessEvent(release(at))

	if len(out) != 2 {
		t.Fatalf("expected raw event plus gesture, got %d events", len(out))
	}
	if lastKind(out) != events.EventTap {
		t.Errorf("synthesized kind = %v, want tap", lastKind(out))
	}
	if out[1].Position != at {
		t.Errorf("tap position = %v, want %v", out[1].Position, at)
	}
}

func TestDetector_SlowReleaseIsLongPress(t *testing.T) {
	detector, clock := newDetector()
	at := geometry.Offset{X: 10, Y: 10}

	detector.ProcessEvent(press(at))
	clock.Advance(600 * time.Millisecond)
	out := detector.ProcessEvent(release(at))

	if lastKind(out) != events.EventLongPress {
		t.Errorf("synthesized kind = %v, want long press", lastKind(out))
	}
}

func TestDetector_HoldAtThresholdIsLongPress(t *testing.T) {
	detector, clock := newDetector()
	at := geometry.Offset{X: 0, Y: 0}

	detector.ProcessEvent(press(at))
	clock.Advance(gesture.DefaultConfig().LongPress)
	out := detector.ProcessEvent(release(at))

	if lastKind(out) != events.EventLongPress {
		t.Errorf("hold exactly at the threshold should be a long press, got %v", lastKind(out))
	}
}

func TestDetector_DragCancelsGesture(t *testing.T) {
	detector, clock := newDetector()

	detector.ProcessEvent(press(geometry.Offset{X: 10, Y: 10}))
	clock.Advance(50 * time.Millisecond)
	detector.ProcessEvent(events.InputEvent{Kind: events.EventMouseMove, Position: geometry.Offset{X: 40, Y: 10}})
	out := detector.ProcessEvent(release(geometry.Offset{X: 40, Y: 10}))

	if len(out) != 1 {
		t.Errorf("drag release should synthesize nothing, got %d events", len(out))
	}
}

func TestDetector_SmallJitterStillTaps(t *testing.T) {
	detector, clock := newDetector()

	detector.ProcessEvent(press(geometry.Offset{X: 10, Y: 10}))
	clock.Advance(50 * time.Millisecond)
	out := detector.ProcessEvent(release(geometry.Offset{X: 14, Y: 12}))

	if lastKind(out) != events.EventTap {
		t.Errorf("release within the travel threshold should tap, got %v", lastKind(out))
	}
}

func TestDetector_ReleaseWithoutPressSynthesizesNothing(t *testing.T) {
	detector, _ := newDetector()

	out := detector.ProcessEvent(release(geometry.Offset{X: 10, Y: 10}))
	if len(out) != 1 {
		t.Errorf("stray release produced %d events, want the raw event only", len(out))
	}
}

func TestDetector_ResetCancelsInFlightPress(t *testing.T) {
	detector, clock := newDetector()
	at := geometry.Offset{X: 10, Y: 10}

	detector.ProcessEvent(press(at))
	if !detector.InProgress() {
		t.Fatal("press should be tracked")
	}
	detector.Reset()
	if detector.InProgress() {
		t.Fatal("reset should cancel the press")
	}

	clock.Advance(50 * time.Millisecond)
	if out := detector.ProcessEvent(release(at)); len(out) != 1 {
		t.Errorf("release after reset produced %d events, want 1", len(out))
	}
}

func TestDetector_CustomThresholds(t *testing.T) {
	config := gesture.Config{
		TapDistance: 2,
		LongPress:   100 * time.Millisecond,
		TapTime:     50 * time.Millisecond,
	}
	detector := gesture.NewDetectorWithConfig(config)
	clock := uitest.NewFakeClock()
	detector.SetClock(clock.Now)

	detector.ProcessEvent(press(geometry.Offset{}))
	clock.Advance(150 * time.Millisecond)
	out := detector.ProcessEvent(release(geometry.Offset{}))

	if lastKind(out) != events.EventLongPress {
		t.Errorf("lowered threshold should long-press at 150ms, got %v", lastKind(out))
	}
}

func TestQueue_PreservesArrivalOrder(t *testing.T) {
	queue := gesture.NewQueue()
	queue.PushRaw(events.InputEvent{Kind: events.EventMouseMove})
	queue.PushRaw(events.InputEvent{Kind: events.EventScroll})

	first, ok := queue.Pop()
	if !ok || first.Kind != events.EventMouseMove {
		t.Fatalf("first pop = %v %v", first.Kind, ok)
	}
	second, ok := queue.Pop()
	if !ok || second.Kind != events.EventScroll {
		t.Fatalf("second pop = %v %v", second.Kind, ok)
	}
	if _, ok := queue.Pop(); ok {
		t.Error("pop from empty queue should report not ok")
	}
}

func TestQueue_PushRunsGestureDetection(t *testing.T) {
	queue := gesture.NewQueue()
	clock := uitest.NewFakeClock()
	queue.Detector().SetClock(clock.Now)

	at := geometry.Offset{X: 5, Y: 5}
	queue.Push(press(at))
	clock.Advance(50 * time.Millisecond)
	queue.Push(release(at))

	if queue.Len() != 3 {
		t.Fatalf("queue length = %d, want down+up+tap", queue.Len())
	}
	queue.Pop()
	queue.Pop()
	tap, _ := queue.Pop()
	if tap.Kind != events.EventTap {
		t.Errorf("third event = %v, want synthesized tap", tap.Kind)
	}
}

func TestQueue_ClearDropsEvents(t *testing.T) {
	queue := gesture.NewQueue()
	queue.PushRaw(events.InputEvent{Kind: events.EventMouseMove})
	queue.Clear()
	if queue.Len() != 0 {
		t.Errorf("length after clear = %d", queue.Len())
	}
}
