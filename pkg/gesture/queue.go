package gesture

import "github.com/go-drift/novelui/pkg/events"

// Queue batches input events from the platform event loop for processing
// during the UI update cycle, running each pushed event through gesture
// detection on the way in.
type Queue struct {
	events   []events.InputEvent
	detector *Detector
}

// NewQueue creates an empty queue with a default gesture detector.
func NewQueue() *Queue {
	return &Queue{detector: NewDetector()}
}

// NewQueueWithConfig creates a queue with custom gesture thresholds.
func NewQueueWithConfig(config Config) *Queue {
	return &Queue{detector: NewDetectorWithConfig(config)}
}

// Push enqueues a raw event plus any gesture it completed.
func (q *Queue) Push(event events.InputEvent) {
	q.events = append(q.events, q.detector.ProcessEvent(event)...)
}

// PushRaw enqueues an event without gesture detection. Use for events that
// are already gestures or must not feed the state machine.
func (q *Queue) PushRaw(event events.InputEvent) {
	q.events = append(q.events, event)
}

// Pop dequeues the next event in arrival order.
func (q *Queue) Pop() (events.InputEvent, bool) {
	if len(q.events) == 0 {
		return events.InputEvent{}, false
	}
	event := q.events[0]
	q.events = q.events[1:]
	return event, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Clear drops all queued events.
func (q *Queue) Clear() {
	q.events = q.events[:0]
}

// Detector returns the queue's gesture detector.
func (q *Queue) Detector() *Detector {
	return q.detector
}

// ResetGestureState cancels any in-flight gesture.
func (q *Queue) ResetGestureState() {
	q.detector.Reset()
}
