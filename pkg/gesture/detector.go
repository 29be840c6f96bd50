package gesture

import (
	"time"

	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
)

// Detector is a state machine that turns MouseDown/MouseUp sequences into
// synthesized Tap and LongPress events.
type Detector struct {
	config Config

	downPosition geometry.Offset
	downTime     time.Time
	pressed      bool
	lastPosition geometry.Offset

	// now is the clock source; replaced in tests.
	now func() time.Time
}

// NewDetector creates a detector with default thresholds.
func NewDetector() *Detector {
	return NewDetectorWithConfig(DefaultConfig())
}

// NewDetectorWithConfig creates a detector with custom thresholds.
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config, now: time.Now}
}

// SetConfig replaces the detection thresholds.
func (d *Detector) SetConfig(config Config) {
	d.config = config
}

// Config returns the current thresholds.
func (d *Detector) Config() Config {
	return d.config
}

// SetClock replaces the time source. Tests use this for deterministic
// press durations.
func (d *Detector) SetClock(now func() time.Time) {
	d.now = now
}

// ProcessEvent feeds one raw event through the state machine and returns
// the event plus any gesture it completed.
func (d *Detector) ProcessEvent(event events.InputEvent) []events.InputEvent {
	out := []events.InputEvent{event}

	switch event.Kind {
	case events.EventMouseDown:
		d.pressed = true
		d.downPosition = event.Position
		d.downTime = d.now()
		d.lastPosition = event.Position

	case events.EventMouseUp:
		if gesture, ok := d.detectOnRelease(event.Position); ok {
			out = append(out, gesture)
		}
		d.pressed = false
		d.lastPosition = event.Position

	case events.EventMouseMove:
		d.lastPosition = event.Position
	}

	return out
}

// detectOnRelease classifies the completed press/release sequence.
func (d *Detector) detectOnRelease(upPosition geometry.Offset) (events.InputEvent, bool) {
	if !d.pressed {
		return events.InputEvent{}, false
	}
	if upPosition.Distance(d.downPosition) > d.config.TapDistance {
		// Moved too far; a drag, not a gesture.
		return events.InputEvent{}, false
	}

	held := d.now().Sub(d.downTime)
	kind := events.EventTap
	if held >= d.config.LongPress {
		kind = events.EventLongPress
	}
	return events.InputEvent{Kind: kind, Position: upPosition}, true
}

// InProgress reports whether a press is currently being tracked.
func (d *Detector) InProgress() bool {
	return d.pressed
}

// Reset cancels any in-flight gesture, e.g. on focus loss.
func (d *Detector) Reset() {
	d.pressed = false
}
