// Package animation provides frame-driven animation controllers and value
// interpolation. Controllers are advanced explicitly from the render tree's
// tick, so they never touch goroutines or wall-clock time.
package animation

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Status represents the current state of an animation.
//
// The status follows this state machine:
//
//	                Forward()
//	Dismissed ──────────────────► Completed
//	    ▲                              │
//	    │         Reverse()            │
//	    └──────────────────────────────┘
//
// While animating, status is StatusForward or StatusReverse. When stopped,
// status is StatusDismissed (at 0) or StatusCompleted (at 1).
type Status int

const (
	// StatusDismissed means the animation is stopped at the lower bound (0.0).
	StatusDismissed Status = iota
	// StatusForward means the animation is playing toward the upper bound (1.0).
	StatusForward
	// StatusReverse means the animation is playing toward the lower bound (0.0).
	StatusReverse
	// StatusCompleted means the animation is stopped at the upper bound (1.0).
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// RepeatMode controls what happens when a controller reaches a bound.
type RepeatMode int

const (
	// RepeatNone stops the animation at the bound.
	RepeatNone RepeatMode = iota
	// RepeatLoop restarts from the opposite bound in the same direction.
	RepeatLoop
	// RepeatPingPong reverses direction at each bound.
	RepeatPingPong
)

// Controller drives an animation value from 0 to 1 over a fixed duration.
//
// The controller owns no clock. Call Update once per frame with the elapsed
// seconds; it returns true while the animation still needs frames. The Curve
// shapes the motion, and Repeat decides what happens at the bounds.
type Controller struct {
	// Duration is the length of one full sweep, in seconds.
	Duration float64

	// Curve transforms linear progress into eased motion.
	Curve ease.TweenFunc

	// Repeat controls behavior on reaching a bound.
	Repeat RepeatMode

	tween  *gween.Tween
	value  float64
	status Status

	listeners       map[int]func(float64)
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller with the given duration in seconds,
// starting dismissed at 0.
func NewController(duration float64) *Controller {
	return &Controller{
		Duration:        duration,
		Curve:           ease.Linear,
		status:          StatusDismissed,
		listeners:       make(map[int]func(float64)),
		statusListeners: make(map[int]func(Status)),
	}
}

// Forward animates from the current value toward 1.
func (c *Controller) Forward() {
	c.animateTo(1, StatusForward)
}

// Reverse animates from the current value toward 0.
func (c *Controller) Reverse() {
	c.animateTo(0, StatusReverse)
}

func (c *Controller) animateTo(target float64, direction Status) {
	if c.Duration <= 0 {
		c.value = target
		c.tween = nil
		c.settle()
		c.notifyListeners()
		return
	}
	// Remaining travel gets a proportional slice of the full duration, so
	// reversing a half-finished animation takes half the time.
	remaining := target - c.value
	if remaining < 0 {
		remaining = -remaining
	}
	if remaining == 0 {
		c.settle()
		return
	}
	c.tween = gween.New(float32(c.value), float32(target), float32(c.Duration*remaining), c.Curve)
	c.setStatus(direction)
}

// Update advances the animation by delta seconds. Returns true while the
// animation is still running.
func (c *Controller) Update(delta float64) bool {
	if c.tween == nil {
		return false
	}
	value, finished := c.tween.Update(float32(delta))
	c.value = float64(value)
	c.notifyListeners()
	if !finished {
		return true
	}
	return c.handleBound()
}

// handleBound applies the repeat mode once a sweep reaches its bound.
// Returns true when a follow-up sweep was started.
func (c *Controller) handleBound() bool {
	direction := c.status
	switch c.Repeat {
	case RepeatLoop:
		if direction == StatusForward {
			c.value = 0
		} else {
			c.value = 1
		}
		if direction == StatusForward {
			c.animateTo(1, StatusForward)
		} else {
			c.animateTo(0, StatusReverse)
		}
		return true
	case RepeatPingPong:
		if direction == StatusForward {
			c.animateTo(0, StatusReverse)
		} else {
			c.animateTo(1, StatusForward)
		}
		return true
	default:
		c.tween = nil
		c.settle()
		return false
	}
}

// Seek jumps to a progress value in [0, 1] without animating.
func (c *Controller) Seek(progress float64) {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	c.tween = nil
	c.value = progress
	c.settle()
	c.notifyListeners()
}

// Stop halts the animation at its current value.
func (c *Controller) Stop() {
	c.tween = nil
	c.settle()
}

// Reset stops the animation and returns the value to 0.
func (c *Controller) Reset() {
	c.tween = nil
	c.value = 0
	c.setStatus(StatusDismissed)
	c.notifyListeners()
}

// settle assigns the resting status for the current value.
func (c *Controller) settle() {
	if c.value >= 1 {
		c.setStatus(StatusCompleted)
	} else {
		c.setStatus(StatusDismissed)
	}
}

// Value returns the current animation value in [0, 1].
func (c *Controller) Value() float64 {
	return c.value
}

// Status returns the current animation status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating returns true while the animation is running.
func (c *Controller) IsAnimating() bool {
	return c.tween != nil
}

// IsCompleted returns true if the animation finished at the upper bound.
func (c *Controller) IsCompleted() bool {
	return c.status == StatusCompleted
}

// IsDismissed returns true if the animation is at the lower bound.
func (c *Controller) IsDismissed() bool {
	return c.status == StatusDismissed
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func(float64)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener(c.value)
	}
}

// Dispose stops the animation and drops all listeners.
func (c *Controller) Dispose() {
	c.Stop()
	c.listeners = nil
	c.statusListeners = nil
}
