// Package events defines the input events fed into the render tree and the
// results and messages that come back out of it.
package events

import (
	"fmt"

	"github.com/go-drift/novelui/pkg/geometry"
)

// EventKind identifies the variant of an InputEvent.
type EventKind int

const (
	EventMouseDown EventKind = iota
	EventMouseUp
	EventMouseMove
	EventScroll
	EventKeyDown
	EventKeyUp
	EventTextInput
	// Synthesized gesture events, produced by the gesture detector.
	EventTap
	EventLongPress
	EventHover
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMouseDown:
		return "mouse_down"
	case EventMouseUp:
		return "mouse_up"
	case EventMouseMove:
		return "mouse_move"
	case EventScroll:
		return "scroll"
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	case EventTextInput:
		return "text_input"
	case EventTap:
		return "tap"
	case EventLongPress:
		return "long_press"
	case EventHover:
		return "hover"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// MouseButton identifies which mouse button an event refers to.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyModifiers is a bit set of held modifier keys.
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// KeyCode identifies a keyboard key. Values are backend-defined; the toolkit
// only passes them through.
type KeyCode int

// InputEvent is one input occurrence routed through the render tree.
// Position-bearing kinds carry coordinates in the local space of the render
// object currently handling the event.
type InputEvent struct {
	Kind     EventKind
	Position geometry.Offset
	Button   MouseButton
	Delta    geometry.Offset // scroll amount for EventScroll
	Key      KeyCode
	Mods     KeyModifiers
	Text     string // committed text for EventTextInput
}

// HasPosition reports whether the event kind carries coordinates.
func (e InputEvent) HasPosition() bool {
	switch e.Kind {
	case EventKeyDown, EventKeyUp, EventTextInput:
		return false
	default:
		return true
	}
}

// WithOffset returns a copy of the event translated into a child coordinate
// space whose origin sits at the given offset in this space.
func (e InputEvent) WithOffset(offset geometry.Offset) InputEvent {
	if e.HasPosition() {
		e.Position = e.Position.Sub(offset)
	}
	return e
}
