package events

import "fmt"

// HitTestResult classifies a geometric containment test.
type HitTestResult int

const (
	// HitMiss means the point lies outside the node.
	HitMiss HitTestResult = iota
	// Hit means the point lies inside and the node claims it.
	Hit
	// HitTransparent means the point lies inside but the node lets the
	// event continue to nodes behind it.
	HitTransparent
)

// IsHit reports whether the point was geometrically contained.
func (r HitTestResult) IsHit() bool {
	return r != HitMiss
}

// MessageKind identifies the variant of a UIMessage.
type MessageKind int

const (
	// MessageGesture reports a recognized gesture on an identified node.
	MessageGesture MessageKind = iota
	// MessageButtonClick reports a button activation.
	MessageButtonClick
	// MessageOptionSelect reports a choice-menu selection.
	MessageOptionSelect
	// MessageDialogConfirm reports a dialog advance/confirm.
	MessageDialogConfirm
	// MessageCustom carries an application-defined payload.
	MessageCustom
)

// GestureKind names the gesture reported by a MessageGesture.
type GestureKind int

const (
	GestureTap GestureKind = iota
	GestureLongPress
)

// UIMessage is a UI-level notification bubbled from the tree to the
// application, surfaced through EventResult.
type UIMessage struct {
	Kind    MessageKind
	ID      string      // node identifier for Gesture/ButtonClick
	Gesture GestureKind // set for MessageGesture
	Index   int         // selected index for MessageOptionSelect
	Label   string      // selected label for MessageOptionSelect
	Payload any         // application payload for MessageCustom
}

func (m UIMessage) String() string {
	switch m.Kind {
	case MessageGesture:
		return fmt.Sprintf("gesture(%s, %d)", m.ID, m.Gesture)
	case MessageButtonClick:
		return fmt.Sprintf("button_click(%s)", m.ID)
	case MessageOptionSelect:
		return fmt.Sprintf("option_select(%d, %s)", m.Index, m.Label)
	case MessageDialogConfirm:
		return "dialog_confirm"
	default:
		return fmt.Sprintf("custom(%v)", m.Payload)
	}
}

// EventStatus classifies how a render object responded to an event.
type EventStatus int

const (
	// StatusIgnored means the node did not react; propagation continues.
	StatusIgnored EventStatus = iota
	// StatusHandled means the node reacted; propagation stops.
	StatusHandled
	// StatusConsumed means the node reacted and suppresses all further
	// delivery, including to ancestors.
	StatusConsumed
	// StatusMessage means the node produced a UIMessage; propagation stops.
	StatusMessage
)

// EventResult is the outcome of delivering an InputEvent to a render object.
type EventResult struct {
	Status  EventStatus
	Message UIMessage // valid when Status == StatusMessage
}

// Ignored returns the no-reaction result.
func Ignored() EventResult { return EventResult{Status: StatusIgnored} }

// Handled returns a result that stops propagation.
func Handled() EventResult { return EventResult{Status: StatusHandled} }

// Consumed returns a result that suppresses all further delivery.
func Consumed() EventResult { return EventResult{Status: StatusConsumed} }

// Message returns a result carrying a UI-level notification.
func Message(m UIMessage) EventResult {
	return EventResult{Status: StatusMessage, Message: m}
}

// ShouldStop reports whether propagation must not continue past this result.
func (r EventResult) ShouldStop() bool {
	return r.Status != StatusIgnored
}
