// Package tree implements the retained render tree and the machinery that
// keeps it in sync with immutable widget configurations: widget diffing,
// reconciliation with ordered lifecycle hooks, and the UiTree driver.
//
// Widgets are cheap, immutable descriptions rebuilt by the application
// whenever its state changes. RenderObjects are the long-lived mutable
// counterparts that carry geometry, dirty flags, and animation state. The
// differ computes an edit script between the old and new widget
// configuration; the reconciler applies it to the live render tree with
// minimal structural change, so render objects (and the animation and
// interaction state they hold) survive updates whenever their identity does.
package tree

import "reflect"

// Widget is an immutable configuration node.
//
// A widget never mutates after construction; "updating" the UI means
// constructing a new widget tree and diffing it against the old one.
type Widget interface {
	// Key returns the widget's identity token, or the zero Key for none.
	Key() Key

	// Children returns the ordered child widgets. The returned slice is
	// only borrowed for the duration of a diff pass.
	Children() []Widget

	// CreateRenderObject builds the render object for this widget,
	// including render objects for the whole child subtree.
	CreateRenderObject() RenderObject

	// UpdateRenderObject applies this widget's configuration onto an
	// existing render object previously created by a widget of the same
	// type. Implementations downcast ro to their concrete render object
	// type; on a type mismatch they must no-op rather than panic.
	UpdateRenderObject(ro RenderObject)

	// ShouldUpdate reports whether this widget's configuration differs
	// from old in a way that requires UpdateRenderObject to run.
	ShouldUpdate(old Widget) bool
}

// widgetType returns the stable type tag used for identity checks.
func widgetType(w Widget) reflect.Type {
	return reflect.TypeOf(w)
}

// Identity is the (type, key) pair a widget is matched by during diffing.
type Identity struct {
	Type reflect.Type
	Key  Key
}

// IdentityOf derives the matching identity of a widget.
func IdentityOf(w Widget) Identity {
	return Identity{Type: widgetType(w), Key: w.Key()}
}

// CanUpdate reports whether a render object built from a widget with
// identity i can be updated in place by a widget with identity other.
// Keys only have to agree when both widgets carry one.
func (i Identity) CanUpdate(other Identity) bool {
	if i.Type != other.Type {
		return false
	}
	if !i.Key.IsZero() && !other.Key.IsZero() && i.Key != other.Key {
		return false
	}
	return true
}

// CreateChildRenderObjects builds render objects for all children of w.
// Widget implementations call this from CreateRenderObject.
func CreateChildRenderObjects(w Widget) []RenderObject {
	children := w.Children()
	if len(children) == 0 {
		return nil
	}
	out := make([]RenderObject, 0, len(children))
	for _, child := range children {
		out = append(out, child.CreateRenderObject())
	}
	return out
}
