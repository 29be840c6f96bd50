// Package widgets provides the built-in widget library: layout primitives
// (SizedBox, Padding, Align, Row, Column, Stack), visual primitives (Text,
// Container, Image), interaction widgets (Button, GestureDetector), and the
// visual-novel components (DialogBox, ChoiceMenu, Sprite, Background).
//
// Widgets are immutable value types. Rebuild the widget tree and hand it to
// UiTree.UpdateRoot whenever application state changes; unchanged widgets
// keep their render objects, and with them any animation or hover state.
package widgets

import "github.com/go-drift/novelui/pkg/tree"

// singleChild wraps an optional child in a child slice.
func singleChild(child tree.Widget) []tree.Widget {
	if child == nil {
		return nil
	}
	return []tree.Widget{child}
}

// firstChild returns a render object's first child, or nil.
func firstChild(ro tree.RenderObject) tree.RenderObject {
	if children := ro.Children(); len(children) > 0 {
		return children[0]
	}
	return nil
}
