package tree

import (
	"sort"

	"github.com/go-drift/novelui/pkg/errors"
)

// Reconcile applies a diff result to a live render object, mutating it and
// its children in place so they match the new widget configuration.
//
// Operations are reordered into a fixed phase order regardless of the
// sequence the differ emitted them, so structural edits can never invalidate
// each other's indices:
//
//  1. Removes, in descending index order.
//  2. Replaces, in descending index order.
//  3. Moves and inserts. Every mover is taken out first (descending source
//     order), then movers and fresh subtrees are placed back in a single
//     pass, ascending by destination. The differ expresses destinations in
//     final-list coordinates; weaving both kinds of placement together keeps
//     those coordinates valid while the list is being built.
//  4. Updates (index 0 is the node itself, index > 0 is children[index-1]).
//     The widget argument is the new configuration for the node itself and
//     is applied by the index-0 update.
//
// After the last phase every nested child diff is reconciled recursively
// with the same procedure. Reconciling an empty diff is a no-op: no dirty
// flags are touched and no lifecycle hooks run.
//
// A diff whose indices do not match the tree it was computed for is a
// programming error and panics; there are no recoverable failures here.
func Reconcile(ro RenderObject, widget Widget, diff *DiffResult) {
	if diff == nil || !diff.HasChanges() {
		return
	}
	applyOperations(ro, widget, diff.Operations)
	reconcileChildren(ro, diff.ChildDiffs)
}

func applyOperations(ro RenderObject, self Widget, operations []DiffOperation) {
	var removes []int
	var replaces, inserts, updates []DiffOperation
	var moves []DiffOperation

	for _, op := range operations {
		switch op.Kind {
		case OpRemove:
			removes = append(removes, op.Index)
		case OpReplace:
			replaces = append(replaces, op)
		case OpMove:
			moves = append(moves, op)
		case OpInsert:
			inserts = append(inserts, op)
		case OpUpdate:
			updates = append(updates, op)
		case OpNone:
			// untouched position
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(removes)))
	for _, index := range removes {
		removeChild(ro, index)
	}

	sort.Slice(replaces, func(i, j int) bool { return replaces[i].Index > replaces[j].Index })
	for _, op := range replaces {
		replaceChild(ro, op.Index, op.Widget)
	}

	placements := takeMovers(ro, moves, removes)
	for _, op := range inserts {
		placements = append(placements, placement{to: op.Index, widget: op.Widget})
	}
	sort.Slice(placements, func(i, j int) bool { return placements[i].to < placements[j].to })
	for _, p := range placements {
		errors.Assertf(p.to <= len(ro.Children()),
			"tree.Reconcile", "destination %d exceeds %d children", p.to, len(ro.Children()))
		child := p.child
		if child == nil {
			child = BuildTree(p.widget)
		}
		ro.InsertChild(p.to, child)
	}

	for _, op := range updates {
		if op.Index == 0 {
			widget := op.Widget
			if self != nil {
				widget = self
			}
			updateRenderObject(ro, widget)
			continue
		}
		children := ro.Children()
		errors.Assertf(op.Index-1 < len(children),
			"tree.Reconcile", "update index %d exceeds %d children", op.Index, len(children))
		updateRenderObject(children[op.Index-1], op.Widget)
	}
}

// removeChild unmounts the subtree at index (children before parent) and
// detaches it from the parent's child list.
func removeChild(ro RenderObject, index int) {
	children := ro.Children()
	errors.Assertf(index < len(children),
		"tree.Reconcile", "remove index %d exceeds %d children", index, len(children))
	unmountRecursive(children[index])
	ro.RemoveChild(index)
}

// replaceChild atomically swaps the subtree at index: unmount the old one,
// build and mount a fresh tree from the widget, swap it into the slot.
func replaceChild(ro RenderObject, index int, widget Widget) {
	children := ro.Children()
	errors.Assertf(index < len(children),
		"tree.Reconcile", "replace index %d exceeds %d children", index, len(children))
	unmountRecursive(children[index])
	ro.ReplaceChild(index, BuildTree(widget))
}

// placement is one pending addition to the child list: either a detached
// mover awaiting its new slot or a widget to build a fresh subtree from.
type placement struct {
	to     int
	child  RenderObject
	widget Widget
}

// takeMovers detaches every moving child in descending source order and
// returns them tagged with their destinations. Source indices in the diff
// refer to the child list before the remove phase ran, so they are shifted
// down by the number of already-removed slots below them.
func takeMovers(ro RenderObject, moves []DiffOperation, removed []int) []placement {
	if len(moves) == 0 {
		return nil
	}

	adjust := func(from int) int {
		shift := 0
		for _, r := range removed {
			if r < from {
				shift++
			}
		}
		return from - shift
	}

	sort.Slice(moves, func(i, j int) bool { return moves[i].Index > moves[j].Index })

	taken := make([]placement, 0, len(moves))
	for _, op := range moves {
		from := adjust(op.Index)
		errors.Assertf(from >= 0 && from < len(ro.Children()),
			"tree.Reconcile", "move source %d exceeds %d children", from, len(ro.Children()))
		taken = append(taken, placement{to: op.To, child: ro.RemoveChild(from)})
	}
	return taken
}

// updateRenderObject applies the widget configuration onto the node,
// invokes its update hook, and conservatively invalidates both layout and
// paint.
func updateRenderObject(ro RenderObject, widget Widget) {
	widget.UpdateRenderObject(ro)
	ro.OnUpdate()
	ro.MarkNeedsLayout()
	ro.MarkNeedsPaint()
}

// reconcileChildren recursively applies nested diffs to the (already
// structurally updated) children, repeating the full phase ordering at each
// level.
func reconcileChildren(ro RenderObject, childDiffs []ChildDiff) {
	for _, cd := range childDiffs {
		children := ro.Children()
		errors.Assertf(cd.Index < len(children),
			"tree.Reconcile", "child diff index %d exceeds %d children", cd.Index, len(children))
		child := children[cd.Index]
		applyOperations(child, nil, cd.Diff.Operations)
		reconcileChildren(child, cd.Diff.ChildDiffs)
	}
}

// mountRecursive mounts a subtree, parent strictly before children.
func mountRecursive(ro RenderObject) {
	ro.OnMount()
	for _, child := range ro.Children() {
		mountRecursive(child)
	}
}

// unmountRecursive unmounts a subtree, children (in reverse order) strictly
// before the parent.
func unmountRecursive(ro RenderObject) {
	children := ro.Children()
	for i := len(children) - 1; i >= 0; i-- {
		unmountRecursive(children[i])
	}
	ro.OnUnmount()
}

// BuildTree constructs the render object tree for a widget and mounts it.
// Used for initial construction and for replaced subtrees, where there is
// nothing to diff against.
func BuildTree(widget Widget) RenderObject {
	ro := widget.CreateRenderObject()
	mountRecursive(ro)
	return ro
}

// ReplaceSubtree unmounts an old render tree and builds a mounted
// replacement from the widget. Used when DiffWidget reports that the node
// cannot be updated in place.
func ReplaceSubtree(old RenderObject, widget Widget) RenderObject {
	unmountRecursive(old)
	return BuildTree(widget)
}
