package tree

import "fmt"

// DiffOpKind identifies the variant of a DiffOperation.
type DiffOpKind int

const (
	// OpInsert creates and mounts a new subtree at Index.
	OpInsert DiffOpKind = iota
	// OpRemove unmounts and detaches the subtree at Index.
	OpRemove
	// OpUpdate re-applies widget configuration: Index 0 targets the node
	// the diff was computed for, Index > 0 targets children[Index-1].
	OpUpdate
	// OpMove relocates the child at Index to position To.
	OpMove
	// OpReplace atomically swaps the subtree at Index for a fresh one.
	OpReplace
	// OpNone records an untouched position.
	OpNone
)

// String returns a human-readable representation of the operation kind.
func (k DiffOpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpUpdate:
		return "update"
	case OpMove:
		return "move"
	case OpReplace:
		return "replace"
	case OpNone:
		return "none"
	default:
		return fmt.Sprintf("DiffOpKind(%d)", int(k))
	}
}

// DiffOperation is one edit in the script produced by the differ. It is
// scoped to a single diff/reconcile pass and never persisted.
type DiffOperation struct {
	Kind DiffOpKind
	// Index is the target child index; for OpMove it is the source index.
	Index int
	// To is the destination index for OpMove.
	To int
	// Widget is the new configuration for Insert/Update/Move/Replace.
	Widget Widget
}

func (op DiffOperation) String() string {
	if op.Kind == OpMove {
		return fmt.Sprintf("move(%d->%d)", op.Index, op.To)
	}
	return fmt.Sprintf("%s(%d)", op.Kind, op.Index)
}

// ChildDiff pairs a child index with that child's own nested diff.
type ChildDiff struct {
	Index int
	Diff  *DiffResult
}

// DiffResult is the edit script for one tree level plus the nested results
// for children that can be updated in place, letting the reconciler apply
// changes level by level without re-deriving structure.
type DiffResult struct {
	Operations []DiffOperation
	ChildDiffs []ChildDiff
}

// HasChanges reports whether the result contains any work.
func (r *DiffResult) HasChanges() bool {
	return len(r.Operations) > 0 || len(r.ChildDiffs) > 0
}

// Optimize merges adjacent Remove+Insert pairs at the same index into a
// single atomic Replace, recursively through nested child diffs.
func (r *DiffResult) Optimize() {
	if len(r.Operations) >= 2 {
		optimized := make([]DiffOperation, 0, len(r.Operations))
		for i := 0; i < len(r.Operations); i++ {
			op := r.Operations[i]
			if op.Kind == OpRemove && i+1 < len(r.Operations) {
				next := r.Operations[i+1]
				if next.Kind == OpInsert && next.Index == op.Index {
					optimized = append(optimized, DiffOperation{
						Kind:   OpReplace,
						Index:  op.Index,
						Widget: next.Widget,
					})
					i++
					continue
				}
			}
			optimized = append(optimized, op)
		}
		r.Operations = optimized
	}
	for _, child := range r.ChildDiffs {
		child.Diff.Optimize()
	}
}

// DiffWidget compares the configuration a live render object was built from
// (old) against a candidate replacement (new) at the same tree position.
//
// It returns nil when the render object cannot be updated in place — the
// types differ, or both widgets carry keys and the keys differ — in which
// case the caller must replace the entire subtree. Otherwise it returns the
// edit script; the script contains an Update entry iff new.ShouldUpdate(old)
// reports true.
func DiffWidget(old, new Widget) *DiffResult {
	if widgetType(old) != widgetType(new) {
		return nil
	}
	oldKey, newKey := old.Key(), new.Key()
	if !oldKey.IsZero() && !newKey.IsZero() && oldKey != newKey {
		return nil
	}

	ops, childDiffs := diffChildren(old.Children(), new.Children())

	result := &DiffResult{ChildDiffs: childDiffs}
	if new.ShouldUpdate(old) {
		result.Operations = append(result.Operations, DiffOperation{
			Kind:   OpUpdate,
			Index:  0,
			Widget: new,
		})
	}
	result.Operations = append(result.Operations, ops...)
	result.Optimize()
	return result
}

// diffChildren compares two ordered child lists. The strategy is chosen once
// per list comparison: keyed reconciliation when any child on either side
// carries a key, indexed reconciliation otherwise.
func diffChildren(oldChildren, newChildren []Widget) ([]DiffOperation, []ChildDiff) {
	if len(oldChildren) == 0 && len(newChildren) == 0 {
		return nil, nil
	}
	for _, w := range oldChildren {
		if !w.Key().IsZero() {
			return diffKeyedChildren(oldChildren, newChildren)
		}
	}
	for _, w := range newChildren {
		if !w.Key().IsZero() {
			return diffKeyedChildren(oldChildren, newChildren)
		}
	}
	return diffIndexedChildren(oldChildren, newChildren)
}

// diffIndexedChildren compares children position by position over the common
// prefix, then handles the tails: trailing inserts in ascending order,
// trailing removes in descending order so earlier removes don't shift the
// indices of later ones.
func diffIndexedChildren(oldChildren, newChildren []Widget) ([]DiffOperation, []ChildDiff) {
	var ops []DiffOperation
	var childDiffs []ChildDiff

	commonLen := min(len(oldChildren), len(newChildren))
	for i := 0; i < commonLen; i++ {
		if diff := DiffWidget(oldChildren[i], newChildren[i]); diff != nil {
			if diff.HasChanges() {
				childDiffs = append(childDiffs, ChildDiff{Index: i, Diff: diff})
			}
		} else {
			ops = append(ops, DiffOperation{Kind: OpReplace, Index: i, Widget: newChildren[i]})
		}
	}

	for i := len(oldChildren); i < len(newChildren); i++ {
		ops = append(ops, DiffOperation{Kind: OpInsert, Index: i, Widget: newChildren[i]})
	}
	for i := len(oldChildren) - 1; i >= len(newChildren); i-- {
		ops = append(ops, DiffOperation{Kind: OpRemove, Index: i})
	}
	return ops, childDiffs
}

// diffKeyedChildren matches children by key with a single greedy pass.
//
// This is an O(n) heuristic, not a minimal LCS edit script: every matched
// child whose index changed gets a Move, which can over-move under complex
// reorderings. Duplicate keys within one list are undefined behavior; the
// map keeps the first occurrence, so first match wins. Nested diffs are
// recorded under the child's NEW index, where the reconciler will find the
// child after the structural phases ran.
func diffKeyedChildren(oldChildren, newChildren []Widget) ([]DiffOperation, []ChildDiff) {
	var ops []DiffOperation
	var childDiffs []ChildDiff

	oldByKey := make(map[Key]int, len(oldChildren))
	for i, w := range oldChildren {
		key := w.Key()
		if key.IsZero() {
			continue
		}
		if _, exists := oldByKey[key]; !exists {
			oldByKey[key] = i
		}
	}

	matched := make(map[int]bool, len(oldChildren))
	newToOld := make([]int, len(newChildren))
	for i := range newToOld {
		newToOld[i] = -1
	}

	for newIdx, newChild := range newChildren {
		key := newChild.Key()
		if key.IsZero() {
			continue
		}
		oldIdx, ok := oldByKey[key]
		if !ok || matched[oldIdx] {
			continue
		}
		oldChild := oldChildren[oldIdx]
		if widgetType(oldChild) != widgetType(newChild) {
			continue
		}
		matched[oldIdx] = true
		newToOld[newIdx] = oldIdx

		if diff := DiffWidget(oldChild, newChild); diff != nil && diff.HasChanges() {
			childDiffs = append(childDiffs, ChildDiff{Index: newIdx, Diff: diff})
		}
	}

	// Unmatched old children are removed, descending so indices stay valid.
	for oldIdx := len(oldChildren) - 1; oldIdx >= 0; oldIdx-- {
		if !matched[oldIdx] {
			ops = append(ops, DiffOperation{Kind: OpRemove, Index: oldIdx})
		}
	}

	// Matched children that shifted are moved; unmatched new children are
	// inserted, both emitted in ascending new-index order.
	for newIdx, newChild := range newChildren {
		oldIdx := newToOld[newIdx]
		switch {
		case oldIdx < 0:
			ops = append(ops, DiffOperation{Kind: OpInsert, Index: newIdx, Widget: newChild})
		case oldIdx != newIdx:
			ops = append(ops, DiffOperation{Kind: OpMove, Index: oldIdx, To: newIdx, Widget: newChild})
		}
	}

	return ops, childDiffs
}
