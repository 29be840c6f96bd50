package tree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/novelui/pkg/tree"
	"github.com/go-drift/novelui/pkg/uitest"
)

// staticWidget is a second widget type for type-mismatch cases.
type staticWidget struct {
	WidgetKey tree.Key
}

func (s staticWidget) Key() tree.Key                       { return s.WidgetKey }
func (s staticWidget) Children() []tree.Widget             { return nil }
func (s staticWidget) CreateRenderObject() tree.RenderObject { return tree.NewEmptyRenderObject() }
func (s staticWidget) UpdateRenderObject(tree.RenderObject)  {}
func (s staticWidget) ShouldUpdate(tree.Widget) bool         { return false }

func plain(tag string, items ...tree.Widget) uitest.Probe {
	return uitest.Probe{Tag: tag, Items: items}
}

func keyed(id int, tag string, items ...tree.Widget) uitest.Probe {
	return uitest.Probe{WidgetKey: tree.IntKey(id), Tag: tag, Items: items}
}

// opStrings projects the operations for comparison.
func opStrings(result *tree.DiffResult) []string {
	var ops []string
	for _, op := range result.Operations {
		ops = append(ops, op.String())
	}
	return ops
}

func TestDiffWidget_TypeMismatchReturnsNil(t *testing.T) {
	if diff := tree.DiffWidget(plain("a"), staticWidget{}); diff != nil {
		t.Fatalf("expected nil diff for differing types, got %+v", diff)
	}
}

func TestDiffWidget_KeyMismatchReturnsNil(t *testing.T) {
	if diff := tree.DiffWidget(keyed(1, "a"), keyed(2, "a")); diff != nil {
		t.Fatalf("expected nil diff for differing keys, got %+v", diff)
	}
}

func TestDiffWidget_OneSidedKeyStillMatches(t *testing.T) {
	diff := tree.DiffWidget(plain("a"), keyed(1, "a"))
	if diff == nil {
		t.Fatal("expected in-place diff when only one side carries a key")
	}
}

func TestDiffWidget_NoChanges(t *testing.T) {
	diff := tree.DiffWidget(plain("a", plain("b")), plain("a", plain("b")))
	if diff == nil {
		t.Fatal("expected non-nil diff")
	}
	if diff.HasChanges() {
		t.Errorf("expected empty diff, got ops %v childDiffs %v", opStrings(diff), diff.ChildDiffs)
	}
}

func TestDiffWidget_SelfUpdate(t *testing.T) {
	diff := tree.DiffWidget(plain("a"), plain("b"))
	want := []string{"update(0)"}
	if got := opStrings(diff); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
	if diff.Operations[0].Widget.(uitest.Probe).Tag != "b" {
		t.Error("update op should carry the new widget")
	}
}

func TestDiffWidget_TailInsertsAscending(t *testing.T) {
	old := plain("r", plain("a"), plain("b"))
	updated := plain("r", plain("a"), plain("b"), plain("c"), plain("d"))
	diff := tree.DiffWidget(old, updated)
	want := []string{"insert(2)", "insert(3)"}
	if got := opStrings(diff); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDiffWidget_TailRemovesDescending(t *testing.T) {
	old := plain("r", plain("a"), plain("b"), plain("c"), plain("d"))
	updated := plain("r", plain("a"), plain("b"))
	diff := tree.DiffWidget(old, updated)
	want := []string{"remove(3)", "remove(2)"}
	if got := opStrings(diff); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDiffWidget_IndexedTypeChangeReplaces(t *testing.T) {
	old := plain("r", plain("a"), plain("b"))
	updated := plain("r", plain("a"), staticWidget{})
	diff := tree.DiffWidget(old, updated)
	want := []string{"replace(1)"}
	if got := opStrings(diff); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDiffWidget_NestedChangeRecordedAsChildDiff(t *testing.T) {
	old := plain("r", plain("a", plain("x")))
	updated := plain("r", plain("a", plain("y")))
	diff := tree.DiffWidget(old, updated)
	if len(diff.Operations) != 0 {
		t.Fatalf("expected no operations at root, got %v", opStrings(diff))
	}
	if len(diff.ChildDiffs) != 1 || diff.ChildDiffs[0].Index != 0 {
		t.Fatalf("expected one child diff at index 0, got %+v", diff.ChildDiffs)
	}
	nested := diff.ChildDiffs[0].Diff
	if len(nested.ChildDiffs) != 1 {
		t.Fatalf("expected grandchild diff, got %+v", nested)
	}
	want := []string{"update(0)"}
	if got := opStrings(nested.ChildDiffs[0].Diff); !cmp.Equal(got, want) {
		t.Errorf("grandchild ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDiffWidget_KeyedReorderEmitsMoves(t *testing.T) {
	old := plain("r", keyed(1, "a"), keyed(2, "b"), keyed(3, "c"))
	updated := plain("r", keyed(3, "c"), keyed(1, "a"), keyed(2, "b"))
	diff := tree.DiffWidget(old, updated)
	want := []string{"move(2->0)", "move(0->1)", "move(1->2)"}
	if got := opStrings(diff); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDiffWidget_KeyedSwapOptimizedToReplace(t *testing.T) {
	// The unmatched old child is removed and the unmatched new child
	// inserted at the same index; Optimize folds the pair into a replace.
	old := plain("r", keyed(1, "a"))
	updated := plain("r", keyed(2, "b"))
	diff := tree.DiffWidget(old, updated)
	want := []string{"replace(0)"}
	if got := opStrings(diff); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestDiffWidget_KeyedNestedDiffRecordedUnderNewIndex(t *testing.T) {
	old := plain("r", keyed(1, "a"), keyed(2, "b"))
	newW := plain("r", keyed(2, "b2"), keyed(1, "a"))
	diff := tree.DiffWidget(old, newW)
	if len(diff.ChildDiffs) != 1 {
		t.Fatalf("expected one child diff, got %+v", diff.ChildDiffs)
	}
	// Key 2 changed configuration and now sits at new index 0.
	if diff.ChildDiffs[0].Index != 0 {
		t.Errorf("nested diff should use the new index, got %d", diff.ChildDiffs[0].Index)
	}
}

func TestDiffWidget_DuplicateKeysFirstMatchWins(t *testing.T) {
	old := plain("r", keyed(1, "a"), keyed(1, "b"))
	updated := plain("r", keyed(1, "c"))
	diff := tree.DiffWidget(old, updated)
	want := []string{"remove(1)"}
	if got := opStrings(diff); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
	if len(diff.ChildDiffs) != 1 || diff.ChildDiffs[0].Index != 0 {
		t.Fatalf("expected nested diff against the first duplicate, got %+v", diff.ChildDiffs)
	}
}

func TestDiffResult_OptimizeMergesAcrossNesting(t *testing.T) {
	result := &tree.DiffResult{
		Operations: []tree.DiffOperation{
			{Kind: tree.OpRemove, Index: 2},
			{Kind: tree.OpInsert, Index: 2, Widget: plain("x")},
		},
		ChildDiffs: []tree.ChildDiff{{
			Index: 0,
			Diff: &tree.DiffResult{
				Operations: []tree.DiffOperation{
					{Kind: tree.OpRemove, Index: 0},
					{Kind: tree.OpInsert, Index: 0, Widget: plain("y")},
				},
			},
		}},
	}
	result.Optimize()
	want := []string{"replace(2)"}
	if got := opStrings(result); !cmp.Equal(got, want) {
		t.Errorf("ops mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
	wantNested := []string{"replace(0)"}
	if got := opStrings(result.ChildDiffs[0].Diff); !cmp.Equal(got, wantNested) {
		t.Errorf("nested ops mismatch (-want +got):\n%s", cmp.Diff(wantNested, got))
	}
}
