package widgets_test

import (
	"testing"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/tree"
	"github.com/go-drift/novelui/pkg/uitest"
	"github.com/go-drift/novelui/pkg/widgets"
)

func box(w, h float64) tree.Widget {
	return uitest.Probe{Width: w, Height: h}
}

func rootChildren(t *uitest.Tester) []tree.RenderObject {
	return t.Tree.Root().Children()
}

func TestRow_PositionsChildrenWithSpacing(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Row{
		Spacing: 10,
		Items:   []tree.Widget{box(100, 20), box(30, 30)},
	})

	children := rootChildren(tester)
	if got := children[0].Offset(); got != (geometry.Offset{}) {
		t.Errorf("first child offset = %v", got)
	}
	if got := children[1].Offset(); got != (geometry.Offset{X: 110, Y: 0}) {
		t.Errorf("second child offset = %v, want (110, 0)", got)
	}
	if got := tester.Tree.Size(); got != (geometry.Size{Width: 140, Height: 30}) {
		t.Errorf("row size = %v, want 140x30", got)
	}
}

func TestRow_MainCenterLeadsWithHalfTheFreeSpace(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Row{
		MainAlignment: widgets.MainCenter,
		Spacing:       10,
		Items:         []tree.Widget{box(100, 20), box(30, 30)},
	})

	// 800 wide surface, 140 of content: 330 on each side.
	children := rootChildren(tester)
	if got := children[0].Offset().X; got != 330 {
		t.Errorf("first child x = %v, want 330", got)
	}
	if got := children[1].Offset().X; got != 440 {
		t.Errorf("second child x = %v, want 440", got)
	}
}

func TestRow_SpaceBetween(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Row{
		MainAlignment: widgets.MainSpaceBetween,
		Items:         []tree.Widget{box(100, 20), box(30, 20)},
	})

	children := rootChildren(tester)
	if got := children[0].Offset().X; got != 0 {
		t.Errorf("first child x = %v, want 0", got)
	}
	if got := children[1].Offset().X; got != 770 {
		t.Errorf("second child x = %v, want flush right at 770", got)
	}
}

func TestRow_CrossCenter(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Row{
		CrossAlignment: widgets.CrossCenter,
		Items:          []tree.Widget{box(100, 20), box(30, 30)},
	})

	children := rootChildren(tester)
	if got := children[0].Offset().Y; got != 5 {
		t.Errorf("short child y = %v, want centered at 5", got)
	}
	if got := children[1].Offset().Y; got != 0 {
		t.Errorf("tall child y = %v, want 0", got)
	}
}

func TestColumn_StacksVertically(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Column{
		Spacing: 4,
		Items:   []tree.Widget{box(50, 10), box(50, 20)},
	})

	children := rootChildren(tester)
	if got := children[1].Offset(); got != (geometry.Offset{X: 0, Y: 14}) {
		t.Errorf("second child offset = %v, want (0, 14)", got)
	}
	if got := tester.Tree.Size(); got != (geometry.Size{Width: 50, Height: 34}) {
		t.Errorf("column size = %v, want 50x34", got)
	}
}

func TestColumn_ExpandedFillsFreeSpace(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Column{
		Items: []tree.Widget{
			box(100, 20),
			widgets.Expanded{Child: box(10, 10)},
		},
	})

	children := rootChildren(tester)
	// 600 tall surface minus the fixed 20.
	if got := children[1].Size().Height; got != 580 {
		t.Errorf("expanded child height = %v, want 580", got)
	}
	if got := children[1].Offset().Y; got != 20 {
		t.Errorf("expanded child y = %v, want 20", got)
	}
	if got := tester.Tree.Size().Height; got != 600 {
		t.Errorf("column height = %v, want the full surface", got)
	}
}

func TestRow_FlexFactorsShareProportionally(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Row{
		Items: []tree.Widget{
			widgets.Expanded{Flex: 1, Child: box(10, 10)},
			widgets.Expanded{Flex: 3, Child: box(10, 10)},
		},
	})

	children := rootChildren(tester)
	if got := children[0].Size().Width; got != 200 {
		t.Errorf("flex-1 width = %v, want 200", got)
	}
	if got := children[1].Size().Width; got != 600 {
		t.Errorf("flex-3 width = %v, want 600", got)
	}
}

func TestColumn_CrossStretchFillsWidth(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Column{
		CrossAlignment: widgets.CrossStretch,
		Items:          []tree.Widget{box(10, 10)},
	})

	if got := rootChildren(tester)[0].Size().Width; got != 800 {
		t.Errorf("stretched child width = %v, want 800", got)
	}
}
