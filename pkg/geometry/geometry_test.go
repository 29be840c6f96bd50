package geometry

import (
	"math"
	"testing"
)

func TestRectContainsEdges(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)

	cases := []struct {
		name  string
		point Offset
		want  bool
	}{
		{"inside", Offset{X: 15, Y: 25}, true},
		{"left edge inclusive", Offset{X: 10, Y: 25}, true},
		{"top edge inclusive", Offset{X: 15, Y: 20}, true},
		{"right edge exclusive", Offset{X: 40, Y: 25}, false},
		{"bottom edge exclusive", Offset{X: 15, Y: 60}, false},
		{"outside left", Offset{X: 9, Y: 25}, false},
		{"corner top-left", Offset{X: 10, Y: 20}, true},
		{"corner bottom-right", Offset{X: 40, Y: 60}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.point); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.point, got, tc.want)
		}
	}
}

func TestRectIntersectAndUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 50, 100, 100)

	got := a.Intersect(b)
	want := Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}

	if !a.Intersect(RectFromLTWH(200, 200, 10, 10)).IsEmpty() {
		t.Error("disjoint rects should intersect to empty")
	}

	union := a.Union(b)
	if union != (Rect{Left: 0, Top: 0, Right: 150, Bottom: 150}) {
		t.Errorf("Union = %v", union)
	}
}

func TestRectTranslateAndCenter(t *testing.T) {
	r := RectFromLTWH(10, 10, 20, 20)
	moved := r.Translate(5, -5)
	if moved != (Rect{Left: 15, Top: 5, Right: 35, Bottom: 25}) {
		t.Errorf("Translate = %v", moved)
	}
	if c := r.Center(); c != (Offset{X: 20, Y: 20}) {
		t.Errorf("Center = %v", c)
	}
}

func TestOffsetDistance(t *testing.T) {
	a := Offset{X: 0, Y: 0}
	b := Offset{X: 3, Y: 4}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestConstraintsConstrain(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 20, MaxHeight: 50}

	cases := []struct {
		in, want Size
	}{
		{Size{Width: 50, Height: 30}, Size{Width: 50, Height: 30}},
		{Size{Width: 5, Height: 30}, Size{Width: 10, Height: 30}},
		{Size{Width: 200, Height: 30}, Size{Width: 100, Height: 30}},
		{Size{Width: 50, Height: 5}, Size{Width: 50, Height: 20}},
		{Size{Width: 50, Height: 80}, Size{Width: 50, Height: 50}},
	}
	for _, tc := range cases {
		if got := c.Constrain(tc.in); got != tc.want {
			t.Errorf("Constrain(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestConstraintsTightAndLoose(t *testing.T) {
	size := Size{Width: 100, Height: 50}

	tight := Tight(size)
	if !tight.IsTight() {
		t.Error("Tight constraints should report IsTight")
	}
	if tight.Smallest() != size || tight.Biggest() != size {
		t.Errorf("tight bounds: smallest %v biggest %v", tight.Smallest(), tight.Biggest())
	}

	loose := Loose(size)
	if loose.IsTight() {
		t.Error("Loose constraints should not report IsTight")
	}
	if loose.Smallest() != (Size{}) || loose.Biggest() != size {
		t.Errorf("loose bounds: smallest %v biggest %v", loose.Smallest(), loose.Biggest())
	}

	if tight.Loosen() != loose {
		t.Errorf("Loosen = %v, want %v", tight.Loosen(), loose)
	}
}

func TestConstraintsUnbounded(t *testing.T) {
	u := Unbounded()
	if u.HasBoundedWidth() || u.HasBoundedHeight() {
		t.Error("unbounded constraints should not report bounded axes")
	}
	if !math.IsInf(u.MaxWidth, 1) || !math.IsInf(u.MaxHeight, 1) {
		t.Errorf("unbounded maxima = %v x %v", u.MaxWidth, u.MaxHeight)
	}
}

func TestConstraintsDeflate(t *testing.T) {
	c := Loose(Size{Width: 100, Height: 100})
	got := c.Deflate(InsetsAll(10))
	if got.MaxWidth != 80 || got.MaxHeight != 80 {
		t.Errorf("deflated maxima = %v x %v, want 80 x 80", got.MaxWidth, got.MaxHeight)
	}
	if got.MinWidth != 0 || got.MinHeight != 0 {
		t.Errorf("deflated minima = %v x %v", got.MinWidth, got.MinHeight)
	}

	// Insets larger than the space clamp to zero instead of going negative.
	tiny := Loose(Size{Width: 10, Height: 10}).Deflate(InsetsAll(20))
	if tiny.MaxWidth < 0 || tiny.MaxHeight < 0 {
		t.Errorf("over-deflated maxima = %v x %v", tiny.MaxWidth, tiny.MaxHeight)
	}
}

func TestEdgeInsets(t *testing.T) {
	e := EdgeInsets{Left: 1, Top: 2, Right: 3, Bottom: 4}
	if e.Horizontal() != 4 || e.Vertical() != 6 {
		t.Errorf("Horizontal = %v Vertical = %v", e.Horizontal(), e.Vertical())
	}
	if !InsetsAll(0).IsZero() || e.IsZero() {
		t.Error("IsZero misreported")
	}
	if InsetsSymmetric(5, 8) != (EdgeInsets{Left: 5, Top: 8, Right: 5, Bottom: 8}) {
		t.Errorf("InsetsSymmetric = %v", InsetsSymmetric(5, 8))
	}
}

func TestAlignmentResolve(t *testing.T) {
	parent := Size{Width: 100, Height: 100}
	child := Size{Width: 20, Height: 10}

	cases := []struct {
		name  string
		align Alignment
		want  Offset
	}{
		{"top-left", AlignTopLeft, Offset{X: 0, Y: 0}},
		{"center", AlignCenter, Offset{X: 40, Y: 45}},
		{"bottom-right", AlignBottomRight, Offset{X: 80, Y: 90}},
		{"bottom-center", AlignBottomCenter, Offset{X: 40, Y: 90}},
	}
	for _, tc := range cases {
		if got := tc.align.Resolve(parent, child); got != tc.want {
			t.Errorf("%s: Resolve = %v, want %v", tc.name, got, tc.want)
		}
	}
}
