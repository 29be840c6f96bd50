package widgets

import (
	"math"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Axis is the main direction of a flex layout.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// MainAxisAlignment distributes free space along the main axis.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// CrossAxisAlignment positions children across the main axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
	CrossStretch
)

// Row lays out its items horizontally.
//
//	Row{Items: []tree.Widget{icon, HSpace(8), label}}
type Row struct {
	WidgetKey      tree.Key
	MainAlignment  MainAxisAlignment
	CrossAlignment CrossAxisAlignment
	Spacing        float64
	Items          []tree.Widget
}

func (r Row) Key() tree.Key { return r.WidgetKey }

func (r Row) Children() []tree.Widget { return r.Items }

func (r Row) CreateRenderObject() tree.RenderObject {
	flex := tree.Init(&renderFlex{
		axis:  AxisHorizontal,
		main:  r.MainAlignment,
		cross: r.CrossAlignment,
		gap:   r.Spacing,
	})
	flex.SetChildren(tree.CreateChildRenderObjects(r))
	return flex
}

func (r Row) UpdateRenderObject(ro tree.RenderObject) {
	if flex, ok := ro.(*renderFlex); ok {
		flex.main = r.MainAlignment
		flex.cross = r.CrossAlignment
		flex.gap = r.Spacing
	}
}

func (r Row) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Row)
	return !ok || o.MainAlignment != r.MainAlignment ||
		o.CrossAlignment != r.CrossAlignment || o.Spacing != r.Spacing
}

// Column lays out its items vertically.
type Column struct {
	WidgetKey      tree.Key
	MainAlignment  MainAxisAlignment
	CrossAlignment CrossAxisAlignment
	Spacing        float64
	Items          []tree.Widget
}

func (c Column) Key() tree.Key { return c.WidgetKey }

func (c Column) Children() []tree.Widget { return c.Items }

func (c Column) CreateRenderObject() tree.RenderObject {
	flex := tree.Init(&renderFlex{
		axis:  AxisVertical,
		main:  c.MainAlignment,
		cross: c.CrossAlignment,
		gap:   c.Spacing,
	})
	flex.SetChildren(tree.CreateChildRenderObjects(c))
	return flex
}

func (c Column) UpdateRenderObject(ro tree.RenderObject) {
	if flex, ok := ro.(*renderFlex); ok {
		flex.main = c.MainAlignment
		flex.cross = c.CrossAlignment
		flex.gap = c.Spacing
	}
}

func (c Column) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Column)
	return !ok || o.MainAlignment != c.MainAlignment ||
		o.CrossAlignment != c.CrossAlignment || o.Spacing != c.Spacing
}

// Expanded makes its child fill a share of the free space along a Row or
// Column's main axis, proportional to Flex (default 1).
type Expanded struct {
	WidgetKey tree.Key
	Flex      int
	Child     tree.Widget
}

func (e Expanded) Key() tree.Key { return e.WidgetKey }

func (e Expanded) Children() []tree.Widget { return singleChild(e.Child) }

func (e Expanded) CreateRenderObject() tree.RenderObject {
	item := tree.Init(&renderFlexItem{flex: e.factor()})
	item.SetChildren(tree.CreateChildRenderObjects(e))
	return item
}

func (e Expanded) UpdateRenderObject(ro tree.RenderObject) {
	if item, ok := ro.(*renderFlexItem); ok {
		item.flex = e.factor()
	}
}

func (e Expanded) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Expanded)
	return !ok || o.factor() != e.factor()
}

func (e Expanded) factor() int {
	if e.Flex <= 0 {
		return 1
	}
	return e.Flex
}

type renderFlexItem struct {
	tree.RenderBase
	flex int
}

// FlexFactor is read by the enclosing flex layout.
func (r *renderFlexItem) FlexFactor() int { return r.flex }

func (r *renderFlexItem) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	child := firstChild(r)
	if child == nil {
		return constraints.Smallest()
	}
	size := child.Layout(constraints, measurer)
	child.SetOffset(geometry.Offset{})
	return size
}

type flexFactored interface {
	FlexFactor() int
}

type renderFlex struct {
	tree.RenderBase
	axis  Axis
	main  MainAxisAlignment
	cross CrossAxisAlignment
	gap   float64
}

func (r *renderFlex) mainOf(s geometry.Size) float64 {
	if r.axis == AxisHorizontal {
		return s.Width
	}
	return s.Height
}

func (r *renderFlex) crossOf(s geometry.Size) float64 {
	if r.axis == AxisHorizontal {
		return s.Height
	}
	return s.Width
}

func (r *renderFlex) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	children := r.Children()
	if len(children) == 0 {
		return constraints.Smallest()
	}

	maxMain := constraints.MaxWidth
	maxCross := constraints.MaxHeight
	crossBounded := constraints.HasBoundedHeight()
	if r.axis == AxisVertical {
		maxMain = constraints.MaxHeight
		maxCross = constraints.MaxWidth
		crossBounded = constraints.HasBoundedWidth()
	}

	crossMin := 0.0
	if r.cross == CrossStretch && crossBounded {
		crossMin = maxCross
	}

	// First pass: size the inflexible children along an unbounded main axis.
	totalFlex := 0
	usedMain := r.gap * float64(len(children)-1)
	crossExtent := crossMin
	for _, child := range children {
		if f, ok := child.(flexFactored); ok && f.FlexFactor() > 0 {
			totalFlex += f.FlexFactor()
			continue
		}
		size := child.Layout(r.childConstraints(math.Inf(1), crossMin, maxCross), measurer)
		usedMain += r.mainOf(size)
		if c := r.crossOf(size); c > crossExtent {
			crossExtent = c
		}
	}

	// Second pass: divide the remaining main extent among flexible children.
	if totalFlex > 0 {
		free := maxMain - usedMain
		if free < 0 || math.IsInf(free, 1) {
			free = 0
		}
		perFlex := free / float64(totalFlex)
		for _, child := range children {
			f, ok := child.(flexFactored)
			if !ok || f.FlexFactor() <= 0 {
				continue
			}
			extent := perFlex * float64(f.FlexFactor())
			size := child.Layout(r.childConstraints(extent, crossMin, maxCross), measurer)
			usedMain += r.mainOf(size)
			if c := r.crossOf(size); c > crossExtent {
				crossExtent = c
			}
		}
	}

	mainExtent := usedMain
	if totalFlex > 0 || r.main != MainStart {
		// Distribution needs the full extent when bounded.
		if !math.IsInf(maxMain, 1) {
			mainExtent = maxMain
		}
	}
	if mainExtent < usedMain {
		mainExtent = usedMain
	}

	// Position children along the main axis.
	lead, between := r.distribute(mainExtent-usedMain, len(children))
	pos := lead
	for _, child := range children {
		crossPos := 0.0
		switch r.cross {
		case CrossCenter:
			crossPos = (crossExtent - r.crossOf(child.Size())) / 2
		case CrossEnd:
			crossPos = crossExtent - r.crossOf(child.Size())
		}
		if r.axis == AxisHorizontal {
			child.SetOffset(geometry.Offset{X: pos, Y: crossPos})
		} else {
			child.SetOffset(geometry.Offset{X: crossPos, Y: pos})
		}
		pos += r.mainOf(child.Size()) + between
	}

	var size geometry.Size
	if r.axis == AxisHorizontal {
		size = geometry.Size{Width: mainExtent, Height: crossExtent}
	} else {
		size = geometry.Size{Width: crossExtent, Height: mainExtent}
	}
	return constraints.Constrain(size)
}

// childConstraints builds the constraints for one child. An infinite
// mainExtent leaves the main axis free; otherwise it is tight.
func (r *renderFlex) childConstraints(mainExtent, crossMin, crossMax float64) geometry.Constraints {
	mainMin, mainMax := 0.0, math.Inf(1)
	if !math.IsInf(mainExtent, 1) {
		mainMin, mainMax = mainExtent, mainExtent
	}
	if r.axis == AxisHorizontal {
		return geometry.Constraints{
			MinWidth: mainMin, MaxWidth: mainMax,
			MinHeight: crossMin, MaxHeight: crossMax,
		}
	}
	return geometry.Constraints{
		MinWidth: crossMin, MaxWidth: crossMax,
		MinHeight: mainMin, MaxHeight: mainMax,
	}
}

// distribute converts the free main-axis space left over after sizing into
// leading space and between-children spacing for the configured alignment.
// The configured gap is always preserved as a minimum.
func (r *renderFlex) distribute(free float64, count int) (lead, between float64) {
	between = r.gap
	if free <= 0 {
		return 0, between
	}
	switch r.main {
	case MainCenter:
		lead = free / 2
	case MainEnd:
		lead = free
	case MainSpaceBetween:
		if count > 1 {
			between += free / float64(count-1)
		}
	case MainSpaceAround:
		around := free / float64(count)
		lead = around / 2
		between += around
	case MainSpaceEvenly:
		evenly := free / float64(count+1)
		lead = evenly
		between += evenly
	}
	return lead, between
}
