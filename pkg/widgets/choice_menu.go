package widgets

import (
	"slices"

	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/theme"
	"github.com/go-drift/novelui/pkg/tree"
)

// ChoiceMenu presents a vertical list of options. The option under the
// pointer is highlighted; tapping one produces a events.MessageOptionSelect
// carrying the option's index and label.
type ChoiceMenu struct {
	WidgetKey tree.Key
	ID        string
	Options   []string
	Style     *theme.ChoiceMenuTheme
}

func (c ChoiceMenu) Key() tree.Key { return c.WidgetKey }

func (c ChoiceMenu) Children() []tree.Widget { return nil }

func (c ChoiceMenu) CreateRenderObject() tree.RenderObject {
	menu := tree.Init(&renderChoiceMenu{hovered: -1})
	c.apply(menu)
	return menu
}

func (c ChoiceMenu) UpdateRenderObject(ro tree.RenderObject) {
	if menu, ok := ro.(*renderChoiceMenu); ok {
		c.apply(menu)
		if menu.hovered >= len(menu.options) {
			menu.hovered = -1
		}
	}
}

func (c ChoiceMenu) apply(menu *renderChoiceMenu) {
	menu.id = c.ID
	menu.options = slices.Clone(c.Options)
	if c.Style != nil {
		menu.style = *c.Style
	} else {
		menu.style = theme.Default().ChoiceMenuOf()
	}
}

func (c ChoiceMenu) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(ChoiceMenu)
	if !ok {
		return true
	}
	if o.ID != c.ID || !slices.Equal(o.Options, c.Options) {
		return true
	}
	if (o.Style == nil) != (c.Style == nil) {
		return true
	}
	return o.Style != nil && *o.Style != *c.Style
}

type renderChoiceMenu struct {
	tree.RenderBase
	id      string
	options []string
	style   theme.ChoiceMenuTheme

	hovered    int
	itemHeight float64
}

func (r *renderChoiceMenu) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	r.itemHeight = measurer.LineHeight(r.style.TextStyle) + r.style.Padding.Vertical()

	var width float64
	for _, option := range r.options {
		if w := measurer.MeasureText(option, r.style.TextStyle).Width; w > width {
			width = w
		}
	}
	width += r.style.Padding.Horizontal()

	count := float64(len(r.options))
	height := count * r.itemHeight
	if count > 1 {
		height += (count - 1) * r.style.Spacing
	}
	return constraints.Constrain(geometry.Size{Width: width, Height: height})
}

func (r *renderChoiceMenu) PaintSelf(p graphics.Painter) {
	width := r.Size().Width
	y := 0.0
	for i, option := range r.options {
		background := r.style.ItemBackground
		if i == r.hovered {
			background = r.style.ItemHoverBackground
		}
		item := geometry.RectFromLTWH(0, y, width, r.itemHeight)
		if !background.IsTransparent() {
			p.DrawRRect(item, r.style.CornerRadius, graphics.Paint{
				Color: background,
				Style: graphics.PaintStyleFill,
				Alpha: 1,
			})
		}
		labelSize := p.MeasureText(option, r.style.TextStyle)
		p.DrawText(option, r.style.TextStyle, geometry.Offset{
			X: (width - labelSize.Width) / 2,
			Y: y + r.style.Padding.Top,
		})
		y += r.itemHeight + r.style.Spacing
	}
}

// indexAt maps a local position to the option row under it, or -1. Points in
// the spacing between rows miss.
func (r *renderChoiceMenu) indexAt(position geometry.Offset) int {
	if position.X < 0 || position.X >= r.Size().Width || position.Y < 0 {
		return -1
	}
	y := 0.0
	for i := range r.options {
		if position.Y >= y && position.Y < y+r.itemHeight {
			return i
		}
		y += r.itemHeight + r.style.Spacing
	}
	return -1
}

func (r *renderChoiceMenu) HitTest(position geometry.Offset) events.HitTestResult {
	if geometry.RectFromOffsetSize(geometry.Offset{}, r.Size()).Contains(position) {
		return events.Hit
	}
	return events.HitMiss
}

func (r *renderChoiceMenu) HandleEvent(event events.InputEvent) events.EventResult {
	switch event.Kind {
	case events.EventMouseMove:
		if hovered := r.indexAt(event.Position); hovered != r.hovered {
			r.hovered = hovered
			r.MarkNeedsPaint()
		}
		return events.Ignored()
	case events.EventTap:
		index := r.indexAt(event.Position)
		if index < 0 {
			return events.Ignored()
		}
		return events.Message(events.UIMessage{
			Kind:  events.MessageOptionSelect,
			ID:    r.id,
			Index: index,
			Label: r.options[index],
		})
	}
	return events.Ignored()
}
