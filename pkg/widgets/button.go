package widgets

import (
	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/theme"
	"github.com/go-drift/novelui/pkg/tree"
)

// Button is a tappable label. Activation is reported as a
// events.MessageButtonClick carrying the button's ID; the application reads
// it from UiTree.TakeMessages.
type Button struct {
	WidgetKey tree.Key
	ID        string
	Label     string
	Style     *theme.ButtonTheme
	Disabled  bool
}

func (b Button) Key() tree.Key { return b.WidgetKey }

func (b Button) Children() []tree.Widget { return nil }

func (b Button) CreateRenderObject() tree.RenderObject {
	button := tree.Init(&renderButton{})
	b.apply(button)
	return button
}

func (b Button) UpdateRenderObject(ro tree.RenderObject) {
	if button, ok := ro.(*renderButton); ok {
		b.apply(button)
	}
}

func (b Button) apply(button *renderButton) {
	button.id = b.ID
	button.label = b.Label
	button.disabled = b.Disabled
	if b.Style != nil {
		button.style = *b.Style
	} else {
		button.style = theme.Default().ButtonOf()
	}
}

func (b Button) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Button)
	return !ok || o != b
}

type renderButton struct {
	tree.RenderBase
	id       string
	label    string
	style    theme.ButtonTheme
	disabled bool
	hovered  bool
}

func (r *renderButton) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	labelSize := measurer.MeasureText(r.label, r.style.TextStyle)
	return constraints.Constrain(geometry.Size{
		Width:  labelSize.Width + r.style.Padding.Horizontal(),
		Height: labelSize.Height + r.style.Padding.Vertical(),
	})
}

func (r *renderButton) PaintSelf(p graphics.Painter) {
	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, r.Size())
	background := r.style.Background
	if r.hovered && !r.disabled {
		background = r.style.HoverBackground
	}
	p.DrawRRect(bounds, r.style.CornerRadius, graphics.Paint{
		Color: background,
		Style: graphics.PaintStyleFill,
		Alpha: 1,
	})
	labelSize := p.MeasureText(r.label, r.style.TextStyle)
	p.DrawText(r.label, r.style.TextStyle, geometry.Offset{
		X: (r.Size().Width - labelSize.Width) / 2,
		Y: (r.Size().Height - labelSize.Height) / 2,
	})
}

func (r *renderButton) HitTest(position geometry.Offset) events.HitTestResult {
	if r.contains(position) {
		return events.Hit
	}
	return events.HitMiss
}

func (r *renderButton) contains(position geometry.Offset) bool {
	return geometry.RectFromOffsetSize(geometry.Offset{}, r.Size()).Contains(position)
}

func (r *renderButton) HandleEvent(event events.InputEvent) events.EventResult {
	switch event.Kind {
	case events.EventMouseMove:
		hovered := r.contains(event.Position)
		if hovered != r.hovered {
			r.hovered = hovered
			r.MarkNeedsPaint()
		}
		return events.Ignored()
	case events.EventTap:
		if r.disabled || !r.contains(event.Position) {
			return events.Ignored()
		}
		return events.Message(events.UIMessage{
			Kind: events.MessageButtonClick,
			ID:   r.id,
		})
	}
	return events.Ignored()
}
