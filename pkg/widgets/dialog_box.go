package widgets

import (
	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/theme"
	"github.com/go-drift/novelui/pkg/tree"
)

// DialogBox shows a line of dialog with a typewriter reveal. Text appears at
// RevealSpeed characters per second; a tap while revealing shows the rest
// immediately, and a tap on fully revealed text produces a
// events.MessageDialogConfirm so the script can advance.
//
// The reveal position lives in the render object. Updating the widget with
// new Content restarts the reveal; updating anything else (speaker, style)
// leaves it running.
type DialogBox struct {
	WidgetKey tree.Key
	ID        string
	Speaker   string
	Content   string
	Style     *theme.DialogBoxTheme
	// RevealSpeed overrides the theme's speed when positive.
	RevealSpeed float64
}

func (d DialogBox) Key() tree.Key { return d.WidgetKey }

func (d DialogBox) Children() []tree.Widget { return nil }

func (d DialogBox) CreateRenderObject() tree.RenderObject {
	box := tree.Init(&renderDialogBox{})
	d.apply(box)
	return box
}

func (d DialogBox) UpdateRenderObject(ro tree.RenderObject) {
	if box, ok := ro.(*renderDialogBox); ok {
		d.apply(box)
	}
}

func (d DialogBox) apply(box *renderDialogBox) {
	style := theme.Default().DialogBoxOf()
	if d.Style != nil {
		style = *d.Style
	}
	if d.RevealSpeed > 0 {
		style.RevealSpeed = d.RevealSpeed
	}
	box.id = d.ID
	box.speaker = d.Speaker
	box.style = style

	if d.Content != box.content {
		box.content = d.Content
		box.total = len([]rune(d.Content))
		box.revealed = 0
		if style.RevealSpeed <= 0 {
			box.revealed = float64(box.total)
		}
	}
}

func (d DialogBox) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(DialogBox)
	if !ok {
		return true
	}
	if o.ID != d.ID || o.Speaker != d.Speaker || o.Content != d.Content ||
		o.RevealSpeed != d.RevealSpeed {
		return true
	}
	if (o.Style == nil) != (d.Style == nil) {
		return true
	}
	return o.Style != nil && *o.Style != *d.Style
}

type renderDialogBox struct {
	tree.RenderBase
	id      string
	speaker string
	content string
	style   theme.DialogBoxTheme

	revealed float64 // rune count currently visible
	total    int

	lines      []string
	lineHeight float64
	nameHeight float64
}

// nameGap separates the speaker name from the dialog text.
const nameGap = 4.0

func (r *renderDialogBox) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	r.lineHeight = measurer.LineHeight(r.style.TextStyle)
	r.nameHeight = 0
	if r.speaker != "" {
		r.nameHeight = measurer.LineHeight(r.style.NameStyle) + nameGap
	}

	width := 600.0
	if constraints.HasBoundedWidth() {
		width = constraints.MaxWidth
	}
	textWidth := width - r.style.Padding.Horizontal()
	r.lines = WrapText(measurer, r.style.TextStyle, r.content, textWidth)

	height := r.style.Padding.Vertical() + r.nameHeight + float64(len(r.lines))*r.lineHeight
	return constraints.Constrain(geometry.Size{Width: width, Height: height})
}

func (r *renderDialogBox) PaintSelf(p graphics.Painter) {
	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, r.Size())
	if !r.style.Background.IsTransparent() {
		p.DrawRRect(bounds, r.style.CornerRadius, graphics.Paint{
			Color: r.style.Background,
			Style: graphics.PaintStyleFill,
			Alpha: 1,
		})
	}
	if r.style.BorderWidth > 0 && !r.style.BorderColor.IsTransparent() {
		p.DrawRRect(bounds, r.style.CornerRadius, graphics.Paint{
			Color:       r.style.BorderColor,
			Style:       graphics.PaintStyleStroke,
			StrokeWidth: r.style.BorderWidth,
			Alpha:       1,
		})
	}

	x := r.style.Padding.Left
	y := r.style.Padding.Top
	if r.speaker != "" {
		p.DrawText(r.speaker, r.style.NameStyle, geometry.Offset{X: x, Y: y})
		y += r.nameHeight
	}

	budget := int(r.revealed)
	for _, line := range r.lines {
		if budget <= 0 {
			break
		}
		runes := []rune(line)
		if len(runes) > budget {
			runes = runes[:budget]
		}
		p.DrawText(string(runes), r.style.TextStyle, geometry.Offset{X: x, Y: y})
		budget -= len(runes)
		y += r.lineHeight
	}
}

func (r *renderDialogBox) Tick(delta float64) bool {
	if r.revealed >= float64(r.total) {
		return false
	}
	r.revealed += r.style.RevealSpeed * delta
	if r.revealed > float64(r.total) {
		r.revealed = float64(r.total)
	}
	r.MarkNeedsPaint()
	return r.revealed < float64(r.total)
}

// Revealing reports whether the typewriter reveal is still in progress.
func (r *renderDialogBox) Revealing() bool {
	return r.revealed < float64(r.total)
}

func (r *renderDialogBox) HitTest(position geometry.Offset) events.HitTestResult {
	if geometry.RectFromOffsetSize(geometry.Offset{}, r.Size()).Contains(position) {
		return events.Hit
	}
	return events.HitMiss
}

func (r *renderDialogBox) HandleEvent(event events.InputEvent) events.EventResult {
	if event.Kind != events.EventTap {
		return events.Ignored()
	}
	if !geometry.RectFromOffsetSize(geometry.Offset{}, r.Size()).Contains(event.Position) {
		return events.Ignored()
	}
	if r.Revealing() {
		r.revealed = float64(r.total)
		r.MarkNeedsPaint()
		return events.Handled()
	}
	return events.Message(events.UIMessage{
		Kind: events.MessageDialogConfirm,
		ID:   r.id,
	})
}
