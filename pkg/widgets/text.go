package widgets

import (
	"strings"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Text displays a string with a single style.
//
//   - Wrap=false (default): text renders line by line at explicit newlines
//     only, extending beyond the constraint width if necessary.
//   - Wrap=true: lines additionally wrap at the constraint width.
//   - MaxLines limits the number of visible lines (0 = unlimited).
type Text struct {
	WidgetKey tree.Key
	Content   string
	Style     graphics.TextStyle
	Align     graphics.TextAlign
	Wrap      bool
	MaxLines  int
}

func (t Text) Key() tree.Key { return t.WidgetKey }

func (t Text) Children() []tree.Widget { return nil }

func (t Text) CreateRenderObject() tree.RenderObject {
	return tree.Init(&renderText{
		content:  t.Content,
		style:    t.Style,
		align:    t.Align,
		wrap:     t.Wrap,
		maxLines: t.MaxLines,
	})
}

func (t Text) UpdateRenderObject(ro tree.RenderObject) {
	if text, ok := ro.(*renderText); ok {
		text.content = t.Content
		text.style = t.Style
		text.align = t.Align
		text.wrap = t.Wrap
		text.maxLines = t.MaxLines
	}
}

func (t Text) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Text)
	return !ok || o != t
}

type renderText struct {
	tree.RenderBase
	content  string
	style    graphics.TextStyle
	align    graphics.TextAlign
	wrap     bool
	maxLines int

	lines      []string
	lineHeight float64
}

func (r *renderText) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	r.lineHeight = measurer.LineHeight(r.style)

	maxWidth := constraints.MaxWidth
	if r.wrap && constraints.HasBoundedWidth() {
		r.lines = WrapText(measurer, r.style, r.content, maxWidth)
	} else {
		r.lines = strings.Split(r.content, "\n")
	}
	if r.maxLines > 0 && len(r.lines) > r.maxLines {
		r.lines = r.lines[:r.maxLines]
	}

	var width float64
	for _, line := range r.lines {
		if w := measurer.MeasureText(line, r.style).Width; w > width {
			width = w
		}
	}
	return constraints.Constrain(geometry.Size{
		Width:  width,
		Height: float64(len(r.lines)) * r.lineHeight,
	})
}

func (r *renderText) PaintSelf(p graphics.Painter) {
	width := r.Size().Width
	y := 0.0
	for _, line := range r.lines {
		x := 0.0
		switch r.align {
		case graphics.TextAlignCenter:
			x = (width - p.MeasureText(line, r.style).Width) / 2
		case graphics.TextAlignRight:
			x = width - p.MeasureText(line, r.style).Width
		}
		p.DrawText(line, r.style, geometry.Offset{X: x, Y: y})
		y += r.lineHeight
	}
}

// WrapText splits text into lines that fit maxWidth, breaking greedily at
// word boundaries. Explicit newlines always break. A single word wider than
// maxWidth gets a line of its own rather than being split.
func WrapText(measurer graphics.TextMeasurer, style graphics.TextStyle, text string, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			candidate := current + " " + word
			if measurer.MeasureText(candidate, style).Width > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
