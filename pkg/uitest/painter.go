// Package uitest provides deterministic test doubles for the render
// pipeline: a recording painter with fixed text metrics, a fake clock, probe
// widgets that log their lifecycle, and a tester that drives a UiTree the
// way the application loop would.
package uitest

import (
	"fmt"
	"image"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
)

// Text metrics used by the recording painter. They match the 7x13 bitmap
// font the real driver falls back to, so layout numbers in tests line up
// with what the driver produces.
const (
	CharWidth  = 7.0
	LineHeight = 13.0
)

// Op is one recorded drawing operation.
type Op struct {
	Name   string
	Params map[string]any
}

// RecordingPainter implements graphics.Painter by recording every call
// instead of drawing. Use it to assert on paint output and to feed layout
// with deterministic text metrics.
type RecordingPainter struct {
	ops  []Op
	size geometry.Size
}

// NewRecordingPainter creates a painter with the given canvas size.
func NewRecordingPainter(width, height float64) *RecordingPainter {
	return &RecordingPainter{size: geometry.Size{Width: width, Height: height}}
}

// Ops returns the recorded operations in call order.
func (p *RecordingPainter) Ops() []Op {
	return p.ops
}

// OpNames returns just the operation names, in call order.
func (p *RecordingPainter) OpNames() []string {
	names := make([]string, len(p.ops))
	for i, op := range p.ops {
		names[i] = op.Name
	}
	return names
}

// DrawnText returns every string passed to DrawText, in call order.
func (p *RecordingPainter) DrawnText() []string {
	var texts []string
	for _, op := range p.ops {
		if op.Name == "drawText" {
			texts = append(texts, op.Params["text"].(string))
		}
	}
	return texts
}

// Reset clears the recorded operations.
func (p *RecordingPainter) Reset() {
	p.ops = p.ops[:0]
}

func (p *RecordingPainter) record(name string, params map[string]any) {
	p.ops = append(p.ops, Op{Name: name, Params: params})
}

func (p *RecordingPainter) MeasureText(text string, style graphics.TextStyle) geometry.Size {
	return geometry.Size{
		Width:  float64(len([]rune(text))) * CharWidth,
		Height: LineHeight,
	}
}

func (p *RecordingPainter) LineHeight(style graphics.TextStyle) float64 {
	spacing := style.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	return LineHeight * spacing
}

func (p *RecordingPainter) Save() {
	p.record("save", nil)
}

func (p *RecordingPainter) Restore() {
	p.record("restore", nil)
}

func (p *RecordingPainter) SaveLayerAlpha(bounds geometry.Rect, alpha float64) {
	p.record("saveLayerAlpha", map[string]any{"bounds": bounds, "alpha": alpha})
}

func (p *RecordingPainter) Translate(dx, dy float64) {
	p.record("translate", map[string]any{"dx": dx, "dy": dy})
}

func (p *RecordingPainter) Scale(sx, sy float64) {
	p.record("scale", map[string]any{"sx": sx, "sy": sy})
}

func (p *RecordingPainter) Rotate(radians float64) {
	p.record("rotate", map[string]any{"radians": radians})
}

func (p *RecordingPainter) ClipRect(rect geometry.Rect) {
	p.record("clipRect", map[string]any{"rect": rect})
}

func (p *RecordingPainter) Clear(color graphics.Color) {
	p.record("clear", map[string]any{"color": colorString(color)})
}

func (p *RecordingPainter) DrawRect(rect geometry.Rect, paint graphics.Paint) {
	p.record("drawRect", map[string]any{"rect": rect, "color": colorString(paint.Color)})
}

func (p *RecordingPainter) DrawRRect(rect geometry.Rect, radius float64, paint graphics.Paint) {
	p.record("drawRRect", map[string]any{
		"rect": rect, "radius": radius,
		"color": colorString(paint.Color), "style": paint.Style.String(),
	})
}

func (p *RecordingPainter) DrawCircle(center geometry.Offset, radius float64, paint graphics.Paint) {
	p.record("drawCircle", map[string]any{
		"center": center, "radius": radius, "color": colorString(paint.Color),
	})
}

func (p *RecordingPainter) DrawLine(start, end geometry.Offset, paint graphics.Paint) {
	p.record("drawLine", map[string]any{
		"start": start, "end": end, "color": colorString(paint.Color),
	})
}

func (p *RecordingPainter) DrawText(text string, style graphics.TextStyle, position geometry.Offset) {
	p.record("drawText", map[string]any{"text": text, "position": position})
}

func (p *RecordingPainter) DrawImage(img image.Image, position geometry.Offset) {
	p.record("drawImage", map[string]any{"position": position})
}

func (p *RecordingPainter) DrawImageRect(img image.Image, srcRect, dstRect geometry.Rect) {
	p.record("drawImageRect", map[string]any{"src": srcRect, "dst": dstRect})
}

func (p *RecordingPainter) CanvasSize() geometry.Size {
	return p.size
}

func colorString(c graphics.Color) string {
	return fmt.Sprintf("#%08X", uint32(c))
}
