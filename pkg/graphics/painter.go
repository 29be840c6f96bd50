package graphics

import (
	"image"

	"github.com/go-drift/novelui/pkg/geometry"
)

// TextMeasurer measures text without drawing it. Layout needs metrics before
// any painting happens, so the measurer is passed separately into layout.
type TextMeasurer interface {
	// MeasureText returns the size of a single line of text in the style.
	MeasureText(text string, style TextStyle) geometry.Size

	// LineHeight returns the line advance for the style.
	LineHeight(style TextStyle) float64
}

// Painter is the drawing surface handed to RenderObject.Paint.
//
// The coordinate system is translated so that (0,0) is the top-left corner
// of the render object being painted. Implementations are best effort:
// resource failures (missing image, backend error) degrade to a no-op or a
// log line, never an abort of the frame.
type Painter interface {
	TextMeasurer

	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// SaveLayerAlpha saves a new layer with the given opacity (0.0 to 1.0).
	// All drawing until the matching Restore() is composited with this opacity.
	SaveLayerAlpha(bounds geometry.Rect, alpha float64)

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect geometry.Rect)

	// Clear fills the entire surface with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect geometry.Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with uniform corner radius.
	DrawRRect(rect geometry.Rect, radius float64, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center geometry.Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end geometry.Offset, paint Paint)

	// DrawText draws a single line of text with its top-left at position.
	DrawText(text string, style TextStyle, position geometry.Offset)

	// DrawImage draws an image with its top-left corner at the given position.
	DrawImage(img image.Image, position geometry.Offset)

	// DrawImageRect draws the srcRect region of an image into dstRect,
	// scaling as needed. A zero srcRect selects the entire image.
	DrawImageRect(img image.Image, srcRect, dstRect geometry.Rect)

	// CanvasSize returns the size of the surface in logical pixels.
	CanvasSize() geometry.Size
}
