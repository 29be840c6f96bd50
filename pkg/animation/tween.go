package animation

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation
// progress, mapping the 0-1 range of a [Controller] to any value type.
// Use the helper constructors ([TweenFloat64], [TweenColor], [TweenOffset])
// for common types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End at progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the controller's current value.
func (tw *Tween[T]) Transform(controller *Controller) T {
	return tw.Evaluate(controller.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b geometry.Offset, t float64) geometry.Offset {
	return geometry.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b geometry.Size, t float64) geometry.Size {
	return geometry.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}

// LerpColor linearly interpolates between two Color values channel by channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aR, aG, aB, aA := a.Bytes()
	bR, bG, bB, bA := b.Bytes()
	return graphics.RGBA(
		uint8(LerpFloat64(float64(aR), float64(bR), t)),
		uint8(LerpFloat64(float64(aG), float64(bG), t)),
		uint8(LerpFloat64(float64(aB), float64(bB), t)),
		uint8(LerpFloat64(float64(aA), float64(bA), t)),
	)
}

// LerpEdgeInsets linearly interpolates between two EdgeInsets values.
func LerpEdgeInsets(a, b geometry.EdgeInsets, t float64) geometry.EdgeInsets {
	return geometry.EdgeInsets{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end geometry.Offset) *Tween[geometry.Offset] {
	return &Tween[geometry.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenSize creates a tween for Size values.
func TweenSize(begin, end geometry.Size) *Tween[geometry.Size] {
	return &Tween[geometry.Size]{Begin: begin, End: end, Lerp: LerpSize}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}

// TweenEdgeInsets creates a tween for EdgeInsets values.
func TweenEdgeInsets(begin, end geometry.EdgeInsets) *Tween[geometry.EdgeInsets] {
	return &Tween[geometry.EdgeInsets]{Begin: begin, End: end, Lerp: LerpEdgeInsets}
}
