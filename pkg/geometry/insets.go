package geometry

// EdgeInsets describe padding or margin on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// InsetsAll creates uniform insets on all four sides.
func InsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// InsetsSymmetric creates insets with the same horizontal and vertical values.
func InsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// IsZero reports whether all four sides are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Alignment positions a child within available space. Both components range
// from -1 (left/top) through 0 (center) to +1 (right/bottom).
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignTopLeft      = Alignment{X: -1, Y: -1}
	AlignTopCenter    = Alignment{X: 0, Y: -1}
	AlignTopRight     = Alignment{X: 1, Y: -1}
	AlignCenterLeft   = Alignment{X: -1, Y: 0}
	AlignCenter       = Alignment{X: 0, Y: 0}
	AlignCenterRight  = Alignment{X: 1, Y: 0}
	AlignBottomLeft   = Alignment{X: -1, Y: 1}
	AlignBottomCenter = Alignment{X: 0, Y: 1}
	AlignBottomRight  = Alignment{X: 1, Y: 1}
)

// Resolve computes the child offset that places a child of childSize within
// a parent of parentSize according to the alignment.
func (a Alignment) Resolve(parentSize, childSize Size) Offset {
	return Offset{
		X: (parentSize.Width - childSize.Width) * (a.X + 1) / 2,
		Y: (parentSize.Height - childSize.Height) * (a.Y + 1) / 2,
	}
}
