package graphics

import (
	"fmt"

	"github.com/go-drift/novelui/pkg/geometry"
)

// BoxShadow describes a drop shadow behind a box.
type BoxShadow struct {
	Color      Color
	Offset     geometry.Offset
	BlurRadius float64
}

// BoxDecoration describes the visual treatment of a box: background fill,
// border, corner rounding, and shadow.
type BoxDecoration struct {
	Color        Color
	BorderColor  Color
	BorderWidth  float64
	CornerRadius float64
	Shadow       *BoxShadow
}

// HasBorder reports whether a visible border is configured.
func (d BoxDecoration) HasBorder() bool {
	return d.BorderWidth > 0 && !d.BorderColor.IsTransparent()
}

// ImageFit controls how an image is scaled into its destination box.
type ImageFit int

const (
	// ImageFitFill stretches to fill the box, ignoring aspect ratio.
	ImageFitFill ImageFit = iota
	// ImageFitContain scales to fit entirely within the box.
	ImageFitContain
	// ImageFitCover scales to cover the box, cropping overflow.
	ImageFitCover
	// ImageFitNone draws at natural size, cropping overflow.
	ImageFitNone
)

// String returns a human-readable representation of the fit mode.
func (f ImageFit) String() string {
	switch f {
	case ImageFitFill:
		return "fill"
	case ImageFitContain:
		return "contain"
	case ImageFitCover:
		return "cover"
	case ImageFitNone:
		return "none"
	default:
		return fmt.Sprintf("ImageFit(%d)", int(f))
	}
}

// FitRect computes the destination rectangle for drawing an image of srcSize
// into a box of dstSize under the given fit mode. The result is positioned
// relative to the box origin and may extend beyond the box for cover/none.
func (f ImageFit) FitRect(srcSize, dstSize geometry.Size) geometry.Rect {
	if srcSize.IsEmpty() || dstSize.IsEmpty() {
		return geometry.Rect{}
	}
	switch f {
	case ImageFitContain, ImageFitCover:
		scaleX := dstSize.Width / srcSize.Width
		scaleY := dstSize.Height / srcSize.Height
		scale := scaleX
		if f == ImageFitContain {
			if scaleY < scale {
				scale = scaleY
			}
		} else if scaleY > scale {
			scale = scaleY
		}
		w := srcSize.Width * scale
		h := srcSize.Height * scale
		return geometry.RectFromLTWH((dstSize.Width-w)/2, (dstSize.Height-h)/2, w, h)
	case ImageFitNone:
		return geometry.RectFromLTWH(
			(dstSize.Width-srcSize.Width)/2,
			(dstSize.Height-srcSize.Height)/2,
			srcSize.Width, srcSize.Height)
	default:
		return geometry.RectFromOffsetSize(geometry.Offset{}, dstSize)
	}
}
