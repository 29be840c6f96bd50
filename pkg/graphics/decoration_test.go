package graphics

import (
	"testing"

	"github.com/go-drift/novelui/pkg/geometry"
)

func TestHasBorder(t *testing.T) {
	if (BoxDecoration{BorderColor: ColorWhite}).HasBorder() {
		t.Error("zero width should mean no border")
	}
	if (BoxDecoration{BorderWidth: 2}).HasBorder() {
		t.Error("transparent border color should mean no border")
	}
	if !(BoxDecoration{BorderColor: ColorWhite, BorderWidth: 2}).HasBorder() {
		t.Error("visible border not reported")
	}
}

func TestImageFitRect(t *testing.T) {
	src := geometry.Size{Width: 200, Height: 100}
	dst := geometry.Size{Width: 100, Height: 100}

	cases := []struct {
		fit  ImageFit
		want geometry.Rect
	}{
		// Contain letterboxes the wide image vertically.
		{ImageFitContain, geometry.RectFromLTWH(0, 25, 100, 50)},
		// Cover scales up to fill the height and crops the sides.
		{ImageFitCover, geometry.RectFromLTWH(-50, 0, 200, 100)},
		// None centers the image at natural size.
		{ImageFitNone, geometry.RectFromLTWH(-50, 0, 200, 100)},
		// Fill stretches to the box.
		{ImageFitFill, geometry.RectFromLTWH(0, 0, 100, 100)},
	}
	for _, tc := range cases {
		t.Run(tc.fit.String(), func(t *testing.T) {
			if got := tc.fit.FitRect(src, dst); got != tc.want {
				t.Errorf("FitRect = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestImageFitRectEmptySizes(t *testing.T) {
	if got := ImageFitContain.FitRect(geometry.Size{}, geometry.Size{Width: 10, Height: 10}); got != (geometry.Rect{}) {
		t.Errorf("empty source = %v, want the zero rect", got)
	}
}

func TestPaintEffectiveAlpha(t *testing.T) {
	if got := (Paint{Alpha: -1}).EffectiveAlpha(); got != 1 {
		t.Errorf("negative alpha = %v, want 1", got)
	}
	if got := (Paint{Alpha: 0.3}).EffectiveAlpha(); got != 0.3 {
		t.Errorf("alpha = %v, want 0.3", got)
	}
}
