package widgets_test

import (
	"image"
	"testing"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/uitest"
	"github.com/go-drift/novelui/pkg/widgets"
)

func testImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestSprite_SizesToScaledImage(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Sprite{Source: testImage(100, 200), Scale: 2})

	if got := tester.Tree.Size(); got != (geometry.Size{Width: 200, Height: 400}) {
		t.Errorf("sprite size = %v, want twice the natural size", got)
	}
}

func TestSprite_FlipMirrorsAroundOwnWidth(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Sprite{Source: testImage(100, 200), FlipX: true})

	var names []string
	for _, op := range tester.Paint().Ops() {
		switch op.Name {
		case "save", "restore", "translate", "scale", "drawImageRect":
			names = append(names, op.Name)
			if op.Name == "scale" && (op.Params["sx"] != -1.0 || op.Params["sy"] != 1.0) {
				t.Errorf("flip scale = (%v, %v), want (-1, 1)", op.Params["sx"], op.Params["sy"])
			}
		}
	}
	// The mirror transform wraps the image draw.
	want := []string{"save", "translate", "scale", "drawImageRect", "restore"}
	if len(names) < len(want) {
		t.Fatalf("ops = %v", names)
	}
	got := names[len(names)-len(want):]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flip ops = %v, want suffix %v", names, want)
		}
	}
}

func TestSprite_TranslucencyUsesLayer(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Sprite{Source: testImage(10, 10), Opacity: 0.5})

	found := false
	for _, op := range tester.Paint().Ops() {
		if op.Name == "saveLayerAlpha" && op.Params["alpha"] == 0.5 {
			found = true
		}
	}
	if !found {
		t.Error("translucent sprite should composite through a layer")
	}
}

func TestBackground_FillsSurfaceAndClipsCover(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Background{
		Color:  graphics.RGB(0x10, 0x10, 0x18),
		Source: testImage(400, 600),
		Fit:    graphics.ImageFitCover,
	})

	if got := tester.Tree.Size(); got != (geometry.Size{Width: 800, Height: 600}) {
		t.Errorf("background size = %v, want the full surface", got)
	}

	var clipped bool
	var dst geometry.Rect
	for _, op := range tester.Paint().Ops() {
		switch op.Name {
		case "clipRect":
			clipped = true
		case "drawImageRect":
			dst = op.Params["dst"].(geometry.Rect)
		}
	}
	if !clipped {
		t.Error("cover fit should clip to the bounds")
	}
	// A 400x600 image covering 800x600 scales by 2 and crops vertically.
	want := geometry.RectFromLTWH(0, -300, 800, 1200)
	if dst != want {
		t.Errorf("image destination = %v, want %v", dst, want)
	}
}

func TestBackground_NoImagePaintsColorOnly(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Background{Color: graphics.ColorBlack})

	for _, op := range tester.Paint().Ops() {
		if op.Name == "drawImageRect" || op.Name == "clipRect" {
			t.Fatalf("unexpected op %q without an image", op.Name)
		}
	}
}

func TestImage_ExplicitSizeWins(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Image{Source: testImage(50, 50), Width: 120, Height: 80})

	if got := tester.Tree.Size(); got != (geometry.Size{Width: 120, Height: 80}) {
		t.Errorf("image size = %v, want the explicit box", got)
	}
}
