package widgets_test

import (
	"testing"

	"github.com/go-drift/novelui/pkg/animation"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
	"github.com/go-drift/novelui/pkg/uitest"
	"github.com/go-drift/novelui/pkg/widgets"
)

func paintOps(t *uitest.Tester) (alphas []float64, drewText bool) {
	for _, op := range t.Paint().Ops() {
		switch op.Name {
		case "saveLayerAlpha":
			alphas = append(alphas, op.Params["alpha"].(float64))
		case "drawText":
			drewText = true
		}
	}
	return alphas, drewText
}

func fadeChild() tree.Widget {
	return widgets.Text{Content: "fade", Style: graphics.TextStyle{Color: graphics.ColorWhite}}
}

func TestOpacity_PartialCompositesThroughLayer(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Opacity{Opacity: 0.5, Child: fadeChild()})

	alphas, drewText := paintOps(tester)
	if len(alphas) != 1 || alphas[0] != 0.5 {
		t.Errorf("layer alphas = %v, want [0.5]", alphas)
	}
	if !drewText {
		t.Error("child should still paint inside the layer")
	}
}

func TestOpacity_FullyOpaqueSkipsLayer(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Opacity{Opacity: 1, Child: fadeChild()})

	alphas, drewText := paintOps(tester)
	if len(alphas) != 0 {
		t.Errorf("opaque subtree pushed %d layers", len(alphas))
	}
	if !drewText {
		t.Error("child should paint directly")
	}
}

func TestOpacity_ZeroSkipsSubtree(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.Opacity{Opacity: 0, Child: fadeChild()})

	alphas, drewText := paintOps(tester)
	if len(alphas) != 0 || drewText {
		t.Errorf("invisible subtree painted: layers=%d text=%v", len(alphas), drewText)
	}
}

func TestAnimatedOpacity_FadesTowardTarget(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.AnimatedOpacity{
		Opacity:  0,
		Duration: 1,
		Curve:    animation.Linear,
		Child:    fadeChild(),
	})

	// Retarget to fully visible; the fade starts from the current value.
	tester.Pump(widgets.AnimatedOpacity{
		Opacity:  1,
		Duration: 1,
		Curve:    animation.Linear,
		Child:    fadeChild(),
	})

	if !tester.Tick(0.5) {
		t.Fatal("fade should still be running at the midpoint")
	}
	alphas, _ := paintOps(tester)
	if len(alphas) != 1 || alphas[0] < 0.45 || alphas[0] > 0.55 {
		t.Errorf("midpoint alphas = %v, want about 0.5", alphas)
	}

	tester.Tick(0.6)
	alphas, drewText := paintOps(tester)
	if len(alphas) != 0 {
		t.Errorf("finished fade still pushes a layer: %v", alphas)
	}
	if !drewText {
		t.Error("child should paint directly once fully visible")
	}
}

func TestAnimatedOpacity_ZeroDurationSnaps(t *testing.T) {
	tester := uitest.NewTester(t)
	tester.Pump(widgets.AnimatedOpacity{Opacity: 1, Child: fadeChild()})
	tester.Pump(widgets.AnimatedOpacity{Opacity: 0.25, Child: fadeChild()})

	alphas, _ := paintOps(tester)
	if len(alphas) != 1 || alphas[0] != 0.25 {
		t.Errorf("alphas after snap = %v, want [0.25]", alphas)
	}
	if tester.Tick(0.1) {
		t.Error("snap should not leave an animation running")
	}
}
