package widgets

import (
	"github.com/go-drift/novelui/pkg/animation"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Opacity composites its child at a fixed opacity. An opacity of 0 skips
// painting the subtree entirely.
type Opacity struct {
	WidgetKey tree.Key
	Opacity   float64
	Child     tree.Widget
}

func (o Opacity) Key() tree.Key { return o.WidgetKey }

func (o Opacity) Children() []tree.Widget { return singleChild(o.Child) }

func (o Opacity) CreateRenderObject() tree.RenderObject {
	op := tree.Init(&renderOpacity{opacity: clampUnit(o.Opacity)})
	op.SetChildren(tree.CreateChildRenderObjects(o))
	return op
}

func (o Opacity) UpdateRenderObject(ro tree.RenderObject) {
	if op, ok := ro.(*renderOpacity); ok {
		op.opacity = clampUnit(o.Opacity)
	}
}

func (o Opacity) ShouldUpdate(old tree.Widget) bool {
	prev, ok := old.(Opacity)
	return !ok || prev.Opacity != o.Opacity
}

type renderOpacity struct {
	tree.RenderBase
	opacity float64
}

func (r *renderOpacity) Paint(p graphics.Painter) {
	if r.opacity >= 1 {
		r.RenderBase.Paint(p)
		return
	}
	if r.opacity <= 0 {
		return
	}
	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, r.Size())
	p.SaveLayerAlpha(bounds, r.opacity)
	r.RenderBase.Paint(p)
	p.Restore()
}

// AnimatedOpacity fades its child toward Opacity over Duration seconds
// whenever the target changes. The fade state lives in the render object,
// so it survives rebuilds as long as the widget's identity does.
type AnimatedOpacity struct {
	WidgetKey tree.Key
	Opacity   float64
	Duration  float64
	Curve     animation.Curve
	Child     tree.Widget
}

func (a AnimatedOpacity) Key() tree.Key { return a.WidgetKey }

func (a AnimatedOpacity) Children() []tree.Widget { return singleChild(a.Child) }

func (a AnimatedOpacity) CreateRenderObject() tree.RenderObject {
	op := tree.Init(&renderAnimatedOpacity{
		current: clampUnit(a.Opacity),
		target:  clampUnit(a.Opacity),
	})
	a.applyTiming(op)
	op.SetChildren(tree.CreateChildRenderObjects(a))
	return op
}

func (a AnimatedOpacity) UpdateRenderObject(ro tree.RenderObject) {
	op, ok := ro.(*renderAnimatedOpacity)
	if !ok {
		return
	}
	a.applyTiming(op)
	if target := clampUnit(a.Opacity); target != op.target {
		op.animateTo(target)
	}
}

func (a AnimatedOpacity) applyTiming(op *renderAnimatedOpacity) {
	op.duration = a.Duration
	op.curve = a.Curve
	if op.curve == nil {
		op.curve = animation.EaseInOut
	}
}

func (a AnimatedOpacity) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(AnimatedOpacity)
	return !ok || o.Opacity != a.Opacity || o.Duration != a.Duration
}

type renderAnimatedOpacity struct {
	tree.RenderBase
	duration float64
	curve    animation.Curve

	current    float64
	target     float64
	controller *animation.Controller
	tween      *animation.Tween[float64]
}

func (r *renderAnimatedOpacity) animateTo(target float64) {
	r.target = target
	if r.duration <= 0 {
		r.current = target
		r.controller = nil
		r.MarkNeedsPaint()
		return
	}
	r.tween = animation.TweenFloat64(r.current, target)
	r.controller = animation.NewController(r.duration)
	r.controller.Curve = r.curve
	r.controller.Forward()
}

func (r *renderAnimatedOpacity) Tick(delta float64) bool {
	animating := r.RenderBase.Tick(delta)
	if r.controller != nil {
		running := r.controller.Update(delta)
		r.current = r.tween.Transform(r.controller)
		r.MarkNeedsPaint()
		if !running {
			r.controller = nil
		}
		animating = animating || running
	}
	return animating
}

func (r *renderAnimatedOpacity) Paint(p graphics.Painter) {
	if r.current >= 1 {
		r.RenderBase.Paint(p)
		return
	}
	if r.current <= 0 {
		return
	}
	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, r.Size())
	p.SaveLayerAlpha(bounds, r.current)
	r.RenderBase.Paint(p)
	p.Restore()
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
