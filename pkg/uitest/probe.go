package uitest

import (
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Log collects lifecycle entries from probe render objects so tests can
// assert on call ordering across a whole tree.
type Log struct {
	entries []string
}

// NewLog creates an empty lifecycle log.
func NewLog() *Log {
	return &Log{}
}

// Add appends one entry.
func (l *Log) Add(entry string) {
	if l != nil {
		l.entries = append(l.entries, entry)
	}
}

// Entries returns the recorded entries in order.
func (l *Log) Entries() []string {
	return l.entries
}

// Reset clears the log.
func (l *Log) Reset() {
	l.entries = l.entries[:0]
}

// Probe is a widget whose render object counts and logs its lifecycle
// calls. Tag distinguishes configurations: two probes with different tags
// report ShouldUpdate.
type Probe struct {
	WidgetKey tree.Key
	Tag       string
	Width     float64 // 0 means 10
	Height    float64 // 0 means 10
	Log       *Log
	Items     []tree.Widget
}

func (p Probe) Key() tree.Key { return p.WidgetKey }

func (p Probe) Children() []tree.Widget { return p.Items }

func (p Probe) CreateRenderObject() tree.RenderObject {
	probe := tree.Init(&RenderProbe{Tag: p.Tag, log: p.Log, width: p.Width, height: p.Height})
	probe.SetChildren(tree.CreateChildRenderObjects(p))
	return probe
}

func (p Probe) UpdateRenderObject(ro tree.RenderObject) {
	if probe, ok := ro.(*RenderProbe); ok {
		probe.Tag = p.Tag
		probe.log = p.Log
		probe.width = p.Width
		probe.height = p.Height
	}
}

func (p Probe) ShouldUpdate(old tree.Widget) bool {
	o, ok := old.(Probe)
	return !ok || o.Tag != p.Tag || o.Width != p.Width || o.Height != p.Height
}

// RenderProbe is the render object behind Probe. Its counters and the shared
// Log expose the exact lifecycle sequence the reconciler produced.
type RenderProbe struct {
	tree.RenderBase
	Tag      string
	Mounts   int
	Unmounts int
	Updates  int
	Layouts  int
	Paints   int

	log    *Log
	width  float64
	height float64
}

func (r *RenderProbe) OnMount() {
	r.RenderBase.OnMount()
	r.Mounts++
	r.log.Add("mount:" + r.Tag)
}

func (r *RenderProbe) OnUnmount() {
	r.RenderBase.OnUnmount()
	r.Unmounts++
	r.log.Add("unmount:" + r.Tag)
}

func (r *RenderProbe) OnUpdate() {
	r.Updates++
	r.log.Add("update:" + r.Tag)
}

func (r *RenderProbe) PerformLayout(constraints geometry.Constraints, measurer graphics.TextMeasurer) geometry.Size {
	r.Layouts++
	w, h := r.width, r.height
	if w <= 0 {
		w = 10
	}
	if h <= 0 {
		h = 10
	}
	for _, child := range r.Children() {
		child.Layout(constraints.Loosen(), measurer)
		child.SetOffset(geometry.Offset{})
	}
	return constraints.Constrain(geometry.Size{Width: w, Height: h})
}

func (r *RenderProbe) PaintSelf(p graphics.Painter) {
	r.Paints++
}

// FindProbe walks a render tree and returns the first RenderProbe with the
// given tag, or nil.
func FindProbe(ro tree.RenderObject, tag string) *RenderProbe {
	if probe, ok := ro.(*RenderProbe); ok && probe.Tag == tag {
		return probe
	}
	for _, child := range ro.Children() {
		if found := FindProbe(child, tag); found != nil {
			return found
		}
	}
	return nil
}
