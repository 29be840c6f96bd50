package driver

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
)

// Painter implements graphics.Painter on an ebiten.Image.
//
// The transform stack supports translation and scaling; Rotate is accepted
// but only affects images, since the vector primitives are axis-aligned.
// Rounded rectangles are composed from rects and corner circles.
type Painter struct {
	fonts  *FontRegistry
	states []paintState
	cache  map[image.Image]*ebiten.Image
}

type paintState struct {
	tx, ty float64
	sx, sy float64
	dst    *ebiten.Image
	// layer is non-nil when this state opened an offscreen layer that
	// Restore must composite back with alpha.
	layer *ebiten.Image
	alpha float64
}

// NewPainter creates a painter drawing with the given fonts.
func NewPainter(fonts *FontRegistry) *Painter {
	return &Painter{
		fonts: fonts,
		cache: make(map[image.Image]*ebiten.Image),
	}
}

// Begin resets the painter to draw a new frame onto screen.
func (p *Painter) Begin(screen *ebiten.Image) {
	p.states = p.states[:0]
	p.states = append(p.states, paintState{sx: 1, sy: 1, dst: screen})
}

func (p *Painter) cur() *paintState {
	return &p.states[len(p.states)-1]
}

// apply maps a local point to device coordinates.
func (p *Painter) apply(x, y float64) (float64, float64) {
	s := p.cur()
	return s.tx + x*s.sx, s.ty + y*s.sy
}

// applyRect maps a local rect to a device rect with normalized extents.
func (p *Painter) applyRect(rect geometry.Rect) geometry.Rect {
	x0, y0 := p.apply(rect.Left, rect.Top)
	x1, y1 := p.apply(rect.Right, rect.Bottom)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return geometry.Rect{Left: x0, Top: y0, Right: x1, Bottom: y1}
}

func (p *Painter) Save() {
	s := *p.cur()
	s.layer = nil
	p.states = append(p.states, s)
}

func (p *Painter) Restore() {
	if len(p.states) <= 1 {
		return
	}
	popped := p.states[len(p.states)-1]
	p.states = p.states[:len(p.states)-1]
	if popped.layer != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(popped.alpha))
		p.cur().dst.DrawImage(popped.layer, op)
		popped.layer.Deallocate()
	}
}

func (p *Painter) SaveLayerAlpha(bounds geometry.Rect, alpha float64) {
	base := p.cur().dst
	size := base.Bounds().Size()
	layer := ebiten.NewImage(size.X, size.Y)
	s := *p.cur()
	s.dst = layer
	s.layer = layer
	s.alpha = alpha
	p.states = append(p.states, s)
}

func (p *Painter) Translate(dx, dy float64) {
	s := p.cur()
	s.tx += dx * s.sx
	s.ty += dy * s.sy
}

func (p *Painter) Scale(sx, sy float64) {
	s := p.cur()
	s.sx *= sx
	s.sy *= sy
}

// Rotate is accepted for interface completeness; the vector backend draws
// axis-aligned primitives, so rotation is ignored.
func (p *Painter) Rotate(radians float64) {}

func (p *Painter) ClipRect(rect geometry.Rect) {
	s := p.cur()
	device := p.applyRect(rect)
	clip := image.Rect(int(device.Left), int(device.Top), int(device.Right), int(device.Bottom))
	s.dst = s.dst.SubImage(clip.Intersect(s.dst.Bounds())).(*ebiten.Image)
}

func (p *Painter) Clear(c graphics.Color) {
	p.cur().dst.Fill(toNRGBA(c))
}

func (p *Painter) DrawRect(rect geometry.Rect, paint graphics.Paint) {
	device := p.applyRect(rect)
	clr := paintColor(paint)
	w := float32(device.Right - device.Left)
	h := float32(device.Bottom - device.Top)
	if paint.Style == graphics.PaintStyleStroke {
		vector.StrokeRect(p.cur().dst, float32(device.Left), float32(device.Top), w, h,
			p.strokeWidth(paint), clr, true)
		return
	}
	vector.DrawFilledRect(p.cur().dst, float32(device.Left), float32(device.Top), w, h, clr, true)
}

func (p *Painter) DrawRRect(rect geometry.Rect, radius float64, paint graphics.Paint) {
	if radius <= 0 {
		p.DrawRect(rect, paint)
		return
	}
	device := p.applyRect(rect)
	r := radius * p.cur().sx
	maxR := (device.Right - device.Left) / 2
	if h := (device.Bottom - device.Top) / 2; h < maxR {
		maxR = h
	}
	if r > maxR {
		r = maxR
	}
	clr := paintColor(paint)
	dst := p.cur().dst

	if paint.Style == graphics.PaintStyleStroke {
		// Stroked corners are approximated with a plain rect outline.
		vector.StrokeRect(dst, float32(device.Left), float32(device.Top),
			float32(device.Right-device.Left), float32(device.Bottom-device.Top),
			p.strokeWidth(paint), clr, true)
		return
	}

	l, t, rt, b := float32(device.Left), float32(device.Top), float32(device.Right), float32(device.Bottom)
	fr := float32(r)
	// Center band plus side bands, with filled circles for the corners.
	vector.DrawFilledRect(dst, l+fr, t, rt-l-2*fr, b-t, clr, true)
	vector.DrawFilledRect(dst, l, t+fr, fr, b-t-2*fr, clr, true)
	vector.DrawFilledRect(dst, rt-fr, t+fr, fr, b-t-2*fr, clr, true)
	vector.DrawFilledCircle(dst, l+fr, t+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, rt-fr, t+fr, fr, clr, true)
	vector.DrawFilledCircle(dst, l+fr, b-fr, fr, clr, true)
	vector.DrawFilledCircle(dst, rt-fr, b-fr, fr, clr, true)
}

func (p *Painter) DrawCircle(center geometry.Offset, radius float64, paint graphics.Paint) {
	cx, cy := p.apply(center.X, center.Y)
	r := float32(radius * p.cur().sx)
	clr := paintColor(paint)
	if paint.Style == graphics.PaintStyleStroke {
		vector.StrokeCircle(p.cur().dst, float32(cx), float32(cy), r, p.strokeWidth(paint), clr, true)
		return
	}
	vector.DrawFilledCircle(p.cur().dst, float32(cx), float32(cy), r, clr, true)
}

func (p *Painter) DrawLine(start, end geometry.Offset, paint graphics.Paint) {
	x0, y0 := p.apply(start.X, start.Y)
	x1, y1 := p.apply(end.X, end.Y)
	vector.StrokeLine(p.cur().dst, float32(x0), float32(y0), float32(x1), float32(y1),
		p.strokeWidth(paint), paintColor(paint), true)
}

func (p *Painter) DrawText(content string, style graphics.TextStyle, position geometry.Offset) {
	if content == "" {
		return
	}
	face := p.fonts.Face(style)
	x, y := p.apply(position.X, position.Y)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toNRGBA(style.EffectiveColor()))
	op.LineSpacing = lineHeight(face)
	text.Draw(p.cur().dst, content, face, op)
}

func (p *Painter) DrawImage(img image.Image, position geometry.Offset) {
	if img == nil {
		return
	}
	src := p.ebitenImage(img)
	s := p.cur()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.sx, s.sy)
	x, y := p.apply(position.X, position.Y)
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(src, op)
}

func (p *Painter) DrawImageRect(img image.Image, srcRect, dstRect geometry.Rect) {
	if img == nil {
		return
	}
	src := p.ebitenImage(img)
	bounds := src.Bounds()
	if srcRect != (geometry.Rect{}) {
		region := image.Rect(
			bounds.Min.X+int(srcRect.Left), bounds.Min.Y+int(srcRect.Top),
			bounds.Min.X+int(srcRect.Right), bounds.Min.Y+int(srcRect.Bottom))
		src = src.SubImage(region.Intersect(bounds)).(*ebiten.Image)
		bounds = src.Bounds()
	}
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	device := p.applyRect(dstRect)
	w := device.Right - device.Left
	h := device.Bottom - device.Top
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(device.Left, device.Top)
	p.cur().dst.DrawImage(src, op)
}

func (p *Painter) CanvasSize() geometry.Size {
	base := p.states[0].dst.Bounds().Size()
	return geometry.Size{Width: float64(base.X), Height: float64(base.Y)}
}

func (p *Painter) MeasureText(content string, style graphics.TextStyle) geometry.Size {
	face := p.fonts.Face(style)
	w, h := text.Measure(content, face, lineHeight(face))
	return geometry.Size{Width: w, Height: h}
}

func (p *Painter) LineHeight(style graphics.TextStyle) float64 {
	spacing := style.LineSpacing
	if spacing <= 0 {
		spacing = 1
	}
	return lineHeight(p.fonts.Face(style)) * spacing
}

// ebitenImage converts and caches an image for GPU drawing. Images already
// on the GPU pass through.
func (p *Painter) ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if cached, ok := p.cache[img]; ok {
		return cached
	}
	converted := ebiten.NewImageFromImage(img)
	p.cache[img] = converted
	return converted
}

func (p *Painter) strokeWidth(paint graphics.Paint) float32 {
	if paint.StrokeWidth <= 0 {
		return 1
	}
	return float32(paint.StrokeWidth * p.cur().sx)
}

func paintColor(paint graphics.Paint) color.Color {
	c := paint.Color
	alpha := paint.EffectiveAlpha()
	if alpha < 1 {
		c = c.WithAlpha(uint8(float64(uint8(c>>24)) * alpha))
	}
	return toNRGBA(c)
}

func toNRGBA(c graphics.Color) color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
