package driver

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/novelui/pkg/errors"
	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/tree"
)

// Game runs a UiTree inside the Ebitengine loop. Each tick it polls input
// into the tree's gesture queue, dispatches the queued events, hands the
// resulting UI messages to HandleMessage, and advances animations; each draw
// paints the tree.
type Game struct {
	Tree  *tree.UiTree
	Fonts *FontRegistry

	// ClearColor fills the screen before the tree paints.
	ClearColor graphics.Color

	// HandleMessage receives each UIMessage the tree produced. Returning a
	// non-nil widget applies it as the new root.
	HandleMessage func(msg events.UIMessage) tree.Widget

	// OnTick runs once per update with the tick's delta in seconds, before
	// messages are handled. Use it for game logic that rebuilds the UI.
	OnTick func(delta float64)

	painter    *Painter
	lastCursor geometry.Offset
	inputBuf   []events.InputEvent
	width      int
	height     int
}

// NewGame creates a game showing the given root widget.
func NewGame(root tree.Widget) *Game {
	fonts := NewFontRegistry()
	return &Game{
		Tree:       tree.NewUiTreeWithRoot(root),
		Fonts:      fonts,
		ClearColor: graphics.ColorBlack,
		painter:    NewPainter(fonts),
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	defer errors.Recover("driver.Update")

	delta := 1.0 / float64(ebiten.TPS())
	if g.OnTick != nil {
		g.OnTick(delta)
	}

	g.inputBuf = pollInput(g.inputBuf[:0], &g.lastCursor)
	for _, event := range g.inputBuf {
		g.Tree.PushEvent(event)
	}
	g.Tree.ProcessEvents()

	if g.HandleMessage != nil {
		for _, msg := range g.Tree.TakeMessages() {
			if next := g.HandleMessage(msg); next != nil {
				g.Tree.UpdateRoot(next)
			}
		}
	}

	g.Tree.Tick(delta)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	defer errors.Recover("driver.Draw")

	g.painter.Begin(screen)
	g.painter.Clear(g.ClearColor)
	g.Tree.Paint(g.painter)
}

// Layout implements ebiten.Game, using a 1:1 logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.Tree.SetSize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks in the game loop until it closes.
func (g *Game) Run(title string, width, height int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	if err := ebiten.RunGame(g); err != nil {
		return &errors.UIError{Op: "driver.Run", Kind: errors.KindRender, Err: err}
	}
	return nil
}
