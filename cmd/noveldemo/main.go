// Command noveldemo shows a small visual-novel scene: a background, a
// character sprite, a typewriter dialog box, and a branching choice.
//
// Tap the dialog box to finish the reveal, tap again to advance. Pick an
// option when the choice menu appears.
package main

import (
	"image"
	"image/color"
	"log"

	"github.com/go-drift/novelui/pkg/driver"
	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
	"github.com/go-drift/novelui/pkg/graphics"
	"github.com/go-drift/novelui/pkg/theme"
	"github.com/go-drift/novelui/pkg/tree"
	"github.com/go-drift/novelui/pkg/widgets"
)

type line struct {
	Speaker string
	Text    string
}

var opening = []line{
	{"Mira", "You made it. I was starting to think the rain would keep everyone home tonight."},
	{"Mira", "The observatory opens in an hour. We could wait here, or walk up early and watch them unlock the dome."},
}

var afterChoice = map[string][]line{
	"Wait here": {
		{"Mira", "Fine by me. The tea is better down here anyway."},
		{"", "The rain softens to a drizzle while you talk about nothing in particular."},
	},
	"Walk up early": {
		{"Mira", "I hoped you would say that. Grab the umbrella, the path gets slick."},
		{"", "The hill smells like wet cedar. Above you, the dome begins to turn."},
	},
}

// scene is the demo's whole application state. Every change rebuilds the
// widget tree; the render tree keeps typewriter and hover state across
// rebuilds because widget identities are stable.
type scene struct {
	theme    *theme.Theme
	sprite   image.Image
	lines    []line
	index    int
	choosing bool
	branched bool
	done     bool
}

func newScene() *scene {
	return &scene{
		theme:  theme.Default(),
		sprite: makeSprite(),
		lines:  opening,
	}
}

func (s *scene) build() tree.Widget {
	items := []tree.Widget{
		widgets.Background{Color: graphics.RGB(0x23, 0x2B, 0x3A)},
		widgets.Positioned{
			Position: geometry.Offset{X: 700, Y: 540},
			Anchor:   geometry.AlignBottomCenter,
			Child: widgets.Sprite{
				WidgetKey: tree.StringKey("mira"),
				Source:    s.sprite,
				Scale:     2,
			},
		},
	}

	switch {
	case s.choosing:
		items = append(items, widgets.Align{
			Alignment: geometry.AlignCenter,
			Child: widgets.ChoiceMenu{
				WidgetKey: tree.StringKey("choice"),
				ID:        "evening",
				Options:   []string{"Wait here", "Walk up early"},
			},
		})
	case s.done:
		items = append(items, widgets.Align{
			Alignment: geometry.AlignCenter,
			Child: widgets.Button{
				WidgetKey: tree.StringKey("restart"),
				ID:        "restart",
				Label:     "Play again",
			},
		})
	default:
		current := s.lines[s.index]
		items = append(items, widgets.Align{
			Alignment: geometry.AlignBottomCenter,
			Child: widgets.Padding{
				Insets: geometry.InsetsAll(24),
				Child: widgets.DialogBox{
					WidgetKey: tree.StringKey("dialog"),
					ID:        "dialog",
					Speaker:   current.Speaker,
					Content:   current.Text,
				},
			},
		})
	}

	return widgets.Stack{Items: items}
}

func (s *scene) handle(msg events.UIMessage) tree.Widget {
	switch msg.Kind {
	case events.MessageDialogConfirm:
		switch {
		case s.index+1 < len(s.lines):
			s.index++
		case !s.branched:
			s.choosing = true
		default:
			s.done = true
		}
	case events.MessageOptionSelect:
		s.choosing = false
		s.branched = true
		s.lines = afterChoice[msg.Label]
		s.index = 0
	case events.MessageButtonClick:
		if msg.ID == "restart" {
			*s = *newScene()
			s.sprite = makeSprite()
		}
	}
	return s.build()
}

// makeSprite builds a placeholder character image so the demo has no asset
// files.
func makeSprite() image.Image {
	const w, h = 80, 160
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			shade := uint8(120 + 60*y/h)
			img.Set(x, y, color.NRGBA{R: shade, G: uint8(80 + x), B: 160, A: 255})
		}
	}
	return img
}

func main() {
	s := newScene()
	game := driver.NewGame(s.build())
	game.ClearColor = s.theme.Background
	game.HandleMessage = s.handle
	if err := game.Run("novelui demo", 960, 540); err != nil {
		log.Fatal(err)
	}
}
