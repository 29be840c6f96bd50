package driver

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/novelui/pkg/events"
	"github.com/go-drift/novelui/pkg/geometry"
)

// pollInput reads this tick's input state from Ebitengine and converts it
// into the toolkit's input events, in a stable order: pointer movement
// first, then button transitions, scroll, keys, and typed text.
func pollInput(out []events.InputEvent, lastCursor *geometry.Offset) []events.InputEvent {
	mx, my := ebiten.CursorPosition()
	cursor := geometry.Offset{X: float64(mx), Y: float64(my)}
	if cursor != *lastCursor {
		*lastCursor = cursor
		out = append(out, events.InputEvent{Kind: events.EventMouseMove, Position: cursor})
	}

	for ebitenButton, button := range map[ebiten.MouseButton]events.MouseButton{
		ebiten.MouseButtonLeft:   events.MouseButtonLeft,
		ebiten.MouseButtonRight:  events.MouseButtonRight,
		ebiten.MouseButtonMiddle: events.MouseButtonMiddle,
	} {
		if inpututil.IsMouseButtonJustPressed(ebitenButton) {
			out = append(out, events.InputEvent{
				Kind:     events.EventMouseDown,
				Position: cursor,
				Button:   button,
			})
		}
		if inpututil.IsMouseButtonJustReleased(ebitenButton) {
			out = append(out, events.InputEvent{
				Kind:     events.EventMouseUp,
				Position: cursor,
				Button:   button,
			})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		out = append(out, events.InputEvent{
			Kind:     events.EventScroll,
			Position: cursor,
			Delta:    geometry.Offset{X: wx, Y: wy},
		})
	}

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		out = append(out, events.InputEvent{
			Kind: events.EventKeyDown,
			Key:  events.KeyCode(key),
			Mods: currentModifiers(),
		})
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		out = append(out, events.InputEvent{
			Kind: events.EventKeyUp,
			Key:  events.KeyCode(key),
			Mods: currentModifiers(),
		})
	}

	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		out = append(out, events.InputEvent{
			Kind: events.EventTextInput,
			Text: string(chars),
		})
	}
	return out
}

func currentModifiers() events.KeyModifiers {
	var mods events.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= events.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= events.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= events.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= events.ModSuper
	}
	return mods
}
