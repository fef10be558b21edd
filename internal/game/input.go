package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/galactic-visuals/internal/effect"
)

var keyMap = map[ebiten.Key]effect.Key{
	ebiten.KeyArrowUp:    effect.KeyUp,
	ebiten.KeyArrowDown:  effect.KeyDown,
	ebiten.KeyArrowLeft:  effect.KeyLeft,
	ebiten.KeyArrowRight: effect.KeyRight,
	ebiten.KeyEnter:      effect.KeyEnter,
	ebiten.KeyBackspace:  effect.KeyBackspace,
	ebiten.KeyA:          effect.KeyA,
	ebiten.KeyB:          effect.KeyB,
	ebiten.KeyD:          effect.KeyD,
	ebiten.KeyM:          effect.KeyM,
	ebiten.KeyN:          effect.KeyN,
	ebiten.KeyR:          effect.KeyR,
}

// effectKey maps k for the effects. Keys without a mapping arrive as
// effect.KeyNone so sequence watchers still see that something was pressed.
func effectKey(k ebiten.Key) effect.Key {
	if ek, ok := keyMap[k]; ok {
		return ek
	}
	return effect.KeyNone
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionFocus
	actionBlur
)

// hostAction decides what the window does with k before effects see it.
// While an effect has focus only Tab and Escape stay with the host.
func hostAction(k ebiten.Key, focused bool) action {
	switch k {
	case ebiten.KeyTab:
		if focused {
			return actionBlur
		}
		return actionFocus
	case ebiten.KeyEscape:
		if focused {
			return actionBlur
		}
		return actionQuit
	}
	if focused {
		return actionNone
	}
	switch k {
	case ebiten.KeyQ:
		return actionQuit
	case ebiten.KeySpace:
		return actionPause
	}
	return actionNone
}
