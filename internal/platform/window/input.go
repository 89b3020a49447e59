package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/patricklapgar/Space-Shooter-Game/internal/core"
)

// keyFunc reports the state of one key.
type keyFunc func(ebiten.Key) bool

// heldKeys are read every tick while down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionFire:  {ebiten.KeySpace},
}

// pressedKeys only count on the tick they go down.
var pressedKeys = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyB},
	core.ActionQuit:    {ebiten.KeyQ},
}

// readInput builds the frame for one tick from the keyboard state.
func readInput(held, pressed keyFunc) core.InputFrame {
	frame := core.NewInputFrame()
	collect(&frame, heldKeys, held)
	collect(&frame, pressedKeys, pressed)
	return frame
}

func collect(frame *core.InputFrame, bindings map[core.Action][]ebiten.Key, down keyFunc) {
	for action, keys := range bindings {
		for _, k := range keys {
			if down(k) {
				frame.Set(action)
				break
			}
		}
	}
}
