package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy/internal/core"
)

// inputState is the raw input seen during one tick.
type inputState struct {
	keys       []ebiten.Key // keys pressed this tick
	mouseLeft  bool
	newTouches int
	closing    bool
}

// keyActions maps keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionTap,
	ebiten.KeyUp:     core.ActionTap,
	ebiten.KeyEscape: core.ActionQuit,
	ebiten.KeyF3:     core.ActionDebug,
}

// readInput polls Ebitengine. touches is reused as the touch ID buffer.
func readInput(touches []ebiten.TouchID) (inputState, []ebiten.TouchID) {
	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	return inputState{
		keys:       inpututil.AppendJustPressedKeys(nil),
		mouseLeft:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		newTouches: len(touches),
		closing:    ebiten.IsWindowBeingClosed(),
	}, touches
}

// frame translates raw input into game actions.
func (s inputState) frame() core.InputFrame {
	in := core.NewInputFrame()
	for _, k := range s.keys {
		in.Set(keyActions[k])
	}
	if s.mouseLeft || s.newTouches > 0 {
		in.Set(core.ActionTap)
	}
	if s.closing {
		in.Set(core.ActionQuit)
	}
	return in
}
