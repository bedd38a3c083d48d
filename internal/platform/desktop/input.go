package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/capydino/internal/core"
)

// buttons is the input edge state for one frame. Unlike a terminal, ebiten
// reports real releases, so ducking is level-triggered.
type buttons struct {
	jump     bool
	duckDown bool
	duckUp   bool
	pause    bool
	restart  bool
	quit     bool
}

var (
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	duckKeys    = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	pauseKeys   = []ebiten.Key{ebiten.KeyP}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
	quitKeys    = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}
)

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

// poll reads keyboard, mouse and touch edges for the current frame.
func poll(touches []ebiten.TouchID) buttons {
	b := buttons{
		jump:     anyJustPressed(jumpKeys) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		duckDown: anyJustPressed(duckKeys) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		duckUp:   anyJustReleased(duckKeys) || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight),
		pause:    anyJustPressed(pauseKeys),
		restart:  anyJustPressed(restartKeys),
		quit:     anyJustPressed(quitKeys),
	}

	// A tap jumps; a long press is not distinguished
	if len(inpututil.AppendJustPressedTouchIDs(touches[:0])) > 0 {
		b.jump = true
	}
	return b
}

// actions turns one frame of input edges into the game's input frame.
func (b buttons) actions() core.InputFrame {
	in := core.NewInputFrame()
	if b.jump {
		in.Set(core.ActionJump)
	}
	if b.duckDown {
		in.Set(core.ActionDuck)
	}
	if b.duckUp {
		in.Set(core.ActionDuckRelease)
	}
	if b.pause {
		in.Set(core.ActionPause)
	}
	if b.restart {
		in.Set(core.ActionRestart)
	}
	if b.quit {
		in.Set(core.ActionQuit)
	}
	return in
}
