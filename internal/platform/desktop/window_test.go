package desktop

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/capydino/internal/config"
	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/games/dino"
	"github.com/vovakirdan/capydino/internal/storage"
)

func TestButtonActions(t *testing.T) {
	tests := []struct {
		name string
		b    buttons
		want []core.Action
	}{
		{"nothing", buttons{}, nil},
		{"jump", buttons{jump: true}, []core.Action{core.ActionJump}},
		{"duck press", buttons{duckDown: true}, []core.Action{core.ActionDuck}},
		{"duck release", buttons{duckUp: true}, []core.Action{core.ActionDuckRelease}},
		{"pause and restart", buttons{pause: true, restart: true}, []core.Action{core.ActionPause, core.ActionRestart}},
		{"quit", buttons{quit: true}, []core.Action{core.ActionQuit}},
	}

	all := []core.Action{
		core.ActionJump, core.ActionDuck, core.ActionDuckRelease,
		core.ActionPause, core.ActionRestart, core.ActionQuit,
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.b.actions()
			want := make(map[core.Action]bool)
			for _, a := range tt.want {
				want[a] = true
			}
			for _, a := range all {
				if in.Has(a) != want[a] {
					t.Errorf("Has(%s) = %v, expected %v", a, in.Has(a), want[a])
				}
			}
		})
	}
}

func TestOverlayPosition(t *testing.T) {
	// 10 glyphs of 6px centered on 800px
	x, y := overlayPosition(800, 200, 2, 0, "GAME OVER!")
	if x != 370 || y != 84 {
		t.Errorf("first line at (%d,%d), expected (370,84)", x, y)
	}
	_, y = overlayPosition(800, 200, 2, 1, "x")
	if y != 100 {
		t.Errorf("second line y = %d, expected 100", y)
	}

	x, _ = overlayPosition(30, 200, 1, 0, "a line wider than the canvas")
	if x != 0 {
		t.Errorf("overlong line x = %d, expected 0", x)
	}
}

func TestRGBAPixels(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	buf := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if got := rgbaPixels(rgba, buf); &got[0] != &rgba.Pix[0] {
		t.Error("packed RGBA should be uploaded without copying")
	}

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 0, color.Gray{Y: 200})
	got := rgbaPixels(gray, buf)
	if got[4] != 200 || got[7] != 255 {
		t.Errorf("converted pixel = %v, expected gray 200", got[4:8])
	}
}

func TestWindowRecordsCrash(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	discard := log.New(io.Discard)
	game := dino.New(config.Default(), dino.WithLogger(discard))
	game.Reset(core.RuntimeConfig{TickRate: 60, Seed: 3})
	w := NewWindow(game, WithStore(store), WithLogger(discard), WithDifficulty("easy"))

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	w.step(jump)

	idle := core.NewInputFrame()
	for i := 0; i < 50000 && !w.state.GameOver(); i++ {
		w.step(idle)
	}
	if !w.state.GameOver() {
		t.Fatal("run never ended")
	}
	for i := 0; i < 10; i++ {
		w.step(idle)
	}

	scores, err := store.TopScores(dino.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Difficulty != "easy" || scores[0].Score != w.state.Score {
		t.Errorf("unexpected recorded runs %+v for state %+v", scores, w.state)
	}
}

func TestLayoutIsCanvasSize(t *testing.T) {
	game := dino.New(config.Default(), dino.WithLogger(log.New(io.Discard)))
	w := NewWindow(game)

	width, height := w.Layout(1920, 1080)
	if width != 800 || height != 200 {
		t.Errorf("Layout() = %dx%d, expected 800x200", width, height)
	}
}
