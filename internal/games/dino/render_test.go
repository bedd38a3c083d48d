package dino

import (
	"strings"
	"testing"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/capydino/internal/config"
	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/raster"
)

// fakeSprite fills its rectangle with pure red when ready.
type fakeSprite struct{ ready bool }

func (s fakeSprite) Draw(dc *gg.Context, r core.Rect) bool {
	if !s.ready {
		return false
	}
	dc.SetRGB255(255, 0, 0)
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	dc.Fill()
	return true
}

func canvasPixel(t *testing.T, g *Game, x, y int) core.Color {
	t.Helper()
	dc := gg.NewContext(g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	g.Draw(dc)
	return raster.FromColor(dc.Image().At(x, y))
}

func TestDrawScene(t *testing.T) {
	cfg := config.Default()
	g := newTestGame(t, cfg)
	// Clouds could drift over the sun
	g.clouds.Reset()
	dc := gg.NewContext(cfg.Canvas.Width, cfg.Canvas.Height)
	g.Draw(dc)
	img := dc.Image()

	tests := []struct {
		name string
		x, y int
		hex  string
	}{
		{"sky", 2, 2, cfg.Palette.Sky},
		{"sun", cfg.Canvas.Width - 80, 60, cfg.Palette.Sun},
		{"ground", 400, 190, cfg.Palette.Grass},
		{"player", 35, 150, cfg.Palette.Player},
	}
	for _, tc := range tests {
		want, _ := core.ParseHex(tc.hex)
		if got := raster.FromColor(img.At(tc.x, tc.y)); got != want {
			t.Errorf("%s pixel = %s, expected %s", tc.name, got.Hex(), want.Hex())
		}
	}
}

func TestDrawUsesSpriteWhenReady(t *testing.T) {
	g := newTestGame(t, config.Default(), WithSprite(fakeSprite{ready: true}))
	if got := canvasPixel(t, g, 35, 150); got != core.RGB(255, 0, 0) {
		t.Errorf("player pixel = %s, expected sprite red", got.Hex())
	}

	g = newTestGame(t, config.Default(), WithSprite(fakeSprite{ready: false}))
	want, _ := core.ParseHex(g.cfg.Palette.Player)
	if got := canvasPixel(t, g, 35, 150); got != want {
		t.Errorf("player pixel = %s, expected silhouette %s", got.Hex(), want.Hex())
	}
}

func TestDrawEyesFollowPose(t *testing.T) {
	g := newTestGame(t, calmConfig())
	g.Step(jump())
	eyes, _ := core.ParseHex(g.cfg.Palette.Eyes)

	p := g.player
	if got := canvasPixel(t, g, int(p.X)+26, int(p.Y)+9); got != eyes {
		t.Errorf("standing eye pixel = %s, expected %s", got.Hex(), eyes.Hex())
	}

	g.Duck(true)
	p = g.player
	if got := canvasPixel(t, g, int(p.X)+26, int(p.Y)+6); got != eyes {
		t.Errorf("ducking eye pixel = %s, expected %s", got.Hex(), eyes.Hex())
	}
}

func TestDrawObstacles(t *testing.T) {
	cfg := calmConfig()
	g := newTestGame(t, cfg)
	g.obstacles.Add(Obstacle{Body: Body{X: 300, Y: 120, W: 25, H: 50}, Kind: LargeCactus})
	g.obstacles.Add(Obstacle{Body: Body{X: 500, Y: 55, W: 46, H: 40}, Kind: Bird})

	cactus, _ := core.ParseHex(cfg.Palette.Cactus)
	bird, _ := core.ParseHex(cfg.Palette.Bird)

	// Trunk centre of the cactus and body centre of the bird
	if got := canvasPixel(t, g, 312, 140); got != cactus {
		t.Errorf("cactus pixel = %s, expected %s", got.Hex(), cactus.Hex())
	}
	if got := canvasPixel(t, g, 523, 75); got != bird {
		t.Errorf("bird pixel = %s, expected %s", got.Hex(), bird.Hex())
	}
}

func TestDrawDoesNotTouchGameRandom(t *testing.T) {
	rng := &countingRand{}
	g := newTestGame(t, config.Default(), WithRand(rng))
	before := rng.calls

	dc := gg.NewContext(g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	g.Draw(dc)
	g.Render(core.NewScreen(80, 24))

	if rng.calls != before {
		t.Errorf("rendering consumed %d random numbers", rng.calls-before)
	}
}

type countingRand struct{ calls int }

func (r *countingRand) Float64() float64 { r.calls++; return 0.3 }
func (r *countingRand) Intn(int) int    { r.calls++; return 0 }
func (r *countingRand) Int63() int64    { r.calls++; return 1 }

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(t, config.Default())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	for _, want := range []string{"CapyDino", "HI 00000  00000", g.Title(), "to jump"} {
		if !strings.Contains(content, want) {
			t.Errorf("start screen should contain %q", want)
		}
	}

	// The canvas fills the field with half blocks
	if c := screen.GetCell(0, 23); c.Rune != raster.HalfBlock && c.Rune != ' ' {
		t.Errorf("unexpected rune %q in the field", c.Rune)
	}
	if c := screen.GetCell(1, 12); c.Rune != raster.HalfBlock {
		t.Errorf("field cell should be a half block, got %q", c.Rune)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, calmConfig())
	g.Step(jump())
	g.score = 42.5
	g.gameOver()

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	for _, want := range []string{"GAME OVER", "Score 00042", "New high score!", "HI 00042"} {
		if !strings.Contains(content, want) {
			t.Errorf("game over screen should contain %q", want)
		}
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, calmConfig())
	g.Step(jump())
	g.Step(core.NewInputFrame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused screen should say PAUSED")
	}
}

func TestRenderTinyScreens(t *testing.T) {
	g := newTestGame(t, config.Default())
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 1}, {10, 2}, {200, 3}} {
		g.Render(core.NewScreen(size[0], size[1]))
	}
}

func TestFieldLayout(t *testing.T) {
	g := newTestGame(t, config.Default())

	tests := []struct {
		w, h    int
		y, rows int
	}{
		{80, 24, 2, 20},
		{80, 10, 1, 9},
		{160, 60, 10, 40},
	}
	for _, tc := range tests {
		_, y, cols, rows := g.fieldLayout(tc.w, tc.h)
		if cols != tc.w || y != tc.y || rows != tc.rows {
			t.Errorf("layout(%d, %d) = y %d cols %d rows %d, expected y %d rows %d",
				tc.w, tc.h, y, cols, rows, tc.y, tc.rows)
		}
	}
}
