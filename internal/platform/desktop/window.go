// Package desktop runs CapyDino in an ebiten window, drawing the canvas at
// its native size.
package desktop

import (
	"image"
	"image/draw"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/games/dino"
	"github.com/vovakirdan/capydino/internal/storage"
)

// debugGlyph is the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Window adapts a dino.Game to ebiten.Game.
type Window struct {
	game       *dino.Game
	store      *storage.Store
	logger     *log.Logger
	difficulty string

	frame   *ebiten.Image
	pixels  *image.RGBA
	touches []ebiten.TouchID
	state   core.GameState
}

// Option configures a Window.
type Option func(*Window)

// WithStore records finished runs in store.
func WithStore(store *storage.Store) Option {
	return func(w *Window) { w.store = store }
}

// WithLogger sets the logger for recoverable failures.
func WithLogger(l *log.Logger) Option {
	return func(w *Window) { w.logger = l }
}

// WithDifficulty labels recorded runs with the difficulty preset.
func WithDifficulty(name string) Option {
	return func(w *Window) { w.difficulty = name }
}

// NewWindow wraps game, which must already be Reset.
func NewWindow(game *dino.Game, opts ...Option) *Window {
	w := &Window{game: game, difficulty: "normal"}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = log.Default()
	}
	w.state = game.State()
	return w
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	b := poll(w.touches)
	if b.quit {
		return ebiten.Termination
	}
	w.step(b.actions())
	return nil
}

func (w *Window) step(in core.InputFrame) {
	result := w.game.Step(in)
	w.state = result.State
	if result.Has(core.EventCrashed) {
		w.recordRun()
	}
}

// recordRun saves the run that just ended.
func (w *Window) recordRun() {
	if w.store == nil || w.state.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		GameID:     w.game.ID(),
		Score:      w.state.Score,
		Difficulty: w.difficulty,
		Ticks:      w.game.Snapshot().Ticks,
	}
	if _, err := w.store.SaveScore(entry); err != nil {
		w.logger.Error("could not record run", "score", entry.Score, "error", err)
	}
}

// Draw uploads the canvas and prints the HUD on top.
func (w *Window) Draw(screen *ebiten.Image) {
	img := w.game.Image()
	b := img.Bounds()
	if w.frame == nil || w.frame.Bounds().Dx() != b.Dx() || w.frame.Bounds().Dy() != b.Dy() {
		w.frame = ebiten.NewImage(b.Dx(), b.Dy())
		w.pixels = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	w.frame.WritePixels(rgbaPixels(img, w.pixels))
	screen.DrawImage(w.frame, nil)

	hud := w.game.ScoreLine()
	ebitenutil.DebugPrintAt(screen, hud, b.Dx()-len(hud)*debugGlyphW-8, 4)
	ebitenutil.DebugPrintAt(screen, "CapyDino", 8, 4)

	for i, line := range w.game.OverlayLines() {
		x, y := overlayPosition(b.Dx(), b.Dy(), len(w.game.OverlayLines()), i, line)
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
}

// Layout keeps the logical screen at the canvas size; ebiten scales it to
// the window.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config().Canvas
	return cfg.Width, cfg.Height
}

// rgbaPixels returns img as tightly packed RGBA bytes, converting into buf
// when img is not already an *image.RGBA.
func rgbaPixels(img image.Image, buf *image.RGBA) []byte {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba.Pix
	}
	draw.Draw(buf, buf.Bounds(), img, img.Bounds().Min, draw.Src)
	return buf.Pix
}

// overlayPosition centers line i of n text lines on the canvas.
func overlayPosition(w, h, n, i int, line string) (int, int) {
	x := (w - len(strings.TrimSpace(line))*debugGlyphW) / 2
	y := (h-n*debugGlyphH)/2 + i*debugGlyphH
	return max(x, 0), max(y, 0)
}

// Run opens a window and plays until it is closed or quit.
func Run(game *dino.Game, cfg core.RuntimeConfig, opts ...Option) error {
	game.Reset(cfg)
	w := NewWindow(game, opts...)

	canvas := game.Config().Canvas
	ebiten.SetWindowSize(canvas.Width, canvas.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	return ebiten.RunGame(w)
}
