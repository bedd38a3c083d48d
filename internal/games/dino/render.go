package dino

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/raster"
)

var (
	overlayFg = core.ColorWhite
	overlayBg = core.RGB(40, 40, 40)
)

// Render draws the game to a terminal screen: a HUD row on top and the
// rasterised canvas below it, with an overlay box for the start, pause and
// game over states.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}

	g.renderHUD(dst)

	fieldX, fieldY, cols, rows := g.fieldLayout(dst.Width(), dst.Height())
	if rows > 0 {
		if g.raster == nil {
			g.raster = raster.New()
		}
		g.raster.Blit(dst, g.Image(), fieldX, fieldY, cols, rows)
	}

	if lines := g.OverlayLines(); len(lines) > 0 {
		g.renderOverlay(dst, fieldY+rows/2, lines...)
	}
}

// OverlayLines returns the message box text for the current phase, or nil
// while a run is in progress.
func (g *Game) OverlayLines() []string {
	switch {
	case g.phase == core.PhaseStart:
		return []string{
			g.Title(),
			"SPACE / UP / click to jump",
			"DOWN to duck, P to pause",
		}
	case g.phase == core.PhaseGameOver:
		lines := []string{"GAME OVER", "Score " + FormatScore(g.score, g.cfg.Score.Digits)}
		if g.newHigh {
			lines = append(lines, "New high score!")
		}
		return append(lines, "SPACE or R to restart")
	case g.paused:
		return []string{"PAUSED", "Press P to continue"}
	}
	return nil
}

// Image draws the scene into the game's own canvas and returns it. The
// image is reused by the next call.
func (g *Game) Image() image.Image {
	if g.canvas == nil {
		g.canvas = gg.NewContext(g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	}
	g.Draw(g.canvas)
	return g.canvas.Image()
}

// fieldLayout places the canvas below the HUD row, full width. The canvas
// may be stretched vertically up to twice its aspect ratio to use more of a
// tall terminal, and is centered in the remaining rows.
func (g *Game) fieldLayout(w, h int) (x, y, cols, rows int) {
	avail := h - 1
	if avail <= 0 {
		return 0, 1, w, 0
	}

	// Half blocks give square pixels, so the natural row count is
	// cols * canvasH / canvasW / 2.
	maxRows := (w*g.cfg.Canvas.Height + g.cfg.Canvas.Width - 1) / g.cfg.Canvas.Width
	rows = core.Clamp(avail, 1, core.Max(maxRows, 1))
	y = 1 + (avail-rows)/2
	return 0, y, w, rows
}

// renderHUD draws the title and the score line on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	score := g.ScoreLine() + " "
	dst.DrawText(1, 0, "CapyDino")
	dst.DrawText(dst.Width()-runewidth.StringWidth(score), 0, score)
}

// renderOverlay draws a bordered box with centered lines around centerY.
func (g *Game) renderOverlay(dst *core.Screen, centerY int, lines ...string) {
	maxW := 0
	for _, l := range lines {
		maxW = core.Max(maxW, runewidth.StringWidth(l))
	}
	boxW := core.Min(maxW+4, dst.Width())
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max(centerY-boxH/2, 1)

	for row := boxY; row < boxY+boxH; row++ {
		dst.DrawTextColor(boxX, row, runewidth.FillRight("", boxW), overlayFg, overlayBg)
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, l := range lines {
		x := boxX + (boxW-runewidth.StringWidth(l))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}

// ScoreLine formats the high score and the current score.
func (g *Game) ScoreLine() string {
	digits := g.cfg.Score.Digits
	return fmt.Sprintf("HI %s  %s", FormatScore(float64(g.highScore), digits), FormatScore(g.score, digits))
}
