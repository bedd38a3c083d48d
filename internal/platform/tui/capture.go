package tui

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
)

type screenshotMsg struct {
	path string
	err  error
}

type frameCopiedMsg struct {
	err error
}

// screenshotCmd saves the current frame as plain text and the canvas as a
// PNG next to it. The frame is captured now; files are written in the
// command.
func (m Model) screenshotCmd() tea.Cmd {
	m.game.Render(m.screen)
	text := m.screen.String()
	canvas := cloneImage(m.game.Image())

	name := fmt.Sprintf("%s_%s", m.game.ID(), m.now().Format("20060102_150405"))
	dir := m.shotDir

	return func() tea.Msg {
		base, err := screenshotBase(dir, name)
		if err != nil {
			return screenshotMsg{err: err}
		}
		if err := os.WriteFile(base+".txt", []byte(text), 0o600); err != nil {
			return screenshotMsg{err: fmt.Errorf("write text: %w", err)}
		}
		if err := gg.SavePNG(base+".png", canvas); err != nil {
			return screenshotMsg{err: fmt.Errorf("write png: %w", err)}
		}
		return screenshotMsg{path: base + ".png"}
	}
}

// screenshotBase returns the path without extension for a screenshot,
// creating its directory.
func screenshotBase(dir, name string) (string, error) {
	if dir == "" {
		path, err := xdg.DataFile(filepath.Join("capydino", "screenshots", name+".txt"))
		if err != nil {
			return "", fmt.Errorf("screenshot directory: %w", err)
		}
		return path[:len(path)-len(".txt")], nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}

// copyFrameCmd copies the current frame, without colours, to the system
// clipboard.
func (m Model) copyFrameCmd() tea.Cmd {
	m.game.Render(m.screen)
	text := m.screen.String()

	return func() tea.Msg {
		return frameCopiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cloneImage(src image.Image) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
