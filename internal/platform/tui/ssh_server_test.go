package tui

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/capydino/internal/config"
	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/games/dino"
	"github.com/vovakirdan/capydino/internal/sprite"
)

func TestSessionModelHasNoCapture(t *testing.T) {
	logger := log.New(io.Discard)
	srv := &SSHServer{
		config: SSHServerConfig{Game: config.Default(), Difficulty: "normal", TickRate: 60},
		hi:     &dino.MemoryHighScore{},
		logger: logger,
		sprite: sprite.Load(context.Background(), "", logger),
	}

	m := srv.sessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, "alice", lipgloss.NewRenderer(io.Discard))
	m.Init()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyCtrlS}, {Type: tea.KeyCtrlY}} {
		if _, cmd := m.Update(msg); cmd != nil {
			t.Errorf("%s should be ignored in a remote session", msg)
		}
	}

	// Game keys still work
	m = send(m, spaceKey)
	m = tick(m, t0)
	if m.State().Phase != core.PhasePlaying {
		t.Errorf("phase = %s, expected Playing", m.State().Phase)
	}
}
