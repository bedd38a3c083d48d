package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/capydino/internal/config"
	"github.com/vovakirdan/capydino/internal/core"
	"github.com/vovakirdan/capydino/internal/games/dino"
	"github.com/vovakirdan/capydino/internal/sprite"
	"github.com/vovakirdan/capydino/internal/storage"
)

var _ dino.HighScoreStore = (*storage.HighScoreSlot)(nil)

// loadGameConfig loads the config file and applies the difficulty and
// sprite flags on top of it.
func loadGameConfig() (config.Config, config.DifficultyPreset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if preset == "" {
		preset = config.DifficultyNormal
	}

	if flagSprite != "" {
		cfg.Sprite.Path = flagSprite
	}
	return cfg, preset, nil
}

// openStore opens the scores database. A failure is logged and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openScores opens the scores database for commands that cannot run
// without it.
func openScores() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}

// newGame builds a game wired to the store's high score slot and the
// configured sprite.
func newGame(ctx context.Context, cfg config.Config, store *storage.Store, logger *log.Logger) *dino.Game {
	opts := []dino.Option{
		dino.WithLogger(logger),
		dino.WithSprite(sprite.Load(ctx, cfg.Sprite.Path, logger)),
	}
	if store != nil {
		opts = append(opts, dino.WithHighScoreStore(store.HighScoreSlot(cfg.HighScore.Key)))
	}
	return dino.New(cfg, opts...)
}

// runtimeConfig builds the runtime settings from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}
