package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/capydino/internal/platform/desktop"
	"github.com/vovakirdan/capydino/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space/Up/W   - Jump (also starts and restarts)
  Down/S       - Duck
  P/Esc        - Pause
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Ctrl+Y       - Copy the frame to the clipboard
  Q/Ctrl+C     - Quit
  Left click   - Jump
  Right button - Duck while held

Difficulty options:
  easy   - Slower start, wider gaps between obstacles
  normal - The classic pace
  hard   - Faster start, tighter gaps
  fixed  - No speed-ups

Examples:
  capydino play
  capydino play --difficulty easy
  capydino play --seed 42 --fps 30
  capydino play --config ./my-capydino.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window drawing the game at its native resolution.

Uses the same controls as play; ducking lasts exactly as long as the key or
the right mouse button is held. Tapping a touch screen jumps.

Examples:
  capydino window
  capydino window --sprite ./capybara.gif`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	game := newGame(ctx, cfg, store, logger)

	opts := []tui.ModelOption{
		tui.WithLogger(logger),
		tui.WithDifficulty(string(preset)),
	}
	if store != nil {
		opts = append(opts, tui.WithStore(store))
	}

	logger.Info("starting game", "difficulty", preset, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	game := newGame(ctx, cfg, store, logger)

	opts := []desktop.Option{
		desktop.WithLogger(logger),
		desktop.WithDifficulty(string(preset)),
	}
	if store != nil {
		opts = append(opts, desktop.WithStore(store))
	}

	rc := runtimeConfig()
	rc.ScreenW, rc.ScreenH = cfg.Canvas.Width, cfg.Canvas.Height

	logger.Info("opening window", "difficulty", preset, "seed", flagSeed)
	if err := desktop.Run(game, rc, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
