package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu [game]",
	Short: "Pick a difficulty from a menu, play, and return",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
After a game, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  blockfall menu
  blockfall menu --fps 30
  blockfall menu --db ./scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, args []string) {
	logger := newLogger("blockfall")
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	props, err := loadProperties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(gameID, store, props, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameProps := props.WithPreset(menuResult.Preset)
		game, err := registry.Create(gameID, gameProps)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "error", err)
			continue
		}

		// Fresh seed for each game unless pinned
		if flagSeed == 0 {
			cfg = cfg.Reseeded()
		}
		logger.Debug("starting game", "game", gameID, "preset", menuResult.Preset, "seed", cfg.Seed)

		saved, err := tui.Run(game, store, gameProps, cfg)
		if err != nil {
			logger.Error("game failed", "error", err)
			continue
		}
		if saved != nil {
			logger.Info("result saved", "run", saved.RunID, "score", saved.Score, "lines", saved.Lines, "level", saved.Level)
		}
	}

	if store != nil {
		store.Close()
	}
}
