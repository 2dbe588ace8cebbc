package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to blockfall.

Controls (defaults, see 'blockfall config'):
  Left/A/H     - Move left
  Right/D/L    - Move right
  Up/W/K       - Rotate
  Down/S/J     - Soft drop
  Space        - Hard drop
  P/Esc        - Pause
  B            - Back (when paused or over)
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest speed, next piece shown
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, no next piece preview
  fixed  - No progression, speed only grows with level

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	logger := newLogger("blockfall")
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available games.")
		os.Exit(1)
	}

	props, err := loadProperties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, props)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	saved, runErr := tui.Run(game, store, props, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	if saved != nil {
		fmt.Println(savedSummary(saved))
	}
}

// savedSummary describes a recorded game for the terminal after exit.
func savedSummary(e *storage.ScoreEntry) string {
	return fmt.Sprintf("Saved %d points, %d lines, level %d (run %s)", e.Score, e.Lines, e.Level, e.RunID)
}
