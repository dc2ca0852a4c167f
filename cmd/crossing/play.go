package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossing/internal/config"
	"github.com/vovakirdan/crossing/internal/core"
	"github.com/vovakirdan/crossing/internal/platform/tui"
	"github.com/vovakirdan/crossing/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Move one step
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot to ~/.crossing/screenshots
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Reach the water to win a round. Touching an enemy loses the round and the
gems you are holding. A new round starts after a short countdown.

Difficulty options:
  easy   - Fewer, slower enemies; speed grows with every win
  normal - Default traffic; speed grows with every win
  hard   - More, faster enemies; speed grows with every win
  fixed  - Speeds never change

Examples:
  crossing play
  crossing play --difficulty easy
  crossing play --config ./my-board.yaml
  crossing play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig(path, preset string) (config.CrossingConfig, error) {
	cfg, err := config.LoadCrossing(path)
	if err != nil {
		return cfg, err
	}

	switch p := config.DifficultyPreset(preset); p {
	case "":
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		config.ApplyCrossingPreset(&cfg, p)
	default:
		return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir, err := dataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs go to a file
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %s: %v\n", dir, err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "crossing.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "crossing")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("game started", "seed", flagSeed, "fps", flagFPS, "difficulty", flagDifficulty)

	runErr := tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:         store,
		Logger:        logger,
		ScreenshotDir: filepath.Join(dir, "screenshots"),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("game ended")
}
