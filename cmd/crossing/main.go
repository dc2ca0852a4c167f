// crossing is a terminal arcade game: walk from the grass to the water,
// dodge the traffic and pick up gems on the way.
//
// Usage:
//
//	crossing play            - Play in this terminal
//	crossing serve           - Start SSH server for remote play
//	crossing scores          - Show lifetime totals
//	crossing history         - Browse recorded rounds
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.crossing/scores.db)
//	--log-level <level>  - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Gem Crossing - a terminal arcade game",
	Long: `Gem Crossing is a terminal arcade game. Walk your character from the
grass at the bottom of the board to the water at the top without touching
the traffic, and collect gems on the way.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - Show lifetime totals
  history  - Browse recorded rounds

Examples:
  crossing play
  crossing play --difficulty hard
  crossing serve --ssh :2222
  crossing history --limit 50`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crossing/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// dataDir returns ~/.crossing, where logs, screenshots and keys live.
func dataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".crossing"), nil
}
