package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crossing/internal/platform/tui"
	"github.com/vovakirdan/crossing/internal/storage"
)

var (
	flagHistoryLimit  int
	flagHistoryPlayer string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded rounds",
	Long: `Open an interactive table of the most recent rounds.

With --player the table starts filtered to that player's rounds (SSH user
names are recorded by 'crossing serve'); press Tab to switch between the
player's rounds and all rounds.

Examples:
  crossing history
  crossing history --limit 100
  crossing history --player alice`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 50, "Maximum number of rounds to show")
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "", "Only show rounds of this player")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, flagHistoryPlayer, flagHistoryLimit, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
