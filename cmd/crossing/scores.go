package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crossing/internal/games/crossing"
	"github.com/vovakirdan/crossing/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show lifetime totals",
	Long: `Display totals over every recorded round: wins, losses, gems
collected and the best haul held at the end of a round.

Examples:
  crossing scores
  crossing scores --db ./scores.db
  crossing scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded round")
}

var (
	scoresTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoresLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(12)
)

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearRounds(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All rounds deleted.")
		return
	}

	totals, err := store.Totals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(scoresTitleStyle.Render(fmt.Sprintf("%s - Lifetime Totals", crossing.Title)))
	fmt.Println()

	if totals.Rounds == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'crossing play' to start!")
		return
	}

	printTotal("Rounds", fmt.Sprintf("%d", totals.Rounds))
	printTotal("Won", fmt.Sprintf("%d", totals.Wins))
	printTotal("Lost", fmt.Sprintf("%d", totals.Losses))
	printTotal("Blue gems", fmt.Sprintf("%d", totals.Blue))
	printTotal("Green gems", fmt.Sprintf("%d", totals.Green))
	printTotal("Orange gems", fmt.Sprintf("%d", totals.Orange))
	printTotal("Best haul", fmt.Sprintf("%d", totals.BestHaul))
	printTotal("Play time", totals.PlayTime.Round(time.Second).String())
	if !totals.LastPlayed.IsZero() {
		printTotal("Last played", totals.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printTotal(label, value string) {
	fmt.Printf("  %s %s\n", scoresLabelStyle.Render(label), value)
}
