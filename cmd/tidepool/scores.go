package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tidepool/internal/platform/tui"
	"github.com/vovakirdan/tidepool/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded dives, or browse the full history.

Examples:
  tidepool scores
  tidepool scores --limit 25
  tidepool scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse the history in a table")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("could not open run history: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Best dives")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No dives recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tidepool play' to set the first score!")
		return nil
	}

	fmt.Printf("  %-4s  %7s  %-8s  %5s  %5s  %4s  %5s  %s\n", "Rank", "Score", "Outcome", "Time", "Kills", "Boss", "Level", "Date")
	fmt.Printf("  %-4s  %7s  %-8s  %5s  %5s  %4s  %5s  %s\n", "----", "-----", "-------", "----", "-----", "----", "-----", "----")
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %7s  %-8s  %5s  %5s  %4s  %5s  %s\n",
			row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7])
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Dives: %d, surfaced: %d, best: %d, longest: %s\n",
			stats.Runs, stats.Wins, stats.HighScore, tui.FormatClock(stats.LongestRun))
	}
	return nil
}
