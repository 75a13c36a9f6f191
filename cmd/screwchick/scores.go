package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/screwchick/internal/games/screwchick"
	"github.com/vovakirdan/screwchick/internal/platform/tui"
	"github.com/vovakirdan/screwchick/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  screwchick scores
  screwchick scores --limit 25
  screwchick scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	title := screwchick.New().Title()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, screwchick.ID, title, width, height)
	}

	scores, err := store.TopScores(screwchick.ID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'screwchick play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-13s  %s\n", "Rank", "Score", "Time", "Screws", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-13s  %s\n", "----", "-----", "----", "------", "---", "----")
	for i, entry := range scores {
		clock := time.Duration(entry.DurationSecs) * time.Second
		fmt.Printf("  %-4d  %-8d  %-6s  %-6d  %-13s  %s\n",
			i+1,
			entry.Score,
			fmt.Sprintf("%02d:%02d", int(clock.Minutes()), entry.DurationSecs%60),
			entry.Delivered,
			entry.EndCause,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
