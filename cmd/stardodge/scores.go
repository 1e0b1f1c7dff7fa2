package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stardodge/internal/platform/tui"
	"github.com/vovakirdan/stardodge/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, or the latest ones with --recent.

With --interactive the scoreboard opens in the terminal UI, where tab
switches between the best and the latest runs.

Examples:
  stardodge scores
  stardodge scores --recent --limit 20
  stardodge scores --interactive
  stardodge scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("All runs deleted.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, gameTitle(), width, height); err != nil {
			store.Close()
			fail("running scoreboard: %v", err)
		}
		return
	}

	var scores []storage.ScoreEntry
	if flagRecent {
		scores, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	if flagRecent {
		fmt.Printf("Recent Runs - %s\n", gameTitle())
	} else {
		fmt.Printf("High Scores - %s\n", gameTitle())
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'stardodge play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Stars", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-8s  %s\n",
			i+1, entry.Score, entry.Stars,
			entry.Duration.Round(time.Second).String(),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Stars: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalStars)
	}
}
