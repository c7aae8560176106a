package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var (
	flagLimit       int
	flagScorePlayer string
	flagScoresTUI   bool
	flagClear       bool
	flagRunID       string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, optionally for a single player.

With --tui an interactive scoreboard opens instead, with Top, Recent and
Mine views (tab to switch).

Examples:
  survivor scores
  survivor scores --limit 25
  survivor scores --player ann
  survivor scores --tui
  survivor scores --run 0b9c6e1e-5a43-4c8f-9d61-3f0f0f9a8a1e
  survivor scores --clear --player ann`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete recorded runs (of --player only, if given)")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its ID")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		n, err := store.ClearRuns(flagScorePlayer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d run(s)\n", n)
		return
	case flagRunID != "":
		printRun(store, flagRunID)
		return
	}

	if flagScoresTUI {
		player := flagScorePlayer
		if player == "" {
			player = defaultPlayer()
		}

		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, player, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	if flagScorePlayer != "" {
		runs, err = store.PlayerRuns(flagScorePlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagScorePlayer != "" {
		fmt.Printf("Best Runs - %s\n", flagScorePlayer)
	} else {
		fmt.Println("Best Runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'survivor play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %-6s  %s\n", "Rank", "Player", "Score", "Time", "Dodged", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %-6s  %s\n", "----", "------", "-----", "----", "------", "----")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-7s  %-6d  %s\n",
			i+1, player, r.Score, r.Duration.Round(time.Second), r.EnemiesDodged,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.Stats(flagScorePlayer)
	if err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Time played: %s\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
	if flagScorePlayer != "" {
		if best, err := store.HighScore(""); err == nil {
			fmt.Printf("All-time best: %d\n", best)
		}
	}
}

// printRun prints every recorded field of one run.
func printRun(store *storage.Store, runID string) {
	run, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with ID %q\n", runID)
		os.Exit(1)
	}

	player := run.Player
	if player == "" {
		player = "-"
	}
	fmt.Printf("Run %s\n\n", run.RunID)
	fmt.Printf("  Player          %s\n", player)
	fmt.Printf("  Score           %d\n", run.Score)
	fmt.Printf("  Survived        %s\n", run.Duration.Round(10*time.Millisecond))
	fmt.Printf("  Enemies spawned %d\n", run.EnemiesSpawned)
	fmt.Printf("  Enemies dodged  %d\n", run.EnemiesDodged)
	fmt.Printf("  Min difficulty  %.2f\n", run.MinDifficulty)
	fmt.Printf("  Played          %s\n", run.CreatedAt.Format("2006-01-02 15:04"))
}
