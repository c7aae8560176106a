// survivor is a side-scrolling survival game for the terminal.
//
// Usage:
//
//	survivor play            - Play locally
//	survivor scores          - Show recorded runs
//	survivor serve           - Start SSH server for remote play
//	survivor config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.survivor/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survivor",
	Short: "Survivor - dodge the swarm in your terminal",
	Long: `Survivor is a side-scrolling survival game played in the terminal.
Enemies fly in from the right; jump and run to avoid them for as long
as you can. Every second survived is a point.

Available commands:
  play     - Play locally
  scores   - View recorded runs
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  survivor play
  survivor play --difficulty hard
  survivor serve --ssh :2222
  survivor scores --player ann`,
	// main prints the error itself
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// defaultPlayer returns the name local runs are saved under.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
