package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagHold       int
	flagLogFile    string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing in the local terminal.

Controls:
  A/D, Left/Right  - Walk
  W/Up/Space       - Jump
  Enter            - Start from the main menu
  Esc              - Retry after dying
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Terminals only report key presses, so walking keys count as held for
--hold milliseconds after the last press or auto-repeat.

Difficulty options:
  easy   - Long pauses between enemies at first
  normal - The default ramp
  hard   - Dense waves from the start
  fixed  - No ramp, spawn pauses stay at the config's start

Examples:
  survivor play
  survivor play --difficulty easy
  survivor play --config ./survivor.toml --watch
  survivor play --log-file ./survivor.log`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom YAML or TOML game config")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes (applies from the next run)")
	playCmd.Flags().IntVar(&flagHold, "hold", int(tui.DefaultHoldWindow/time.Millisecond), "Key hold window in milliseconds")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name runs are saved under")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagWatch && flagConfig == "" {
		return errors.New("--watch requires --config")
	}

	// Fail early on a broken config instead of inside the renderer
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := survivor.New(
		survivor.WithConfig(cfg),
		survivor.WithPreset(preset),
		survivor.WithGameLogger(logger.WithPrefix("sim")),
	)

	opts := []tui.ModelOption{
		tui.WithPlayer(flagPlayer),
		tui.WithHoldWindow(time.Duration(flagHold) * time.Millisecond),
		tui.WithLogger(logger),
	}

	// Game still works without storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
	} else {
		defer store.Close()
		opts = append(opts, tui.WithStore(store))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flagWatch {
		watcher, err := config.NewWatcher(flagConfig, logger.WithPrefix("config"))
		if err != nil {
			return err
		}
		defer watcher.Close()
		go func() {
			if runErr := watcher.Run(ctx); runErr != nil && ctx.Err() == nil {
				logger.Error("config watcher stopped", "error", runErr)
			}
		}()
		opts = append(opts, tui.WithConfigUpdates(watcher.Updates()))
	}

	if err := tui.Run(game, runtime, opts...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if sim := game.Sim(); sim != nil && sim.Runs() > 0 {
		fmt.Printf("Played %d run(s), last score %d\n", sim.Runs(), game.LastRun().Score)
	}
	return nil
}

// openLogFile returns a logger writing to path, or a discarding logger when
// path is empty. stdout belongs to the renderer.
func openLogFile(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
