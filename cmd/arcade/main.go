// arcade runs the deterministic arcade engine from the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade sim <game>        - Run a game headless with its autopilot
//	arcade replays [game]    - List stored replays
//	arcade verify [id...]    - Re-simulate stored replays
//
// Global flags:
//
//	--fps <rate>    - Set the rendered frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/replays.db)
//	--verbose       - Log debug output
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-engine/internal/games/breakout"
	_ "github.com/vovakirdan/arcade-engine/internal/games/match"
	_ "github.com/vovakirdan/arcade-engine/internal/games/snake"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	logger = newLogger(os.Stderr)
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Deterministic arcade games in your terminal",
	Long: `Arcade runs Breakout, Snake and Match Pairs on a deterministic tick engine.
Every session can be recorded and re-simulated bit for bit.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  sim      - Headless run driven by the built-in autopilot
  replays  - List stored replays
  verify   - Re-simulate stored replays and compare digests

Examples:
  arcade list
  arcade play breakout --difficulty hard --record
  arcade sim snake --ticks 5000 --seed 42
  arcade verify`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Rendered frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(verifyCmd)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (width, height int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// requireGame exits with a hint when id is not registered.
func requireGame(id string) {
	if !registry.Exists(id) {
		logger.Error("unknown game", "game", id)
		logger.Info("run 'arcade list' to see available games")
		os.Exit(1)
	}
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open replay database", "path", flagDBPath, "err", err)
	}
	return store
}
