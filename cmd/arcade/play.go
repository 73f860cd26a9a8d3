package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/replay"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right     - Move the paddle, steer the snake, move the card cursor
  Up/Down        - Steer the snake, move the card cursor
  Space/Enter    - Start, reveal the card under the cursor
  P/Esc          - Pause
  R              - Restart (after game over)
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - More lives, slower pace, no timer for Match Pairs
  normal - The configured values
  hard   - Fewer lives, faster pace, a timer for Match Pairs

Examples:
  arcade play breakout
  arcade play snake --difficulty easy
  arcade play match --record
  arcade play breakout --config ./my-breakout.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
		cmd.Flags().BoolVar(&flagRecord, "record", false, "Record sessions to the replay database")
		cmd.Flags().StringVar(&flagLogFile, "log", "", "Write the session log to this file")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	var store *storage.Store
	if flagRecord {
		store = openStore()
		defer store.Close()
	}

	sessionLog, closeLog := playLogger()
	defer closeLog()

	width, height := terminalSize()
	if err := play(gameID, store, sessionLog, width, height); err != nil {
		logger.Error("cannot run game", "game", gameID, "err", err)
		os.Exit(1)
	}
}

// play runs one game in the terminal until the player quits.
func play(gameID string, store *storage.Store, sessionLog *log.Logger, width, height int) error {
	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		return err
	}

	opts := tui.Options{
		FPS:    flagFPS,
		Seed:   flagSeed,
		Logger: sessionLog,
		Width:  width,
		Height: height,
	}
	if store != nil {
		opts.Record = true
		opts.OnReplay = func(r *replay.Replay) error {
			return store.SaveReplay(r)
		}
	}

	return tui.Run(game, opts)
}

// playLogger returns the logger handed to the driver. A TUI owns the terminal,
// so the driver only logs when --log names a file.
func playLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return nil, func() {}
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Fatal("cannot open log file", "path", flagLogFile, "err", err)
	}
	l := newLogger(f)
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	return l, func() { f.Close() }
}
