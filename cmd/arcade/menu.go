package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.
Tab opens the replay browser.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Replays
  Q            - Quit

Examples:
  arcade menu
  arcade menu --record --difficulty hard
  arcade menu --db ./replays.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// The browser reads the store even when nothing is recorded.
	store := openStore()
	defer store.Close()

	sessionLog, closeLog := playLogger()
	defer closeLog()

	width, height := terminalSize()
	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}
		width, height = result.Width, result.Height

		if result.Quit {
			return
		}

		if result.WantsReplays {
			goBack, err := tui.RunBrowser(store, verifier(store), width, height)
			if err != nil {
				logger.Error("replay browser failed", "err", err)
			}
			if goBack {
				continue
			}
			return
		}

		playStore := store
		if !flagRecord {
			playStore = nil
		}
		if err := play(result.GameID, playStore, sessionLog, width, height); err != nil {
			logger.Error("cannot run game", "game", result.GameID, "err", err)
		}
	}
}
