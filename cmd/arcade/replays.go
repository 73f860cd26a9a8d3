package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
)

var (
	flagLimit  int
	flagBrowse bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays [game]",
	Short: "List stored replays",
	Long: `Display the most recent replays, optionally for one game.

Examples:
  arcade replays
  arcade replays snake --limit 5
  arcade replays --browse`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of replays to show")
	replaysCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive replay browser")
}

func runReplays(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		requireGame(gameID)
	}

	store := openStore()
	defer store.Close()

	if flagBrowse {
		width, height := terminalSize()
		if _, err := tui.RunBrowser(store, verifier(store), width, height); err != nil {
			logger.Error("replay browser failed", "err", err)
		}
		return
	}

	replays, err := store.ListReplays(gameID, flagLimit)
	if err != nil {
		logger.Fatal("cannot list replays", "err", err)
	}

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play with 'arcade play <game> --record' to keep one.")
		return
	}

	fmt.Printf("  %-36s  %-8s  %8s  %8s  %-4s  %-16s  %s\n", "ID", "Game", "Score", "Ticks", "Won", "Digest", "Date")
	fmt.Printf("  %-36s  %-8s  %8s  %8s  %-4s  %-16s  %s\n", "--", "----", "-----", "-----", "---", "------", "----")
	for _, r := range replays {
		won := "no"
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-36s  %-8s  %8d  %8d  %-4s  %016x  %s\n",
			r.ID, r.Game, r.Score, r.Ticks, won, r.Digest, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}
