package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/replay"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var flagVerifyGame string

var verifyCmd = &cobra.Command{
	Use:   "verify [id...]",
	Short: "Re-simulate stored replays and compare digests",
	Long: `Re-run stored replays against the engine and check that each one ends in
the recorded state. Without IDs every stored replay is checked. Replays are
verified concurrently; the command fails if any replay diverges.

Examples:
  arcade verify
  arcade verify --game snake
  arcade verify 3f0c2a9e-...`,
	Run: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&flagVerifyGame, "game", "", "Only verify replays of this game")
}

// verifyResult is the outcome of one replay.
type verifyResult struct {
	id      string
	game    string
	session *engine.Session
	err     error
}

func runVerify(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	ids := args
	if len(ids) == 0 {
		var err error
		ids, err = store.ReplayIDs(flagVerifyGame)
		if err != nil {
			logger.Fatal("cannot list replays", "err", err)
		}
	}
	if len(ids) == 0 {
		fmt.Println("No replays to verify.")
		return
	}

	results := make([]verifyResult, len(ids))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = verifyOne(store, id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("verification interrupted", "err", err)
	}

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			logger.Error("replay diverged", "id", res.id, "game", res.game, "err", res.err)
			continue
		}
		logger.Info("replay ok", "id", res.id, "game", res.game, "ticks", res.session.Tick, "score", res.session.Score)
	}

	fmt.Printf("%d/%d replays verified\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}

func verifyOne(store *storage.Store, id string) verifyResult {
	r, err := store.Replay(id)
	if err != nil {
		return verifyResult{id: id, err: err}
	}
	s, err := verifyReplay(r)
	return verifyResult{id: id, game: r.Game, session: s, err: err}
}

// verifyReplay rebuilds the recorded game from its stored configuration and
// re-simulates the journal.
func verifyReplay(r *replay.Replay) (*engine.Session, error) {
	game, err := registry.Create(r.Game, registry.Options{Resolved: r.Config})
	if err != nil {
		return nil, fmt.Errorf("rebuild %s: %w", r.Game, err)
	}
	return replay.Verify(game.Machine, r)
}

// verifier adapts verifyReplay for the replay browser.
func verifier(store *storage.Store) tui.VerifyFunc {
	return func(id string) error {
		r, err := store.Replay(id)
		if err != nil {
			return err
		}
		_, err = verifyReplay(r)
		return err
	}
}
