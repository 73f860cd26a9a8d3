package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/replay"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with its autopilot",
	Long: `Run a game without a terminal UI. The built-in autopilot supplies the
intents, every event is logged at debug level and a summary is printed at the
end. The same seed and configuration always produce the same digest.

Examples:
  arcade sim breakout --ticks 3000 --seed 7
  arcade sim snake --difficulty hard -v
  arcade sim match --record`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to simulate")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Store the run in the replay database")
}

func runSim(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		logger.Fatal("cannot create game", "game", gameID, "err", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	final, rec, err := simulate(game, seed, flagTicks)
	if err != nil {
		logger.Fatal("simulation failed", "game", gameID, "err", err)
	}

	logger.Info("simulation finished",
		"game", gameID,
		"seed", seed,
		"ticks", final.Tick,
		"score", final.Score,
		"state", final.State,
		"won", final.Won,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	fmt.Printf("%016x\n", final.Digest())

	if flagRecord {
		store := openStore()
		defer store.Close()
		r := rec.Finish(final)
		if err := store.SaveReplay(r); err != nil {
			logger.Fatal("cannot save replay", "err", err)
		}
		logger.Info("replay saved", "id", r.ID)
	}
}

// simulate runs the autopilot for at most ticks ticks or until the session
// ends, journaling every intent it feeds.
func simulate(game *registry.Game, seed int64, ticks int) (*engine.Session, *replay.Recorder, error) {
	m := game.Machine
	s, err := m.Start(seed)
	if err != nil {
		return nil, nil, err
	}

	rec := replay.NewRecorder(m.ID(), seed, game.Config)
	for range ticks {
		if s.Over() {
			break
		}
		in := engine.NoIntents()
		if game.Autopilot != nil {
			in = game.Autopilot(s)
		}
		rec.Record(in)

		var events []engine.Event
		s, events = m.Step(s, in)
		for _, ev := range events {
			logger.Debug("event", "tick", s.Tick, "event", ev.String(), "score", s.Score)
		}
	}
	return s, rec, nil
}
