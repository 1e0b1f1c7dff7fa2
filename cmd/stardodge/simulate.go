package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/games/stars"
	"github.com/vovakirdan/stardodge/internal/storage"
)

var (
	flagDuration float64
	flagIdle     bool
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game and log the result",
	Long: `Run the game without a terminal, on the field size from the config,
with a fixed time step of 1/fps seconds. The autopilot steers the player
unless --idle is given. Score changes and the final score are logged.

The same --seed always produces the same run, and the final state hash
printed at the end can be compared across machines.

Examples:
  stardodge simulate --seed 42
  stardodge simulate --seed 7 --duration 120 --difficulty hard
  stardodge simulate --idle --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagDuration, "duration", 60, "Simulated seconds to run before stopping")
	simulateCmd.Flags().BoolVar(&flagIdle, "idle", false, "Leave the player still instead of using the autopilot")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Store the run in the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	game, err := stars.NewFromOptions(gameOptions(true))
	if err != nil {
		fail("creating game: %v", err)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: flagFPS,
		Seed:     seed(),
	}
	game.Reset(cfg)
	if game.World() == nil {
		fail("field %vx%v is too small for the configured entities",
			game.Config().Field.Width, game.Config().Field.Height)
	}

	dt := 1 / float64(flagFPS)
	maxTicks := int(flagDuration * float64(flagFPS))
	logger.Info("simulation started",
		"seed", cfg.Seed,
		"fps", flagFPS,
		"duration", flagDuration,
		"autopilot", !flagIdle,
	)

	for range maxTicks {
		in := core.NewInputFrame()
		if !flagIdle {
			in = game.AutopilotInput()
		}

		res := game.Step(in, dt)
		if res.ScoreChanged {
			logger.Info("score changed", "score", res.State.Score)
		}
		for _, cue := range res.Cues {
			logger.Debug("cue", "tick", game.World().TickCount(), "cue", cue)
		}
		if res.State.GameOver {
			break
		}
	}

	stats := game.Stats()
	snap := game.Snapshot()
	if game.State().GameOver {
		logger.Info("game over", "score", stats.Score)
	} else {
		logger.Info("time limit reached", "score", stats.Score)
	}
	logger.Info("run stats",
		"stars", stats.Stars,
		"bounces", stats.Bounces,
		"ticks", stats.Ticks,
		"duration", stats.Duration.Round(time.Millisecond),
	)

	if flagSave {
		saveSimulatedRun(stats)
	}

	fmt.Printf("score=%d ticks=%d hash=%016x\n", stats.Score, stats.Ticks, snap.Hash())
}

// saveSimulatedRun stores a headless run like a played one.
func saveSimulatedRun(stats core.RunStats) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		GameID:   gameID,
		Score:    stats.Score,
		Stars:    stats.Stars,
		Bounces:  stats.Bounces,
		Duration: stats.Duration,
		Seed:     stats.Seed,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Debug("run saved", "id", id)
}
