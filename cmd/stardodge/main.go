// stardodge is a terminal arcade game: steer a circle around bouncing
// enemies and collect the stars that keep appearing.
//
// Usage:
//
//	stardodge play           - Play in the terminal (default)
//	stardodge simulate       - Run a headless game and log the result
//	stardodge serve          - Start SSH server for remote play
//	stardodge scores         - Show high scores
//	stardodge config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.stardodge/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/stardodge/internal/games/stars"
	"github.com/vovakirdan/stardodge/internal/registry"
)

const gameID = "stars"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardodge",
	Short: "Star Dodge - dodge enemies and collect stars in your terminal",
	Long: `Star Dodge is a terminal arcade game. Steer your circle with the
arrow keys or WASD, collect stars and keep away from the bouncing enemies.
One hit ends the run.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run a headless game with the autopilot
  serve     - Start SSH server for remote play
  scores    - View high scores
  config    - Print the default configuration

Examples:
  stardodge
  stardodge play --difficulty hard
  stardodge simulate --seed 42 --duration 60
  stardodge serve --ssh :2222
  stardodge scores --recent`,
	PersistentPreRunE: setupLogger,
	Run:               runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stardodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger creates the process logger from --log-level.
func setupLogger(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "stardodge",
	})
	return nil
}

// gameOptions returns the registry options built from the global flags.
func gameOptions(fixedField bool) registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		FixedField: fixedField,
	}
}

// gameTitle returns the registered display name of the game.
func gameTitle() string {
	for _, info := range registry.List() {
		if info.ID == gameID {
			return info.Title
		}
	}
	return gameID
}

// seed returns --seed, or the current time when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// fail prints the message to stderr and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
