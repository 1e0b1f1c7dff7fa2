package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/stardodge/internal/audio"
	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/platform/tui"
	"github.com/vovakirdan/stardodge/internal/registry"
	"github.com/vovakirdan/stardodge/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game sized to the current terminal.

Controls:
  WASD/Arrows - Move (diagonals allowed)
  P/Space     - Pause
  R/Enter     - Restart (after game over)
  Ctrl+S      - Save a screenshot
  Q/Esc       - Quit

Difficulty options:
  easy   - Fewer, slower enemies; speed rises with your score
  normal - Standard enemies; speed rises with your score
  hard   - More, faster enemies; speed rises with your score
  fixed  - No progression, stays at the config's values

Examples:
  stardodge play
  stardodge play --difficulty hard
  stardodge play --config ./my-stars.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := registry.Create(gameID, gameOptions(false))
	if err != nil {
		fail("creating game: %v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	sound := newAudio()
	defer sound.Close()

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	restoreLog := redirectLog()
	runErr := tui.Run(game, store, sound, cfg, logger)
	restoreLog()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		sound.Close()
		fail("running game: %v", runErr)
	}
}

// newAudio opens the speaker as configured. Audio problems only cost the
// sound; the returned player is silent in that case.
func newAudio() *audio.Player {
	cfg, err := config.LoadStars(flagConfig)
	if err != nil {
		cfg = config.DefaultStarsConfig()
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	player := audio.New(cfg.Audio, logger)
	if err := player.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return player
}

// redirectLog sends log output to ~/.stardodge/stardodge.log while the
// TUI owns the terminal. The returned func restores stderr.
func redirectLog() func() {
	restore := func() { logger.SetOutput(os.Stderr) }

	home, err := os.UserHomeDir()
	if err != nil {
		logger.SetOutput(io.Discard)
		return restore
	}
	dir := filepath.Join(home, ".stardodge")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return restore
	}
	f, err := os.OpenFile(filepath.Join(dir, "stardodge.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.SetOutput(io.Discard)
		return restore
	}

	logger.SetOutput(f)
	return func() {
		restore()
		f.Close()
	}
}
