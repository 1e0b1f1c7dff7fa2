package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/registry"
	"github.com/vovakirdan/stardodge/internal/storage"
)

// CuePlayer plays the sound cues produced by a game step.
type CuePlayer interface {
	Play(cues ...core.Cue)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	sound     CuePlayer
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      *HeldKeys
	keyMapper *KeyMapper
	lastTick  time.Time
	gameState core.GameState
	quitting  bool
	saved     bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given game.
// store and sound may be nil.
func NewModel(game registry.Game, store *storage.Store, sound CuePlayer, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		sound:     sound,
		logger:    logger,
		config:    cfg,
		keys:      NewHeldKeys(),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}
	m.keys.Press(action, now)
	return m, nil
}

// handleResize processes window resize events. The running game keeps
// its state and adapts to the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m, _ = m.step(now)
	return m, tickCmd(m.config.TickRate)
}

// step runs one game step at now and returns the step result.
func (m Model) step(now time.Time) (Model, core.StepResult) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.keys.Frame(now), dt)
	m.gameState = result.State

	if m.sound != nil {
		m.sound.Play(result.Cues...)
	}

	if wasOver && !result.State.GameOver {
		m.saved = false
		m.logger.Debug("game restarted", "game", m.game.ID(), "seed", m.game.Stats().Seed)
	}
	if result.ScoreChanged {
		m.logger.Debug("score changed", "score", result.State.Score)
	}
	if result.State.GameOver && !wasOver {
		m.keys.Release()
		m.saveRun()
	}

	return m, result
}

// saveRun stores the current run once. Runs that never scored are skipped.
func (m *Model) saveRun() {
	if m.saved {
		return
	}
	m.saved = true

	stats := m.game.Stats()
	m.logger.Info("run finished",
		"game", m.game.ID(),
		"score", stats.Score,
		"stars", stats.Stars,
		"duration", stats.Duration.Round(time.Millisecond),
	)
	if m.store == nil || stats.Score == 0 {
		return
	}

	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    stats.Score,
		Stars:    stats.Stars,
		Bounces:  stats.Bounces,
		Duration: stats.Duration,
		Seed:     stats.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".stardodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, sound CuePlayer, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, sound, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
