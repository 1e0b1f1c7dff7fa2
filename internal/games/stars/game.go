// Package stars implements star dodge: a circle steered around the field
// collects stars while bouncing enemies try to run into it.
//
// The simulation itself lives in internal/sim. This package adapts it to the
// platform: it sizes the field from the terminal, turns simulation events
// into sound cues and run statistics, and renders the world into a cell grid.
package stars

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/registry"
	"github.com/vovakirdan/stardodge/internal/sim"
)

// Minimum screen size in cells; smaller screens pause the game.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// hudRows is the number of screen rows reserved for the score line.
const hudRows = 1

// Game implements the star dodge platform game.
type Game struct {
	cfg        config.StarsConfig
	fixedField bool

	runtime    core.RuntimeConfig
	field      *cellField
	rng        *rand.Rand
	world      *sim.World
	difficulty *config.DifficultyManager

	gameOver  bool
	paused    bool
	tooSmall  bool
	lastScore int

	// Run statistics
	stars   int
	bounces int
	elapsed float64
}

// New creates a game from an already loaded configuration.
// With fixedField set the world uses cfg.Field.Width x Height instead of
// deriving its size from the screen.
func New(cfg config.StarsConfig, fixedField bool) *Game {
	return &Game{
		cfg:        cfg,
		fixedField: fixedField,
		field:      &cellField{},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// NewFromOptions loads the configuration named by opts and creates a game.
func NewFromOptions(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadStars(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyStarsPreset(&cfg, preset)
	return New(cfg, opts.FixedField), nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "stars"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Dodge"
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.StarsConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.gameOver = false
	g.paused = false
	g.lastScore = 0
	g.stars = 0
	g.bounces = 0
	g.elapsed = 0
	g.world = nil

	g.rng = rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- gameplay randomness, seeded for replays
	g.resizeField(cfg.ScreenW, cfg.ScreenH)
	g.tryStart()
}

// Resize updates the screen size. The running world keeps its entities and
// picks up the new field size on the next tick.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.resizeField(width, height)

	if g.world == nil {
		g.tryStart()
		return
	}
	g.tooSmall = !g.fits()
}

// resizeField recomputes the world size for a screen of the given cells.
func (g *Game) resizeField(width, height int) {
	if g.fixedField {
		g.field.set(g.cfg.Field.Width, g.cfg.Field.Height)
		return
	}
	playRows := max(height-hudRows, 0)
	g.field.set(float64(width)*g.cfg.Field.CellWidth, float64(playRows)*g.cfg.Field.CellHeight)
}

// fits reports whether the current screen and field can host the game.
func (g *Game) fits() bool {
	if g.runtime.ScreenW < MinScreenW || g.runtime.ScreenH < MinScreenH {
		return false
	}
	w, h := g.field.Size()
	minDim := 2 * max(g.cfg.Player.Radius, g.cfg.Enemies.Radius, g.cfg.Pickups.Radius)
	return w >= minDim && h >= minDim
}

// tryStart creates the world once the screen is large enough.
func (g *Game) tryStart() {
	if !g.fits() {
		g.tooSmall = true
		return
	}

	world, err := sim.NewWorld(g.cfg.SimConfig(), g.field, g.rng)
	if err != nil {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.world = world
	g.world.Start()
}

// restart begins a new run with the next seed.
func (g *Game) restart() {
	next := g.runtime
	next.Seed++
	g.Reset(next)
}

// Step advances the game by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) && g.gameOver {
		g.restart()
		return core.StepResult{State: g.State(), ScoreChanged: true}
	}

	if g.gameOver || g.tooSmall || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	score := g.world.Score().Value()
	g.world.SetEnemySpeed(g.difficulty.Speed(g.cfg.Enemies.Speed, score, g.elapsed))

	res := g.world.Tick(in, sim.FixedClock(dt))
	if dt > 0 {
		g.elapsed += dt
	}

	cues := g.applyEvents(res.Events)

	changed := res.Score != g.lastScore
	g.lastScore = res.Score

	return core.StepResult{
		State:        g.State(),
		ScoreChanged: changed,
		Cues:         cues,
	}
}

// applyEvents updates run statistics and maps events to sound cues.
func (g *Game) applyEvents(events []sim.Event) []core.Cue {
	var cues []core.Cue
	for _, ev := range events {
		switch e := ev.(type) {
		case sim.BounceEvent:
			g.bounces++
			if e.Cue == sim.CueTwo {
				cues = append(cues, core.CueBounceTwo)
			} else {
				cues = append(cues, core.CueBounceOne)
			}
		case sim.PickupCollectedEvent:
			g.stars++
			cues = append(cues, core.CuePickup)
		case sim.PlayerHitEvent:
			cues = append(cues, core.CueExplosion)
		case sim.GameOverEvent:
			g.gameOver = true
		}
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.world != nil {
		score = g.world.Score().Value()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Stats returns the statistics of the current run.
func (g *Game) Stats() core.RunStats {
	var ticks uint64
	if g.world != nil {
		ticks = g.world.TickCount()
	}
	return core.RunStats{
		Score:    g.State().Score,
		Stars:    g.stars,
		Bounces:  g.bounces,
		Duration: time.Duration(g.elapsed * float64(time.Second)),
		Ticks:    ticks,
		Seed:     g.runtime.Seed,
	}
}

// World exposes the underlying simulation, nil while the screen is too small.
func (g *Game) World() *sim.World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register("stars", "Star Dodge", func(opts registry.Options) (registry.Game, error) {
		g, err := NewFromOptions(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
