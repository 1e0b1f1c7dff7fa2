package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/stardodge/internal/core"
)

// Default simulation constants, in world units and seconds.
const (
	DefaultPlayerRadius = 32.0
	DefaultPlayerSpeed  = 500.0
	DefaultEnemyRadius  = 32.0
	DefaultEnemySpeed   = 400.0
	DefaultEnemyCount   = 3
	DefaultPickupRadius = 32.0
	DefaultPickupCount  = 5
	DefaultSpawnPeriod  = 1.0
)

var (
	// ErrInvalidConfig is returned by NewWorld when a constant is out of range.
	ErrInvalidConfig = errors.New("sim: invalid config")

	// ErrFieldTooSmall is returned by NewWorld when the play-field cannot
	// contain the largest entity.
	ErrFieldTooSmall = errors.New("sim: field too small")
)

// Config holds the simulation constants. Speeds are per real second.
type Config struct {
	PlayerRadius float64
	PlayerSpeed  float64
	EnemyRadius  float64
	EnemySpeed   float64
	EnemyCount   int
	PickupRadius float64
	PickupCount  int
	SpawnPeriod  float64

	// SingleGameOver stops the enemy check at the first overlapping enemy.
	// When false, every enemy overlapping the player in the same tick
	// produces its own PlayerHitEvent and GameOverEvent.
	SingleGameOver bool
}

// DefaultConfig returns the standard game constants.
func DefaultConfig() Config {
	return Config{
		PlayerRadius: DefaultPlayerRadius,
		PlayerSpeed:  DefaultPlayerSpeed,
		EnemyRadius:  DefaultEnemyRadius,
		EnemySpeed:   DefaultEnemySpeed,
		EnemyCount:   DefaultEnemyCount,
		PickupRadius: DefaultPickupRadius,
		PickupCount:  DefaultPickupCount,
		SpawnPeriod:  DefaultSpawnPeriod,
	}
}

// Validate checks that all constants are usable.
func (c Config) Validate() error {
	switch {
	case c.PlayerRadius <= 0:
		return fmt.Errorf("%w: player radius %v", ErrInvalidConfig, c.PlayerRadius)
	case c.EnemyRadius <= 0:
		return fmt.Errorf("%w: enemy radius %v", ErrInvalidConfig, c.EnemyRadius)
	case c.PickupRadius <= 0:
		return fmt.Errorf("%w: pickup radius %v", ErrInvalidConfig, c.PickupRadius)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("%w: player speed %v", ErrInvalidConfig, c.PlayerSpeed)
	case c.EnemySpeed < 0:
		return fmt.Errorf("%w: enemy speed %v", ErrInvalidConfig, c.EnemySpeed)
	case c.EnemyCount < 0:
		return fmt.Errorf("%w: enemy count %d", ErrInvalidConfig, c.EnemyCount)
	case c.PickupCount < 0:
		return fmt.Errorf("%w: pickup count %d", ErrInvalidConfig, c.PickupCount)
	case c.SpawnPeriod <= 0:
		return fmt.Errorf("%w: spawn period %v", ErrInvalidConfig, c.SpawnPeriod)
	}
	return nil
}

// maxRadius returns the largest entity radius.
func (c Config) maxRadius() float64 {
	return max(c.PlayerRadius, c.EnemyRadius, c.PickupRadius)
}

// Option customizes a World.
type Option func(*World)

// WithHost registers a host that is told about spawns and despawns.
func WithHost(h Host) Option {
	return func(w *World) {
		if h != nil {
			w.host = h
		}
	}
}

// TickResult summarizes one tick.
type TickResult struct {
	Tick        uint64
	Events      []Event
	Score       int
	PlayerAlive bool
}

// World is the complete simulation state. It is not safe for concurrent
// use; the host drives it from a single goroutine.
type World struct {
	cfg   Config
	field Field
	rng   Rand
	host  Host

	handles   handleTable
	player    Entity
	hasPlayer bool
	enemies   []Entity
	pickups   []Entity

	score      Score
	timer      SpawnTimer
	enemySpeed float64
	tick       uint64

	fieldW float64
	fieldH float64

	events []Event
}

// NewWorld creates an empty world. Call Start to spawn the initial entities.
// The field must be at least twice the largest radius in both dimensions.
func NewWorld(cfg Config, field Field, rng Rand, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if field == nil {
		return nil, fmt.Errorf("%w: nil field", ErrInvalidConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}

	w := &World{
		cfg:        cfg,
		field:      field,
		rng:        rng,
		host:       NopHost{},
		score:      newScore(),
		timer:      NewSpawnTimer(cfg.SpawnPeriod),
		enemySpeed: cfg.EnemySpeed,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.readField()
	if minDim := 2 * cfg.maxRadius(); w.fieldW < minDim || w.fieldH < minDim {
		return nil, fmt.Errorf("%w: %vx%v, need at least %vx%v",
			ErrFieldTooSmall, w.fieldW, w.fieldH, minDim, minDim)
	}

	return w, nil
}

// Start runs the startup spawns: the player at the field center, the
// enemy batch and the pickup batch.
func (w *World) Start() {
	w.readField()
	w.SpawnPlayer(core.V(w.fieldW/2, w.fieldH/2))
	w.SpawnEnemies(w.cfg.EnemyCount)
	w.SpawnPickups(w.cfg.PickupCount)
}

// Tick advances the simulation by one frame. A nil clock means zero
// elapsed time and a nil input means no keys held.
//
// Order: spawn timer, timed spawn, player movement and confinement, enemy
// movement, reflection and confinement, enemy collision, pickup collision,
// score observation.
func (w *World) Tick(in Input, clk Clock) TickResult {
	if in == nil {
		in = noInput{}
	}
	dt := 0.0
	if clk != nil {
		dt = clk.Delta()
	}

	w.readField()
	w.tick++

	w.TickSpawnTimer(dt)
	w.SpawnPickupOnTimer()

	w.MovePlayer(in, dt)
	w.ConfinePlayer()

	w.MoveEnemies(dt)
	w.ReflectEnemies()
	w.ConfineEnemies()

	w.EnemyHitPlayer()
	w.PlayerHitPickups()

	w.UpdateScore()

	return TickResult{
		Tick:        w.tick,
		Events:      w.DrainEvents(),
		Score:       w.score.Value(),
		PlayerAlive: w.hasPlayer,
	}
}

// readField refreshes the cached field size from the host.
func (w *World) readField() {
	w.fieldW, w.fieldH = w.field.Size()
}

// emit queues an event for the current tick.
func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// DrainEvents returns the queued events and empties the queue.
func (w *World) DrainEvents() []Event {
	events := w.events
	w.events = nil
	return events
}

// SetEnemySpeed overrides the enemy speed, used for difficulty progression.
func (w *World) SetEnemySpeed(speed float64) {
	if speed >= 0 {
		w.enemySpeed = speed
	}
}

// EnemySpeed returns the current enemy speed.
func (w *World) EnemySpeed() float64 {
	return w.enemySpeed
}

// Config returns the constants the world was created with.
func (w *World) Config() Config {
	return w.cfg
}

// FieldSize returns the field size read at the start of the current tick.
func (w *World) FieldSize() (float64, float64) {
	return w.fieldW, w.fieldH
}

// TickCount returns the number of ticks run so far.
func (w *World) TickCount() uint64 {
	return w.tick
}

// Score returns the score resource.
func (w *World) Score() Score {
	return w.score
}

// Timer returns a copy of the pickup spawn timer.
func (w *World) Timer() SpawnTimer {
	return w.timer
}

// Player returns the player entity, if it is alive.
func (w *World) Player() (Entity, bool) {
	return w.player, w.hasPlayer
}

// Enemies returns a copy of the live enemies.
func (w *World) Enemies() []Entity {
	out := make([]Entity, len(w.enemies))
	copy(out, w.enemies)
	return out
}

// Pickups returns a copy of the live pickups.
func (w *World) Pickups() []Entity {
	out := make([]Entity, len(w.pickups))
	copy(out, w.pickups)
	return out
}

// Entity looks up a live entity by handle.
func (w *World) Entity(h Handle) (Entity, bool) {
	if !w.handles.alive(h) {
		return Entity{}, false
	}
	if w.hasPlayer && w.player.Handle == h {
		return w.player, true
	}
	for _, e := range w.enemies {
		if e.Handle == h {
			return e, true
		}
	}
	for _, p := range w.pickups {
		if p.Handle == h {
			return p, true
		}
	}
	return Entity{}, false
}

// SpawnPlayer creates the player at pos. An existing player is destroyed
// first, so at most one is ever alive.
func (w *World) SpawnPlayer(pos core.Vec2) Handle {
	if w.hasPlayer {
		w.despawnPlayer()
	}
	w.player = Entity{
		Handle: w.handles.alloc(),
		Kind:   KindPlayer,
		Pos:    pos,
		Radius: w.cfg.PlayerRadius,
	}
	w.hasPlayer = true
	w.host.Spawned(w.player)
	return w.player.Handle
}

// SpawnEnemy creates an enemy at pos heading along dir. The heading is
// normalized; a zero heading becomes +X.
func (w *World) SpawnEnemy(pos, dir core.Vec2) Handle {
	dir = dir.Normalize()
	if dir.IsZero() {
		dir = core.V(1, 0)
	}
	e := Entity{
		Handle: w.handles.alloc(),
		Kind:   KindEnemy,
		Pos:    pos,
		Radius: w.cfg.EnemyRadius,
		Dir:    dir,
	}
	w.enemies = append(w.enemies, e)
	w.host.Spawned(e)
	return e.Handle
}

// SpawnPickup creates a pickup at pos.
func (w *World) SpawnPickup(pos core.Vec2) Handle {
	p := Entity{
		Handle: w.handles.alloc(),
		Kind:   KindPickup,
		Pos:    pos,
		Radius: w.cfg.PickupRadius,
	}
	w.pickups = append(w.pickups, p)
	w.host.Spawned(p)
	return p.Handle
}

// Despawn destroys the entity behind h. Returns false if h is stale.
func (w *World) Despawn(h Handle) bool {
	if !w.handles.alive(h) {
		return false
	}
	if w.hasPlayer && w.player.Handle == h {
		w.despawnPlayer()
		return true
	}
	for i, e := range w.enemies {
		if e.Handle == h {
			w.enemies = append(w.enemies[:i], w.enemies[i+1:]...)
			w.release(e)
			return true
		}
	}
	for i, p := range w.pickups {
		if p.Handle == h {
			w.pickups = append(w.pickups[:i], w.pickups[i+1:]...)
			w.release(p)
			return true
		}
	}
	return false
}

// despawnPlayer clears the player slot.
func (w *World) despawnPlayer() {
	p := w.player
	w.player = Entity{}
	w.hasPlayer = false
	w.release(p)
}

// release frees the handle and notifies the host.
func (w *World) release(e Entity) {
	if w.handles.release(e.Handle) {
		w.host.Despawned(e)
	}
}

// randomPosition draws a point uniformly across the field.
func (w *World) randomPosition() core.Vec2 {
	return core.V(w.rng.Float64()*w.fieldW, w.rng.Float64()*w.fieldH)
}
