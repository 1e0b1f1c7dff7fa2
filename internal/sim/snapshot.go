package sim

import "math"

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Score        int
	PlayerAlive  bool
	PlayerX      float64
	PlayerY      float64
	EnemySpeed   float64
	TimerElapsed float64
	FieldW       float64
	FieldH       float64
	EnemyData    []float64 // x, y, dx, dy per enemy
	PickupData   []float64 // x, y per pickup
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         w.tick,
		Score:        w.score.Value(),
		PlayerAlive:  w.hasPlayer,
		EnemySpeed:   w.enemySpeed,
		TimerElapsed: w.timer.Elapsed(),
		FieldW:       w.fieldW,
		FieldH:       w.fieldH,
		EnemyData:    make([]float64, 0, len(w.enemies)*4),
		PickupData:   make([]float64, 0, len(w.pickups)*2),
	}
	if w.hasPlayer {
		snap.PlayerX = w.player.Pos.X
		snap.PlayerY = w.player.Pos.Y
	}
	for _, e := range w.enemies {
		snap.EnemyData = append(snap.EnemyData, e.Pos.X, e.Pos.Y, e.Dir.X, e.Dir.Y)
	}
	for _, p := range w.pickups {
		snap.PickupData = append(snap.PickupData, p.Pos.X, p.Pos.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	if snap.PlayerAlive {
		h = h*31 + 1
	} else {
		h *= 31
	}
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.EnemySpeed)
	h = h*31 + math.Float64bits(snap.TimerElapsed)
	h = h*31 + math.Float64bits(snap.FieldW)
	h = h*31 + math.Float64bits(snap.FieldH)

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.PickupData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
