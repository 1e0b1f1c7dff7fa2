package sim

import "github.com/vovakirdan/stardodge/internal/core"

// SpawnEnemies creates n enemies at random positions with random headings.
func (w *World) SpawnEnemies(n int) {
	for range n {
		pos := w.randomPosition()
		dir := core.V(w.rng.Float64(), w.rng.Float64())
		w.SpawnEnemy(pos, dir)
	}
}

// MoveEnemies advances every enemy along its heading at the current enemy speed.
func (w *World) MoveEnemies(dt float64) {
	if dt <= 0 {
		return
	}
	step := w.enemySpeed * dt
	for i := range w.enemies {
		e := &w.enemies[i]
		e.Pos = e.Pos.Add(e.Dir.Scale(step))
	}
}

// ReflectEnemies clamps each enemy to the field and flips the heading
// component of every clamped axis. A BounceEvent is emitted per enemy that
// touched an edge.
func (w *World) ReflectEnemies() {
	for i := range w.enemies {
		e := &w.enemies[i]

		// Drawn for every enemy so the random stream does not depend on bounces.
		cue := Cue(w.rng.Intn(2) + 1) //#nosec G115 -- Intn(2) is 0 or 1

		var res ClampResult
		e.Pos, res = Clamp(e.Pos, e.Radius, w.fieldW, w.fieldH)
		if res.ClampedX {
			e.Dir.X = -e.Dir.X
		}
		if res.ClampedY {
			e.Dir.Y = -e.Dir.Y
		}
		if res.Any() {
			w.emit(BounceEvent{Enemy: e.Handle, Cue: cue})
		}
	}
}

// ConfineEnemies clamps every enemy to the field without touching headings.
func (w *World) ConfineEnemies() {
	for i := range w.enemies {
		e := &w.enemies[i]
		e.Pos, _ = Clamp(e.Pos, e.Radius, w.fieldW, w.fieldH)
	}
}
