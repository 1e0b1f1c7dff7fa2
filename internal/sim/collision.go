package sim

// EnemyHitPlayer destroys the player if any enemy overlaps it.
//
// Every overlapping enemy reports its own hit and game over unless
// Config.SingleGameOver is set. The check runs against the player as it
// was when the pass began, so one destroyed player can be hit several times.
func (w *World) EnemyHitPlayer() {
	if !w.hasPlayer {
		return
	}

	player := w.player
	body := player.Circle()
	destroyed := false

	for _, e := range w.enemies {
		if !body.Overlaps(e.Circle()) {
			continue
		}
		if !destroyed {
			w.despawnPlayer()
			destroyed = true
		}
		w.emit(PlayerHitEvent{Player: player.Handle, Enemy: e.Handle})
		w.emit(GameOverEvent{Score: w.score.Value()})
		if w.cfg.SingleGameOver {
			return
		}
	}
}

// PlayerHitPickups collects every pickup overlapping the player.
// Each one adds a point and is destroyed.
func (w *World) PlayerHitPickups() {
	if !w.hasPlayer {
		return
	}

	body := w.player.Circle()
	kept := w.pickups[:0]
	var collected []Entity

	for _, p := range w.pickups {
		if body.Overlaps(p.Circle()) {
			collected = append(collected, p)
			continue
		}
		kept = append(kept, p)
	}
	w.pickups = kept

	for _, p := range collected {
		w.score.add(1)
		w.release(p)
		w.emit(PickupCollectedEvent{Pickup: p.Handle, Score: w.score.Value()})
	}
}

// UpdateScore emits a ScoreChangedEvent if the score changed since the
// previous pass. The first pass always reports the initial score.
func (w *World) UpdateScore() {
	if w.score.observe() {
		w.emit(ScoreChangedEvent{Score: w.score.Value()})
	}
}
