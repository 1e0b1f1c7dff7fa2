package sim

// SpawnPickups creates n pickups at random positions.
func (w *World) SpawnPickups(n int) {
	for range n {
		w.SpawnPickup(w.randomPosition())
	}
}

// TickSpawnTimer advances the pickup spawn timer by dt seconds.
func (w *World) TickSpawnTimer(dt float64) {
	w.timer.Tick(dt)
}

// SpawnPickupOnTimer spawns one pickup if the timer fired this tick.
// A long tick covering several periods still spawns a single pickup.
func (w *World) SpawnPickupOnTimer() {
	if w.timer.Finished() {
		w.SpawnPickup(w.randomPosition())
	}
}
