package sim

import (
	"testing"

	"github.com/vovakirdan/stardodge/internal/core"
)

func TestEnemyOnPlayerEndsGame(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	player := w.SpawnPlayer(core.V(400, 300))
	enemy := w.SpawnEnemy(core.V(400, 300), core.V(1, 0))

	res := w.Tick(nil, FixedClock(0))

	if res.PlayerAlive {
		t.Error("player should be destroyed")
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}

	want := []Event{
		PlayerHitEvent{Player: player, Enemy: enemy},
		GameOverEvent{Score: 0},
		ScoreChangedEvent{Score: 0},
	}
	if len(res.Events) != len(want) {
		t.Fatalf("events = %v, want %v", res.Events, want)
	}
	for i := range want {
		if res.Events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, res.Events[i], want[i])
		}
	}
	if _, ok := w.Entity(player); ok {
		t.Error("player handle should be stale")
	}
}

func TestPlayerCollectsPickup(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnPlayer(core.V(100, 100))
	pickup := w.SpawnPickup(core.V(100, 100))

	res := w.Tick(nil, FixedClock(0))

	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
	if len(w.Pickups()) != 0 {
		t.Errorf("pickup should be destroyed, %d left", len(w.Pickups()))
	}
	want := []Event{
		PickupCollectedEvent{Pickup: pickup, Score: 1},
		ScoreChangedEvent{Score: 1},
	}
	if len(res.Events) != len(want) {
		t.Fatalf("events = %v, want %v", res.Events, want)
	}
	for i := range want {
		if res.Events[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, res.Events[i], want[i])
		}
	}
}

func TestQuietTickHasNoEvents(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnPlayer(core.V(100, 100))
	w.SpawnPickup(core.V(700, 500))

	first := w.Tick(nil, FixedClock(0))
	if len(first.Events) != 1 || first.Events[0] != (ScoreChangedEvent{Score: 0}) {
		t.Fatalf("first tick events = %v, want initial score report", first.Events)
	}

	res := w.Tick(nil, FixedClock(0))
	if len(res.Events) != 0 {
		t.Errorf("quiet tick produced events %v", res.Events)
	}
}

func TestPlayerCollectsSeveralPickups(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnPlayer(core.V(300, 300))
	for range 4 {
		w.SpawnPickup(core.V(310, 290))
	}
	w.SpawnPickup(core.V(700, 500))

	w.PlayerHitPickups()

	if got := w.Score().Value(); got != 4 {
		t.Errorf("score = %d, want 4", got)
	}
	if got := len(w.Pickups()); got != 1 {
		t.Errorf("%d pickups left, want 1", got)
	}
	if _, _, _, pickups, _ := countEvents(w.DrainEvents()); pickups != 4 {
		t.Errorf("%d pickup events, want 4", pickups)
	}
}

func TestPickupTouchingDoesNotCollect(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnPlayer(core.V(100, 100))
	w.SpawnPickup(core.V(164, 100))

	w.PlayerHitPickups()

	if w.Score().Value() != 0 {
		t.Error("touching pickup should not be collected")
	}
}

func TestEnemyHitPlayerMultiFire(t *testing.T) {
	tests := []struct {
		name      string
		single    bool
		wantHits  int
		wantOvers int
	}{
		{"every overlapping enemy", false, 2, 2},
		{"single game over", true, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newRecordingHost()
			w, _ := newTestWorld(t, func(c *Config) { c.SingleGameOver = tt.single }, WithHost(host))
			w.SpawnPlayer(core.V(400, 300))
			w.SpawnEnemy(core.V(410, 300), core.V(1, 0))
			w.SpawnEnemy(core.V(390, 300), core.V(-1, 0))
			w.SpawnEnemy(core.V(100, 100), core.V(0, 1))

			w.EnemyHitPlayer()

			_, hits, overs, _, _ := countEvents(w.DrainEvents())
			if hits != tt.wantHits || overs != tt.wantOvers {
				t.Errorf("hits=%d overs=%d, want %d and %d", hits, overs, tt.wantHits, tt.wantOvers)
			}
			if host.despawned[KindPlayer] != 1 {
				t.Errorf("player despawned %d times, want 1", host.despawned[KindPlayer])
			}
			if len(w.Enemies()) != 3 {
				t.Errorf("enemies should survive, got %d", len(w.Enemies()))
			}
		})
	}
}

func TestPickupIgnoredAfterPlayerDestroyed(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnPlayer(core.V(400, 300))
	w.SpawnEnemy(core.V(400, 300), core.V(1, 0))
	w.SpawnPickup(core.V(400, 300))

	res := w.Tick(nil, FixedClock(0))

	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
	if len(w.Pickups()) != 1 {
		t.Error("pickup should remain")
	}
}

func TestGameOverCarriesScore(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnPlayer(core.V(400, 300))
	w.SpawnPickup(core.V(400, 300))
	w.SpawnPickup(core.V(400, 300))
	w.Tick(nil, FixedClock(0))

	w.SpawnEnemy(core.V(400, 300), core.V(1, 0))
	res := w.Tick(nil, FixedClock(0))

	for _, ev := range res.Events {
		if over, ok := ev.(GameOverEvent); ok {
			if over.Score != 2 {
				t.Errorf("game over score = %d, want 2", over.Score)
			}
			return
		}
	}
	t.Fatal("expected a GameOverEvent")
}
