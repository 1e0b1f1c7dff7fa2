package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/stardodge/internal/core"
)

func TestNewWorldValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   Field
		wantErr error
	}{
		{"defaults", nil, FixedField{W: 800, H: 600}, nil},
		{"zero player radius", func(c *Config) { c.PlayerRadius = 0 }, FixedField{W: 800, H: 600}, ErrInvalidConfig},
		{"negative enemy speed", func(c *Config) { c.EnemySpeed = -1 }, FixedField{W: 800, H: 600}, ErrInvalidConfig},
		{"zero spawn period", func(c *Config) { c.SpawnPeriod = 0 }, FixedField{W: 800, H: 600}, ErrInvalidConfig},
		{"negative enemy count", func(c *Config) { c.EnemyCount = -2 }, FixedField{W: 800, H: 600}, ErrInvalidConfig},
		{"nil field", nil, nil, ErrInvalidConfig},
		{"narrow field", nil, FixedField{W: 63, H: 600}, ErrFieldTooSmall},
		{"exact fit", nil, FixedField{W: 64, H: 64}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			_, err := NewWorld(cfg, tt.field, rand.New(rand.NewSource(1)))
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("NewWorld() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewWorld() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStartSpawnsInitialEntities(t *testing.T) {
	host := newRecordingHost()
	w, err := NewWorld(DefaultConfig(), FixedField{W: 800, H: 600}, rand.New(rand.NewSource(3)), WithHost(host))
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}

	w.Start()

	p, ok := w.Player()
	if !ok {
		t.Fatal("player should exist")
	}
	if p.Pos != core.V(400, 300) {
		t.Errorf("player at %v, want field center", p.Pos)
	}
	if len(w.Enemies()) != DefaultEnemyCount {
		t.Errorf("%d enemies, want %d", len(w.Enemies()), DefaultEnemyCount)
	}
	for _, e := range w.Enemies() {
		if !approx(e.Dir.Len(), 1) {
			t.Errorf("enemy direction %v is not unit length", e.Dir)
		}
	}
	if len(w.Pickups()) != DefaultPickupCount {
		t.Errorf("%d pickups, want %d", len(w.Pickups()), DefaultPickupCount)
	}
	if host.spawned[KindPlayer] != 1 || host.spawned[KindEnemy] != 3 || host.spawned[KindPickup] != 5 {
		t.Errorf("unexpected spawn notifications %v", host.spawned)
	}
}

func TestTickReadsFieldEveryTick(t *testing.T) {
	field := &resizableField{w: 800, h: 600}
	w, err := NewWorld(DefaultConfig(), field, &stubRand{float: 0.5})
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	w.SpawnPlayer(core.V(700, 500))

	field.w, field.h = 400, 300
	w.Tick(nil, FixedClock(0))

	if fw, fh := w.FieldSize(); fw != 400 || fh != 300 {
		t.Errorf("FieldSize() = %vx%v, want 400x300", fw, fh)
	}
	if p, _ := w.Player(); p.Pos != core.V(368, 268) {
		t.Errorf("player at %v, want (368,268) after shrink", p.Pos)
	}
}

func TestTickCountAndNilArgs(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnPlayer(core.V(400, 300))

	for range 5 {
		w.Tick(nil, nil)
	}

	if w.TickCount() != 5 {
		t.Errorf("TickCount() = %d, want 5", w.TickCount())
	}
	if p, _ := w.Player(); p.Pos != core.V(400, 300) {
		t.Errorf("player moved without input: %v", p.Pos)
	}
}

func TestDespawnStaleHandle(t *testing.T) {
	host := newRecordingHost()
	w, _ := newTestWorld(t, nil, WithHost(host))
	h := w.SpawnPickup(core.V(100, 100))

	if !w.Despawn(h) {
		t.Fatal("first despawn should succeed")
	}
	if w.Despawn(h) {
		t.Error("second despawn should fail")
	}

	reused := w.SpawnPickup(core.V(200, 200))
	if reused == h {
		t.Error("reused slot must produce a different handle")
	}
	if _, ok := w.Entity(h); ok {
		t.Error("stale handle resolved to an entity")
	}
	if host.despawned[KindPickup] != 1 {
		t.Errorf("despawn notifications = %d, want 1", host.despawned[KindPickup])
	}
	if !(Handle{}).IsZero() || reused.IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestSpawnPlayerReplacesExisting(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	first := w.SpawnPlayer(core.V(100, 100))
	second := w.SpawnPlayer(core.V(200, 200))

	if _, ok := w.Entity(first); ok {
		t.Error("first player should be gone")
	}
	if p, ok := w.Player(); !ok || p.Handle != second {
		t.Error("second player should be the live player")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		w, err := NewWorld(DefaultConfig(), FixedField{W: 800, H: 600}, rand.New(rand.NewSource(12345)))
		if err != nil {
			t.Fatalf("NewWorld() error = %v", err)
		}
		w.Start()
		in := keys{}
		for i := range 600 {
			in.left = i%120 < 30
			in.up = i%90 > 60
			w.Tick(in, FixedClock(1.0/60))
		}
		return w.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick != 600 {
		t.Errorf("Tick = %d, want 600", snap1.Tick)
	}
	if snap1.Score != snap2.Score || snap1.PlayerAlive != snap2.PlayerAlive {
		t.Errorf("state mismatch: %+v vs %+v", snap1, snap2)
	}
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	w.SpawnEnemy(core.V(400, 300), core.V(1, 0))
	before := w.Snapshot()

	w.Tick(nil, FixedClock(0.1))
	after := w.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash should change after the enemy moves")
	}
}
