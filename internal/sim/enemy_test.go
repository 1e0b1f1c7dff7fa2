package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/stardodge/internal/core"
)

func TestEnemyBounceLeftEdge(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	h := w.SpawnEnemy(core.V(40, 300), core.V(-1, 0))

	w.MoveEnemies(0.05)
	w.ReflectEnemies()
	w.ConfineEnemies()

	e, ok := w.Entity(h)
	if !ok {
		t.Fatal("enemy should exist")
	}
	if e.Pos != core.V(32, 300) {
		t.Errorf("enemy at %v, want (32,300)", e.Pos)
	}
	if e.Dir != core.V(1, 0) {
		t.Errorf("enemy dir = %v, want (1,0)", e.Dir)
	}

	events := w.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	bounce, ok := events[0].(BounceEvent)
	if !ok {
		t.Fatalf("expected BounceEvent, got %T", events[0])
	}
	if bounce.Enemy != h {
		t.Errorf("bounce enemy = %v, want %v", bounce.Enemy, h)
	}
	if bounce.Cue != CueOne && bounce.Cue != CueTwo {
		t.Errorf("bounce cue = %d, want 1 or 2", bounce.Cue)
	}
}

func TestEnemyBounceCorner(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	h := w.SpawnEnemy(core.V(760, 560), core.V(1, 1))

	w.MoveEnemies(0.1)
	w.ReflectEnemies()

	e, _ := w.Entity(h)
	if e.Pos != core.V(768, 568) {
		t.Errorf("enemy at %v, want (768,568)", e.Pos)
	}
	if e.Dir.X >= 0 || e.Dir.Y >= 0 {
		t.Errorf("both components should flip, got %v", e.Dir)
	}
	if bounces, _, _, _, _ := countEvents(w.DrainEvents()); bounces != 1 {
		t.Errorf("expected 1 bounce event for a corner hit, got %d", bounces)
	}
}

func TestEnemyNoBounceInside(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	h := w.SpawnEnemy(core.V(400, 300), core.V(0, 1))

	w.MoveEnemies(0.1)
	w.ReflectEnemies()

	e, _ := w.Entity(h)
	if !approxVec(e.Pos, core.V(400, 340)) {
		t.Errorf("enemy at %v, want (400,340)", e.Pos)
	}
	if events := w.DrainEvents(); len(events) != 0 {
		t.Errorf("expected no events, got %v", events)
	}
}

func TestReflectDrawsCueForEveryEnemy(t *testing.T) {
	w, rng := newTestWorld(t, nil)
	w.SpawnEnemy(core.V(400, 300), core.V(1, 0))
	w.SpawnEnemy(core.V(200, 300), core.V(0, 1))
	w.SpawnEnemy(core.V(10, 300), core.V(-1, 0))

	w.ReflectEnemies()

	if rng.ints != 3 {
		t.Errorf("expected 3 cue draws, got %d", rng.ints)
	}
	if bounces, _, _, _, _ := countEvents(w.DrainEvents()); bounces != 1 {
		t.Errorf("expected 1 bounce, got %d", bounces)
	}
}

func TestEnemyDirectionStaysUnit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PickupCount = 0
	w, err := NewWorld(cfg, FixedField{W: 800, H: 600}, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	w.SpawnEnemies(5)

	for range 2000 {
		w.MoveEnemies(1.0 / 60)
		w.ReflectEnemies()
		w.ConfineEnemies()
	}

	for _, e := range w.Enemies() {
		if l := e.Dir.Len(); !approx(l, 1) {
			t.Errorf("enemy %v direction length = %v, want 1", e.Handle, l)
		}
		if e.Pos.X < 32 || e.Pos.X > 768 || e.Pos.Y < 32 || e.Pos.Y > 568 {
			t.Errorf("enemy %v escaped the field: %v", e.Handle, e.Pos)
		}
	}
}

func TestSpawnEnemyZeroHeading(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	h := w.SpawnEnemy(core.V(400, 300), core.Vec2{})

	e, _ := w.Entity(h)
	if e.Dir != core.V(1, 0) {
		t.Errorf("zero heading became %v, want (1,0)", e.Dir)
	}
}

func TestSetEnemySpeed(t *testing.T) {
	w, _ := newTestWorld(t, nil)
	h := w.SpawnEnemy(core.V(400, 300), core.V(1, 0))

	w.SetEnemySpeed(100)
	w.SetEnemySpeed(-5)
	w.MoveEnemies(1)

	if e, _ := w.Entity(h); e.Pos != core.V(500, 300) {
		t.Errorf("enemy at %v, want (500,300)", e.Pos)
	}
	if w.EnemySpeed() != 100 {
		t.Errorf("EnemySpeed() = %v, want 100", w.EnemySpeed())
	}
}
