package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/stardodge/internal/core"
)

// keys is a test Input.
type keys struct {
	left, right, up, down bool
}

func (k keys) Left() bool          { return k.left }
func (k keys) Right() bool         { return k.right }
func (k keys) Up() bool            { return k.up }
func (k keys) Down() bool          { return k.down }
func (k keys) ExitRequested() bool { return false }

// stubRand returns a fixed float and counts draws.
type stubRand struct {
	float  float64
	intn   int
	floats int
	ints   int
}

func (r *stubRand) Float64() float64 {
	r.floats++
	return r.float
}

func (r *stubRand) Intn(n int) int {
	r.ints++
	if r.intn >= n {
		return n - 1
	}
	return r.intn
}

// recordingHost counts spawn notifications per kind.
type recordingHost struct {
	spawned   map[Kind]int
	despawned map[Kind]int
}

func newRecordingHost() *recordingHost {
	return &recordingHost{spawned: map[Kind]int{}, despawned: map[Kind]int{}}
}

func (h *recordingHost) Spawned(e Entity)   { h.spawned[e.Kind]++ }
func (h *recordingHost) Despawned(e Entity) { h.despawned[e.Kind]++ }

// resizableField lets tests change the field between ticks.
type resizableField struct {
	w, h float64
}

func (f *resizableField) Size() (float64, float64) { return f.w, f.h }

// newTestWorld builds an empty 800x600 world with default constants.
func newTestWorld(t *testing.T, mutate func(*Config), opts ...Option) (*World, *stubRand) {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rng := &stubRand{float: 0.5}
	w, err := NewWorld(cfg, FixedField{W: 800, H: 600}, rng, opts...)
	if err != nil {
		t.Fatalf("NewWorld() error = %v", err)
	}
	return w, rng
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

// countEvents tallies events by concrete type.
func countEvents(events []Event) (bounces, hits, gameOvers, pickups, scores int) {
	for _, ev := range events {
		switch ev.(type) {
		case BounceEvent:
			bounces++
		case PlayerHitEvent:
			hits++
		case GameOverEvent:
			gameOvers++
		case PickupCollectedEvent:
			pickups++
		case ScoreChangedEvent:
			scores++
		}
	}
	return
}
