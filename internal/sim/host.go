package sim

// Input is the per-tick movement input, polled once per tick.
// ExitRequested is for the host; the simulation never reads it.
type Input interface {
	Left() bool
	Right() bool
	Up() bool
	Down() bool
	ExitRequested() bool
}

// Clock supplies the wall-clock time elapsed since the previous tick, in seconds.
type Clock interface {
	Delta() float64
}

// FixedClock is a Clock that always reports the same delta.
type FixedClock float64

// Delta returns the fixed delta.
func (c FixedClock) Delta() float64 { return float64(c) }

// Field supplies the current play-field size. It is re-read every tick
// because the host window may be resized while the game runs.
type Field interface {
	Size() (width, height float64)
}

// FixedField is a Field with constant dimensions.
type FixedField struct {
	W, H float64
}

// Size returns the fixed dimensions.
func (f FixedField) Size() (float64, float64) { return f.W, f.H }

// Host is notified when the simulation creates or destroys an entity,
// so it can attach or release presentation resources keyed by handle.
type Host interface {
	Spawned(e Entity)
	Despawned(e Entity)
}

// NopHost ignores spawn notifications.
type NopHost struct{}

// Spawned does nothing.
func (NopHost) Spawned(Entity) {}

// Despawned does nothing.
func (NopHost) Despawned(Entity) {}

// Rand is the random source used for spawn positions, enemy headings and
// bounce cue selection. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// noInput is used when the host passes a nil Input.
type noInput struct{}

func (noInput) Left() bool  { return false }
func (noInput) Right() bool { return false }
func (noInput) Up() bool    { return false }
func (noInput) Down() bool  { return false }

func (noInput) ExitRequested() bool { return false }
