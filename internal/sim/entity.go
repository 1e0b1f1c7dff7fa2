// Package sim implements the star-dodge simulation core: player and enemy
// movement, boundary confinement, pickup spawning, collision and scoring.
//
// The package is engine-agnostic. A host supplies input, elapsed time and the
// play-field size once per frame through small interfaces, calls World.Tick,
// and drains the events the tick produced. Rendering, audio and persistence
// all live on the host side.
package sim

import (
	"fmt"

	"github.com/vovakirdan/stardodge/internal/core"
)

// Kind identifies what an entity is.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindPickup
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Handle is an opaque reference to an entity.
// Handles are generation-checked: once an entity is destroyed its handle
// never matches a later entity, even if the slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle, which never refers to an entity.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// String formats the handle for logs.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.index, h.gen)
}

// Entity is the positional state of a simulated object.
type Entity struct {
	Handle Handle
	Kind   Kind
	Pos    core.Vec2
	Radius float64
	Dir    core.Vec2 // Unit heading, enemies only
}

// Circle returns the entity's bounding circle.
func (e Entity) Circle() Circle {
	return Circle{Center: e.Pos, Radius: e.Radius}
}

// handleTable allocates generation-checked handles.
type handleTable struct {
	gens []uint32
	live []bool
	free []uint32
}

// alloc returns a fresh handle, reusing a released slot when one exists.
func (t *handleTable) alloc() Handle {
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		t.gens[idx]++
		t.live[idx] = true
		return Handle{index: idx, gen: t.gens[idx]}
	}

	idx := uint32(len(t.gens)) //#nosec G115 -- entity counts stay far below 2^32
	t.gens = append(t.gens, 1)
	t.live = append(t.live, true)
	return Handle{index: idx, gen: 1}
}

// release frees the slot behind h. Returns false for stale or unknown handles.
func (t *handleTable) release(h Handle) bool {
	if !t.alive(h) {
		return false
	}
	t.live[h.index] = false
	t.free = append(t.free, h.index)
	return true
}

// alive reports whether h refers to a live entity.
func (t *handleTable) alive(h Handle) bool {
	if h.IsZero() || int(h.index) >= len(t.gens) {
		return false
	}
	return t.live[h.index] && t.gens[h.index] == h.gen
}
