package stars

import "github.com/vovakirdan/stardodge/internal/sim"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	World    sim.Snapshot
	Stars    int
	Bounces  int
	GameOver bool
	Paused   bool
	TooSmall bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Stars:    g.stars,
		Bounces:  g.bounces,
		GameOver: g.gameOver,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
	}
	if g.world != nil {
		snap.World = g.world.Snapshot()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.World.Hash()
	h = h*31 + uint64(snap.Stars)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bounces) //#nosec G115 -- hash computation
	for _, flag := range []bool{snap.GameOver, snap.Paused, snap.TooSmall} {
		h *= 31
		if flag {
			h++
		}
	}
	return h
}
