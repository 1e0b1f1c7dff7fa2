package stars

import (
	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/sim"
)

// Autopilot tuning, in world units.
const (
	autopilotDeadZone = 8.0
	autopilotDanger   = 160.0
)

// AutopilotInput returns the keys a simple bot would hold this tick:
// flee the nearest enemy when it is close, otherwise head for the nearest
// star. Used by headless runs.
func (g *Game) AutopilotInput() core.InputFrame {
	in := core.NewInputFrame()
	if g.world == nil {
		return in
	}
	player, ok := g.world.Player()
	if !ok {
		return in
	}

	var target core.Vec2
	if enemy, dist, found := nearest(player.Pos, g.world.Enemies()); found && dist < autopilotDanger+enemy.Radius {
		// Point away from the enemy.
		target = player.Pos.Add(player.Pos.Sub(enemy.Pos))
	} else if star, _, found := nearest(player.Pos, g.world.Pickups()); found {
		target = star.Pos
	} else {
		return in
	}

	d := target.Sub(player.Pos)
	if d.X < -autopilotDeadZone {
		in.Set(core.ActionLeft)
	} else if d.X > autopilotDeadZone {
		in.Set(core.ActionRight)
	}
	if d.Y > autopilotDeadZone {
		in.Set(core.ActionUp)
	} else if d.Y < -autopilotDeadZone {
		in.Set(core.ActionDown)
	}
	return in
}

// nearest returns the entity closest to pos.
func nearest(pos core.Vec2, entities []sim.Entity) (sim.Entity, float64, bool) {
	var best sim.Entity
	bestDist := 0.0
	found := false
	for _, e := range entities {
		d := pos.Dist(e.Pos)
		if !found || d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, bestDist, found
}
