package sim

import "github.com/vovakirdan/stardodge/internal/core"

// inputDirection turns the held keys into a unit direction.
// Opposite keys cancel. The world is y-up, so Up is +Y.
func inputDirection(in Input) core.Vec2 {
	var d core.Vec2
	if in.Left() {
		d.X--
	}
	if in.Right() {
		d.X++
	}
	if in.Up() {
		d.Y++
	}
	if in.Down() {
		d.Y--
	}
	return d.Normalize()
}

// MovePlayer moves the player along the held direction at PlayerSpeed.
// Diagonals are normalized so they are not faster than straight moves.
func (w *World) MovePlayer(in Input, dt float64) {
	if !w.hasPlayer || dt <= 0 {
		return
	}
	dir := inputDirection(in)
	if dir.IsZero() {
		return
	}
	w.player.Pos = w.player.Pos.Add(dir.Scale(w.cfg.PlayerSpeed * dt))
}

// ConfinePlayer clamps the player inside the field.
func (w *World) ConfinePlayer() {
	if !w.hasPlayer {
		return
	}
	w.player.Pos, _ = Clamp(w.player.Pos, w.player.Radius, w.fieldW, w.fieldH)
}
