package stars

import (
	"fmt"
	"math"

	"github.com/vovakirdan/stardodge/internal/core"
	"github.com/vovakirdan/stardodge/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	EnemyChar  = '█'
	StarChar   = '*'
)

// Render draws the current game state to the screen.
// The world is y-up, so rows are flipped; row 0 holds the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.world == nil {
		g.renderTooSmall(dst)
		return
	}

	playW := dst.Width()
	playH := dst.Height() - hudRows
	if playW <= 0 || playH <= 0 {
		return
	}

	fw, fh := g.field.Size()
	v := viewport{
		unitsX: fw / float64(playW),
		unitsY: fh / float64(playH),
		rows:   playH,
	}

	for _, p := range g.world.Pickups() {
		v.drawCircle(dst, p, StarChar, core.ColorStar)
	}
	for _, e := range g.world.Enemies() {
		v.drawCircle(dst, e, EnemyChar, core.ColorEnemy)
	}
	if p, ok := g.world.Player(); ok {
		v.drawCircle(dst, p, PlayerChar, core.ColorPlayer)
	}

	g.renderHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.State().Score))
	}
}

// viewport maps world units onto play-area cells.
type viewport struct {
	unitsX float64 // World units per column
	unitsY float64 // World units per row
	rows   int
}

// cell converts a world position to a screen cell.
func (v viewport) cell(pos core.Vec2) (int, int) {
	col := int(math.Floor(pos.X / v.unitsX))
	fromBottom := int(math.Floor(pos.Y / v.unitsY))
	return col, hudRows + v.rows - 1 - fromBottom
}

// drawCircle fills every cell whose center lies inside the entity.
// The cell under the center is always drawn so small entities stay visible.
func (v viewport) drawCircle(dst *core.Screen, e sim.Entity, r rune, c core.Color) {
	minCol := int(math.Floor((e.Pos.X - e.Radius) / v.unitsX))
	maxCol := int(math.Floor((e.Pos.X + e.Radius) / v.unitsX))
	minRow := int(math.Floor((e.Pos.Y - e.Radius) / v.unitsY))
	maxRow := int(math.Floor((e.Pos.Y + e.Radius) / v.unitsY))

	for fromBottom := minRow; fromBottom <= maxRow; fromBottom++ {
		if fromBottom < 0 || fromBottom >= v.rows {
			continue
		}
		cy := (float64(fromBottom) + 0.5) * v.unitsY
		for col := minCol; col <= maxCol; col++ {
			cx := (float64(col) + 0.5) * v.unitsX
			if e.Pos.Dist(core.V(cx, cy)) <= e.Radius {
				dst.SetColored(col, hudRows+v.rows-1-fromBottom, r, c)
			}
		}
	}

	col, row := v.cell(e.Pos)
	if row >= hudRows {
		dst.SetColored(col, row, r, c)
	}
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen) {
	stats := g.Stats()
	left := fmt.Sprintf(" Score: %d  Time: %.0fs ", stats.Score, stats.Duration.Seconds())
	dst.DrawTextColored(0, 0, left, core.ColorHUD)

	help := " WASD/arrows move  P pause  Q quit "
	if x := dst.Width() - len(help); x > len(left) {
		dst.DrawTextColored(x, 0, help, core.ColorDim)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorOverlay)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", MinScreenW, MinScreenH), core.ColorDim)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorOverlay)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorOverlay)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorDim)
}
