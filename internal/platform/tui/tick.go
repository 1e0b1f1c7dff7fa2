// Package tui hosts games in the terminal with Bubble Tea: the frame loop,
// key handling, rendering, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Bounds for the host frame rate.
const (
	minTickRate = 1
	maxTickRate = 240
)

// TickMsg is sent on every frame. It carries the wall-clock time of the
// frame, from which the model derives the simulation delta.
type TickMsg time.Time

// frameInterval returns the time between frames at tickRate, clamped to
// a sane range.
func frameInterval(tickRate int) time.Duration {
	tickRate = min(max(tickRate, minTickRate), maxTickRate)
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
