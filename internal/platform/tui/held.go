package tui

import (
	"time"

	"github.com/vovakirdan/stardodge/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held for a short window after its last event. The
// first press gets a longer window to bridge the auto-repeat delay.
const (
	DefaultFirstHold  = 450 * time.Millisecond
	DefaultRepeatHold = 160 * time.Millisecond
)

// HeldKeys rebuilds held-key state from a stream of key press events.
type HeldKeys struct {
	firstHold  time.Duration
	repeatHold time.Duration

	until   map[core.Action]time.Time
	pending []core.Action
}

// NewHeldKeys creates a tracker with the default hold windows.
func NewHeldKeys() *HeldKeys {
	return NewHeldKeysWithWindows(DefaultFirstHold, DefaultRepeatHold)
}

// NewHeldKeysWithWindows creates a tracker with custom hold windows.
func NewHeldKeysWithWindows(first, repeat time.Duration) *HeldKeys {
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	if first < repeat {
		first = repeat
	}
	return &HeldKeys{
		firstHold:  first,
		repeatHold: repeat,
		until:      make(map[core.Action]time.Time),
	}
}

// Press records a key event at now. Movement actions become held and
// release the opposite direction; other actions fire once on the next Frame.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if !IsMovement(a) {
		h.pending = append(h.pending, a)
		return
	}

	delete(h.until, opposite(a))

	hold := h.repeatHold
	if !h.held(a, now) {
		hold = h.firstHold
	}
	h.until[a] = now.Add(hold)
}

// Frame returns the input for a tick at now and consumes the one-shot actions.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, t := range h.until {
		if now.Before(t) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for _, a := range h.pending {
		frame.Set(a)
	}
	h.pending = h.pending[:0]
	return frame
}

// Release drops every held key and pending action.
func (h *HeldKeys) Release() {
	clear(h.until)
	h.pending = h.pending[:0]
}

func (h *HeldKeys) held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
