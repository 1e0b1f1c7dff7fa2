package sim

// Event is a fire-and-forget notification produced during a tick.
// Hosts drain the events of each tick from TickResult.Events.
type Event interface {
	simEvent()
}

// Cue selects between the two bounce sound variants.
// It has no effect on simulation state.
type Cue uint8

const (
	CueOne Cue = 1
	CueTwo Cue = 2
)

// BounceEvent is emitted when an enemy reflects off a field edge.
type BounceEvent struct {
	Enemy Handle
	Cue   Cue
}

func (BounceEvent) simEvent() {}

// PlayerHitEvent is emitted for each enemy found overlapping the player.
type PlayerHitEvent struct {
	Player Handle
	Enemy  Handle
}

func (PlayerHitEvent) simEvent() {}

// GameOverEvent carries the score at the moment the player was destroyed.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) simEvent() {}

// PickupCollectedEvent is emitted when the player collects a pickup.
// Score is the value after the increment.
type PickupCollectedEvent struct {
	Pickup Handle
	Score  int
}

func (PickupCollectedEvent) simEvent() {}

// ScoreChangedEvent is emitted at the end of a tick in which the score changed.
type ScoreChangedEvent struct {
	Score int
}

func (ScoreChangedEvent) simEvent() {}
