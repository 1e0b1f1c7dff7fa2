package core

// Cue identifies a sound effect requested by a game.
// The platform decides whether and how to play it.
type Cue uint8

const (
	CueNone      Cue = iota
	CueBounceOne     // Enemy hits a wall, first variant
	CueBounceTwo     // Enemy hits a wall, second variant
	CuePickup        // Star collected
	CueExplosion     // Player destroyed
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueBounceOne:
		return "bounce1"
	case CueBounceTwo:
		return "bounce2"
	case CuePickup:
		return "pickup"
	case CueExplosion:
		return "explosion"
	default:
		return "none"
	}
}
