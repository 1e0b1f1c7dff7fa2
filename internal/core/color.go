package core

// Color is the role of a screen cell. Games paint roles; the terminal
// host decides what each role looks like.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPlayer
	ColorEnemy
	ColorStar
	ColorHUD     // Score line
	ColorOverlay // Pause and game over boxes
	ColorDim     // Hints and secondary text
)
