package sim

// Score is the process-wide score resource.
// It tracks whether the value changed since the last UpdateScore pass,
// so hosts can display or log it without polling for differences.
type Score struct {
	value   int
	changed bool
}

// newScore returns a zero score flagged as changed, so the first tick
// reports the initial value.
func newScore() Score {
	return Score{changed: true}
}

// Value returns the current score.
func (s Score) Value() int {
	return s.value
}

// Changed reports whether the score changed since the last UpdateScore pass.
func (s Score) Changed() bool {
	return s.changed
}

// observe clears the changed flag and reports whether it was set.
func (s *Score) observe() bool {
	was := s.changed
	s.changed = false
	return was
}

// add increments the score.
func (s *Score) add(n int) {
	s.value += n
	s.changed = true
}
