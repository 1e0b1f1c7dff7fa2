package sim

import "math"

// SpawnTimer is a repeating timer ticked with wall-clock deltas.
//
// Elapsed time accumulates across ticks. When it reaches the period the timer
// is finished for that tick and keeps the remainder, so the cadence does not
// drift. A tick that covers several periods still reports Finished once;
// TimesFinished tells how many periods it covered.
type SpawnTimer struct {
	period        float64
	elapsed       float64
	finished      bool
	timesFinished int
}

// NewSpawnTimer creates a repeating timer with the given period in seconds.
func NewSpawnTimer(period float64) SpawnTimer {
	return SpawnTimer{period: period}
}

// Tick advances the timer by dt seconds.
func (t *SpawnTimer) Tick(dt float64) {
	t.finished = false
	t.timesFinished = 0
	if dt > 0 {
		t.elapsed += dt
	}

	if t.elapsed >= t.period {
		t.timesFinished = int(t.elapsed / t.period)
		t.elapsed = math.Mod(t.elapsed, t.period)
		t.finished = true
	}
}

// Finished reports whether the timer fired during the last Tick.
func (t *SpawnTimer) Finished() bool {
	return t.finished
}

// TimesFinished returns how many whole periods the last Tick covered.
func (t *SpawnTimer) TimesFinished() int {
	return t.timesFinished
}

// Elapsed returns the time accumulated towards the next firing.
func (t *SpawnTimer) Elapsed() float64 {
	return t.elapsed
}

// Period returns the timer period in seconds.
func (t *SpawnTimer) Period() float64 {
	return t.period
}
