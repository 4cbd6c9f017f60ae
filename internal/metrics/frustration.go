package metrics

const (
	// FrustrationThreshold is the level at which collisions start
	// registering as frustration events.
	FrustrationThreshold = 3

	// FrustrationCap is the maximum frustration level.
	FrustrationCap = 5
)

// FrustrationTracker distinguishes sustained difficulty from isolated
// mistakes. Each collision raises the level by one, saturating at the
// cap. Once the level reaches the threshold, every further collision
// registers a frustration event on the recorder.
type FrustrationTracker struct {
	level int
}

// Level returns the current frustration level (0 to FrustrationCap).
func (t *FrustrationTracker) Level() int {
	return t.level
}

// RecordCollision bumps the frustration level and, once the threshold is
// reached, records a frustration event. Returns true when an event was
// recorded.
func (t *FrustrationTracker) RecordCollision(r *Recorder) bool {
	if t.level < FrustrationCap {
		t.level++
	}
	if t.level >= FrustrationThreshold {
		r.IncrementFrustrationEvents()
		return true
	}
	return false
}

// Reset clears the frustration level at scenario reset.
func (t *FrustrationTracker) Reset() {
	t.level = 0
}
