package metrics

import "time"

// Recorder accumulates the raw behavioral signal for a single simulation
// session. It is pure accumulation: no derived values, no error returns.
// All mutations happen synchronously from scene event handlers, so no
// locking is needed.
type Recorder struct {
	// StartTime is when the session began. Zero means not started.
	StartTime time.Time

	// TotalTime is assigned once by EndSession. Reads before EndSession
	// see the last assigned value (zero if the session never ended).
	TotalTime time.Duration

	// ErrorsPerTask counts errors keyed by task identifier. Keys are
	// created lazily on first error.
	ErrorsPerTask map[string]int

	// Retries counts repeated failed attempts at a task.
	Retries int

	// HelpRequests counts explicit requests for guidance.
	HelpRequests int

	// FrustrationEvents counts sustained-difficulty occurrences. It is
	// incremented by the FrustrationTracker once its threshold is
	// reached, not once per collision.
	FrustrationEvents int

	now func() time.Time
}

// NewRecorder creates a Recorder with initialized counters.
func NewRecorder() *Recorder {
	return &Recorder{
		ErrorsPerTask: make(map[string]int),
		now:           time.Now,
	}
}

// StartSession marks the session start. Calling it again simply resets
// the reference point.
func (r *Recorder) StartSession() {
	r.StartTime = r.now()
}

// EndSession computes the total elapsed time if a start was recorded.
// Without a recorded start, TotalTime keeps its previous value. Counters
// are not cleared.
func (r *Recorder) EndSession() {
	if r.StartTime.IsZero() {
		return
	}
	r.TotalTime = r.now().Sub(r.StartTime)
}

// RecordError increments the error count for the given task.
func (r *Recorder) RecordError(taskID string) {
	r.ErrorsPerTask[taskID]++
}

// IncrementRetries bumps the retry counter.
func (r *Recorder) IncrementRetries() {
	r.Retries++
}

// IncrementHelpRequests bumps the help request counter.
func (r *Recorder) IncrementHelpRequests() {
	r.HelpRequests++
}

// IncrementFrustrationEvents bumps the frustration event counter.
func (r *Recorder) IncrementFrustrationEvents() {
	r.FrustrationEvents++
}

// TotalErrors returns the sum of errors across all tasks.
func (r *Recorder) TotalErrors() int {
	total := 0
	for _, n := range r.ErrorsPerTask {
		total += n
	}
	return total
}

// Reset zeroes every field for a fresh scenario run. Cross-scenario data
// (certificates, settings) lives elsewhere and is untouched.
func (r *Recorder) Reset() {
	r.StartTime = time.Time{}
	r.TotalTime = 0
	r.ErrorsPerTask = make(map[string]int)
	r.Retries = 0
	r.HelpRequests = 0
	r.FrustrationEvents = 0
}
