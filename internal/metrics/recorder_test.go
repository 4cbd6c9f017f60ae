package metrics

import (
	"testing"
	"time"
)

// fixedClock returns a now func that advances by step on each call.
func fixedClock(start time.Time, step time.Duration) func() time.Time {
	t := start
	return func() time.Time {
		cur := t
		t = t.Add(step)
		return cur
	}
}

func TestStartEndSession(t *testing.T) {
	r := NewRecorder()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = fixedClock(base, 5*time.Minute)

	r.StartSession()
	r.EndSession()

	if r.TotalTime != 5*time.Minute {
		t.Errorf("TotalTime = %v, want 5m", r.TotalTime)
	}
}

func TestEndSessionWithoutStart(t *testing.T) {
	r := NewRecorder()
	r.EndSession()
	if r.TotalTime != 0 {
		t.Errorf("TotalTime = %v, want 0 when never started", r.TotalTime)
	}
}

func TestStartSessionTwiceResetsReference(t *testing.T) {
	r := NewRecorder()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = fixedClock(base, time.Minute)

	r.StartSession() // 12:00
	r.StartSession() // 12:01
	r.EndSession()   // 12:02

	if r.TotalTime != time.Minute {
		t.Errorf("TotalTime = %v, want 1m from second start", r.TotalTime)
	}
}

func TestRecordErrorAccumulates(t *testing.T) {
	r := NewRecorder()
	r.RecordError("sign")
	r.RecordError("sign")
	r.RecordError("sign")
	r.RecordError("door")

	if got := r.ErrorsPerTask["sign"]; got != 3 {
		t.Errorf("ErrorsPerTask[sign] = %d, want 3", got)
	}
	if got := r.ErrorsPerTask["door"]; got != 1 {
		t.Errorf("ErrorsPerTask[door] = %d, want 1", got)
	}
	if got := r.TotalErrors(); got != 4 {
		t.Errorf("TotalErrors = %d, want 4", got)
	}
}

func TestCounters(t *testing.T) {
	r := NewRecorder()
	r.IncrementRetries()
	r.IncrementRetries()
	r.IncrementHelpRequests()
	r.IncrementFrustrationEvents()

	if r.Retries != 2 {
		t.Errorf("Retries = %d, want 2", r.Retries)
	}
	if r.HelpRequests != 1 {
		t.Errorf("HelpRequests = %d, want 1", r.HelpRequests)
	}
	if r.FrustrationEvents != 1 {
		t.Errorf("FrustrationEvents = %d, want 1", r.FrustrationEvents)
	}
}

func TestReset(t *testing.T) {
	r := NewRecorder()
	r.StartSession()
	r.RecordError("ramp")
	r.IncrementRetries()
	r.IncrementHelpRequests()
	r.IncrementFrustrationEvents()
	r.EndSession()

	r.Reset()

	if !r.StartTime.IsZero() {
		t.Error("StartTime not zeroed")
	}
	if r.TotalTime != 0 {
		t.Error("TotalTime not zeroed")
	}
	if len(r.ErrorsPerTask) != 0 {
		t.Error("ErrorsPerTask not cleared")
	}
	if r.Retries != 0 || r.HelpRequests != 0 || r.FrustrationEvents != 0 {
		t.Error("counters not zeroed")
	}
}
