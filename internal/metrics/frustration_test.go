package metrics

import "testing"

func TestFrustrationBelowThreshold(t *testing.T) {
	r := NewRecorder()
	var tr FrustrationTracker

	if tr.RecordCollision(r) {
		t.Error("first collision should not record an event")
	}
	if tr.RecordCollision(r) {
		t.Error("second collision should not record an event")
	}
	if r.FrustrationEvents != 0 {
		t.Errorf("FrustrationEvents = %d, want 0", r.FrustrationEvents)
	}
}

func TestFrustrationAtThreshold(t *testing.T) {
	r := NewRecorder()
	var tr FrustrationTracker

	tr.RecordCollision(r)
	tr.RecordCollision(r)
	if !tr.RecordCollision(r) {
		t.Error("third collision should record an event")
	}
	if r.FrustrationEvents != 1 {
		t.Errorf("FrustrationEvents = %d, want 1", r.FrustrationEvents)
	}
}

func TestFrustrationEveryCollisionPastThreshold(t *testing.T) {
	r := NewRecorder()
	var tr FrustrationTracker

	for i := 0; i < 7; i++ {
		tr.RecordCollision(r)
	}
	// Collisions 3 through 7 each register an event.
	if r.FrustrationEvents != 5 {
		t.Errorf("FrustrationEvents = %d, want 5", r.FrustrationEvents)
	}
	if tr.Level() != FrustrationCap {
		t.Errorf("Level = %d, want cap %d", tr.Level(), FrustrationCap)
	}
}

func TestFrustrationReset(t *testing.T) {
	r := NewRecorder()
	var tr FrustrationTracker

	tr.RecordCollision(r)
	tr.RecordCollision(r)
	tr.Reset()

	if tr.Level() != 0 {
		t.Errorf("Level = %d after reset, want 0", tr.Level())
	}
	if tr.RecordCollision(r) {
		t.Error("collision after reset should not record an event")
	}
}
