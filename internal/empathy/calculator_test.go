package empathy

import (
	"math"
	"testing"
	"time"

	"github.com/walkinmyshoes/wims/internal/assessment"
	"github.com/walkinmyshoes/wims/internal/metrics"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func sessionData(pre, post float64, total time.Duration, retries, help, frustration int) (*metrics.Recorder, *assessment.Store) {
	rec := metrics.NewRecorder()
	rec.TotalTime = total
	rec.Retries = retries
	rec.HelpRequests = help
	rec.FrustrationEvents = frustration

	var assess assessment.Store
	assess.SetPre(nil, pre)
	assess.SetPost(nil, post)
	return rec, &assess
}

func TestCalculateWorkedExample(t *testing.T) {
	// knowledge 0.4, engagement 0.5, retries 0.8, help 0.2, resilience 0.8
	// total = 100*(0.12+0.10+0.16+0.03+0.12) = 53
	rec, assess := sessionData(20, 60, 5*time.Minute, 2, 1, 1)
	calc := NewCalculator(DefaultConfig())

	score := calc.Calculate(rec, assess)
	if !almostEqual(score.Total, 53) {
		t.Errorf("Total = %v, want 53", score.Total)
	}

	b := score.Breakdown
	if !almostEqual(b.Knowledge, 40) {
		t.Errorf("Breakdown.Knowledge = %v, want 40", b.Knowledge)
	}
	if !almostEqual(b.Engagement, 50) {
		t.Errorf("Breakdown.Engagement = %v, want 50", b.Engagement)
	}
	if !almostEqual(b.Retries, 80) {
		t.Errorf("Breakdown.Retries = %v, want 80", b.Retries)
	}
	if !almostEqual(b.HelpSeeking, 20) {
		t.Errorf("Breakdown.HelpSeeking = %v, want 20", b.HelpSeeking)
	}
	if !almostEqual(b.Resilience, 80) {
		t.Errorf("Breakdown.Resilience = %v, want 80", b.Resilience)
	}
}

func TestCalculateIdempotent(t *testing.T) {
	rec, assess := sessionData(10, 75, 7*time.Minute, 4, 3, 2)
	calc := NewCalculator(DefaultConfig())

	first := calc.Calculate(rec, assess)
	second := calc.Calculate(rec, assess)
	if first != second {
		t.Errorf("repeated calculation differs: %+v vs %+v", first, second)
	}
}

func TestNegativeKnowledgeGainUnclamped(t *testing.T) {
	// Gain -100 with everything else zero: total = 100*0.30*(-1) = -30.
	rec, assess := sessionData(100, 0, 0, 0, 0, FrustrationCap)
	rec.Retries = RetriesCap
	calc := NewCalculator(DefaultConfig())

	score := calc.Calculate(rec, assess)
	if !almostEqual(score.Total, -30) {
		t.Errorf("Total = %v, want -30 with unclamped negative gain", score.Total)
	}
	if Classify(score.Total) != TierAware {
		t.Error("negative total should still classify as Aware")
	}
}

func TestNegativeKnowledgeGainClamped(t *testing.T) {
	rec, assess := sessionData(100, 0, 0, 0, 0, FrustrationCap)
	rec.Retries = RetriesCap
	cfg := DefaultConfig()
	cfg.ClampKnowledgeGain = true
	calc := NewCalculator(cfg)

	score := calc.Calculate(rec, assess)
	if !almostEqual(score.Total, 0) {
		t.Errorf("Total = %v, want 0 with clamped gain", score.Total)
	}
}

func TestEngagementSaturates(t *testing.T) {
	rec, assess := sessionData(0, 0, 30*time.Minute, 0, 0, 0)
	calc := NewCalculator(DefaultConfig())

	score := calc.Calculate(rec, assess)
	if !almostEqual(score.Breakdown.Engagement, 100) {
		t.Errorf("Engagement = %v, want 100 after saturation", score.Breakdown.Engagement)
	}
}

func TestRetriesRatio(t *testing.T) {
	tests := []struct {
		retries int
		want    float64
	}{
		{0, 100},
		{5, 50},
		{10, 0},
		{20, 0}, // floor holds beyond the cap
	}
	calc := NewCalculator(DefaultConfig())
	for _, tt := range tests {
		rec, assess := sessionData(0, 0, 0, tt.retries, 0, 0)
		score := calc.Calculate(rec, assess)
		if !almostEqual(score.Breakdown.Retries, tt.want) {
			t.Errorf("retries=%d: breakdown = %v, want %v", tt.retries, score.Breakdown.Retries, tt.want)
		}
	}
}

func TestRetriesRatioNonIncreasing(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	prev := math.Inf(1)
	for retries := 0; retries <= 15; retries++ {
		rec, assess := sessionData(0, 0, 0, retries, 0, 0)
		got := calc.Calculate(rec, assess).Breakdown.Retries
		if got < 0 || got > 100 {
			t.Errorf("retries=%d: breakdown %v outside [0,100]", retries, got)
		}
		if got > prev {
			t.Errorf("retries=%d: breakdown %v increased from %v", retries, got, prev)
		}
		prev = got
	}
}

func TestResilienceBounds(t *testing.T) {
	calc := NewCalculator(DefaultConfig())

	rec, assess := sessionData(0, 0, 0, 0, 0, 0)
	if got := calc.Calculate(rec, assess).Breakdown.Resilience; !almostEqual(got, 100) {
		t.Errorf("resilience with 0 events = %v, want 100", got)
	}

	for _, events := range []int{5, 6, 12} {
		rec, assess = sessionData(0, 0, 0, 0, 0, events)
		if got := calc.Calculate(rec, assess).Breakdown.Resilience; !almostEqual(got, 0) {
			t.Errorf("resilience with %d events = %v, want 0", events, got)
		}
	}
}

func TestHelpSeekingSaturates(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	rec, assess := sessionData(0, 0, 0, 0, 9, 0)
	if got := calc.Calculate(rec, assess).Breakdown.HelpSeeking; !almostEqual(got, 100) {
		t.Errorf("help seeking with 9 requests = %v, want 100", got)
	}
}
