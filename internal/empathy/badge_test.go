package empathy

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{-50, TierAware},
		{0, TierAware},
		{40, TierAware},
		{41, TierAdvocate},
		{70, TierAdvocate},
		{71, TierAlly},
		{100, TierAlly},
		{150, TierAlly}, // no upper ceiling
	}
	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	// Every score maps to exactly one of the three tiers.
	for score := -100.0; score <= 200; score += 0.5 {
		tier := Classify(score)
		if tier != TierAware && tier != TierAdvocate && tier != TierAlly {
			t.Fatalf("Classify(%v) = %q, not a known tier", score, tier)
		}
	}
}

func TestTierPresentation(t *testing.T) {
	for _, tier := range AllTiers() {
		if tier.DisplayName() == string(tier) {
			t.Errorf("tier %q missing display name", tier)
		}
		if tier.Badge() == string(tier) {
			t.Errorf("tier %q missing badge label", tier)
		}
		if tier.Color() == "" {
			t.Errorf("tier %q missing color", tier)
		}
	}
}
