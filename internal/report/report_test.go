package report

import (
	"strings"
	"testing"

	"github.com/walkinmyshoes/wims/internal/empathy"
)

func TestInsightBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{-10, "spending more time"},
		{39.9, "spending more time"},
		{40, "good foundation"},
		{69.9, "good foundation"},
		{70, "exceptional empathy"},
		{120, "exceptional empathy"},
	}
	for _, tt := range tests {
		got := Insights(tt.score)
		if len(got) == 0 || !strings.Contains(got[0], tt.want) {
			t.Errorf("Insights(%v)[0] = %q, want substring %q", tt.score, got, tt.want)
		}
	}
}

func TestRecommendationBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, "Complete all scenarios"},
		{49.9, "Complete all scenarios"},
		{50, "advanced difficulty"},
		{79.9, "advanced difficulty"},
		{80, "advocacy and consulting"},
	}
	for _, tt := range tests {
		got := Recommendations(tt.score)
		if len(got) == 0 || !strings.Contains(got[0], tt.want) {
			t.Errorf("Recommendations(%v)[0] = %q, want substring %q", tt.score, got, tt.want)
		}
	}
}

func TestMotivationalMessageBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "Outstanding"},
		{90, "Outstanding"},
		{85, "Excellent work"},
		{75, "Great job"},
		{65, "Good progress"},
		{45, "Nice start"},
		{10, "Keep going"},
		{-5, "Keep going"},
	}
	for _, tt := range tests {
		got := MotivationalMessage(tt.score)
		if !strings.Contains(got, tt.want) {
			t.Errorf("MotivationalMessage(%v) = %q, want substring %q", tt.score, got, tt.want)
		}
	}
}

func TestImprovementSuggestionGapBands(t *testing.T) {
	tests := []struct {
		current, target float64
		want            string
	}{
		{80, 70, "engage more"},      // gap <= 0
		{80, 80, "engage more"},      // gap == 0
		{60, 70, "Great progress"},   // gap < 20
		{50, 75, "Good improvement"}, // gap < 40
		{20, 80, "Excellent empathy"},
	}
	for _, tt := range tests {
		got := ImprovementSuggestions(tt.current, tt.target)
		if len(got) == 0 || !strings.Contains(got[0], tt.want) {
			t.Errorf("ImprovementSuggestions(%v, %v)[0] = %q, want substring %q",
				tt.current, tt.target, got, tt.want)
		}
	}
}

func TestBandsExhaustive(t *testing.T) {
	// No score, however extreme, falls through a band table.
	for score := -200.0; score <= 300; score += 7.3 {
		if len(Insights(score)) == 0 {
			t.Fatalf("Insights(%v) empty", score)
		}
		if len(Recommendations(score)) == 0 {
			t.Fatalf("Recommendations(%v) empty", score)
		}
		if MotivationalMessage(score) == "" {
			t.Fatalf("MotivationalMessage(%v) empty", score)
		}
	}
}

func TestBuild(t *testing.T) {
	score := empathy.Score{
		Total: 75,
		Breakdown: empathy.Breakdown{
			Knowledge:   40,
			Engagement:  80,
			Retries:     90,
			HelpSeeking: 60,
			Resilience:  100,
		},
	}
	rep := Build(Input{
		SessionID: "sess-1",
		UserID:    "user-1",
		Scenarios: []string{"visual", "motor"},
	}, score)

	if rep.SessionID != "sess-1" || rep.UserID != "user-1" {
		t.Error("report missing identity fields")
	}
	if rep.OverallScore != 75 {
		t.Errorf("OverallScore = %v, want 75", rep.OverallScore)
	}
	if rep.Level != empathy.TierAlly {
		t.Errorf("Level = %v, want ally", rep.Level)
	}
	if len(rep.Insights) == 0 || len(rep.Recommendations) == 0 {
		t.Error("report missing insight text")
	}
	if rep.Timestamp.IsZero() {
		t.Error("report missing timestamp")
	}
}
