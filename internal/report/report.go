// Package report turns empathy scores into deterministic, template-based
// insight text. No randomness, no external calls; the band tables in
// bands.go are the single source of wording.
package report

import (
	"time"

	"github.com/walkinmyshoes/wims/internal/empathy"
)

// Report is the assembled session report. Pure data; persistence and
// rendering live elsewhere.
type Report struct {
	SessionID       string
	UserID          string
	Timestamp       time.Time
	Scenarios       []string
	OverallScore    float64
	Level           empathy.Tier
	Breakdown       empathy.Breakdown
	Insights        []string
	Recommendations []string
}

// Input identifies the session a report describes.
type Input struct {
	SessionID string
	UserID    string
	Scenarios []string
}

// Build assembles a report from a computed score.
func Build(in Input, score empathy.Score) *Report {
	return &Report{
		SessionID:       in.SessionID,
		UserID:          in.UserID,
		Timestamp:       time.Now().UTC(),
		Scenarios:       in.Scenarios,
		OverallScore:    score.Total,
		Level:           empathy.Classify(score.Total),
		Breakdown:       score.Breakdown,
		Insights:        Insights(score.Total),
		Recommendations: Recommendations(score.Total),
	}
}
