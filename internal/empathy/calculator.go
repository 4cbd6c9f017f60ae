// Package empathy computes the composite empathy score from session
// metrics and assessment results, and classifies it into badge tiers.
package empathy

import (
	"time"

	"github.com/walkinmyshoes/wims/internal/assessment"
	"github.com/walkinmyshoes/wims/internal/metrics"
)

// Normalization caps for the weighted terms.
const (
	// EngagementSaturation is the engaged time at which the engagement
	// term reaches 1.0. More time gives no further credit.
	EngagementSaturation = 10 * time.Minute

	// RetriesCap is the retry count at which the retries term hits 0.
	RetriesCap = 10

	// HelpSaturation is the help request count at which the help-seeking
	// term reaches 1.0.
	HelpSaturation = 5

	// FrustrationCap is the frustration event count at which the
	// resilience term hits 0.
	FrustrationCap = 5
)

// Weights are the per-term weights of the composite score. They sum to 1.
type Weights struct {
	Knowledge   float64
	Engagement  float64
	Retries     float64
	HelpSeeking float64
	Resilience  float64
}

// DefaultWeights returns the standard weighting.
func DefaultWeights() Weights {
	return Weights{
		Knowledge:   0.30,
		Engagement:  0.20,
		Retries:     0.20,
		HelpSeeking: 0.15,
		Resilience:  0.15,
	}
}

// Config controls scoring policy.
type Config struct {
	// ClampKnowledgeGain floors the knowledge term at zero. The default
	// (false) preserves the original behavior where a negative gain can
	// pull the total below zero.
	ClampKnowledgeGain bool

	Weights Weights
}

// DefaultConfig returns the source-faithful scoring configuration.
func DefaultConfig() Config {
	return Config{
		ClampKnowledgeGain: false,
		Weights:            DefaultWeights(),
	}
}

// Breakdown holds the per-dimension diagnostic values, each scaled 0-100.
// These are the unweighted terms for display; they do not sum to the
// total and must not be treated as a decomposition of it. The knowledge
// field in particular is the raw gain in points, not the capped term
// used in the total.
type Breakdown struct {
	Knowledge   float64
	Engagement  float64
	Retries     float64
	HelpSeeking float64
	Resilience  float64
}

// Score is the composite result. Total is nominally 0-100 but is not
// clamped: extreme inputs can push it below 0 or above 100.
type Score struct {
	Total     float64
	Breakdown Breakdown
}

// Calculator derives empathy scores from session data. It is pure and
// safe to invoke repeatedly.
type Calculator struct {
	cfg Config
}

// NewCalculator creates a Calculator with the given config.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// Calculate reduces the recorder and assessments to a weighted score.
func (c *Calculator) Calculate(rec *metrics.Recorder, assess *assessment.Store) Score {
	w := c.cfg.Weights

	knowledgeGain := assess.KnowledgeGain()
	knowledge := minFloat(knowledgeGain/100, 1)
	if c.cfg.ClampKnowledgeGain {
		knowledge = maxFloat(knowledge, 0)
	}
	engagement := minFloat(float64(rec.TotalTime)/float64(EngagementSaturation), 1)
	retries := maxFloat(0, 1-float64(rec.Retries)/RetriesCap)
	helpSeeking := minFloat(float64(rec.HelpRequests)/HelpSaturation, 1)
	resilience := maxFloat(0, 1-float64(rec.FrustrationEvents)/FrustrationCap)

	total := 100 * (w.Knowledge*knowledge +
		w.Engagement*engagement +
		w.Retries*retries +
		w.HelpSeeking*helpSeeking +
		w.Resilience*resilience)

	return Score{
		Total: total,
		Breakdown: Breakdown{
			// Raw gain in points, intentionally uncapped, mirroring the
			// display values of the original dashboard.
			Knowledge:   knowledgeGain,
			Engagement:  engagement * 100,
			Retries:     retries * 100,
			HelpSeeking: helpSeeking * 100,
			Resilience:  resilience * 100,
		},
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
