package empathy

// Tier is the coarse classification of an empathy score.
type Tier string

const (
	TierAware    Tier = "aware"
	TierAdvocate Tier = "advocate"
	TierAlly     Tier = "ally"
)

// Classification thresholds. Lower bounds are inclusive; Aware absorbs
// everything below the advocate threshold (including negative totals)
// and Ally everything at or above its threshold with no ceiling.
const (
	AdvocateThreshold = 41
	AllyThreshold     = 71
)

// AllTiers returns the tiers in ascending order.
func AllTiers() []Tier {
	return []Tier{TierAware, TierAdvocate, TierAlly}
}

// Classify maps a score to its tier. Total over all reals; no overlap.
func Classify(score float64) Tier {
	switch {
	case score >= AllyThreshold:
		return TierAlly
	case score >= AdvocateThreshold:
		return TierAdvocate
	default:
		return TierAware
	}
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierAware:
		return "Aware"
	case TierAdvocate:
		return "Advocate"
	case TierAlly:
		return "Ally"
	default:
		return string(t)
	}
}

// Badge returns the full badge label shown on certificates.
func (t Tier) Badge() string {
	switch t {
	case TierAware:
		return "🥉 Accessibility Aware"
	case TierAdvocate:
		return "🥈 Accessibility Advocate"
	case TierAlly:
		return "🏅 Accessibility Ally"
	default:
		return string(t)
	}
}

// Color returns the display color for the tier.
func (t Tier) Color() string {
	switch t {
	case TierAware:
		return "#10B981"
	case TierAdvocate:
		return "#F59E0B"
	case TierAlly:
		return "#7C3AED"
	default:
		return "#94A3B8"
	}
}

// Description returns the certificate description line for the tier.
func (t Tier) Description() string {
	switch t {
	case TierAware:
		return "Beginning the journey toward empathy and inclusion"
	case TierAdvocate:
		return "Shows strong commitment to accessibility awareness"
	case TierAlly:
		return "Demonstrates exceptional empathy and understanding"
	default:
		return string(t)
	}
}
