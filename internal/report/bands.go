package report

// scoreBand pairs an inclusive lower bound with the messages for that
// band. Band tables are ordered highest bound first and evaluated
// first-match, so adding a band is a data change, not new branching.
type scoreBand struct {
	lowerBound float64
	messages   []string
}

// pick returns the messages of the first band whose lower bound the
// value meets. Tables end with a catch-all bound, so a match always
// exists.
func pick(bands []scoreBand, value float64) []string {
	for _, b := range bands {
		if value >= b.lowerBound {
			return b.messages
		}
	}
	return nil
}

// negInf is the catch-all lower bound for the final band of each table.
const negInf = -1e308

var insightBands = []scoreBand{
	{70, []string{
		"You demonstrate exceptional empathy and accessibility awareness",
		"Consider becoming an accessibility advocate in your community",
		"Your understanding could help create more inclusive environments",
	}},
	{40, []string{
		"You're building a good foundation of empathy and awareness",
		"Consider exploring advanced scenarios to deepen understanding",
		"Share your experiences to help others learn",
	}},
	{negInf, []string{
		"Consider spending more time in each scenario to fully understand the challenges",
		"Use the AI guide more frequently for contextual assistance",
		"Try different approaches when facing difficulties",
	}},
}

var recommendationBands = []scoreBand{
	{80, []string{
		"Consider accessibility advocacy and consulting",
		"Help organizations improve their digital and physical accessibility",
		"Mentor others in accessibility awareness",
		"Contribute to accessibility standards and guidelines",
	}},
	{50, []string{
		"Try advanced difficulty levels for greater challenge",
		"Share your insights with friends and colleagues",
		"Consider real-world accessibility auditing",
	}},
	{negInf, []string{
		"Complete all scenarios to gain comprehensive understanding",
		"Spend more time reading the educational content",
		"Practice active listening and observation skills",
	}},
}

var motivationBands = []scoreBand{
	{90, []string{"Outstanding! You're truly making a difference in accessibility awareness."}},
	{80, []string{"Excellent work! Your empathy and understanding are truly inspiring."}},
	{70, []string{"Great job! You're developing real empathy for accessibility challenges."}},
	{60, []string{"Good progress! Keep exploring and learning about accessibility."}},
	{40, []string{"Nice start! You're beginning to understand important accessibility concepts."}},
	{negInf, []string{"Keep going! Every step helps build empathy and awareness."}},
}

// improvementBands is keyed by the gap between a target score and the
// current score rather than by the score itself.
var improvementBands = []scoreBand{
	{40, []string{
		"Excellent empathy development!",
		"Consider becoming an accessibility advocate in your community",
		"Share your knowledge to help create more inclusive spaces",
		"Continue learning about different types of disabilities",
	}},
	{20, []string{
		"Good improvement! Consider trying harder difficulty levels",
		"Help others by sharing your experiences and insights",
		"Explore different accessibility scenarios to broaden understanding",
	}},
	{1e-9, []string{
		"Great progress! Try to complete scenarios without errors",
		"Continue using the AI guide to learn more about accessibility",
		"Aim for better time completion in next attempts",
	}},
	{negInf, []string{
		"Try to engage more with the AI guide for contextual help",
		"Take your time to complete tasks accurately",
		"Focus on understanding the accessibility barriers presented",
	}},
}

// Insights returns the performance insights for a score.
func Insights(score float64) []string {
	return pick(insightBands, score)
}

// Recommendations returns the next-step recommendations for a score.
func Recommendations(score float64) []string {
	return pick(recommendationBands, score)
}

// MotivationalMessage returns the single motivational line for a score.
func MotivationalMessage(score float64) string {
	return pick(motivationBands, score)[0]
}

// ImprovementSuggestions returns suggestions for closing the gap between
// the current score and a target.
func ImprovementSuggestions(current, target float64) []string {
	return pick(improvementBands, target-current)
}
