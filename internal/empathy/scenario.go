package empathy

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks scenario inputs rejected at the call boundary.
var ErrInvalidInput = errors.New("invalid input")

// ScenarioType identifies a simulation scenario.
type ScenarioType string

const (
	ScenarioVisual  ScenarioType = "visual"
	ScenarioHearing ScenarioType = "hearing"
	ScenarioMotor   ScenarioType = "motor"
	ScenarioAR      ScenarioType = "ar"
)

// AllScenarios returns the scenario types in display order.
func AllScenarios() []ScenarioType {
	return []ScenarioType{ScenarioVisual, ScenarioHearing, ScenarioMotor, ScenarioAR}
}

// OptimalTime returns the expected completion time for the scenario,
// or false for an unknown type.
func (s ScenarioType) OptimalTime() (time.Duration, bool) {
	switch s {
	case ScenarioVisual:
		return 15 * time.Minute, true
	case ScenarioHearing:
		return 10 * time.Minute, true
	case ScenarioMotor:
		return 20 * time.Minute, true
	case ScenarioAR:
		return 5 * time.Minute, true
	default:
		return 0, false
	}
}

// DisplayName returns a human-readable label for the scenario.
func (s ScenarioType) DisplayName() string {
	switch s {
	case ScenarioVisual:
		return "Visual Impairment"
	case ScenarioHearing:
		return "Hearing Loss"
	case ScenarioMotor:
		return "Motor Disability"
	case ScenarioAR:
		return "AR Accessibility Audit"
	default:
		return string(s)
	}
}

// ScenarioInput is the raw data for one completed scenario run.
type ScenarioInput struct {
	Scenario          ScenarioType
	TasksCompleted    int
	TotalTasks        int
	CompletionTime    time.Duration
	Errors            int
	HelpRequests      int
	FrustrationEvents int
}

// Validate rejects inputs the calculator cannot score. Unknown scenario
// types are a configuration error caught here, not inside the formula.
func (in ScenarioInput) Validate() error {
	if _, ok := in.Scenario.OptimalTime(); !ok {
		return fmt.Errorf("%w: unknown scenario type %q", ErrInvalidInput, in.Scenario)
	}
	if in.TotalTasks <= 0 {
		return fmt.Errorf("%w: total tasks must be positive", ErrInvalidInput)
	}
	return nil
}

// ScenarioBreakdown is the per-component point split of a scenario score.
type ScenarioBreakdown struct {
	Completion  float64
	Time        float64
	Errors      float64
	Help        float64
	Frustration float64
}

// ScenarioScore is the result of scoring one scenario run. Total ranges
// roughly 10-150 and is deliberately not capped at 100; this scale is
// independent of the session-wide empathy score.
type ScenarioScore struct {
	Total     float64
	Breakdown ScenarioBreakdown
}

// CalculateScenario scores a single scenario run. The input is assumed
// validated; see ScenarioInput.Validate.
func CalculateScenario(in ScenarioInput) ScenarioScore {
	optimal, _ := in.Scenario.OptimalTime()

	completion := float64(in.TasksCompleted) / float64(in.TotalTasks) * 50

	// Boundary values belong to the faster bucket.
	var timeScore float64
	switch {
	case in.CompletionTime <= optimal:
		timeScore = 25
	case float64(in.CompletionTime) <= 1.5*float64(optimal):
		timeScore = 15
	default:
		timeScore = 10
	}

	errorScore := maxFloat(0, 25-float64(in.Errors)*5)
	helpScore := minFloat(float64(in.HelpRequests)*5, 25)
	frustrationScore := maxFloat(0, 25-float64(in.FrustrationEvents)*5)

	return ScenarioScore{
		Total: completion + timeScore + errorScore + helpScore + frustrationScore,
		Breakdown: ScenarioBreakdown{
			Completion:  completion,
			Time:        timeScore,
			Errors:      errorScore,
			Help:        helpScore,
			Frustration: frustrationScore,
		},
	}
}
