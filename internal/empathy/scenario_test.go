package empathy

import (
	"errors"
	"testing"
	"time"
)

func TestScenarioPerfectRun(t *testing.T) {
	in := ScenarioInput{
		Scenario:       ScenarioVisual,
		TasksCompleted: 3,
		TotalTasks:     3,
		CompletionTime: 800000 * time.Millisecond,
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	score := CalculateScenario(in)
	b := score.Breakdown
	if b.Completion != 50 {
		t.Errorf("Completion = %v, want 50", b.Completion)
	}
	if b.Time != 25 {
		t.Errorf("Time = %v, want 25 (800000ms <= 900000ms)", b.Time)
	}
	if b.Errors != 25 {
		t.Errorf("Errors = %v, want 25", b.Errors)
	}
	if b.Help != 0 {
		t.Errorf("Help = %v, want 0", b.Help)
	}
	if b.Frustration != 25 {
		t.Errorf("Frustration = %v, want 25", b.Frustration)
	}
	if score.Total != 125 {
		t.Errorf("Total = %v, want 125", score.Total)
	}
}

func TestScenarioTimeBuckets(t *testing.T) {
	tests := []struct {
		name string
		time time.Duration
		want float64
	}{
		{"under optimal", 9 * time.Minute, 25},
		{"exactly optimal", 10 * time.Minute, 25}, // boundary goes to faster bucket
		{"under 1.5x", 14 * time.Minute, 15},
		{"exactly 1.5x", 15 * time.Minute, 15},
		{"over 1.5x", 16 * time.Minute, 10},
	}
	for _, tt := range tests {
		in := ScenarioInput{
			Scenario:       ScenarioHearing, // optimal 10 minutes
			TasksCompleted: 1,
			TotalTasks:     1,
			CompletionTime: tt.time,
		}
		if got := CalculateScenario(in).Breakdown.Time; got != tt.want {
			t.Errorf("%s: Time = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScenarioErrorFloor(t *testing.T) {
	in := ScenarioInput{
		Scenario:       ScenarioMotor,
		TasksCompleted: 2,
		TotalTasks:     4,
		CompletionTime: time.Minute,
		Errors:         6,
	}
	if got := CalculateScenario(in).Breakdown.Errors; got != 0 {
		t.Errorf("Errors = %v, want max(0, 25-30) = 0", got)
	}
}

func TestScenarioHelpCap(t *testing.T) {
	in := ScenarioInput{
		Scenario:       ScenarioAR,
		TasksCompleted: 1,
		TotalTasks:     1,
		CompletionTime: time.Minute,
		HelpRequests:   8,
	}
	if got := CalculateScenario(in).Breakdown.Help; got != 25 {
		t.Errorf("Help = %v, want cap 25", got)
	}
}

func TestScenarioFrustrationFloor(t *testing.T) {
	in := ScenarioInput{
		Scenario:          ScenarioVisual,
		TasksCompleted:    1,
		TotalTasks:        2,
		CompletionTime:    time.Minute,
		FrustrationEvents: 7,
	}
	if got := CalculateScenario(in).Breakdown.Frustration; got != 0 {
		t.Errorf("Frustration = %v, want 0", got)
	}
}

func TestValidateUnknownScenario(t *testing.T) {
	in := ScenarioInput{
		Scenario:   ScenarioType("cognitive"),
		TotalTasks: 3,
	}
	err := in.Validate()
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Validate = %v, want ErrInvalidInput", err)
	}
}

func TestValidateZeroTasks(t *testing.T) {
	in := ScenarioInput{Scenario: ScenarioVisual}
	if err := in.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Validate = %v, want ErrInvalidInput for zero tasks", err)
	}
}

func TestOptimalTimes(t *testing.T) {
	tests := []struct {
		scenario ScenarioType
		want     time.Duration
	}{
		{ScenarioVisual, 900000 * time.Millisecond},
		{ScenarioHearing, 600000 * time.Millisecond},
		{ScenarioMotor, 1200000 * time.Millisecond},
		{ScenarioAR, 300000 * time.Millisecond},
	}
	for _, tt := range tests {
		got, ok := tt.scenario.OptimalTime()
		if !ok {
			t.Errorf("%s: unexpected unknown scenario", tt.scenario)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: optimal = %v, want %v", tt.scenario, got, tt.want)
		}
	}
}
