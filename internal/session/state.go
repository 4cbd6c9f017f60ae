package session

import (
	"time"

	"github.com/walkinmyshoes/wims/internal/assessment"
	"github.com/walkinmyshoes/wims/internal/empathy"
	"github.com/walkinmyshoes/wims/internal/metrics"
	"github.com/walkinmyshoes/wims/internal/store"
)

// SessionPhase represents the current phase of a training session.
type SessionPhase int

const (
	PhaseIdle     SessionPhase = iota // No session running
	PhaseActive                       // Scenario in progress
	PhaseComplete                     // Session ended, score available
)

// SessionState tracks the runtime state of an active training session.
// It is the single owner of the recorder, assessments, and frustration
// tracker; screens mutate it only through the functions in this package.
type SessionState struct {
	// SessionID is the UUID for this session.
	SessionID string

	// UserID identifies the trainee across sessions.
	UserID string

	// UserName is the display name used on certificates and standings.
	UserName string

	// Scenario is the simulation currently being run.
	Scenario empathy.ScenarioType

	// Phase is the current session phase.
	Phase SessionPhase

	// Metrics accumulates behavioral telemetry for the session.
	Metrics *metrics.Recorder

	// Assessments holds the pre and post knowledge checks.
	Assessments *assessment.Store

	// Frustration tracks the collision-driven frustration level.
	Frustration *metrics.FrustrationTracker

	// CompletedTasks is the set of task IDs finished in the current scenario.
	CompletedTasks map[string]bool

	// TotalTasks is the task count of the current scenario.
	TotalTasks int

	// ScenarioStart is when the current scenario began.
	ScenarioStart time.Time

	// ScenarioScores holds results for scenarios finished this session.
	ScenarioScores map[empathy.ScenarioType]empathy.ScenarioScore

	// LastScore is the composite score computed at session end.
	LastScore *empathy.Score

	// Calc derives the composite empathy score.
	Calc *empathy.Calculator

	// EventRepo persists telemetry events. Nil disables persistence.
	EventRepo store.EventRepo

	now func() time.Time
}

// NewState creates a SessionState for a user with the given scoring config.
func NewState(userID, userName string, cfg empathy.Config) *SessionState {
	return &SessionState{
		UserID:         userID,
		UserName:       userName,
		Phase:          PhaseIdle,
		Metrics:        metrics.NewRecorder(),
		Assessments:    &assessment.Store{},
		Frustration:    &metrics.FrustrationTracker{},
		CompletedTasks: make(map[string]bool),
		ScenarioScores: make(map[empathy.ScenarioType]empathy.ScenarioScore),
		Calc:           empathy.NewCalculator(cfg),
		now:            time.Now,
	}
}

// TasksCompleted returns the number of tasks finished in the current scenario.
func (s *SessionState) TasksCompleted() int {
	return len(s.CompletedTasks)
}
