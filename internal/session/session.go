package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/walkinmyshoes/wims/internal/empathy"
	"github.com/walkinmyshoes/wims/internal/store"
)

// Start begins a new session, assigning a fresh session ID and starting
// the metrics clock. A session already in progress is discarded.
func Start(state *SessionState) error {
	state.SessionID = uuid.NewString()
	state.Phase = PhaseActive
	state.LastScore = nil
	state.Metrics.Reset()
	state.Assessments.Reset()
	state.Frustration.Reset()
	state.CompletedTasks = make(map[string]bool)
	state.ScenarioScores = make(map[empathy.ScenarioType]empathy.ScenarioScore)
	state.Metrics.StartSession()

	if state.EventRepo != nil {
		err := state.EventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: state.SessionID,
			UserID:    state.UserID,
			Action:    "start",
		})
		if err != nil {
			return fmt.Errorf("record session start: %w", err)
		}
	}
	return nil
}

// BeginScenario switches the session to a new scenario, clearing the
// per-scenario task set. Session-wide counters keep accumulating.
func BeginScenario(state *SessionState, scenario empathy.ScenarioType, totalTasks int) error {
	if _, ok := scenario.OptimalTime(); !ok {
		return fmt.Errorf("%w: unknown scenario type %q", empathy.ErrInvalidInput, scenario)
	}
	state.Scenario = scenario
	state.TotalTasks = totalTasks
	state.CompletedTasks = make(map[string]bool)
	state.ScenarioStart = state.now()
	return nil
}

// CompleteTask marks a task as finished. Repeat completions are no-ops.
func CompleteTask(state *SessionState, taskID string) {
	state.CompletedTasks[taskID] = true
}

// RecordError attributes one error to a task.
func RecordError(state *SessionState, taskID string) {
	state.Metrics.RecordError(taskID)
}

// RecordCollision registers a collision with the frustration tracker.
// Returns true when the collision produced a frustration event.
func RecordCollision(state *SessionState) bool {
	return state.Frustration.RecordCollision(state.Metrics)
}

// RequestHelp counts one help request.
func RequestHelp(state *SessionState) {
	state.Metrics.IncrementHelpRequests()
}

// Retry counts one retry.
func Retry(state *SessionState) {
	state.Metrics.IncrementRetries()
}

// RecordPreAssessment stores the pre-training knowledge check.
func RecordPreAssessment(state *SessionState, answers []string, score float64) error {
	state.Assessments.SetPre(answers, score)
	return appendAssessment(state, "pre", answers, score)
}

// RecordPostAssessment stores the post-training knowledge check.
func RecordPostAssessment(state *SessionState, answers []string, score float64) error {
	state.Assessments.SetPost(answers, score)
	return appendAssessment(state, "post", answers, score)
}

func appendAssessment(state *SessionState, phase string, answers []string, score float64) error {
	if state.EventRepo == nil {
		return nil
	}
	err := state.EventRepo.AppendAssessmentEvent(context.Background(), store.AssessmentEventData{
		SessionID: state.SessionID,
		UserID:    state.UserID,
		Phase:     phase,
		Score:     score,
		Answers:   answers,
	})
	if err != nil {
		return fmt.Errorf("record %s assessment: %w", phase, err)
	}
	return nil
}

// FinishScenario scores the current scenario run and records the result.
func FinishScenario(state *SessionState) (empathy.ScenarioScore, error) {
	in := empathy.ScenarioInput{
		Scenario:          state.Scenario,
		TasksCompleted:    state.TasksCompleted(),
		TotalTasks:        state.TotalTasks,
		CompletionTime:    state.now().Sub(state.ScenarioStart),
		Errors:            state.Metrics.TotalErrors(),
		HelpRequests:      state.Metrics.HelpRequests,
		FrustrationEvents: state.Metrics.FrustrationEvents,
	}
	if err := in.Validate(); err != nil {
		return empathy.ScenarioScore{}, err
	}

	score := empathy.CalculateScenario(in)
	state.ScenarioScores[state.Scenario] = score

	if state.EventRepo != nil {
		err := state.EventRepo.AppendScenarioEvent(context.Background(), store.ScenarioEventData{
			SessionID:         state.SessionID,
			UserID:            state.UserID,
			Scenario:          string(state.Scenario),
			TasksCompleted:    in.TasksCompleted,
			TotalTasks:        in.TotalTasks,
			CompletionTimeMs:  in.CompletionTime.Milliseconds(),
			Errors:            in.Errors,
			HelpRequests:      in.HelpRequests,
			FrustrationEvents: in.FrustrationEvents,
			Total:             score.Total,
			Breakdown: map[string]float64{
				"completion":  score.Breakdown.Completion,
				"time":        score.Breakdown.Time,
				"errors":      score.Breakdown.Errors,
				"help":        score.Breakdown.Help,
				"frustration": score.Breakdown.Frustration,
			},
		})
		if err != nil {
			return score, fmt.Errorf("record scenario result: %w", err)
		}
	}
	return score, nil
}

// ResetScenarioMetrics clears per-scenario counters so the next scenario
// starts clean. Assessments and the session clock are untouched.
func ResetScenarioMetrics(state *SessionState) {
	start := state.Metrics.StartTime
	state.Metrics.Reset()
	state.Metrics.StartTime = start
	state.Frustration.Reset()
	state.CompletedTasks = make(map[string]bool)
}

// Score computes the composite empathy score from the current counters
// without mutating anything. Safe to call repeatedly mid-session.
func Score(state *SessionState) empathy.Score {
	return state.Calc.Calculate(state.Metrics, state.Assessments)
}

// End closes the session, computes the composite empathy score, and
// persists the session summary.
func End(state *SessionState) (empathy.Score, error) {
	state.Metrics.EndSession()
	score := state.Calc.Calculate(state.Metrics, state.Assessments)
	state.LastScore = &score
	state.Phase = PhaseComplete

	if state.EventRepo == nil {
		return score, nil
	}

	ctx := context.Background()
	err := state.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:         state.SessionID,
		UserID:            state.UserID,
		Action:            "end",
		Scenario:          string(state.Scenario),
		DurationMs:        state.Metrics.TotalTime.Milliseconds(),
		Retries:           state.Metrics.Retries,
		HelpRequests:      state.Metrics.HelpRequests,
		FrustrationEvents: state.Metrics.FrustrationEvents,
		ErrorsPerTask:     state.Metrics.ErrorsPerTask,
	})
	if err != nil {
		return score, fmt.Errorf("record session end: %w", err)
	}

	err = state.EventRepo.AppendScoreEvent(ctx, store.ScoreEventData{
		SessionID: state.SessionID,
		UserID:    state.UserID,
		UserName:  state.UserName,
		Total:     score.Total,
		Badge:     string(empathy.Classify(score.Total)),
		Breakdown: map[string]float64{
			"knowledge":   score.Breakdown.Knowledge,
			"engagement":  score.Breakdown.Engagement,
			"retries":     score.Breakdown.Retries,
			"helpSeeking": score.Breakdown.HelpSeeking,
			"resilience":  score.Breakdown.Resilience,
		},
	})
	if err != nil {
		return score, fmt.Errorf("record score: %w", err)
	}
	return score, nil
}
