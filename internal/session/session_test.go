package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/walkinmyshoes/wims/internal/empathy"
	"github.com/walkinmyshoes/wims/internal/store"
)

// fakeEventRepo captures appended events for assertions.
type fakeEventRepo struct {
	sessions    []store.SessionEventData
	assessments []store.AssessmentEventData
	scenarios   []store.ScenarioEventData
	scores      []store.ScoreEventData
	failNext    bool
}

func (f *fakeEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	if f.failNext {
		f.failNext = false
		return errors.New("db unavailable")
	}
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEventRepo) AppendAssessmentEvent(_ context.Context, data store.AssessmentEventData) error {
	f.assessments = append(f.assessments, data)
	return nil
}

func (f *fakeEventRepo) AppendScenarioEvent(_ context.Context, data store.ScenarioEventData) error {
	f.scenarios = append(f.scenarios, data)
	return nil
}

func (f *fakeEventRepo) AppendScoreEvent(_ context.Context, data store.ScoreEventData) error {
	f.scores = append(f.scores, data)
	return nil
}

func (f *fakeEventRepo) LatestSession(context.Context) (*store.SessionRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) SessionAssessments(context.Context, string) (*store.AssessmentRecord, *store.AssessmentRecord, error) {
	return nil, nil, nil
}

func (f *fakeEventRepo) QueryScoreEvents(context.Context, store.QueryOpts) ([]store.ScoreRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) BestScore(context.Context, string) (float64, bool, error) {
	return 0, false, nil
}

func (f *fakeEventRepo) QueryScenarioEvents(context.Context, store.QueryOpts) ([]store.ScenarioRecord, error) {
	return nil, nil
}

func (f *fakeEventRepo) ScenariosCompleted(context.Context, string) (int, error) {
	return 0, nil
}

func (f *fakeEventRepo) PurgeEvents(context.Context) error { return nil }

func newTestState() (*SessionState, *fakeEventRepo) {
	repo := &fakeEventRepo{}
	state := NewState("user-1", "Jordan", empathy.DefaultConfig())
	state.EventRepo = repo
	return state, repo
}

func TestStartAssignsSessionID(t *testing.T) {
	state, repo := newTestState()

	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	if state.SessionID == "" {
		t.Fatal("expected session id")
	}
	if state.Phase != PhaseActive {
		t.Errorf("phase = %v, want PhaseActive", state.Phase)
	}
	if state.Metrics.StartTime.IsZero() {
		t.Error("expected metrics clock started")
	}
	if len(repo.sessions) != 1 || repo.sessions[0].Action != "start" {
		t.Fatalf("events = %+v, want one start event", repo.sessions)
	}

	first := state.SessionID
	if err := Start(state); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if state.SessionID == first {
		t.Error("expected a fresh session id on restart")
	}
}

func TestStartClearsPriorSession(t *testing.T) {
	state, _ := newTestState()

	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	RecordError(state, "sign")
	RequestHelp(state)
	CompleteTask(state, "t1")
	if _, err := End(state); err != nil {
		t.Fatalf("end: %v", err)
	}

	if err := Start(state); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if state.Metrics.TotalErrors() != 0 {
		t.Errorf("errors = %d, want 0 after restart", state.Metrics.TotalErrors())
	}
	if state.Metrics.HelpRequests != 0 {
		t.Errorf("help = %d, want 0 after restart", state.Metrics.HelpRequests)
	}
	if state.TasksCompleted() != 0 {
		t.Errorf("tasks = %d, want 0 after restart", state.TasksCompleted())
	}
	if state.LastScore != nil {
		t.Error("expected last score cleared on restart")
	}
}

func TestBeginScenarioRejectsUnknownType(t *testing.T) {
	state, _ := newTestState()
	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}

	err := BeginScenario(state, empathy.ScenarioType("cognitive"), 5)
	if !errors.Is(err, empathy.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	if err := BeginScenario(state, empathy.ScenarioVisual, 5); err != nil {
		t.Fatalf("begin visual: %v", err)
	}
	if state.TotalTasks != 5 {
		t.Errorf("total tasks = %d, want 5", state.TotalTasks)
	}
}

func TestCompleteTaskIsIdempotent(t *testing.T) {
	state, _ := newTestState()
	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := BeginScenario(state, empathy.ScenarioVisual, 3); err != nil {
		t.Fatalf("begin: %v", err)
	}

	CompleteTask(state, "t1")
	CompleteTask(state, "t1")
	CompleteTask(state, "t2")
	if got := state.TasksCompleted(); got != 2 {
		t.Errorf("tasks completed = %d, want 2", got)
	}
}

func TestRecordCollisionFlowsToMetrics(t *testing.T) {
	state, _ := newTestState()
	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}

	// First two collisions raise the level but fire no event.
	if RecordCollision(state) {
		t.Error("collision 1 should not fire")
	}
	if RecordCollision(state) {
		t.Error("collision 2 should not fire")
	}
	if !RecordCollision(state) {
		t.Error("collision 3 should fire")
	}
	if state.Metrics.FrustrationEvents != 1 {
		t.Errorf("frustration events = %d, want 1", state.Metrics.FrustrationEvents)
	}
}

func TestFinishScenarioRecordsResult(t *testing.T) {
	state, repo := newTestState()
	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	now := base
	state.now = func() time.Time { return now }

	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := BeginScenario(state, empathy.ScenarioVisual, 5); err != nil {
		t.Fatalf("begin: %v", err)
	}
	for _, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		CompleteTask(state, id)
	}

	// Finish well inside the optimal window with a clean run.
	now = base.Add(13 * time.Minute)
	score, err := FinishScenario(state)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}

	// 50 completion + 25 time + 25 errors + 0 help + 25 frustration.
	if score.Total != 125 {
		t.Errorf("total = %v, want 125", score.Total)
	}
	if len(repo.scenarios) != 1 {
		t.Fatalf("scenario events = %d, want 1", len(repo.scenarios))
	}
	ev := repo.scenarios[0]
	if ev.Scenario != "visual" {
		t.Errorf("scenario = %q, want visual", ev.Scenario)
	}
	if ev.CompletionTimeMs != 13*60*1000 {
		t.Errorf("completion ms = %d, want %d", ev.CompletionTimeMs, 13*60*1000)
	}
	if _, ok := state.ScenarioScores[empathy.ScenarioVisual]; !ok {
		t.Error("expected scenario score cached on state")
	}
}

func TestFinishScenarioRequiresTasks(t *testing.T) {
	state, _ := newTestState()
	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	// BeginScenario never called: TotalTasks is zero.
	state.Scenario = empathy.ScenarioVisual

	_, err := FinishScenario(state)
	if !errors.Is(err, empathy.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestResetScenarioMetricsKeepsSessionClock(t *testing.T) {
	state, _ := newTestState()
	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	start := state.Metrics.StartTime

	RecordError(state, "sign")
	RequestHelp(state)
	RecordCollision(state)
	CompleteTask(state, "t1")

	ResetScenarioMetrics(state)

	if state.Metrics.TotalErrors() != 0 {
		t.Errorf("errors = %d, want 0", state.Metrics.TotalErrors())
	}
	if state.Frustration.Level() != 0 {
		t.Errorf("frustration level = %d, want 0", state.Frustration.Level())
	}
	if state.TasksCompleted() != 0 {
		t.Errorf("tasks = %d, want 0", state.TasksCompleted())
	}
	if !state.Metrics.StartTime.Equal(start) {
		t.Error("expected session clock preserved across scenario reset")
	}
}

func TestEndComputesScoreAndPersists(t *testing.T) {
	state, repo := newTestState()
	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := BeginScenario(state, empathy.ScenarioVisual, 5); err != nil {
		t.Fatalf("begin: %v", err)
	}

	if err := RecordPreAssessment(state, []string{"a"}, 20); err != nil {
		t.Fatalf("pre: %v", err)
	}
	if err := RecordPostAssessment(state, []string{"b"}, 60); err != nil {
		t.Fatalf("post: %v", err)
	}
	Retry(state)
	Retry(state)
	RequestHelp(state)
	state.Metrics.IncrementFrustrationEvents()

	// Pin the recorded duration to five minutes.
	state.Metrics.TotalTime = 5 * time.Minute
	state.Metrics.StartTime = time.Time{} // EndSession leaves TotalTime alone

	score, err := End(state)
	if err != nil {
		t.Fatalf("end: %v", err)
	}

	// Worked example: 12 + 10 + 16 + 3 + 12 = 53.
	if diff := score.Total - 53; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("total = %v, want 53", score.Total)
	}
	if state.Phase != PhaseComplete {
		t.Errorf("phase = %v, want PhaseComplete", state.Phase)
	}
	if state.LastScore == nil || state.LastScore.Total != score.Total {
		t.Error("expected last score cached on state")
	}

	if len(repo.assessments) != 2 {
		t.Errorf("assessment events = %d, want 2", len(repo.assessments))
	}
	if len(repo.scores) != 1 {
		t.Fatalf("score events = %d, want 1", len(repo.scores))
	}
	if repo.scores[0].Badge != string(empathy.TierAdvocate) {
		t.Errorf("badge = %q, want %q", repo.scores[0].Badge, empathy.TierAdvocate)
	}
	if repo.scores[0].UserName != "Jordan" {
		t.Errorf("user name = %q, want Jordan", repo.scores[0].UserName)
	}
}

func TestScoreIsPure(t *testing.T) {
	state, repo := newTestState()
	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := RecordPreAssessment(state, nil, 20); err != nil {
		t.Fatalf("pre: %v", err)
	}
	if err := RecordPostAssessment(state, nil, 60); err != nil {
		t.Fatalf("post: %v", err)
	}

	first := Score(state)
	second := Score(state)
	if first.Total != second.Total {
		t.Errorf("score not idempotent: %v then %v", first.Total, second.Total)
	}
	if state.Phase != PhaseActive {
		t.Errorf("phase = %v, want PhaseActive (Score must not end the session)", state.Phase)
	}
	if len(repo.scores) != 0 {
		t.Errorf("score events = %d, want 0 (Score must not persist)", len(repo.scores))
	}
}

func TestStartSurfacesRepoErrors(t *testing.T) {
	state, repo := newTestState()
	repo.failNext = true

	if err := Start(state); err == nil {
		t.Fatal("expected error from failing repo")
	}
}

func TestNilRepoDisablesPersistence(t *testing.T) {
	state := NewState("user-1", "Jordan", empathy.DefaultConfig())

	if err := Start(state); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := RecordPreAssessment(state, nil, 30); err != nil {
		t.Fatalf("pre: %v", err)
	}
	if _, err := End(state); err != nil {
		t.Fatalf("end: %v", err)
	}
}
