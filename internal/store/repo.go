package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	UserID            string
	Action            string // "start" or "end"
	Scenario          string
	DurationMs        int64
	Retries           int
	HelpRequests      int
	FrustrationEvents int
	ErrorsPerTask     map[string]int
}

// SessionRecord is a persisted session-end summary.
type SessionRecord struct {
	SessionID         string
	UserID            string
	Scenario          string
	DurationMs        int64
	Retries           int
	HelpRequests      int
	FrustrationEvents int
	ErrorsPerTask     map[string]int
	Sequence          int64
	Timestamp         time.Time
}

// AssessmentEventData captures a completed knowledge check.
type AssessmentEventData struct {
	SessionID string
	UserID    string
	Phase     string // "pre" or "post"
	Score     float64
	Answers   []string
}

// AssessmentRecord is a persisted assessment result.
type AssessmentRecord struct {
	SessionID string
	UserID    string
	Phase     string
	Score     float64
	Answers   []string
	Timestamp time.Time
}

// ScenarioEventData captures the scored result of one scenario run.
type ScenarioEventData struct {
	SessionID         string
	UserID            string
	Scenario          string
	TasksCompleted    int
	TotalTasks        int
	CompletionTimeMs  int64
	Errors            int
	HelpRequests      int
	FrustrationEvents int
	Total             float64
	Breakdown         map[string]float64
}

// ScenarioRecord is a persisted scenario result.
type ScenarioRecord struct {
	SessionID      string
	UserID         string
	Scenario       string
	TasksCompleted int
	TotalTasks     int
	Total          float64
	Timestamp      time.Time
}

// ScoreEventData captures a computed empathy score.
type ScoreEventData struct {
	SessionID string
	UserID    string
	UserName  string
	Total     float64
	Badge     string
	Breakdown map[string]float64
}

// ScoreRecord is a persisted empathy score.
type ScoreRecord struct {
	SessionID string
	UserID    string
	UserName  string
	Total     float64
	Badge     string
	Breakdown map[string]float64
	Sequence  int64
	Timestamp time.Time
}

// CertificateData is a certificate at insert time.
type CertificateData struct {
	CertID             string
	UserName           string
	Score              int
	Date               string
	ScenariosCompleted int
	Badge              string
}

// CertificateRecord is a persisted certificate.
type CertificateRecord struct {
	CertID             string
	UserName           string
	Score              int
	Date               string
	ScenariosCompleted int
	Badge              string
	CreatedAt          time.Time
}

// ProfileData is the dashboard rollup stored in a snapshot.
type ProfileData struct {
	UserID             string  `json:"user_id"`
	UserName           string  `json:"user_name"`
	BestScore          float64 `json:"best_score"`
	Badge              string  `json:"badge"`
	ScenariosCompleted int     `json:"scenarios_completed"`
}

// ProfileSnapshot is a point-in-time capture of a user's progress.
type ProfileSnapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      ProfileData
}

// EventRepo provides append and query access to the telemetry event log.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAssessmentEvent records a completed knowledge check.
	AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error

	// AppendScenarioEvent records a scored scenario run.
	AppendScenarioEvent(ctx context.Context, data ScenarioEventData) error

	// AppendScoreEvent records a computed empathy score.
	AppendScoreEvent(ctx context.Context, data ScoreEventData) error

	// LatestSession returns the most recent session-end record, or nil
	// if no session has ended.
	LatestSession(ctx context.Context) (*SessionRecord, error)

	// SessionAssessments returns the pre and post assessment records for
	// a session. Either may be nil when not yet taken.
	SessionAssessments(ctx context.Context, sessionID string) (pre, post *AssessmentRecord, err error)

	// QueryScoreEvents returns score records, newest first.
	QueryScoreEvents(ctx context.Context, opts QueryOpts) ([]ScoreRecord, error)

	// BestScore returns the highest recorded score for a user. The bool
	// is false when the user has no scores.
	BestScore(ctx context.Context, userID string) (float64, bool, error)

	// QueryScenarioEvents returns scenario records, newest first.
	QueryScenarioEvents(ctx context.Context, opts QueryOpts) ([]ScenarioRecord, error)

	// ScenariosCompleted counts distinct scenarios a user has finished.
	ScenariosCompleted(ctx context.Context, userID string) (int, error)

	// PurgeEvents deletes all telemetry events. Certificates survive.
	PurgeEvents(ctx context.Context) error
}

// CertRepo manages the append-only certificate list.
type CertRepo interface {
	// Add appends a certificate. Duplicate cert IDs are rejected.
	Add(ctx context.Context, data CertificateData) error

	// List returns all certificates, newest first.
	List(ctx context.Context) ([]CertificateRecord, error)

	// Get returns the certificate with the given public ID, or nil if
	// it does not exist.
	Get(ctx context.Context, certID string) (*CertificateRecord, error)
}

// SnapshotRepo manages profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *ProfileSnapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*ProfileSnapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
