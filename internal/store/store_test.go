package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No session yet.
	rec, err := repo.LatestSession(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when no session has ended")
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		UserID:    "user-1",
		Action:    "start",
		Scenario:  "visual",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	// Start events are not session summaries.
	rec, err = repo.LatestSession(ctx)
	if err != nil {
		t.Fatalf("latest (start only): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record before session end")
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:         "sess-1",
		UserID:            "user-1",
		Action:            "end",
		Scenario:          "visual",
		DurationMs:        300000,
		Retries:           2,
		HelpRequests:      1,
		FrustrationEvents: 1,
		ErrorsPerTask:     map[string]int{"sign": 3},
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	rec, err = repo.LatestSession(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil record")
	}
	if rec.SessionID != "sess-1" {
		t.Errorf("session id = %q, want %q", rec.SessionID, "sess-1")
	}
	if rec.DurationMs != 300000 {
		t.Errorf("duration = %d, want 300000", rec.DurationMs)
	}
	if rec.ErrorsPerTask["sign"] != 3 {
		t.Errorf("errors[sign] = %d, want 3", rec.ErrorsPerTask["sign"])
	}
}

func TestSessionAssessments(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	pre, post, err := repo.SessionAssessments(ctx, "sess-1")
	if err != nil {
		t.Fatalf("assessments (empty): %v", err)
	}
	if pre != nil || post != nil {
		t.Fatal("expected nil records when no assessments taken")
	}

	err = repo.AppendAssessmentEvent(ctx, AssessmentEventData{
		SessionID: "sess-1",
		UserID:    "user-1",
		Phase:     "pre",
		Score:     20,
		Answers:   []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("append pre: %v", err)
	}

	pre, post, err = repo.SessionAssessments(ctx, "sess-1")
	if err != nil {
		t.Fatalf("assessments (pre only): %v", err)
	}
	if pre == nil {
		t.Fatal("expected pre record")
	}
	if post != nil {
		t.Fatal("expected nil post record")
	}
	if pre.Score != 20 {
		t.Errorf("pre score = %v, want 20", pre.Score)
	}

	err = repo.AppendAssessmentEvent(ctx, AssessmentEventData{
		SessionID: "sess-1",
		UserID:    "user-1",
		Phase:     "post",
		Score:     60,
	})
	if err != nil {
		t.Fatalf("append post: %v", err)
	}

	pre, post, err = repo.SessionAssessments(ctx, "sess-1")
	if err != nil {
		t.Fatalf("assessments: %v", err)
	}
	if pre == nil || post == nil {
		t.Fatal("expected both records")
	}
	if post.Score != 60 {
		t.Errorf("post score = %v, want 60", post.Score)
	}

	// Events from another session stay invisible.
	pre, post, err = repo.SessionAssessments(ctx, "sess-2")
	if err != nil {
		t.Fatalf("assessments (other session): %v", err)
	}
	if pre != nil || post != nil {
		t.Fatal("expected nil records for a different session")
	}
}

func TestScoreEventsAndBestScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	_, ok, err := repo.BestScore(ctx, "user-1")
	if err != nil {
		t.Fatalf("best score (empty): %v", err)
	}
	if ok {
		t.Fatal("expected no best score for unseen user")
	}

	scores := []float64{53, 81, 67}
	for i, total := range scores {
		err := repo.AppendScoreEvent(ctx, ScoreEventData{
			SessionID: "sess-1",
			UserID:    "user-1",
			UserName:  "Jordan",
			Total:     total,
			Badge:     "ally",
			Breakdown: map[string]float64{"knowledge": 40},
		})
		if err != nil {
			t.Fatalf("append score %d: %v", i, err)
		}
	}

	best, ok, err := repo.BestScore(ctx, "user-1")
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if !ok {
		t.Fatal("expected a best score")
	}
	if best != 81 {
		t.Errorf("best = %v, want 81", best)
	}

	records, err := repo.QueryScoreEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query scores: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].Total != 67 {
		t.Errorf("records[0].Total = %v, want 67", records[0].Total)
	}
	if records[0].UserName != "Jordan" {
		t.Errorf("records[0].UserName = %q, want %q", records[0].UserName, "Jordan")
	}
}

func TestScenariosCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runs := []struct {
		scenario string
		total    float64
	}{
		{"visual", 92},
		{"visual", 105}, // repeat of the same scenario
		{"hearing", 88},
	}
	for i, run := range runs {
		err := repo.AppendScenarioEvent(ctx, ScenarioEventData{
			SessionID:      "sess-1",
			UserID:         "user-1",
			Scenario:       run.scenario,
			TasksCompleted: 5,
			TotalTasks:     5,
			Total:          run.total,
		})
		if err != nil {
			t.Fatalf("append scenario %d: %v", i, err)
		}
	}

	count, err := repo.ScenariosCompleted(ctx, "user-1")
	if err != nil {
		t.Fatalf("scenarios completed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2 (distinct scenarios)", count)
	}

	count, err = repo.ScenariosCompleted(ctx, "user-2")
	if err != nil {
		t.Fatalf("scenarios completed (unseen user): %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestPurgeEventsKeepsCertificates(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	certs := s.CertRepo()
	ctx := context.Background()

	err := events.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1",
		UserID:    "user-1",
		Action:    "end",
	})
	if err != nil {
		t.Fatalf("append session: %v", err)
	}
	err = events.AppendScoreEvent(ctx, ScoreEventData{
		SessionID: "sess-1",
		UserID:    "user-1",
		Total:     80,
		Badge:     "ally",
	})
	if err != nil {
		t.Fatalf("append score: %v", err)
	}
	err = certs.Add(ctx, CertificateData{
		CertID:             "cert_1_abc",
		UserName:           "Jordan",
		Score:              80,
		Date:               "8/30/2026",
		ScenariosCompleted: 4,
		Badge:              "ally",
	})
	if err != nil {
		t.Fatalf("add cert: %v", err)
	}

	if err := events.PurgeEvents(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}

	rec, err := events.LatestSession(ctx)
	if err != nil {
		t.Fatalf("latest after purge: %v", err)
	}
	if rec != nil {
		t.Fatal("expected no sessions after purge")
	}

	list, err := certs.List(ctx)
	if err != nil {
		t.Fatalf("list certs: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(certs) = %d, want 1 (certificates survive purge)", len(list))
	}
}

func TestCertificateAddListGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.CertRepo()
	ctx := context.Background()

	data := CertificateData{
		CertID:             "cert_1700000000000_a1b2",
		UserName:           "Sam",
		Score:              73,
		Date:               "8/30/2026",
		ScenariosCompleted: 3,
		Badge:              "ally",
	}
	if err := repo.Add(ctx, data); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Duplicate IDs are rejected.
	if err := repo.Add(ctx, data); err == nil {
		t.Fatal("expected error on duplicate cert id")
	}

	got, err := repo.Get(ctx, data.CertID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected certificate")
	}
	if got.UserName != "Sam" || got.Score != 73 {
		t.Errorf("got %+v, want name Sam score 73", got)
	}

	missing, err := repo.Get(ctx, "cert_nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown cert id")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &ProfileSnapshot{
		Sequence:  42,
		Timestamp: now,
		Data: ProfileData{
			UserID:             "user-1",
			UserName:           "Jordan",
			BestScore:          81,
			Badge:              "ally",
			ScenariosCompleted: 2,
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.BestScore != 81 {
		t.Errorf("data.best_score = %v, want 81", snap.Data.BestScore)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &ProfileSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProfileData{UserID: "user-1"},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ProfileSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &ProfileSnapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProfileData{UserID: "user-1"},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().ProfileSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the certificates table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='certificates'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "certificates" {
		t.Errorf("table name = %q, want 'certificates'", name)
	}
}
