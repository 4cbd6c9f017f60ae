package report

import (
	"context"
	"time"

	"github.com/walkinmyshoes/wims/internal/assessment"
	"github.com/walkinmyshoes/wims/internal/empathy"
	"github.com/walkinmyshoes/wims/internal/metrics"
	"github.com/walkinmyshoes/wims/internal/store"
)

// FromSession replays a persisted session summary through the scoring
// pipeline and assembles its report. Older sessions rescore under the
// current weights, so reports always reflect today's configuration.
func FromSession(ctx context.Context, repo store.EventRepo, scoring empathy.Config, sess *store.SessionRecord) (*Report, error) {
	rec := metrics.NewRecorder()
	rec.TotalTime = time.Duration(sess.DurationMs) * time.Millisecond
	rec.Retries = sess.Retries
	rec.HelpRequests = sess.HelpRequests
	rec.FrustrationEvents = sess.FrustrationEvents
	for task, n := range sess.ErrorsPerTask {
		rec.ErrorsPerTask[task] = n
	}

	assess := &assessment.Store{}
	pre, post, err := repo.SessionAssessments(ctx, sess.SessionID)
	if err != nil {
		return nil, err
	}
	if pre != nil {
		assess.SetPre(pre.Answers, pre.Score)
	}
	if post != nil {
		assess.SetPost(post.Answers, post.Score)
	}

	score := empathy.NewCalculator(scoring).Calculate(rec, assess)

	scenarioRecs, err := repo.QueryScenarioEvents(ctx, store.QueryOpts{})
	if err != nil {
		return nil, err
	}
	var scenarios []string
	for _, sr := range scenarioRecs {
		if sr.SessionID == sess.SessionID {
			scenarios = append(scenarios, sr.Scenario)
		}
	}

	in := Input{
		SessionID: sess.SessionID,
		UserID:    sess.UserID,
		Scenarios: scenarios,
	}
	return Build(in, score), nil
}
