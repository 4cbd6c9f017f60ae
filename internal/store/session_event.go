package store

import (
	"context"
	"fmt"

	"github.com/walkinmyshoes/wims/ent"
	"github.com/walkinmyshoes/wims/ent/sessionevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetDurationMs(data.DurationMs).
		SetRetries(data.Retries).
		SetHelpRequests(data.HelpRequests).
		SetFrustrationEvents(data.FrustrationEvents)

	if data.Scenario != "" {
		builder = builder.SetScenario(data.Scenario)
	}
	if len(data.ErrorsPerTask) > 0 {
		builder = builder.SetErrorsPerTask(data.ErrorsPerTask)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestSession(ctx context.Context) (*SessionRecord, error) {
	e, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest session: %w", err)
	}

	return &SessionRecord{
		SessionID:         e.SessionID,
		UserID:            e.UserID,
		Scenario:          e.Scenario,
		DurationMs:        e.DurationMs,
		Retries:           e.Retries,
		HelpRequests:      e.HelpRequests,
		FrustrationEvents: e.FrustrationEvents,
		ErrorsPerTask:     e.ErrorsPerTask,
		Sequence:          e.Sequence,
		Timestamp:         e.Timestamp,
	}, nil
}

func (r *eventRepo) PurgeEvents(ctx context.Context) error {
	if _, err := r.client.SessionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge session events: %w", err)
	}
	if _, err := r.client.AssessmentEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge assessment events: %w", err)
	}
	if _, err := r.client.ScenarioEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge scenario events: %w", err)
	}
	if _, err := r.client.ScoreEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge score events: %w", err)
	}
	return nil
}
