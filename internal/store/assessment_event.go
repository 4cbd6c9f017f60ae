package store

import (
	"context"
	"fmt"

	"github.com/walkinmyshoes/wims/ent"
	"github.com/walkinmyshoes/wims/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessmentEvent(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetPhase(data.Phase).
		SetScore(data.Score)

	if len(data.Answers) > 0 {
		builder = builder.SetAnswers(data.Answers)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionAssessments(ctx context.Context, sessionID string) (pre, post *AssessmentRecord, err error) {
	events, err := r.client.AssessmentEvent.Query().
		Where(assessmentevent.SessionID(sessionID)).
		Order(ent.Asc(assessmentevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query session assessments: %w", err)
	}

	// A retaken phase overwrites the earlier record; later events win.
	for _, e := range events {
		rec := &AssessmentRecord{
			SessionID: e.SessionID,
			UserID:    e.UserID,
			Phase:     e.Phase,
			Score:     e.Score,
			Answers:   e.Answers,
			Timestamp: e.Timestamp,
		}
		switch e.Phase {
		case "pre":
			pre = rec
		case "post":
			post = rec
		}
	}
	return pre, post, nil
}
