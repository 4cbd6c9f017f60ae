package store

import (
	"context"
	"fmt"

	"github.com/walkinmyshoes/wims/ent"
	"github.com/walkinmyshoes/wims/ent/scoreevent"
)

func (r *eventRepo) AppendScoreEvent(ctx context.Context, data ScoreEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ScoreEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetTotal(data.Total).
		SetBadge(data.Badge)

	if data.UserName != "" {
		builder = builder.SetUserName(data.UserName)
	}
	if len(data.Breakdown) > 0 {
		builder = builder.SetBreakdown(data.Breakdown)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save score event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScoreEvents(ctx context.Context, opts QueryOpts) ([]ScoreRecord, error) {
	query := r.client.ScoreEvent.Query().
		Order(ent.Desc(scoreevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(scoreevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(scoreevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(scoreevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(scoreevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query score events: %w", err)
	}

	records := make([]ScoreRecord, len(events))
	for i, e := range events {
		records[i] = ScoreRecord{
			SessionID: e.SessionID,
			UserID:    e.UserID,
			UserName:  e.UserName,
			Total:     e.Total,
			Badge:     e.Badge,
			Breakdown: e.Breakdown,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) BestScore(ctx context.Context, userID string) (float64, bool, error) {
	e, err := r.client.ScoreEvent.Query().
		Where(scoreevent.UserID(userID)).
		Order(ent.Desc(scoreevent.FieldTotal)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query best score: %w", err)
	}
	return e.Total, true, nil
}
