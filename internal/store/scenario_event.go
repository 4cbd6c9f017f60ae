package store

import (
	"context"
	"fmt"

	"github.com/walkinmyshoes/wims/ent"
	"github.com/walkinmyshoes/wims/ent/scenarioevent"
)

func (r *eventRepo) AppendScenarioEvent(ctx context.Context, data ScenarioEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ScenarioEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetScenario(data.Scenario).
		SetTasksCompleted(data.TasksCompleted).
		SetTotalTasks(data.TotalTasks).
		SetCompletionTimeMs(data.CompletionTimeMs).
		SetErrors(data.Errors).
		SetHelpRequests(data.HelpRequests).
		SetFrustrationEvents(data.FrustrationEvents).
		SetTotal(data.Total)

	if len(data.Breakdown) > 0 {
		builder = builder.SetBreakdown(data.Breakdown)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save scenario event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScenarioEvents(ctx context.Context, opts QueryOpts) ([]ScenarioRecord, error) {
	query := r.client.ScenarioEvent.Query().
		Order(ent.Desc(scenarioevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(scenarioevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(scenarioevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(scenarioevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(scenarioevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scenario events: %w", err)
	}

	records := make([]ScenarioRecord, len(events))
	for i, e := range events {
		records[i] = ScenarioRecord{
			SessionID:      e.SessionID,
			UserID:         e.UserID,
			Scenario:       e.Scenario,
			TasksCompleted: e.TasksCompleted,
			TotalTasks:     e.TotalTasks,
			Total:          e.Total,
			Timestamp:      e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) ScenariosCompleted(ctx context.Context, userID string) (int, error) {
	scenarios, err := r.client.ScenarioEvent.Query().
		Where(scenarioevent.UserID(userID)).
		GroupBy(scenarioevent.FieldScenario).
		Strings(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed scenarios: %w", err)
	}
	return len(scenarios), nil
}
