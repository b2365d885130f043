package store

import (
	"context"
	"fmt"

	"github.com/jaemin/econquiz/ent"
	"github.com/jaemin/econquiz/ent/attemptevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetProblemsetID(data.ProblemSetID).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetDurationSecs(data.DurationSecs).
		SetSource(data.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAttemptEvents(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldTimestamp))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	records := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AttemptRecord{
			AttemptID:    e.AttemptID,
			ProblemSetID: e.ProblemsetID,
			Total:        e.Total,
			Correct:      e.Correct,
			Score:        e.Score,
			DurationSecs: e.DurationSecs,
			Source:       e.Source,
			Timestamp:    e.Timestamp,
		})
	}
	return records, nil
}

func (r *eventRepo) CountAttemptEvents(ctx context.Context) (int, error) {
	n, err := r.client.AttemptEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempt events: %w", err)
	}
	return n, nil
}
