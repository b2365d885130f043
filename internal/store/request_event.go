package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRequestEvent(ctx context.Context, data RequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RequestEvent.Create().
		SetSequence(seqNum).
		SetMethod(data.Method).
		SetPath(data.Path).
		SetStatus(data.Status).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save request event: %w", err)
	}
	return nil
}
