package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jaemin/econquiz/ent"
	"github.com/jaemin/econquiz/ent/stagedset"
	"github.com/jaemin/econquiz/internal/quiz"
)

// ParseError indicates the locally staged problem set is malformed
// and cannot be used for a new attempt cycle.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("corrupt staged problem set: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type stageRepo struct {
	client *ent.Client
}

var _ StageRepo = (*stageRepo)(nil)

func (r *stageRepo) Stage(ctx context.Context, set *quiz.ProblemSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode problem set: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin staging tx: %w", err)
	}

	// One live set at a time: replacing destroys the previous one.
	if _, err := tx.StagedSet.Delete().Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear previous staged set: %w", err)
	}

	_, err = tx.StagedSet.Create().
		SetSetID(set.ID).
		SetSource(string(set.Source)).
		SetPayload(string(payload)).
		SetCreatedAt(set.CreatedAt).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("save staged set: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit staged set: %w", err)
	}
	return nil
}

func (r *stageRepo) Active(ctx context.Context) (*quiz.ProblemSet, error) {
	row, err := r.client.StagedSet.Query().
		Order(ent.Desc(stagedset.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query staged set: %w", err)
	}

	raw := []byte(row.Payload)
	if err := ValidateProblemSet(raw); err != nil {
		return nil, err
	}

	var set quiz.ProblemSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &set, nil
}

func (r *stageRepo) Clear(ctx context.Context) error {
	if _, err := r.client.StagedSet.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear staged set: %w", err)
	}
	return nil
}
