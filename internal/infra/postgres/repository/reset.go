package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
)

// ResetRepository wipes a learner's progress in one transaction.
type ResetRepository struct {
	tr *postgres.Transactor
}

func NewResetRepository(tr *postgres.Transactor) *ResetRepository {
	return &ResetRepository{tr: tr}
}

func (r *ResetRepository) ResetLearner(ctx context.Context, learnerID int64) error {
	return r.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM card_states WHERE learner_id = $1`, learnerID); err != nil {
			return fmt.Errorf("delete card_states: %w", err)
		}

		query := `
			UPDATE learner_settings
			SET session_size = $2, mode = $3, reminder_enabled = TRUE,
			    last_reminded_at = NULL, updated_at = NOW()
			WHERE learner_id = $1
		`
		if _, err := tx.Exec(ctx, query, learnerID, entities.DefaultSessionSize, string(entities.ModeChoice)); err != nil {
			return fmt.Errorf("reset learner_settings: %w", err)
		}

		return nil
	})
}
