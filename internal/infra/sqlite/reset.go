package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// ResetLearner wipes the learner's cards and restores default settings.
func (s *Store) ResetLearner(ctx context.Context, learnerID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM card_states WHERE learner_id = ?`, learnerID); err != nil {
		return fmt.Errorf("delete card_states: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE learner_settings
		SET session_size = ?, mode = ?, reminder_enabled = 1, last_reminded_at = NULL, updated_at = ?
		WHERE learner_id = ?`,
		entities.DefaultSessionSize, string(entities.ModeChoice), toMillis(time.Now()), learnerID,
	)
	if err != nil {
		return fmt.Errorf("reset learner_settings: %w", err)
	}

	return tx.Commit()
}
