package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
)

// ReminderRepository finds learners with due cards who opted into reminders.
type ReminderRepository struct {
	db postgres.DBTX
}

func NewReminderRepository(db postgres.DBTX) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// ListCandidates returns learners with reminders enabled, at least one card
// due at asOf and no reminder since remindedBefore.
func (r *ReminderRepository) ListCandidates(
	ctx context.Context,
	asOf time.Time,
	remindedBefore time.Time,
	limit int,
) ([]entities.ReminderCandidate, error) {
	query := `
		SELECT s.learner_id, l.chat_id, COUNT(c.word_key), s.last_reminded_at
		FROM learner_settings s
		JOIN learners l ON l.id = s.learner_id
		JOIN card_states c ON c.learner_id = s.learner_id AND c.next_review_at <= $1
		WHERE s.reminder_enabled
		  AND (s.last_reminded_at IS NULL OR s.last_reminded_at < $2)
		GROUP BY s.learner_id, l.chat_id, s.last_reminded_at
		ORDER BY s.learner_id
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, asOf, remindedBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("list reminder candidates: %w", err)
	}
	defer rows.Close()

	var out []entities.ReminderCandidate
	for rows.Next() {
		var c entities.ReminderCandidate
		if err := rows.Scan(&c.LearnerID, &c.ChatID, &c.DueCount, &c.LastRemindedAt); err != nil {
			return nil, fmt.Errorf("scan reminder candidate: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// MarkReminded stamps the time of the last reminder.
func (r *ReminderRepository) MarkReminded(ctx context.Context, learnerID int64, at time.Time) error {
	query := `
		UPDATE learner_settings
		SET last_reminded_at = $2
		WHERE learner_id = $1
	`

	if _, err := r.db.Exec(ctx, query, learnerID, at); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}

	return nil
}
