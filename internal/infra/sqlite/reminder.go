package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

type ReminderRepository struct {
	db *sql.DB
}

func (r *ReminderRepository) ListCandidates(
	ctx context.Context,
	asOf time.Time,
	remindedBefore time.Time,
	limit int,
) ([]entities.ReminderCandidate, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.learner_id, l.chat_id, COUNT(c.word_key), s.last_reminded_at
		FROM learner_settings s
		JOIN learners l ON l.id = s.learner_id
		JOIN card_states c ON c.learner_id = s.learner_id AND c.next_review_at <= ?
		WHERE s.reminder_enabled = 1
		  AND (s.last_reminded_at IS NULL OR s.last_reminded_at < ?)
		GROUP BY s.learner_id, l.chat_id, s.last_reminded_at
		ORDER BY s.learner_id
		LIMIT ?`,
		toMillis(asOf), toMillis(remindedBefore), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list reminder candidates: %w", err)
	}
	defer rows.Close()

	var out []entities.ReminderCandidate
	for rows.Next() {
		var (
			c    entities.ReminderCandidate
			last sql.NullInt64
		)
		if err := rows.Scan(&c.LearnerID, &c.ChatID, &c.DueCount, &last); err != nil {
			return nil, fmt.Errorf("scan reminder candidate: %w", err)
		}
		c.LastRemindedAt = timePtr(last)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ReminderRepository) MarkReminded(ctx context.Context, learnerID int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE learner_settings SET last_reminded_at = ? WHERE learner_id = ?`,
		toMillis(at), learnerID,
	)
	if err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}
	return nil
}
