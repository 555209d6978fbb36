package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

type SettingsRepository struct {
	db *sql.DB
}

func (r *SettingsRepository) Create(ctx context.Context, learnerID int64) error {
	now := toMillis(time.Now())
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO learner_settings (learner_id, session_size, mode, reminder_enabled, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (learner_id) DO NOTHING`,
		learnerID, entities.DefaultSessionSize, string(entities.ModeChoice), now, now,
	)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	return nil
}

func (r *SettingsRepository) GetByLearnerID(ctx context.Context, learnerID int64) (*entities.LearnerSettings, error) {
	var (
		s                entities.LearnerSettings
		mode             string
		created, updated int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT learner_id, session_size, mode, reminder_enabled, created_at, updated_at
		FROM learner_settings WHERE learner_id = ?`, learnerID,
	).Scan(&s.LearnerID, &s.SessionSize, &mode, &s.ReminderEnabled, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	s.Mode = entities.ParseReviewMode(mode)
	s.CreatedAt = fromMillis(created)
	s.UpdatedAt = fromMillis(updated)
	return &s, nil
}

func (r *SettingsRepository) UpdateSessionSize(ctx context.Context, learnerID int64, size int) error {
	return r.update(ctx, "session_size", learnerID, size)
}

func (r *SettingsRepository) UpdateMode(ctx context.Context, learnerID int64, mode entities.ReviewMode) error {
	return r.update(ctx, "mode", learnerID, string(mode))
}

func (r *SettingsRepository) UpdateReminder(ctx context.Context, learnerID int64, enabled bool) error {
	return r.update(ctx, "reminder_enabled", learnerID, enabled)
}

func (r *SettingsRepository) update(ctx context.Context, column string, learnerID int64, value any) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE learner_settings SET `+column+` = ?, updated_at = ? WHERE learner_id = ?`,
		value, toMillis(time.Now()), learnerID,
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrSettingsNotFound
	}
	return nil
}
