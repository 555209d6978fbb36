package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

// SettingsRepository provides access to learner settings in the database.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create creates default settings for a learner.
func (r *SettingsRepository) Create(ctx context.Context, learnerID int64) error {
	query := `
		INSERT INTO learner_settings (
			learner_id, session_size, mode, reminder_enabled, created_at, updated_at
		) VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		ON CONFLICT (learner_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, learnerID, entities.DefaultSessionSize, string(entities.ModeChoice))
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByLearnerID retrieves settings for a learner.
func (r *SettingsRepository) GetByLearnerID(ctx context.Context, learnerID int64) (*entities.LearnerSettings, error) {
	query := `
		SELECT learner_id, session_size, mode, reminder_enabled, created_at, updated_at
		FROM learner_settings
		WHERE learner_id = $1
	`

	var (
		s    entities.LearnerSettings
		mode string
	)
	err := r.db.QueryRow(ctx, query, learnerID).Scan(
		&s.LearnerID,
		&s.SessionSize,
		&mode,
		&s.ReminderEnabled,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	s.Mode = entities.ParseReviewMode(mode)
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

// update sets one column. column is always a constant from this file.
func (r *SettingsRepository) update(ctx context.Context, column string, learnerID int64, value any) error {
	query := `
		UPDATE learner_settings
		SET ` + column + ` = $2, updated_at = NOW()
		WHERE learner_id = $1
	`

	tag, err := r.db.Exec(ctx, query, learnerID, value)
	if err != nil {
		return fmt.Errorf("update %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}
