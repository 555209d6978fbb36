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

// LearnerRepository provides access to learner data in the database.
type LearnerRepository struct {
	db postgres.DBTX
}

// NewLearnerRepository creates a new LearnerRepository.
func NewLearnerRepository(db postgres.DBTX) *LearnerRepository {
	return &LearnerRepository{db: db}
}

// Save inserts a new learner or refreshes the profile of an existing one.
// It reports whether a row was created.
func (r *LearnerRepository) Save(ctx context.Context, learner *entities.Learner) (bool, error) {
	query := `
		INSERT INTO learners (id, chat_id, first_name, username, language_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			chat_id = EXCLUDED.chat_id,
			first_name = EXCLUDED.first_name,
			username = EXCLUDED.username,
			language_code = EXCLUDED.language_code
		RETURNING (xmax = 0) AS created
	`

	var created bool
	err := r.db.QueryRow(ctx, query,
		learner.ID,
		learner.ChatID,
		learner.FirstName,
		learner.Username,
		learner.LanguageCode,
		learner.CreatedAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("save learner: %w", err)
	}

	return created, nil
}

// GetByID retrieves a learner by ID.
func (r *LearnerRepository) GetByID(ctx context.Context, learnerID int64) (*entities.Learner, error) {
	query := `
		SELECT id, chat_id, first_name, username, language_code, created_at
		FROM learners
		WHERE id = $1
	`

	var l entities.Learner
	err := r.db.QueryRow(ctx, query, learnerID).Scan(
		&l.ID,
		&l.ChatID,
		&l.FirstName,
		&l.Username,
		&l.LanguageCode,
		&l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrLearnerNotFound
		}
		return nil, fmt.Errorf("get learner: %w", err)
	}

	return &l, nil
}
