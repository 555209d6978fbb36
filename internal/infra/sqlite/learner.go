package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

type LearnerRepository struct {
	db *sql.DB
}

// Save inserts or refreshes a learner and reports whether it was created.
func (r *LearnerRepository) Save(ctx context.Context, l *entities.Learner) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO learners (id, chat_id, first_name, username, language_code, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		l.ID, l.ChatID, l.FirstName, l.Username, l.LanguageCode, toMillis(l.CreatedAt),
	)
	if err != nil {
		return false, fmt.Errorf("save learner: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save learner: %w", err)
	}
	if n > 0 {
		return true, nil
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE learners SET chat_id = ?, first_name = ?, username = ?, language_code = ?
		WHERE id = ?`,
		l.ChatID, l.FirstName, l.Username, l.LanguageCode, l.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update learner: %w", err)
	}
	return false, nil
}

func (r *LearnerRepository) GetByID(ctx context.Context, learnerID int64) (*entities.Learner, error) {
	var (
		l       entities.Learner
		created int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, chat_id, first_name, username, language_code, created_at
		FROM learners WHERE id = ?`, learnerID,
	).Scan(&l.ID, &l.ChatID, &l.FirstName, &l.Username, &l.LanguageCode, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrLearnerNotFound
		}
		return nil, fmt.Errorf("get learner: %w", err)
	}

	l.CreatedAt = fromMillis(created)
	return &l, nil
}
