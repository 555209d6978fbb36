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

const cardStateColumns = `
	learner_id, word_key, ease_factor, interval_days, repetitions,
	next_review_at, last_outcome, correct_count, incorrect_count, last_reviewed_at
`

// CardStateRepository stores scheduling records in SQLite.
type CardStateRepository struct {
	db *sql.DB
}

func (r *CardStateRepository) Get(ctx context.Context, learnerID int64, wordKey string) (*entities.CardState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+cardStateColumns+`
		FROM card_states WHERE learner_id = ? AND word_key = ?`, learnerID, wordKey)

	state, err := scanCardState(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrCardStateNotFound
		}
		return nil, fmt.Errorf("get card state: %w", err)
	}
	return state, nil
}

func (r *CardStateRepository) Upsert(ctx context.Context, state *entities.CardState) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO card_states (`+cardStateColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (learner_id, word_key) DO UPDATE SET
			ease_factor = excluded.ease_factor,
			interval_days = excluded.interval_days,
			repetitions = excluded.repetitions,
			next_review_at = excluded.next_review_at,
			last_outcome = excluded.last_outcome,
			correct_count = excluded.correct_count,
			incorrect_count = excluded.incorrect_count,
			last_reviewed_at = excluded.last_reviewed_at
	`,
		state.LearnerID,
		state.WordKey,
		state.EaseFactor,
		state.IntervalDays,
		state.Repetitions,
		toMillis(state.NextReviewAt),
		string(state.LastOutcome),
		state.CorrectCount,
		state.IncorrectCount,
		nullMillis(state.LastReviewedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert card state %s: %w", state.WordKey, err)
	}
	return nil
}

func (r *CardStateRepository) ListDue(ctx context.Context, learnerID int64, asOf time.Time, limit int) ([]entities.CardState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cardStateColumns+`
		FROM card_states
		WHERE learner_id = ? AND next_review_at <= ?
		ORDER BY next_review_at, word_key
		LIMIT ?`, learnerID, toMillis(asOf), limit)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}
	return collectCardStates(rows)
}

func (r *CardStateRepository) ListStruggling(ctx context.Context, learnerID int64, limit int) ([]entities.CardState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cardStateColumns+`
		FROM card_states
		WHERE learner_id = ? AND incorrect_count > correct_count
		ORDER BY incorrect_count - correct_count DESC, word_key
		LIMIT ?`, learnerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list struggling cards: %w", err)
	}
	return collectCardStates(rows)
}

func (r *CardStateRepository) Stats(ctx context.Context, learnerID int64, asOf time.Time) (*entities.CardStats, error) {
	var (
		stats    entities.CardStats
		lastSeen sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(next_review_at <= ?), 0),
			COALESCE(SUM(interval_days >= ?), 0),
			COALESCE(SUM(incorrect_count > correct_count), 0),
			COALESCE(SUM(correct_count), 0),
			COALESCE(SUM(incorrect_count), 0),
			MAX(last_reviewed_at)
		FROM card_states
		WHERE learner_id = ?`,
		toMillis(asOf), entities.MatureIntervalDays, learnerID,
	).Scan(
		&stats.Total,
		&stats.Due,
		&stats.Mature,
		&stats.Struggling,
		&stats.CorrectTotal,
		&stats.IncorrectTotal,
		&lastSeen,
	)
	if err != nil {
		return nil, fmt.Errorf("get card stats: %w", err)
	}

	stats.LastReviewedAt = timePtr(lastSeen)
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCardState(row rowScanner) (*entities.CardState, error) {
	var (
		s            entities.CardState
		outcome      string
		nextReview   int64
		lastReviewed sql.NullInt64
	)
	err := row.Scan(
		&s.LearnerID,
		&s.WordKey,
		&s.EaseFactor,
		&s.IntervalDays,
		&s.Repetitions,
		&nextReview,
		&outcome,
		&s.CorrectCount,
		&s.IncorrectCount,
		&lastReviewed,
	)
	if err != nil {
		return nil, err
	}

	s.NextReviewAt = fromMillis(nextReview)
	s.LastReviewedAt = timePtr(lastReviewed)
	s.LastOutcome = entities.Outcome(outcome)
	return &s, nil
}

func collectCardStates(rows *sql.Rows) ([]entities.CardState, error) {
	defer rows.Close()

	var out []entities.CardState
	for rows.Next() {
		s, err := scanCardState(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card state: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}
