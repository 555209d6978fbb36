package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

const cardStateColumns = `
	learner_id, word_key, ease_factor, interval_days, repetitions,
	next_review_at, last_outcome, correct_count, incorrect_count, last_reviewed_at
`

// CardStateRepository stores scheduling records in Postgres.
type CardStateRepository struct {
	db postgres.DBTX
}

// NewCardStateRepository creates a new CardStateRepository.
func NewCardStateRepository(db postgres.DBTX) *CardStateRepository {
	return &CardStateRepository{db: db}
}

// Get retrieves the card of one learner for one word.
func (r *CardStateRepository) Get(ctx context.Context, learnerID int64, wordKey string) (*entities.CardState, error) {
	query := `SELECT ` + cardStateColumns + `
		FROM card_states
		WHERE learner_id = $1 AND word_key = $2
	`

	state, err := scanCardState(r.db.QueryRow(ctx, query, learnerID, wordKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrCardStateNotFound
		}
		return nil, fmt.Errorf("get card state: %w", err)
	}

	return state, nil
}

// Upsert writes the card. Concurrent writers for the same card: last write wins.
func (r *CardStateRepository) Upsert(ctx context.Context, state *entities.CardState) error {
	query := `
		INSERT INTO card_states (` + cardStateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (learner_id, word_key) DO UPDATE SET
			ease_factor = EXCLUDED.ease_factor,
			interval_days = EXCLUDED.interval_days,
			repetitions = EXCLUDED.repetitions,
			next_review_at = EXCLUDED.next_review_at,
			last_outcome = EXCLUDED.last_outcome,
			correct_count = EXCLUDED.correct_count,
			incorrect_count = EXCLUDED.incorrect_count,
			last_reviewed_at = EXCLUDED.last_reviewed_at
	`

	_, err := r.db.Exec(
		ctx,
		query,
		state.LearnerID,
		state.WordKey,
		state.EaseFactor,
		state.IntervalDays,
		state.Repetitions,
		state.NextReviewAt,
		string(state.LastOutcome),
		state.CorrectCount,
		state.IncorrectCount,
		state.LastReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert card state: %w", err)
	}

	return nil
}

// ListDue returns cards due at asOf, soonest first.
func (r *CardStateRepository) ListDue(ctx context.Context, learnerID int64, asOf time.Time, limit int) ([]entities.CardState, error) {
	query := `SELECT ` + cardStateColumns + `
		FROM card_states
		WHERE learner_id = $1 AND next_review_at <= $2
		ORDER BY next_review_at, word_key
		LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, learnerID, asOf, limit)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}

	return collectCardStates(rows)
}

// ListStruggling returns cards answered wrong more often than right,
// worst first.
func (r *CardStateRepository) ListStruggling(ctx context.Context, learnerID int64, limit int) ([]entities.CardState, error) {
	query := `SELECT ` + cardStateColumns + `
		FROM card_states
		WHERE learner_id = $1 AND incorrect_count > correct_count
		ORDER BY incorrect_count - correct_count DESC, word_key
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, learnerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list struggling cards: %w", err)
	}

	return collectCardStates(rows)
}

// Stats aggregates the learner's cards.
func (r *CardStateRepository) Stats(ctx context.Context, learnerID int64, asOf time.Time) (*entities.CardStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE next_review_at <= $2),
			COUNT(*) FILTER (WHERE interval_days >= $3),
			COUNT(*) FILTER (WHERE incorrect_count > correct_count),
			COALESCE(SUM(correct_count), 0),
			COALESCE(SUM(incorrect_count), 0),
			MAX(last_reviewed_at)
		FROM card_states
		WHERE learner_id = $1
	`

	var stats entities.CardStats
	err := r.db.QueryRow(ctx, query, learnerID, asOf, entities.MatureIntervalDays).Scan(
		&stats.Total,
		&stats.Due,
		&stats.Mature,
		&stats.Struggling,
		&stats.CorrectTotal,
		&stats.IncorrectTotal,
		&stats.LastReviewedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get card stats: %w", err)
	}

	return &stats, nil
}

func scanCardState(row pgx.Row) (*entities.CardState, error) {
	var (
		s       entities.CardState
		outcome string
	)
	err := row.Scan(
		&s.LearnerID,
		&s.WordKey,
		&s.EaseFactor,
		&s.IntervalDays,
		&s.Repetitions,
		&s.NextReviewAt,
		&outcome,
		&s.CorrectCount,
		&s.IncorrectCount,
		&s.LastReviewedAt,
	)
	if err != nil {
		return nil, err
	}

	s.LastOutcome = entities.Outcome(outcome)
	return &s, nil
}

func collectCardStates(rows pgx.Rows) ([]entities.CardState, error) {
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
