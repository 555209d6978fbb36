package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

// ErrPersistOutcome is returned when a computed card state could not be saved.
// The state returned alongside it is still valid for the rest of the session.
var ErrPersistOutcome = errors.New("persist outcome")

// LearnerContext carries the learner identity and the store handle through
// one request. It replaces any process-wide progress object.
type LearnerContext struct {
	LearnerID int64
	Store     CardStateStore
}

// OutcomeRecorder turns answers into persisted card states.
type OutcomeRecorder struct {
	validator *AnswerValidator
	logger    *zap.Logger
}

// NewOutcomeRecorder creates a new OutcomeRecorder.
func NewOutcomeRecorder(validator *AnswerValidator, logger *zap.Logger) *OutcomeRecorder {
	if validator == nil {
		validator = NewAnswerValidator()
	}
	return &OutcomeRecorder{
		validator: validator,
		logger:    logger,
	}
}

// Classify decides whether answer is correct for item. Choice items compare
// against the correct option exactly (ignoring case), typed answers are
// matched fuzzily.
func (r *OutcomeRecorder) Classify(item entities.ReviewItem, answer string) bool {
	if item.HasOptions() {
		if item.CorrectIndex < 0 || item.CorrectIndex >= len(item.Options) {
			return entities.SameTranslation(answer, item.Word.Translation)
		}
		return entities.SameTranslation(answer, item.Options[item.CorrectIndex])
	}

	return r.validator.Validate(answer, item.Word.Translation)
}

// RecordOutcome loads the learner's card for word, applies the outcome and
// upserts the result. A failed read is treated as a first review. A failed
// write returns the new state together with an error wrapping
// ErrPersistOutcome; nothing is retried here.
func (r *OutcomeRecorder) RecordOutcome(
	ctx context.Context,
	lc LearnerContext,
	word entities.Word,
	wasCorrect bool,
	now time.Time,
) (entities.CardState, error) {
	key := word.Key()

	current, err := lc.Store.Get(ctx, lc.LearnerID, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCardStateNotFound) {
			r.logger.Warn("failed to load card state, seeding defaults",
				zap.Int64("learner_id", lc.LearnerID),
				zap.String("word", key),
				zap.Error(err),
			)
		}
		current = nil
	}

	next := NextState(current, entities.OutcomeFromBool(wasCorrect), now)
	next.LearnerID = lc.LearnerID
	next.WordKey = key

	if err := lc.Store.Upsert(ctx, &next); err != nil {
		r.logger.Error("failed to save card state",
			zap.Int64("learner_id", lc.LearnerID),
			zap.String("word", key),
			zap.Error(err),
		)
		return next, fmt.Errorf("%w: %w", ErrPersistOutcome, err)
	}

	r.logger.Debug("outcome recorded",
		zap.Int64("learner_id", lc.LearnerID),
		zap.String("word", key),
		zap.Bool("correct", wasCorrect),
		zap.Int("interval_days", next.IntervalDays),
		zap.Float64("ease", next.EaseFactor),
	)

	return next, nil
}
