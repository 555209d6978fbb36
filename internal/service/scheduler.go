package service

import (
	"math"
	"time"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// EaseBonus is the fixed ease increment applied on a correct answer.
// Reviews carry only a correct/incorrect signal, so there is no quality grade
// to feed the full SM-2 ease formula.
const EaseBonus = 0.05

// EasePenalty is subtracted from the ease on an incorrect answer.
const EasePenalty = 0.2

// NextState computes the scheduling record that follows a review.
//
// A nil current state seeds the defaults of a word reviewed for the first
// time. The function is pure: it never mutates current and never fails;
// malformed stored values are clamped to the nearest valid value.
func NextState(current *entities.CardState, outcome entities.Outcome, now time.Time) entities.CardState {
	var next entities.CardState
	if current == nil {
		next = entities.CardState{
			EaseFactor:   entities.DefaultEaseFactor,
			IntervalDays: entities.DefaultIntervalDays,
		}
	} else {
		next = *current
		if current.LastReviewedAt != nil {
			t := *current.LastReviewedAt
			next.LastReviewedAt = &t
		}
	}
	clamp(&next)

	switch outcome {
	case entities.OutcomeCorrect:
		next.Repetitions++
		next.IntervalDays = correctInterval(next.Repetitions, next.IntervalDays, next.EaseFactor)
		next.EaseFactor = math.Max(next.EaseFactor, math.Min(entities.MaxEaseFactor, next.EaseFactor+EaseBonus))
		next.CorrectCount++
	default:
		next.Repetitions = 0
		next.IntervalDays = 1
		next.EaseFactor = math.Max(entities.MinEaseFactor, next.EaseFactor-EasePenalty)
		next.IncorrectCount++
		outcome = entities.OutcomeIncorrect
	}

	next.LastOutcome = outcome
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	reviewedAt := now
	next.LastReviewedAt = &reviewedAt

	return next
}

// correctInterval returns the interval after a correct answer that brought
// the consecutive-correct counter to repetitions.
func correctInterval(repetitions, prevInterval int, ease float64) int {
	switch repetitions {
	case 1:
		return 1
	case 2:
		return 3
	}

	interval := int(math.Round(float64(prevInterval) * ease))
	if interval < 1 {
		interval = 1
	}
	return interval
}

// clamp pulls stored values back into their valid ranges.
func clamp(s *entities.CardState) {
	if math.IsNaN(s.EaseFactor) || math.IsInf(s.EaseFactor, 0) {
		s.EaseFactor = entities.DefaultEaseFactor
	}
	if s.EaseFactor < entities.MinEaseFactor {
		s.EaseFactor = entities.MinEaseFactor
	}
	if s.IntervalDays < 1 {
		s.IntervalDays = 1
	}
	if s.Repetitions < 0 {
		s.Repetitions = 0
	}
	if s.CorrectCount < 0 {
		s.CorrectCount = 0
	}
	if s.IncorrectCount < 0 {
		s.IncorrectCount = 0
	}
}
