package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestNextState_FirstReviewCorrect(t *testing.T) {
	got := NextState(nil, entities.OutcomeCorrect, testNow)

	assert.Equal(t, 1, got.Repetitions)
	assert.Equal(t, 1, got.IntervalDays)
	assert.GreaterOrEqual(t, got.EaseFactor, entities.DefaultEaseFactor)
	assert.InDelta(t, 2.55, got.EaseFactor, 1e-9)
	assert.Equal(t, testNow.AddDate(0, 0, 1), got.NextReviewAt)
	assert.Equal(t, entities.OutcomeCorrect, got.LastOutcome)
	assert.Equal(t, 1, got.CorrectCount)
	require.NotNil(t, got.LastReviewedAt)
	assert.Equal(t, testNow, *got.LastReviewedAt)
}

func TestNextState_SecondReviewCorrect(t *testing.T) {
	first := NextState(nil, entities.OutcomeCorrect, testNow)
	got := NextState(&first, entities.OutcomeCorrect, testNow.AddDate(0, 0, 1))

	assert.Equal(t, 2, got.Repetitions)
	assert.Equal(t, 3, got.IntervalDays)
	assert.InDelta(t, 2.6, got.EaseFactor, 1e-9)
}

func TestNextState_ThirdReviewCorrect(t *testing.T) {
	current := entities.CardState{EaseFactor: 2.6, IntervalDays: 3, Repetitions: 2}

	got := NextState(&current, entities.OutcomeCorrect, testNow)

	assert.Equal(t, 3, got.Repetitions)
	assert.Equal(t, 8, got.IntervalDays) // round(3 * 2.6)
	assert.Equal(t, testNow.AddDate(0, 0, 8), got.NextReviewAt)
}

func TestNextState_ThreeCorrectFromScratch(t *testing.T) {
	s := NextState(nil, entities.OutcomeCorrect, testNow)
	s = NextState(&s, entities.OutcomeCorrect, testNow)
	s = NextState(&s, entities.OutcomeCorrect, testNow)

	assert.Equal(t, 3, s.Repetitions)
	assert.Equal(t, 8, s.IntervalDays)
	assert.Equal(t, 3, s.CorrectCount)
}

func TestNextState_IncorrectResets(t *testing.T) {
	current := entities.CardState{EaseFactor: 2.4, IntervalDays: 20, Repetitions: 5, CorrectCount: 5}

	got := NextState(&current, entities.OutcomeIncorrect, testNow)

	assert.Equal(t, 0, got.Repetitions)
	assert.Equal(t, 1, got.IntervalDays)
	assert.InDelta(t, 2.2, got.EaseFactor, 1e-9)
	assert.Equal(t, testNow.AddDate(0, 0, 1), got.NextReviewAt)
	assert.Equal(t, entities.OutcomeIncorrect, got.LastOutcome)
	assert.Equal(t, 1, got.IncorrectCount)
	assert.Equal(t, 5, got.CorrectCount)
}

func TestNextState_EaseNeverBelowMinimum(t *testing.T) {
	s := NextState(nil, entities.OutcomeIncorrect, testNow)
	for i := 0; i < 20; i++ {
		s = NextState(&s, entities.OutcomeIncorrect, testNow)
		assert.GreaterOrEqual(t, s.EaseFactor, entities.MinEaseFactor)
	}
	assert.InDelta(t, entities.MinEaseFactor, s.EaseFactor, 1e-9)
}

func TestNextState_EaseCappedOnCorrect(t *testing.T) {
	tests := []struct {
		name string
		ease float64
		want float64
	}{
		{"below cap", 2.98, entities.MaxEaseFactor},
		{"at cap", entities.MaxEaseFactor, entities.MaxEaseFactor},
		{"above cap is kept", 3.4, 3.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := entities.CardState{EaseFactor: tt.ease, IntervalDays: 10, Repetitions: 4}
			got := NextState(&current, entities.OutcomeCorrect, testNow)
			assert.InDelta(t, tt.want, got.EaseFactor, 1e-9)
		})
	}
}

func TestNextState_ClampsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		current entities.CardState
		outcome entities.Outcome
		check   func(t *testing.T, got entities.CardState)
	}{
		{
			name:    "NaN ease",
			current: entities.CardState{EaseFactor: math.NaN(), IntervalDays: 1},
			outcome: entities.OutcomeIncorrect,
			check: func(t *testing.T, got entities.CardState) {
				assert.InDelta(t, 2.3, got.EaseFactor, 1e-9)
			},
		},
		{
			name:    "ease below minimum",
			current: entities.CardState{EaseFactor: 0.5, IntervalDays: 10, Repetitions: 3},
			outcome: entities.OutcomeCorrect,
			check: func(t *testing.T, got entities.CardState) {
				assert.Equal(t, 13, got.IntervalDays) // round(10 * 1.3)
				assert.InDelta(t, 1.35, got.EaseFactor, 1e-9)
			},
		},
		{
			name:    "zero interval",
			current: entities.CardState{EaseFactor: 2.5, IntervalDays: 0, Repetitions: 4},
			outcome: entities.OutcomeCorrect,
			check: func(t *testing.T, got entities.CardState) {
				assert.Equal(t, 3, got.IntervalDays) // round(1 * 2.5)
			},
		},
		{
			name:    "negative repetitions",
			current: entities.CardState{EaseFactor: 2.5, IntervalDays: 1, Repetitions: -3},
			outcome: entities.OutcomeCorrect,
			check: func(t *testing.T, got entities.CardState) {
				assert.Equal(t, 1, got.Repetitions)
				assert.Equal(t, 1, got.IntervalDays)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextState(&tt.current, tt.outcome, testNow)
			assert.GreaterOrEqual(t, got.EaseFactor, entities.MinEaseFactor)
			assert.GreaterOrEqual(t, got.IntervalDays, 1)
			tt.check(t, got)
		})
	}
}

func TestNextState_IntervalGrowth(t *testing.T) {
	for reps := 3; reps < 10; reps++ {
		for _, interval := range []int{1, 2, 5, 13, 40} {
			current := entities.CardState{EaseFactor: 2.1, IntervalDays: interval, Repetitions: reps - 1}
			got := NextState(&current, entities.OutcomeCorrect, testNow)

			assert.Equal(t, reps, got.Repetitions)
			assert.Equal(t, max(1, int(math.Round(float64(interval)*2.1))), got.IntervalDays)
		}
	}
}

func TestNextState_Pure(t *testing.T) {
	reviewed := testNow.AddDate(0, 0, -3)
	current := entities.CardState{
		LearnerID:      7,
		WordKey:        "casa",
		EaseFactor:     2.3,
		IntervalDays:   6,
		Repetitions:    3,
		LastReviewedAt: &reviewed,
	}
	snapshot := current

	a := NextState(&current, entities.OutcomeCorrect, testNow)
	b := NextState(&current, entities.OutcomeCorrect, testNow)

	assert.Equal(t, a, b)
	assert.Equal(t, snapshot, current)
	assert.Equal(t, reviewed, *current.LastReviewedAt)
	assert.Equal(t, "casa", a.WordKey)
	assert.Equal(t, int64(7), a.LearnerID)
}

func TestNextState_UnknownOutcomeIsIncorrect(t *testing.T) {
	current := entities.CardState{EaseFactor: 2.5, IntervalDays: 8, Repetitions: 3}

	got := NextState(&current, entities.Outcome("skipped"), testNow)

	assert.Equal(t, 0, got.Repetitions)
	assert.Equal(t, entities.OutcomeIncorrect, got.LastOutcome)
}
