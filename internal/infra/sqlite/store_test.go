package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

var now = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "lexiquest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"},
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, tt.pragma)
	}
}

func TestCardStates_GetUpsert(t *testing.T) {
	repo := openTestStore(t).CardStates()
	ctx := context.Background()

	_, err := repo.Get(ctx, 1, "perro")
	assert.ErrorIs(t, err, repository.ErrCardStateNotFound)

	reviewed := now
	state := entities.CardState{
		LearnerID:      1,
		WordKey:        "perro",
		EaseFactor:     2.55,
		IntervalDays:   1,
		Repetitions:    1,
		NextReviewAt:   now.AddDate(0, 0, 1),
		LastOutcome:    entities.OutcomeCorrect,
		CorrectCount:   1,
		LastReviewedAt: &reviewed,
	}
	require.NoError(t, repo.Upsert(ctx, &state))

	got, err := repo.Get(ctx, 1, "perro")
	require.NoError(t, err)
	assert.InDelta(t, 2.55, got.EaseFactor, 1e-9)
	assert.Equal(t, 1, got.Repetitions)
	assert.True(t, state.NextReviewAt.Equal(got.NextReviewAt))
	require.NotNil(t, got.LastReviewedAt)
	assert.True(t, reviewed.Equal(*got.LastReviewedAt))
	assert.Equal(t, entities.OutcomeCorrect, got.LastOutcome)

	// Last write wins.
	state.Repetitions = 0
	state.IntervalDays = 1
	state.IncorrectCount = 1
	state.LastOutcome = entities.OutcomeIncorrect
	state.LastReviewedAt = nil
	require.NoError(t, repo.Upsert(ctx, &state))

	got, err = repo.Get(ctx, 1, "perro")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Repetitions)
	assert.Equal(t, 1, got.IncorrectCount)
	assert.Nil(t, got.LastReviewedAt)
}

func TestCardStates_ListsAndStats(t *testing.T) {
	repo := openTestStore(t).CardStates()
	ctx := context.Background()

	cards := []entities.CardState{
		{LearnerID: 1, WordKey: "a", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now.Add(-2 * time.Hour), CorrectCount: 1, IncorrectCount: 3},
		{LearnerID: 1, WordKey: "b", EaseFactor: 2.5, IntervalDays: 3, NextReviewAt: now.Add(-5 * time.Hour), CorrectCount: 2},
		{LearnerID: 1, WordKey: "c", EaseFactor: 2.7, IntervalDays: 25, NextReviewAt: now.AddDate(0, 0, 20), CorrectCount: 6},
		{LearnerID: 1, WordKey: "d", EaseFactor: 1.3, IntervalDays: 1, NextReviewAt: now.AddDate(0, 0, 1), CorrectCount: 0, IncorrectCount: 1},
		{LearnerID: 2, WordKey: "a", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now.Add(-time.Hour)},
	}
	for i := range cards {
		require.NoError(t, repo.Upsert(ctx, &cards[i]))
	}

	due, err := repo.ListDue(ctx, 1, now, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "b", due[0].WordKey) // soonest first
	assert.Equal(t, "a", due[1].WordKey)

	due, err = repo.ListDue(ctx, 1, now, 1)
	require.NoError(t, err)
	assert.Len(t, due, 1)

	struggling, err := repo.ListStruggling(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, struggling, 2)
	assert.Equal(t, "a", struggling[0].WordKey)
	assert.Equal(t, "d", struggling[1].WordKey)

	stats, err := repo.Stats(ctx, 1, now)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Due)
	assert.Equal(t, 1, stats.Mature)
	assert.Equal(t, 2, stats.Struggling)
	assert.Equal(t, 9, stats.CorrectTotal)
	assert.Equal(t, 4, stats.IncorrectTotal)
	assert.Nil(t, stats.LastReviewedAt)
}

func TestCardStates_EmptyStats(t *testing.T) {
	stats, err := openTestStore(t).CardStates().Stats(context.Background(), 42, now)

	require.NoError(t, err)
	assert.Equal(t, entities.CardStats{}, *stats)
}

func TestLearnersAndSettings(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	learner := entities.NewLearner(7, 70)
	learner.FirstName = "Ana"

	created, err := s.Learners().Save(ctx, learner)
	require.NoError(t, err)
	assert.True(t, created)

	learner.Username = "ana"
	created, err = s.Learners().Save(ctx, learner)
	require.NoError(t, err)
	assert.False(t, created)

	got, err := s.Learners().GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)

	_, err = s.Learners().GetByID(ctx, 8)
	assert.ErrorIs(t, err, repository.ErrLearnerNotFound)

	_, err = s.Settings().GetByLearnerID(ctx, 7)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)

	require.NoError(t, s.Settings().Create(ctx, 7))
	require.NoError(t, s.Settings().UpdateSessionSize(ctx, 7, 10))
	require.NoError(t, s.Settings().UpdateMode(ctx, 7, entities.ModeWriting))
	require.NoError(t, s.Settings().UpdateReminder(ctx, 7, false))

	settings, err := s.Settings().GetByLearnerID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 10, settings.SessionSize)
	assert.Equal(t, entities.ModeWriting, settings.Mode)
	assert.False(t, settings.ReminderEnabled)

	assert.ErrorIs(t, s.Settings().UpdateSessionSize(ctx, 99, 10), repository.ErrSettingsNotFound)
}

func TestReminderCandidates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3} {
		_, err := s.Learners().Save(ctx, entities.NewLearner(id, id*10))
		require.NoError(t, err)
		require.NoError(t, s.Settings().Create(ctx, id))
	}
	require.NoError(t, s.Settings().UpdateReminder(ctx, 3, false))

	cards := []entities.CardState{
		{LearnerID: 1, WordKey: "a", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now.Add(-time.Hour)},
		{LearnerID: 1, WordKey: "b", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now.Add(-time.Minute)},
		{LearnerID: 2, WordKey: "a", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now.Add(time.Hour)},
		{LearnerID: 3, WordKey: "a", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now.Add(-time.Hour)},
	}
	for i := range cards {
		require.NoError(t, s.CardStates().Upsert(ctx, &cards[i]))
	}

	candidates, err := s.Reminders().ListCandidates(ctx, now, now.Add(-20*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(1), candidates[0].LearnerID)
	assert.Equal(t, int64(10), candidates[0].ChatID)
	assert.Equal(t, 2, candidates[0].DueCount)
	assert.Nil(t, candidates[0].LastRemindedAt)

	require.NoError(t, s.Reminders().MarkReminded(ctx, 1, now))

	candidates, err = s.Reminders().ListCandidates(ctx, now, now.Add(-20*time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestResetLearner(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Learners().Save(ctx, entities.NewLearner(5, 50))
	require.NoError(t, err)
	require.NoError(t, s.Settings().Create(ctx, 5))
	require.NoError(t, s.Settings().UpdateSessionSize(ctx, 5, 40))

	for _, c := range []entities.CardState{
		{LearnerID: 5, WordKey: "a", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now},
		{LearnerID: 6, WordKey: "a", EaseFactor: 2.5, IntervalDays: 1, NextReviewAt: now},
	} {
		require.NoError(t, s.CardStates().Upsert(ctx, &c))
	}

	require.NoError(t, s.ResetLearner(ctx, 5))

	_, err = s.CardStates().Get(ctx, 5, "a")
	assert.ErrorIs(t, err, repository.ErrCardStateNotFound)
	_, err = s.CardStates().Get(ctx, 6, "a")
	assert.NoError(t, err)

	settings, err := s.Settings().GetByLearnerID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSessionSize, settings.SessionSize)
}
