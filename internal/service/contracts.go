package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// CardStateStore persists one scheduling record per (learner, word).
type CardStateStore interface {
	Get(ctx context.Context, learnerID int64, wordKey string) (*entities.CardState, error)
	Upsert(ctx context.Context, state *entities.CardState) error
	ListDue(ctx context.Context, learnerID int64, asOf time.Time, limit int) ([]entities.CardState, error)
	ListStruggling(ctx context.Context, learnerID int64, limit int) ([]entities.CardState, error)
	Stats(ctx context.Context, learnerID int64, asOf time.Time) (*entities.CardStats, error)
}

// ContentProvider supplies vocabulary from one content source.
// An empty result means the source has nothing to offer.
type ContentProvider interface {
	Name() string
	Words(ctx context.Context) ([]entities.Word, error)
}

type LearnerRepository interface {
	Save(ctx context.Context, learner *entities.Learner) (bool, error)
	GetByID(ctx context.Context, learnerID int64) (*entities.Learner, error)
}

type SettingsRepository interface {
	Create(ctx context.Context, learnerID int64) error
	GetByLearnerID(ctx context.Context, learnerID int64) (*entities.LearnerSettings, error)
	UpdateSessionSize(ctx context.Context, learnerID int64, size int) error
	UpdateMode(ctx context.Context, learnerID int64, mode entities.ReviewMode) error
	UpdateReminder(ctx context.Context, learnerID int64, enabled bool) error
}

// ReminderRepository finds learners to nudge and remembers when they were nudged.
type ReminderRepository interface {
	ListCandidates(ctx context.Context, asOf time.Time, remindedBefore time.Time, limit int) ([]entities.ReminderCandidate, error)
	MarkReminded(ctx context.Context, learnerID int64, at time.Time) error
}

// SessionStorage keeps practice sessions in memory between answers.
type SessionStorage interface {
	Store(session *entities.Session)
	Get(id uuid.UUID) (*entities.Session, bool)
	GetByLearner(learnerID int64) (*entities.Session, bool)
	Delete(id uuid.UUID)
}

// ReminderNotifier sends reminder notifications to learners.
type ReminderNotifier interface {
	SendReminder(chatID int64, dueCount int) error
}
