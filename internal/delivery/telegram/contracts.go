package telegram

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/service"
)

type LearnerService interface {
	EnsureLearner(ctx context.Context, learner *entities.Learner) (bool, error)
}

type PracticeService interface {
	StartSession(ctx context.Context, learnerID int64, mode entities.ReviewMode) (*entities.Session, error)
	StartDailyChallenge(ctx context.Context, learnerID int64, now time.Time) (*entities.Session, error)
	ActiveSession(learnerID int64) (*entities.Session, bool)
	AnswerOption(ctx context.Context, learnerID int64, sessionID uuid.UUID, itemIndex, optionIndex int) (*service.AnswerResult, error)
	Answer(ctx context.Context, learnerID int64, sessionID uuid.UUID, itemIndex int, answer string) (*service.AnswerResult, error)
}

type ProgressService interface {
	Summary(ctx context.Context, learnerID int64, now time.Time) (*service.ProgressSummary, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, learnerID int64) (*entities.LearnerSettings, error)
	UpdateSessionSize(ctx context.Context, learnerID int64, size int) error
	UpdateMode(ctx context.Context, learnerID int64, mode entities.ReviewMode) error
	ToggleReminder(ctx context.Context, learnerID int64) (bool, error)
}

type ResetService interface {
	Reset(ctx context.Context, learnerID int64) error
}

// Services groups the dependencies of the handler.
type Services struct {
	Learners LearnerService
	Practice PracticeService
	Progress ProgressService
	Settings SettingsService
	Reset    ResetService
}
