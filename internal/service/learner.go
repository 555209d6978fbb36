package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

type LearnerService struct {
	repository LearnerRepository
	settings   *SettingsService
	logger     *zap.Logger
}

func NewLearnerService(repository LearnerRepository, settings *SettingsService, logger *zap.Logger) *LearnerService {
	return &LearnerService{
		repository: repository,
		settings:   settings,
		logger:     logger,
	}
}

// EnsureLearner registers the learner on first contact and creates default
// settings. It reports whether the learner is new.
func (s *LearnerService) EnsureLearner(ctx context.Context, learner *entities.Learner) (bool, error) {
	created, err := s.repository.Save(ctx, learner)
	if err != nil {
		return false, err
	}

	if _, err := s.settings.GetOrCreate(ctx, learner.ID); err != nil {
		return created, err
	}

	if created {
		s.logger.Info("learner registered",
			zap.Int64("learner_id", learner.ID),
			zap.String("language_code", learner.LanguageCode),
		)
	}

	return created, nil
}
