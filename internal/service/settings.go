package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

var ErrInvalidSessionSize = errors.New("invalid session size")

type SettingsService struct {
	repository SettingsRepository
}

func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, learnerID int64) (*entities.LearnerSettings, error) {
	settings, err := s.repository.GetByLearnerID(ctx, learnerID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			if err := s.repository.Create(ctx, learnerID); err != nil {
				return nil, err
			}
			return s.repository.GetByLearnerID(ctx, learnerID)
		}
		return nil, err
	}

	return settings, nil
}

// UpdateSessionSize stores a new session size within the allowed range.
func (s *SettingsService) UpdateSessionSize(ctx context.Context, learnerID int64, size int) error {
	if !entities.ValidSessionSize(size) {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidSessionSize, size, entities.MinSessionSize, entities.MaxSessionSize)
	}
	return s.repository.UpdateSessionSize(ctx, learnerID, size)
}

func (s *SettingsService) UpdateMode(ctx context.Context, learnerID int64, mode entities.ReviewMode) error {
	return s.repository.UpdateMode(ctx, learnerID, entities.ParseReviewMode(string(mode)))
}

// ToggleReminder flips the reminder flag and returns the new value.
func (s *SettingsService) ToggleReminder(ctx context.Context, learnerID int64) (bool, error) {
	settings, err := s.GetOrCreate(ctx, learnerID)
	if err != nil {
		return false, err
	}

	enabled := !settings.ReminderEnabled
	if err := s.repository.UpdateReminder(ctx, learnerID, enabled); err != nil {
		return false, err
	}

	return enabled, nil
}
