package service

import (
	"context"

	"go.uber.org/zap"
)

// LearnerResetter wipes a learner's review history and restores default settings.
type LearnerResetter interface {
	ResetLearner(ctx context.Context, learnerID int64) error
}

type ResetService struct {
	resetter LearnerResetter
	sessions SessionStorage
	logger   *zap.Logger
}

func NewResetService(resetter LearnerResetter, sessions SessionStorage, logger *zap.Logger) *ResetService {
	return &ResetService{
		resetter: resetter,
		sessions: sessions,
		logger:   logger,
	}
}

// Reset forgets every card of the learner and drops the active session.
func (s *ResetService) Reset(ctx context.Context, learnerID int64) error {
	if err := s.resetter.ResetLearner(ctx, learnerID); err != nil {
		return err
	}

	if session, ok := s.sessions.GetByLearner(learnerID); ok {
		s.sessions.Delete(session.ID)
	}

	s.logger.Info("learner progress reset", zap.Int64("learner_id", learnerID))
	return nil
}
