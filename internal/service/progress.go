package service

import (
	"context"
	"time"
)

type ProgressService struct {
	store CardStateStore
}

func NewProgressService(store CardStateStore) *ProgressService {
	return &ProgressService{store: store}
}

type ProgressSummary struct {
	Total          int // words reviewed at least once
	Due            int
	Learning       int // reviewed but not yet mature
	Mature         int
	Struggling     int
	Accuracy       float64 // percent of correct answers
	LastReviewedAt *time.Time
}

// Summary aggregates the learner's cards as of now.
func (s *ProgressService) Summary(ctx context.Context, learnerID int64, now time.Time) (*ProgressSummary, error) {
	stats, err := s.store.Stats(ctx, learnerID, now)
	if err != nil {
		return nil, err
	}

	accuracy := 0.0
	if answered := stats.CorrectTotal + stats.IncorrectTotal; answered > 0 {
		accuracy = float64(stats.CorrectTotal) / float64(answered) * 100
	}

	return &ProgressSummary{
		Total:          stats.Total,
		Due:            stats.Due,
		Learning:       stats.Total - stats.Mature,
		Mature:         stats.Mature,
		Struggling:     stats.Struggling,
		Accuracy:       accuracy,
		LastReviewedAt: stats.LastReviewedAt,
	}, nil
}
