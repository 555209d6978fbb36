package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultReminderCron = "0 * * * *"
	reminderBatchSize   = 100
	// A learner is nudged at most once in this window.
	reminderCooldown = 20 * time.Hour
)

// ReminderConfig tunes the reminder job.
type ReminderConfig struct {
	Cron      string  // cron expression, defaults to hourly
	PerSecond float64 // max notifications per second
}

// ReminderService nudges learners that have cards due. It only counts due
// cards; scheduling is computed when a learner answers.
type ReminderService struct {
	repo     ReminderRepository
	notifier ReminderNotifier
	limiter  *rate.Limiter
	cfg      ReminderConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewReminderService creates a new reminder service.
func NewReminderService(repo ReminderRepository, cfg ReminderConfig, logger *zap.Logger) *ReminderService {
	if cfg.Cron == "" {
		cfg.Cron = DefaultReminderCron
	}
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = 20
	}

	return &ReminderService{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(cfg.PerSecond), 1),
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start runs the cron loop until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.cfg.Cron, func() {
		sent, err := s.SendDue(ctx)
		if err != nil {
			s.logger.Error("failed to send reminders", zap.Error(err))
			return
		}
		s.logger.Info("reminders processed", zap.Int("total_sent", sent))
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}

	c.Start()
	s.logger.Info("reminder service started", zap.String("cron", s.cfg.Cron))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("reminder service stopped")

	return nil
}

// SendDue notifies every eligible learner once and returns how many
// notifications went out.
func (s *ReminderService) SendDue(ctx context.Context) (int, error) {
	if s.notifier == nil {
		return 0, fmt.Errorf("notifier not initialized")
	}

	now := s.now().UTC()
	sent := 0

	for {
		candidates, err := s.repo.ListCandidates(ctx, now, now.Add(-reminderCooldown), reminderBatchSize)
		if err != nil {
			return sent, fmt.Errorf("list reminder candidates: %w", err)
		}
		if len(candidates) == 0 {
			return sent, nil
		}

		for _, c := range candidates {
			if err := s.limiter.Wait(ctx); err != nil {
				return sent, err
			}

			if err := s.notifier.SendReminder(c.ChatID, c.DueCount); err != nil {
				s.logger.Error("failed to send reminder",
					zap.Int64("learner_id", c.LearnerID),
					zap.Error(err),
				)
			} else {
				sent++
			}

			// Mark even on send failure so a blocked chat is not retried every tick.
			if err := s.repo.MarkReminded(ctx, c.LearnerID, now); err != nil {
				return sent, fmt.Errorf("mark reminded: %w", err)
			}
		}

		if len(candidates) < reminderBatchSize {
			return sent, nil
		}
	}
}
