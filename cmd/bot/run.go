package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/lexiquest/internal/config"
	"github.com/aliskhannn/lexiquest/internal/delivery/telegram"
	"github.com/aliskhannn/lexiquest/internal/repository"
	"github.com/aliskhannn/lexiquest/internal/service"
	"github.com/aliskhannn/lexiquest/internal/storage"
)

const sessionPruneInterval = 10 * time.Minute

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Telegram bot (default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd)
	},
}

func runBot(cmd *cobra.Command) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := serve(cmd.Context(), cfg, log); err != nil {
		log.Error("bot stopped with error", zap.Error(err))
		return err
	}
	return nil
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	token, err := cfg.Token()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	bot.Debug = cfg.Env == "local"
	log.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		log.Warn("failed to set bot commands", zap.Error(err))
	}

	be, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer be.close()

	file, err := repository.NewWordFileRepository(cfg.WordsJSONPath)
	if err != nil {
		return fmt.Errorf("load vocabulary file: %w", err)
	}
	content := service.NewContentChain(log, append(be.content, file)...)

	sessions := storage.NewSessionStorage()

	settingsService := service.NewSettingsService(be.settings)
	learnerService := service.NewLearnerService(be.learners, settingsService, log)
	progressService := service.NewProgressService(be.cards)
	resetService := service.NewResetService(be.resetter, sessions, log)
	practiceService := service.NewPracticeService(
		be.cards,
		content,
		settingsService,
		sessions,
		service.NewOutcomeRecorder(service.NewAnswerValidator(), log),
		service.NewRandomSource(),
		service.PracticeConfig{
			DistractorCount: cfg.Practice.DistractorCount,
			SessionSize:     cfg.Practice.SessionSize,
			DailySize:       cfg.Practice.DailySize,
			Location:        loc,
		},
		log,
	)

	handler := telegram.NewHandler(bot, log, telegram.Services{
		Learners: learnerService,
		Practice: practiceService,
		Progress: progressService,
		Settings: settingsService,
		Reset:    resetService,
	}, storage.NewReminderMessages(), loc)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := handler.Run(ctx)
		bot.StopReceivingUpdates()
		return ignoreCanceled(err)
	})

	if cfg.Reminders.Enabled {
		reminders := service.NewReminderService(be.reminders, service.ReminderConfig{
			Cron:      cfg.Reminders.Cron,
			PerSecond: cfg.Reminders.PerSecond,
		}, log)
		reminders.SetNotifier(handler)

		g.Go(func() error {
			return reminders.Start(ctx)
		})
	}

	g.Go(func() error {
		pruneSessions(ctx, sessions, cfg.Practice.SessionTTL, log)
		return nil
	})

	return g.Wait()
}

// pruneSessions drops abandoned sessions until ctx is done.
func pruneSessions(ctx context.Context, sessions *storage.SessionStorage, ttl time.Duration, log *zap.Logger) {
	if ttl <= 0 {
		return
	}

	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := sessions.Prune(now.Add(-ttl)); n > 0 {
				log.Debug("pruned idle sessions", zap.Int("removed", n), zap.Int("active", sessions.Len()))
			}
		}
	}
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
