package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/config"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/lexiquest/internal/infra/postgres/repository"
	"github.com/aliskhannn/lexiquest/internal/infra/sqlite"
	"github.com/aliskhannn/lexiquest/internal/service"
)

// backend bundles the stores of the configured storage driver.
type backend struct {
	cards     service.CardStateStore
	learners  service.LearnerRepository
	settings  service.SettingsRepository
	reminders service.ReminderRepository
	resetter  service.LearnerResetter
	content   []service.ContentProvider // database vocabulary, consulted before the bundled file
	close     func()
}

func openBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (*backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}

		log.Info("using sqlite storage", zap.String("path", cfg.Storage.SQLitePath))

		return &backend{
			cards:     store.CardStates(),
			learners:  store.Learners(),
			settings:  store.Settings(),
			reminders: store.Reminders(),
			resetter:  store,
			close: func() {
				if err := store.Close(); err != nil {
					log.Warn("failed to close sqlite", zap.Error(err))
				}
			},
		}, nil

	default:
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return nil, err
		}

		log.Info("using postgres storage",
			zap.Int("max_connections", cfg.DB.MaxConnections),
		)

		return &backend{
			cards:     pgrepo.NewCardStateRepository(pool),
			learners:  pgrepo.NewLearnerRepository(pool),
			settings:  pgrepo.NewSettingsRepository(pool),
			reminders: pgrepo.NewReminderRepository(pool),
			resetter:  pgrepo.NewResetRepository(postgres.NewTransactor(pool)),
			content: []service.ContentProvider{
				pgrepo.NewVocabularyRepository(pool),
				pgrepo.NewStoryWordRepository(pool),
			},
			close: pool.Close,
		}, nil
	}
}
