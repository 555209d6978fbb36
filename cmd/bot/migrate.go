package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/config"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
	"github.com/aliskhannn/lexiquest/internal/infra/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema to the configured store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		ctx := cmd.Context()

		if cfg.Storage.Driver == config.DriverSQLite {
			// Open applies the schema.
			store, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
			if err != nil {
				return fmt.Errorf("open sqlite: %w", err)
			}
			log.Info("sqlite schema applied", zap.String("path", cfg.Storage.SQLitePath))
			return store.Close()
		}

		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}

		log.Info("postgres schema applied")
		return nil
	},
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pool, nil
}
