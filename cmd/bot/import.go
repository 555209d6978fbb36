package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/config"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/lexiquest/internal/infra/postgres/repository"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

var errImportNeedsPostgres = errors.New("import requires the postgres storage driver")

var importCmd = &cobra.Command{
	Use:   "import <words.json>",
	Short: "Load a vocabulary file into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if cfg.Storage.Driver != config.DriverPostgres {
			return errImportNeedsPostgres
		}

		words, err := repository.LoadWords(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		vocabulary := pgrepo.NewVocabularyRepository(pool)
		n, err := vocabulary.Import(ctx, postgres.NewTransactor(pool), words)
		if err != nil {
			return err
		}

		log.Info("vocabulary imported",
			zap.String("file", args[0]),
			zap.Int("words", n),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d words\n", n)

		return nil
	},
}
