package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/config"
)

// New returns a JSON logger in production and a console logger everywhere
// else. cfg.LogLevel, when set, overrides the default level.
func New(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = level
	}

	log, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return log.With(zap.String("env", cfg.Env)), nil
}
