package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// ContentChain consults content providers in priority order and returns the
// words of the first provider that has any.
type ContentChain struct {
	providers []ContentProvider
	logger    *zap.Logger
}

// NewContentChain creates a chain over providers, highest priority first.
func NewContentChain(logger *zap.Logger, providers ...ContentProvider) *ContentChain {
	return &ContentChain{
		providers: providers,
		logger:    logger,
	}
}

// Name implements ContentProvider.
func (c *ContentChain) Name() string {
	return "chain"
}

// Words returns the vocabulary of the first non-empty provider. A provider
// that fails is logged and skipped; when every provider is empty the result
// is empty, not an error.
func (c *ContentChain) Words(ctx context.Context) ([]entities.Word, error) {
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		words, err := p.Words(ctx)
		if err != nil {
			c.logger.Warn("content provider failed",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}
		if len(words) == 0 {
			c.logger.Debug("content provider empty", zap.String("provider", p.Name()))
			continue
		}

		return words, nil
	}

	return nil, nil
}

// indexByKey maps words by natural key. The first occurrence wins.
func indexByKey(words []entities.Word) map[string]entities.Word {
	idx := make(map[string]entities.Word, len(words))
	for _, w := range words {
		key := w.Key()
		if _, ok := idx[key]; ok {
			continue
		}
		idx[key] = w
	}
	return idx
}

// resolveWords turns card states into words, keeping order. States whose
// word is no longer in the content are skipped.
func resolveWords(states []entities.CardState, idx map[string]entities.Word) []entities.Word {
	out := make([]entities.Word, 0, len(states))
	for _, s := range states {
		w, ok := idx[s.WordKey]
		if !ok {
			continue
		}
		out = append(out, w)
	}
	return out
}
