package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

var ErrNoWords = errors.New("word list is empty")

// WordFileRepository serves the bundled vocabulary from a JSON file.
// The file is read once at startup and kept in memory.
type WordFileRepository struct {
	words []entities.Word
}

// NewWordFileRepository loads words from path.
func NewWordFileRepository(path string) (*WordFileRepository, error) {
	words, err := LoadWords(path)
	if err != nil {
		return nil, err
	}

	return &WordFileRepository{words: words}, nil
}

// Name implements service.ContentProvider.
func (r *WordFileRepository) Name() string {
	return "file"
}

// Words returns a copy of the loaded vocabulary.
func (r *WordFileRepository) Words(ctx context.Context) ([]entities.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]entities.Word, len(r.words))
	copy(out, r.words)
	return out, nil
}

// LoadWords reads a word list of the form {"words": [...]}. Entries without
// a term or translation are dropped, and later duplicates of a term are
// ignored.
func LoadWords(path string) ([]entities.Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Words []entities.Word `json:"words"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal words JSON: %w", err)
	}

	seen := make(map[string]struct{}, len(wrapper.Words))
	words := make([]entities.Word, 0, len(wrapper.Words))
	for _, w := range wrapper.Words {
		w.Term = strings.TrimSpace(w.Term)
		w.Translation = strings.TrimSpace(w.Translation)
		if w.Term == "" || w.Translation == "" {
			continue
		}
		if _, ok := seen[w.Key()]; ok {
			continue
		}
		seen[w.Key()] = struct{}{}

		if w.Source == "" {
			w.Source = entities.SourceCurated
		}
		words = append(words, w)
	}

	if len(words) == 0 {
		return nil, ErrNoWords
	}

	return words, nil
}
