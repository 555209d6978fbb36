package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/infra/postgres"
)

// VocabularyRepository serves the curated word list.
type VocabularyRepository struct {
	db postgres.DBTX
}

func NewVocabularyRepository(db postgres.DBTX) *VocabularyRepository {
	return &VocabularyRepository{db: db}
}

// Name implements service.ContentProvider.
func (r *VocabularyRepository) Name() string {
	return "vocabulary"
}

// Words returns every curated word ordered by key.
func (r *VocabularyRepository) Words(ctx context.Context) ([]entities.Word, error) {
	query := `
		SELECT term, translation, pronunciation
		FROM vocabulary
		ORDER BY term_key
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary: %w", err)
	}

	return collectWords(rows, entities.SourceCurated)
}

// Import upserts words in a single transaction and returns how many were written.
func (r *VocabularyRepository) Import(ctx context.Context, tr *postgres.Transactor, words []entities.Word) (int, error) {
	query := `
		INSERT INTO vocabulary (term_key, term, translation, pronunciation)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (term_key) DO UPDATE SET
			term = EXCLUDED.term,
			translation = EXCLUDED.translation,
			pronunciation = EXCLUDED.pronunciation
	`

	err := tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, w := range words {
			batch.Queue(query, w.Key(), w.Term, w.Translation, w.Pronunciation)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, fmt.Errorf("import vocabulary: %w", err)
	}

	return len(words), nil
}

// StoryWordRepository serves words extracted from stories.
type StoryWordRepository struct {
	db postgres.DBTX
}

func NewStoryWordRepository(db postgres.DBTX) *StoryWordRepository {
	return &StoryWordRepository{db: db}
}

// Name implements service.ContentProvider.
func (r *StoryWordRepository) Name() string {
	return "story_words"
}

// Words returns one entry per term across all stories.
func (r *StoryWordRepository) Words(ctx context.Context) ([]entities.Word, error) {
	query := `
		SELECT DISTINCT ON (LOWER(TRIM(term))) term, translation, pronunciation
		FROM story_words
		ORDER BY LOWER(TRIM(term)), id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list story words: %w", err)
	}

	return collectWords(rows, entities.SourceStory)
}

func collectWords(rows pgx.Rows, source entities.WordSource) ([]entities.Word, error) {
	defer rows.Close()

	var words []entities.Word
	for rows.Next() {
		w := entities.Word{Source: source}
		if err := rows.Scan(&w.Term, &w.Translation, &w.Pronunciation); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, w)
	}

	return words, rows.Err()
}
