package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrItemMismatch    = errors.New("item is not the current one")
	ErrInvalidOption   = errors.New("invalid option index")
)

const (
	DefaultDistractorCount = 3
	DefaultDailySize       = 10
)

// SettingsProvider returns learner settings, creating defaults when missing.
type SettingsProvider interface {
	GetOrCreate(ctx context.Context, learnerID int64) (*entities.LearnerSettings, error)
}

// PracticeConfig tunes session building.
type PracticeConfig struct {
	DistractorCount int            // wrong options per choice item
	SessionSize     int            // used when the learner has no usable setting
	DailySize       int            // items in the challenge of the day
	Location        *time.Location // calendar used for the daily seed
}

// AnswerResult describes the effect of one answer.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	State         entities.CardState
	Saved         bool // false when the card state could not be persisted
	Done          bool
	Session       *entities.Session
}

// PracticeService builds practice sessions and routes answers through the
// outcome recorder.
type PracticeService struct {
	store    CardStateStore
	content  ContentProvider
	settings SettingsProvider
	sessions SessionStorage
	recorder *OutcomeRecorder
	rnd      RandomSource
	cfg      PracticeConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewPracticeService creates a new PracticeService.
func NewPracticeService(
	store CardStateStore,
	content ContentProvider,
	settings SettingsProvider,
	sessions SessionStorage,
	recorder *OutcomeRecorder,
	rnd RandomSource,
	cfg PracticeConfig,
	logger *zap.Logger,
) *PracticeService {
	if cfg.DistractorCount <= 0 {
		cfg.DistractorCount = DefaultDistractorCount
	}
	if cfg.DailySize <= 0 {
		cfg.DailySize = DefaultDailySize
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = entities.DefaultSessionSize
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if rnd == nil {
		rnd = NewRandomSource()
	}

	return &PracticeService{
		store:    store,
		content:  content,
		settings: settings,
		sessions: sessions,
		recorder: recorder,
		rnd:      rnd,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// StartSession composes a practice session for the learner. A session with
// no items means there is nothing to review; it is returned but not stored.
func (s *PracticeService) StartSession(ctx context.Context, learnerID int64, mode entities.ReviewMode) (*entities.Session, error) {
	settings, err := s.settings.GetOrCreate(ctx, learnerID)
	if err != nil {
		s.logger.Warn("failed to load settings, using defaults",
			zap.Int64("learner_id", learnerID),
			zap.Error(err),
		)
		settings = entities.NewLearnerSettings(learnerID)
	}

	size := settings.SessionSize
	if err != nil || size <= 0 {
		size = s.cfg.SessionSize
	}
	if mode == "" {
		mode = settings.Mode
	}

	now := s.now()

	words, err := s.content.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	idx := indexByKey(words)

	// Read failures degrade to "nothing due" so the learner can still practice.
	due, err := s.store.ListDue(ctx, learnerID, now, size)
	if err != nil {
		s.logger.Warn("failed to list due cards", zap.Int64("learner_id", learnerID), zap.Error(err))
		due = nil
	}

	struggling, err := s.store.ListStruggling(ctx, learnerID, size)
	if err != nil {
		s.logger.Warn("failed to list struggling cards", zap.Int64("learner_id", learnerID), zap.Error(err))
		struggling = nil
	}

	items := ComposeSession(resolveWords(due, idx), words, resolveWords(struggling, idx), size, s.rnd)
	items = s.present(items, words, mode, s.rnd)

	session := entities.NewSession(learnerID, items, size, now)
	if len(items) > 0 {
		s.sessions.Store(session)
	}

	s.logger.Info("practice session started",
		zap.Int64("learner_id", learnerID),
		zap.String("session_id", session.ID.String()),
		zap.String("mode", string(mode)),
		zap.Int("due", len(due)),
		zap.Int("items", len(items)),
	)

	return session, nil
}

// StartDailyChallenge builds the challenge of the day. Every learner gets the
// same items in the same order on a given calendar date.
func (s *PracticeService) StartDailyChallenge(ctx context.Context, learnerID int64, now time.Time) (*entities.Session, error) {
	seed := DailySeed(now, s.cfg.Location)
	rnd := NewSeededSource(seed)

	words, err := s.content.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	// Content order may differ between reads; sort for a stable input.
	words = append([]entities.Word(nil), words...)
	sort.SliceStable(words, func(i, j int) bool { return words[i].Key() < words[j].Key() })

	items := ComposeSession(nil, words, nil, s.cfg.DailySize, rnd)
	items = s.present(items, words, entities.ModeChoice, rnd)

	session := entities.NewSession(learnerID, items, s.cfg.DailySize, now)
	session.Seed = seed
	if len(items) > 0 {
		s.sessions.Store(session)
	}

	s.logger.Info("daily challenge started",
		zap.Int64("learner_id", learnerID),
		zap.String("seed", seed),
		zap.Int("items", len(items)),
	)

	return session, nil
}

// ActiveSession returns the learner's unfinished session, if any.
func (s *PracticeService) ActiveSession(learnerID int64) (*entities.Session, bool) {
	return s.sessions.GetByLearner(learnerID)
}

// AnswerOption answers the item at itemIndex with the option at optionIndex.
func (s *PracticeService) AnswerOption(
	ctx context.Context,
	learnerID int64,
	sessionID uuid.UUID,
	itemIndex, optionIndex int,
) (*AnswerResult, error) {
	session, err := s.lookup(learnerID, sessionID, itemIndex)
	if err != nil {
		return nil, err
	}

	item := session.Items[itemIndex]
	if optionIndex < 0 || optionIndex >= len(item.Options) {
		return nil, ErrInvalidOption
	}

	return s.answer(ctx, session, item.Options[optionIndex])
}

// Answer answers the current item of the session with free text.
func (s *PracticeService) Answer(
	ctx context.Context,
	learnerID int64,
	sessionID uuid.UUID,
	itemIndex int,
	answer string,
) (*AnswerResult, error) {
	session, err := s.lookup(learnerID, sessionID, itemIndex)
	if err != nil {
		return nil, err
	}

	return s.answer(ctx, session, answer)
}

func (s *PracticeService) lookup(learnerID int64, sessionID uuid.UUID, itemIndex int) (*entities.Session, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok || session.LearnerID != learnerID {
		return nil, ErrSessionNotFound
	}
	if session.Done() || itemIndex != session.Current {
		return nil, ErrItemMismatch
	}
	return session, nil
}

func (s *PracticeService) answer(ctx context.Context, session *entities.Session, answer string) (*AnswerResult, error) {
	item, _ := session.Next()
	now := s.now()

	correct := s.recorder.Classify(item, answer)

	lc := LearnerContext{LearnerID: session.LearnerID, Store: s.store}
	state, err := s.recorder.RecordOutcome(ctx, lc, item.Word, correct, now)
	saved := true
	if err != nil {
		if !errors.Is(err, ErrPersistOutcome) {
			return nil, err
		}
		// The session carries on; the next review will catch up.
		saved = false
	}

	session.Record(correct, now)
	if session.Done() {
		s.sessions.Delete(session.ID)
	}

	return &AnswerResult{
		Correct:       correct,
		CorrectAnswer: item.Word.Translation,
		State:         state,
		Saved:         saved,
		Done:          session.Done(),
		Session:       session,
	}, nil
}

// present fills mode and options for every item.
func (s *PracticeService) present(
	items []entities.ReviewItem,
	vocabulary []entities.Word,
	mode entities.ReviewMode,
	rnd RandomSource,
) []entities.ReviewItem {
	for i := range items {
		items[i].Mode = mode
		if mode == entities.ModeWriting {
			continue
		}

		distractors := Distractors(items[i].Word, vocabulary, s.cfg.DistractorCount, rnd)
		items[i].Options, items[i].CorrectIndex = BuildOptions(items[i].Word.Translation, distractors, rnd)
	}
	return items
}
