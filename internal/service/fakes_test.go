package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
	"github.com/aliskhannn/lexiquest/internal/repository"
)

type cardKey struct {
	learnerID int64
	wordKey   string
}

// memStore is an in-memory CardStateStore with injectable failures.
type memStore struct {
	mu        sync.Mutex
	states    map[cardKey]entities.CardState
	getErr    error
	upsertErr error
	listErr   error
	upserts   int
}

func newMemStore() *memStore {
	return &memStore{states: make(map[cardKey]entities.CardState)}
}

func (m *memStore) put(s entities.CardState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[cardKey{s.LearnerID, s.WordKey}] = s
}

func (m *memStore) Get(_ context.Context, learnerID int64, wordKey string) (*entities.CardState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	s, ok := m.states[cardKey{learnerID, wordKey}]
	if !ok {
		return nil, repository.ErrCardStateNotFound
	}
	return &s, nil
}

func (m *memStore) Upsert(_ context.Context, state *entities.CardState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts++
	m.states[cardKey{state.LearnerID, state.WordKey}] = *state
	return nil
}

func (m *memStore) list(learnerID int64, keep func(entities.CardState) bool) []entities.CardState {
	var out []entities.CardState
	for k, s := range m.states {
		if k.learnerID == learnerID && keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NextReviewAt.Before(out[j].NextReviewAt) })
	return out
}

func (m *memStore) ListDue(_ context.Context, learnerID int64, asOf time.Time, limit int) ([]entities.CardState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := m.list(learnerID, func(s entities.CardState) bool { return s.IsDue(asOf) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) ListStruggling(_ context.Context, learnerID int64, limit int) ([]entities.CardState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := m.list(learnerID, func(s entities.CardState) bool { return s.Struggling() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) Stats(_ context.Context, learnerID int64, asOf time.Time) (*entities.CardStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var st entities.CardStats
	for _, s := range m.list(learnerID, func(entities.CardState) bool { return true }) {
		st.Total++
		if s.IsDue(asOf) {
			st.Due++
		}
		if s.Mature() {
			st.Mature++
		}
		if s.Struggling() {
			st.Struggling++
		}
		st.CorrectTotal += s.CorrectCount
		st.IncorrectTotal += s.IncorrectCount
	}
	return &st, nil
}

type fakeSettings struct {
	settings *entities.LearnerSettings
	err      error
}

func (f *fakeSettings) GetOrCreate(_ context.Context, learnerID int64) (*entities.LearnerSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return entities.NewLearnerSettings(learnerID), nil
	}
	return f.settings, nil
}

type fakeSessions struct {
	byID map[uuid.UUID]*entities.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byID: make(map[uuid.UUID]*entities.Session)}
}

func (f *fakeSessions) Store(s *entities.Session) { f.byID[s.ID] = s }

func (f *fakeSessions) Get(id uuid.UUID) (*entities.Session, bool) {
	s, ok := f.byID[id]
	return s, ok
}

func (f *fakeSessions) GetByLearner(learnerID int64) (*entities.Session, bool) {
	for _, s := range f.byID {
		if s.LearnerID == learnerID {
			return s, true
		}
	}
	return nil, false
}

func (f *fakeSessions) Delete(id uuid.UUID) { delete(f.byID, id) }

type fakeProvider struct {
	name  string
	words []entities.Word
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Words(context.Context) ([]entities.Word, error) {
	f.calls++
	return f.words, f.err
}

// makeWords returns n distinct words with unique translations.
func makeWords(prefix string, n int) []entities.Word {
	words := make([]entities.Word, n)
	for i := range words {
		words[i] = entities.Word{
			Term:        fmt.Sprintf("%s-%d", prefix, i),
			Translation: fmt.Sprintf("%s-tr-%d", prefix, i),
			Source:      entities.SourceCurated,
		}
	}
	return words
}

// fixedSource always returns v.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }
