package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

var now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func newSession(learnerID int64, startedAt time.Time) *entities.Session {
	items := []entities.ReviewItem{{Word: entities.Word{Term: "uno", Translation: "one"}}}
	return entities.NewSession(learnerID, items, 1, startedAt)
}

func TestSessionStorage_StoreGetDelete(t *testing.T) {
	s := NewSessionStorage()
	session := newSession(1, now)

	s.Store(session)

	got, ok := s.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)

	got, ok = s.GetByLearner(1)
	require.True(t, ok)
	assert.Same(t, session, got)

	s.Delete(session.ID)
	_, ok = s.Get(session.ID)
	assert.False(t, ok)
	_, ok = s.GetByLearner(1)
	assert.False(t, ok)
}

func TestSessionStorage_NewSessionReplacesOld(t *testing.T) {
	s := NewSessionStorage()
	first := newSession(1, now)
	second := newSession(1, now.Add(time.Minute))
	other := newSession(2, now)

	s.Store(first)
	s.Store(other)
	s.Store(second)

	_, ok := s.Get(first.ID)
	assert.False(t, ok)

	got, ok := s.GetByLearner(1)
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, 2, s.Len())
}

func TestSessionStorage_Prune(t *testing.T) {
	s := NewSessionStorage()
	old := newSession(1, now.Add(-2*time.Hour))
	fresh := newSession(2, now)
	s.Store(old)
	s.Store(fresh)

	removed := s.Prune(now.Add(-time.Hour))

	assert.Equal(t, 1, removed)
	_, ok := s.GetByLearner(1)
	assert.False(t, ok)
	_, ok = s.Get(fresh.ID)
	assert.True(t, ok)
}

func TestSessionStorage_Concurrent(t *testing.T) {
	s := NewSessionStorage()
	var wg sync.WaitGroup

	for i := int64(0); i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			session := newSession(id, now)
			s.Store(session)
			_, _ = s.Get(session.ID)
			_, _ = s.GetByLearner(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}

func TestReminderMessages_Swap(t *testing.T) {
	m := NewReminderMessages()

	_, had := m.Swap(10, 1, now)
	assert.False(t, had)

	prev, had := m.Swap(10, 2, now.Add(time.Hour))
	require.True(t, had)
	assert.Equal(t, 1, prev.MessageID)

	msg, ok := m.Forget(10)
	require.True(t, ok)
	assert.Equal(t, 2, msg.MessageID)

	_, ok = m.Forget(10)
	assert.False(t, ok)
}
