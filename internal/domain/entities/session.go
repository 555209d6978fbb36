package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// Session is an ordered set of review items for one practice run.
// It lives in memory only; the durable effects are the card states.
type Session struct {
	ID          uuid.UUID
	LearnerID   int64
	Items       []ReviewItem
	TargetSize  int
	Current     int // index of the next unanswered item
	Correct     int
	Incorrect   int
	Seed        string // non-empty for deterministic sessions
	Status      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// NewSession creates an active session over items.
func NewSession(learnerID int64, items []ReviewItem, targetSize int, now time.Time) *Session {
	return &Session{
		ID:         uuid.New(),
		LearnerID:  learnerID,
		Items:      items,
		TargetSize: targetSize,
		Status:     SessionActive,
		StartedAt:  now,
	}
}

// Next returns the next unanswered item.
func (s *Session) Next() (ReviewItem, bool) {
	if s.Current >= len(s.Items) {
		return ReviewItem{}, false
	}
	return s.Items[s.Current], true
}

// Record counts an answer for the current item and advances the session.
func (s *Session) Record(correct bool, now time.Time) {
	if s.Done() {
		return
	}

	if correct {
		s.Correct++
	} else {
		s.Incorrect++
	}
	s.Current++

	if s.Current >= len(s.Items) {
		s.Status = SessionCompleted
		s.CompletedAt = &now
	}
}

// Done reports whether every item has been answered.
func (s *Session) Done() bool {
	return s.Current >= len(s.Items)
}

// Score returns the share of correct answers in percent.
func (s *Session) Score() float64 {
	answered := s.Correct + s.Incorrect
	if answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(answered) * 100
}
