package entities

import "time"

// Learner represents a bot user practicing vocabulary.
type Learner struct {
	ID           int64 // Telegram user ID
	ChatID       int64
	FirstName    string
	Username     string
	LanguageCode string
	CreatedAt    time.Time
}

// NewLearner creates a learner record for a Telegram user.
func NewLearner(id, chatID int64) *Learner {
	return &Learner{
		ID:        id,
		ChatID:    chatID,
		CreatedAt: time.Now(),
	}
}

// ReminderCandidate is a learner with reminders enabled and cards waiting.
type ReminderCandidate struct {
	LearnerID      int64
	ChatID         int64
	DueCount       int
	LastRemindedAt *time.Time
}
