package storage

import (
	"sync"
	"time"
)

// ReminderMessage points at the last reminder posted to a chat.
type ReminderMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// ReminderMessages remembers the last reminder per chat so the previous one
// can be removed when a new one is posted.
type ReminderMessages struct {
	mu       sync.Mutex
	messages map[int64]ReminderMessage
}

func NewReminderMessages() *ReminderMessages {
	return &ReminderMessages{
		messages: make(map[int64]ReminderMessage),
	}
}

// Swap records messageID as the latest reminder for chatID and returns the
// one it replaces.
func (s *ReminderMessages) Swap(chatID int64, messageID int, now time.Time) (prev ReminderMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]
	s.messages[chatID] = ReminderMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    now,
	}
	return prev, hadPrev
}

// Forget drops the record for chatID, e.g. once the learner starts practicing.
func (s *ReminderMessages) Forget(chatID int64) (ReminderMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[chatID]
	delete(s.messages, chatID)
	return msg, ok
}
