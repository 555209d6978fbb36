package entities

import "time"

const (
	DefaultSessionSize = 20
	MinSessionSize     = 5
	MaxSessionSize     = 50
)

// LearnerSettings stores per-learner practice preferences.
type LearnerSettings struct {
	LearnerID       int64
	SessionSize     int        // number of items in a practice session
	Mode            ReviewMode // default presentation mode
	ReminderEnabled bool       // daily nudge when cards are due
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewLearnerSettings creates settings with default values.
func NewLearnerSettings(learnerID int64) *LearnerSettings {
	now := time.Now()
	return &LearnerSettings{
		LearnerID:       learnerID,
		SessionSize:     DefaultSessionSize,
		Mode:            ModeChoice,
		ReminderEnabled: true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ValidSessionSize reports whether n is an allowed session size.
func ValidSessionSize(n int) bool {
	return n >= MinSessionSize && n <= MaxSessionSize
}
