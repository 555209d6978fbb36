package entities

import "time"

// Outcome is the result of a single review.
type Outcome string

const (
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// OutcomeFromBool converts a correctness flag into an Outcome.
func OutcomeFromBool(correct bool) Outcome {
	if correct {
		return OutcomeCorrect
	}
	return OutcomeIncorrect
}

// Scheduling defaults and bounds.
const (
	DefaultEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	MaxEaseFactor       = 3.0
	DefaultIntervalDays = 1
	MatureIntervalDays  = 21 // interval at which a card counts as mature
)

// CardState is the scheduling record for one (learner, word) pair.
type CardState struct {
	LearnerID int64
	WordKey   string

	// SRS fields.
	EaseFactor   float64   // growth multiplier, never below MinEaseFactor
	IntervalDays int       // days until the next review, at least 1
	Repetitions  int       // consecutive correct answers
	NextReviewAt time.Time // when the card becomes due

	// History used for prioritization, not for the scheduling math.
	LastOutcome    Outcome
	CorrectCount   int
	IncorrectCount int
	LastReviewedAt *time.Time
}

// NewCardState creates a card with default scheduling values for a word
// that the learner has never reviewed.
func NewCardState(learnerID int64, wordKey string, now time.Time) *CardState {
	return &CardState{
		LearnerID:    learnerID,
		WordKey:      wordKey,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: DefaultIntervalDays,
		Repetitions:  0,
		NextReviewAt: now,
	}
}

// IsDue reports whether the card should be reviewed at now.
func (c *CardState) IsDue(now time.Time) bool {
	return !now.Before(c.NextReviewAt)
}

// Struggling reports whether the learner has answered this card wrong more
// often than right.
func (c *CardState) Struggling() bool {
	return c.IncorrectCount > c.CorrectCount
}

// Mature reports whether the card has reached a long review interval.
func (c *CardState) Mature() bool {
	return c.IntervalDays >= MatureIntervalDays
}

// CardStats aggregates a learner's cards for the progress screen.
type CardStats struct {
	Total          int        // cards with any review history
	Due            int        // cards due at the moment of the query
	Mature         int        // cards with interval >= MatureIntervalDays
	Struggling     int        // cards answered wrong more often than right
	CorrectTotal   int        // sum of correct answers
	IncorrectTotal int        // sum of incorrect answers
	LastReviewedAt *time.Time // most recent review, nil if none
}
