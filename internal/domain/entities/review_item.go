package entities

// ReviewMode is how a review item is presented.
type ReviewMode string

const (
	ModeChoice    ReviewMode = "choice"    // pick the translation from options
	ModeListening ReviewMode = "listening" // hear the term, pick the translation
	ModeWriting   ReviewMode = "writing"   // type the translation
)

// ParseReviewMode returns the mode for s, falling back to ModeChoice.
func ParseReviewMode(s string) ReviewMode {
	switch ReviewMode(s) {
	case ModeListening, ModeWriting:
		return ReviewMode(s)
	default:
		return ModeChoice
	}
}

// ItemOrigin records which input list an item was drawn from.
type ItemOrigin string

const (
	OriginDue      ItemOrigin = "due"
	OriginPriority ItemOrigin = "priority"
	OriginPool     ItemOrigin = "pool"
)

// ReviewItem is a session-scoped value pairing a word with presentation data.
type ReviewItem struct {
	Word         Word
	Mode         ReviewMode
	Options      []string // multiple choice options, empty in writing mode
	CorrectIndex int      // index of the correct translation in Options
	Origin       ItemOrigin
}

// HasOptions reports whether the item is answered by picking an option.
func (i ReviewItem) HasOptions() bool {
	return len(i.Options) > 0
}
