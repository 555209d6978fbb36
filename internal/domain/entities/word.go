// Package entities contains domain entities used across the application.
package entities

import "strings"

// WordSource tells where a vocabulary entry came from.
type WordSource string

const (
	SourceCurated WordSource = "curated" // hand-picked vocabulary list
	SourceStory   WordSource = "story"   // extracted from a story or lesson text
)

// Word is an immutable vocabulary entry supplied by the content store.
type Word struct {
	Term          string     `json:"term"`                    // source-language term
	Translation   string     `json:"translation"`             // translation shown as the answer
	Pronunciation string     `json:"pronunciation,omitempty"` // optional pronunciation guide
	Source        WordSource `json:"source,omitempty"`        // origin tag
}

// Key returns the natural key of the word: the trimmed, lower-cased term.
func (w Word) Key() string {
	return WordKey(w.Term)
}

// WordKey normalizes a term into a natural key.
func WordKey(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// SameTranslation reports whether two translations are equal ignoring case
// and surrounding whitespace.
func SameTranslation(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
