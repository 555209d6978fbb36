package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerValidator_Validate(t *testing.T) {
	v := NewAnswerValidator()

	tests := []struct {
		name    string
		answer  string
		correct string
		want    bool
	}{
		{"exact", "house", "house", true},
		{"case and spaces", "  House ", "house", true},
		{"inner spaces", "ice   cream", "ice cream", true},
		{"punctuation", "house!", "house", true},
		{"diacritics", "cafe", "café", true},
		{"small typo", "apartmnt", "apartment", true},
		{"different word", "car", "house", false},
		{"swapped letters short word", "hosue", "house", false},
		{"empty", "", "house", false},
		{"only spaces", "   ", "house", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.answer, tt.correct))
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"niño", "nino", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshteinDistance(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
	}
}
