package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

func TestDistractors_FewerCandidatesThanCount(t *testing.T) {
	correct := entities.Word{Term: "perro", Translation: "dog"}
	candidates := []entities.Word{
		correct,
		{Term: "gato", Translation: "cat"},
		{Term: "pez", Translation: "fish"},
	}

	got := Distractors(correct, candidates, 3, NewRandomSource())

	assert.ElementsMatch(t, []string{"cat", "fish"}, got)
}

func TestDistractors_AlwaysThreeUnique(t *testing.T) {
	words := makeWords("w", 10)
	correct := words[0]

	for i := 0; i < 100; i++ {
		got := Distractors(correct, words, 3, NewSeededSource(fmt.Sprint(i)))

		require.Len(t, got, 3)
		assert.Len(t, uniqueStrings(got), 3)
		for _, d := range got {
			assert.False(t, strings.EqualFold(d, correct.Translation))
		}
	}
}

func TestDistractors_ExcludesEqualTranslations(t *testing.T) {
	correct := entities.Word{Term: "casa", Translation: "house"}
	candidates := []entities.Word{
		{Term: "hogar", Translation: " HOUSE "},
		{Term: "vivienda", Translation: "House"},
		{Term: "coche", Translation: "car"},
		{Term: "auto", Translation: "Car"},
		{Term: "Casa", Translation: "home"},
		{Term: "libro", Translation: ""},
	}

	got := Distractors(correct, candidates, 3, NewRandomSource())

	require.Len(t, got, 1)
	assert.Equal(t, "car", got[0])
}

func TestDistractors_ZeroCount(t *testing.T) {
	words := makeWords("w", 5)

	assert.Empty(t, Distractors(words[0], words, 0, NewRandomSource()))
}

func TestDistractors_SeededIsDeterministic(t *testing.T) {
	words := makeWords("w", 30)

	a := Distractors(words[3], words, 3, NewSeededSource("seed"))
	b := Distractors(words[3], words, 3, NewSeededSource("seed"))

	assert.Equal(t, a, b)
}

func TestBuildOptions(t *testing.T) {
	for i := 0; i < 20; i++ {
		options, idx := BuildOptions("dog", []string{"cat", "fish", "bird"}, NewSeededSource(fmt.Sprint(i)))

		require.Len(t, options, 4)
		assert.Equal(t, "dog", options[idx])
		assert.ElementsMatch(t, []string{"dog", "cat", "fish", "bird"}, options)
	}
}

func TestBuildOptions_NoDistractors(t *testing.T) {
	options, idx := BuildOptions(" dog ", nil, NewRandomSource())

	assert.Equal(t, []string{"dog"}, options)
	assert.Equal(t, 0, idx)
}
