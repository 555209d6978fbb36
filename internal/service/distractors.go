package service

import (
	"strings"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// Distractors picks up to count wrong translations for correct from candidates.
//
// Candidates sharing the correct word's key or translation (case-insensitive)
// are skipped so a question never has two right answers, and each translation
// is offered at most once. Fewer than count results is a valid degradation.
// The caller shuffles the final option list, see BuildOptions.
func Distractors(correct entities.Word, candidates []entities.Word, count int, rnd RandomSource) []string {
	if count <= 0 {
		return nil
	}

	correctKey := correct.Key()
	used := map[string]struct{}{normalizeOption(correct.Translation): {}}

	eligible := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Key() == correctKey {
			continue
		}

		norm := normalizeOption(c.Translation)
		if norm == "" {
			continue
		}
		if _, ok := used[norm]; ok {
			continue
		}
		used[norm] = struct{}{}

		eligible = append(eligible, strings.TrimSpace(c.Translation))
	}

	// Partial Fisher-Yates: sample without replacement.
	n := min(count, len(eligible))
	for i := 0; i < n; i++ {
		j := i + intn(rnd, len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}

	return eligible[:n]
}

// BuildOptions combines the correct translation with distractors in random
// order and returns the options with the index of the correct one.
func BuildOptions(correct string, distractors []string, rnd RandomSource) ([]string, int) {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, strings.TrimSpace(correct))
	options = append(options, distractors...)

	shuffle(rnd, options)

	correctIndex := 0
	for i, opt := range options {
		if entities.SameTranslation(opt, correct) {
			correctIndex = i
			break
		}
	}

	return options, correctIndex
}

func normalizeOption(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
