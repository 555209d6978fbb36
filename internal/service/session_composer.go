package service

import (
	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

// ComposeSession assembles up to targetSize review items for one practice run.
//
// Due words come first in the given (soonest-due-first) order, then the gap is
// filled from priorityPool and finally from pool, both shuffled. Words are
// matched by natural key, so duplicates across and within the inputs appear
// once. The result is shuffled as a whole so due and filler items interleave.
// A result shorter than targetSize, or empty, is valid.
func ComposeSession(due, pool, priorityPool []entities.Word, targetSize int, rnd RandomSource) []entities.ReviewItem {
	if targetSize <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, targetSize)
	out := make([]entities.ReviewItem, 0, min(targetSize, len(due)+len(pool)+len(priorityPool)))

	// 1. Due words keep their order.
	out = appendUnique(out, seen, due, entities.OriginDue, targetSize)
	if len(out) >= targetSize {
		return shuffled(rnd, out)
	}

	// 2. Struggling words before the general pool.
	out = appendUnique(out, seen, shuffledWords(rnd, priorityPool), entities.OriginPriority, targetSize)
	if len(out) >= targetSize {
		return shuffled(rnd, out)
	}

	// 3. Whatever the pool still offers.
	out = appendUnique(out, seen, shuffledWords(rnd, pool), entities.OriginPool, targetSize)

	return shuffled(rnd, out)
}

// appendUnique appends words whose key is not in seen until out holds total items.
func appendUnique(
	out []entities.ReviewItem,
	seen map[string]struct{},
	words []entities.Word,
	origin entities.ItemOrigin,
	total int,
) []entities.ReviewItem {
	for _, w := range words {
		if len(out) >= total {
			break
		}

		key := w.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, entities.ReviewItem{Word: w, Origin: origin})
	}
	return out
}

// shuffledWords returns a shuffled copy of words.
func shuffledWords(rnd RandomSource, words []entities.Word) []entities.Word {
	out := append([]entities.Word(nil), words...)
	shuffle(rnd, out)
	return out
}

// shuffled shuffles items in place and returns them.
func shuffled(rnd RandomSource, items []entities.ReviewItem) []entities.ReviewItem {
	shuffle(rnd, items)
	return items
}
