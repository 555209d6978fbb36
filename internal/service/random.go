package service

import (
	"hash/fnv"
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the single source of randomness for session composition
// and distractor sampling. Float64 returns a value in [0, 1).
type RandomSource interface {
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// NewRandomSource returns a time-seeded source safe for concurrent use.
func NewRandomSource() RandomSource {
	return &lockedSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSource returns a deterministic source derived from seed.
// Equal seeds always produce equal sequences.
func NewSeededSource(seed string) RandomSource {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return &lockedSource{rng: rand.New(rand.NewSource(int64(h.Sum64())))}
}

// DailySeed returns the calendar date of now in loc as YYYY-MM-DD.
func DailySeed(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(time.DateOnly)
}

// intn returns a value in [0, n) drawn from rnd.
func intn(rnd RandomSource, n int) int {
	if n <= 1 {
		return 0
	}
	i := int(rnd.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// shuffle permutes s in place using Fisher-Yates.
func shuffle[T any](rnd RandomSource, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(rnd, i+1)
		s[i], s[j] = s[j], s[i]
	}
}
