// Package rng provides the deterministic random stream used by dungeon
// generation. Every consumer receives a Stream by explicit reference;
// there is no package-level stream.
package rng

import "math/rand"

// Stream is a seedable pseudo-random stream owned by exactly one
// generation run. Two Streams built from the same seed produce identical
// sequences regardless of what other Streams exist or have been advanced.
type Stream struct {
	src *rand.Rand
}

// New creates a Stream seeded with the given value.
func New(seed int64) *Stream {
	return &Stream{src: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [min, max], inclusive on both ends.
func (s *Stream) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.src.Intn(max-min+1)
}

// Chance returns true with the given percent probability.
// Chance(0) is never true; Chance(100) always is.
func (s *Stream) Chance(percent int) bool {
	return s.src.Intn(100) < percent
}

// OneIn returns true with probability 1/n. Values of n below 2 always
// return true.
func (s *Stream) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return s.src.Intn(n) == 0
}

// Shuffle permutes n elements using Fisher-Yates, calling swap for each
// exchanged pair.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.src.Intn(i + 1)
		swap(i, j)
	}
}
