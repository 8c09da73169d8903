package cards

import "math/rand"

type option func(Deck) Deck

// WithoutShuffle keeps the deck in canonical order at construction time.
func WithoutShuffle() option {
	return func(d Deck) Deck {
		d.noShuffle = true
		return d
	}
}

// WithRand makes the deck draw its permutations from rnd instead of a
// time-seeded source. Useful for deterministic tests.
func WithRand(rnd *rand.Rand) option {
	return func(d Deck) Deck {
		d.rnd = rnd
		return d
	}
}
