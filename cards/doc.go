// Package cards implements a standard 52-card playing deck.
//
// # Core Types
//
// Card: an immutable (suit, rank) pair with a display name and a total
// order in which rank dominates suit.
//
// Deck: an ordered, mutable collection of cards supporting front draws,
// appends, uniform shuffling, indexed access and iteration.
//
// # Fair-deck check
//
// A deck must never hold two copies of the same card. The check runs over
// the entire deck after AddCard and before Cards hands out a snapshot; a
// violation surfaces as *DeckCheatingError. The check does not roll back
// the mutation that introduced the duplicate, so after a cheating error the
// deck still contains both copies.
//
// The package is not safe for concurrent use; callers that share a Deck
// across goroutines must provide their own locking.
package cards
