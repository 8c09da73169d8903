package cards

import (
	"fmt"
	"sort"
)

// Suit identifies one of the four card suits. The ordinal values (1-4) are
// fixed constants, not declaration positions; they serve only as the
// secondary sort key and carry no gameplay meaning.
type Suit int

const (
	Clubs    Suit = 1
	Diamonds Suit = 2
	Hearts   Suit = 3
	Spades   Suit = 4
)

// String returns the English name of the suit, e.g. "Spades".
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Valid reports whether s is one of the four defined suits.
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Suits returns the four suits in canonical order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Rank identifies a card rank. Ordinal values run 2-14 with the ace high.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// String returns the English name of the rank, e.g. "Ace".
func (r Rank) String() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return fmt.Sprintf("Rank(%d)", int(r))
	}
}

// Valid reports whether r is one of the thirteen defined ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Ranks returns the thirteen ranks in ascending order, ace last.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Card is an immutable playing card. Equal suit and rank means equal card,
// and cards are usable as map keys. The zero value is not a valid card;
// build cards with NewCard.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Returns the Card or an error wrapping ErrInvalidSuit or ErrInvalidRank if
// either member lies outside the enumeration.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidRank, int(rank))
	}
	return Card{suit: suit, rank: rank}, nil
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return c.rank
}

// DisplayName returns the card's full name, e.g. "Ace of Spades".
func (c Card) DisplayName() string {
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// String returns the display name.
func (c Card) String() string {
	return c.DisplayName()
}

// Compare orders cards by rank first and suit second, both ascending. It
// returns -1 if c sorts before o, +1 if after and 0 if the cards are equal.
func (c Card) Compare(o Card) int {
	if c.rank != o.rank {
		if c.rank < o.rank {
			return -1
		}
		return 1
	}
	if c.suit != o.suit {
		if c.suit < o.suit {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c sorts strictly before o.
func (c Card) Less(o Card) bool {
	return c.Compare(o) < 0
}

// SortCards sorts cs in place by the (rank, suit) total order.
func SortCards(cs []Card) {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].Less(cs[j])
	})
}
