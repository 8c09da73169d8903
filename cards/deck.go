package cards

import (
	"fmt"
	"iter"
	"math/rand"
	"time"
)

// Deck is an ordered, mutable collection of cards. The front of the deck is
// index 0 and is the next card drawn. Deck is not safe for concurrent use.
type Deck struct {
	cards []Card
	rnd   *rand.Rand

	noShuffle bool
}

// New builds the standard 52-card deck, one card per (suit, rank) pair with
// suits in the outer loop and ranks in the inner one, then shuffles it.
// WithoutShuffle keeps the canonical order and WithRand injects the
// permutation source. New never fails.
func New(opts ...option) *Deck {
	d := Deck{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		d = opt(d)
	}
	d.cards = make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			d.cards = append(d.cards, Card{suit: s, rank: r})
		}
	}
	if !d.noShuffle {
		d.Shuffle()
	}
	return &d
}

// Draw removes and returns the front card. The second return value is false
// when the deck is empty; an empty draw is absence, not an error.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	front := d.cards[0]
	d.cards = d.cards[1:]
	return front, true
}

// AddCard appends card to the back of the deck and then runs the fair-deck
// scan over the whole deck. On a duplicate anywhere it returns a
// *DeckCheatingError; the append is not rolled back, so after a failure the
// deck still contains both copies.
func (d *Deck) AddCard(card Card) error {
	d.cards = append(d.cards, card)
	return d.checkFair()
}

// Cards returns a defensive copy of the current contents, front first.
// Like AddCard it runs the fair-deck scan and refuses to hand out a deck
// that already holds a duplicate.
func (d *Deck) Cards() ([]Card, error) {
	if err := d.checkFair(); err != nil {
		return nil, err
	}
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out, nil
}

// Shuffle permutes the current contents uniformly at random, in place.
func (d *Deck) Shuffle() {
	d.rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Len returns the number of cards currently in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// At returns the card at position i without removing it. Positions outside
// [0, Len()) fail with an error wrapping ErrIndexOutOfRange.
func (d *Deck) At(i int) (Card, error) {
	if i < 0 || i >= len(d.cards) {
		return Card{}, fmt.Errorf("%w: %d with %d cards", ErrIndexOutOfRange, i, len(d.cards))
	}
	return d.cards[i], nil
}

// All iterates the deck front to back without drawing. The sequence reads
// through to the live backing storage: restarting it sees the deck as it is
// at that moment, and drawing or adding cards from inside the loop body
// skips or repeats elements.
func (d *Deck) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for i := 0; i < len(d.cards); i++ {
			if !yield(d.cards[i]) {
				return
			}
		}
	}
}

// checkFair is the fair-deck scan: any two equal cards anywhere in the deck
// fail it.
func (d *Deck) checkFair() error {
	seen := make(map[Card]struct{}, len(d.cards))
	for _, c := range d.cards {
		if _, dup := seen[c]; dup {
			return &DeckCheatingError{Dup: c}
		}
		seen[c] = struct{}{}
	}
	return nil
}
