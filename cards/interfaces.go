package cards

// CardReader is the read-only contract of a playing card. Card is the sole
// implementer; the interface documents the capability set rather than
// enabling dispatch over variants.
type CardReader interface {
	Suit() Suit
	Rank() Rank
	DisplayName() string
}

// DeckOperator is the mutating contract of a deck. *Deck is the sole
// implementer.
type DeckOperator interface {
	Draw() (Card, bool)
	AddCard(Card) error
	Shuffle()
}

var (
	_ CardReader   = Card{}
	_ DeckOperator = (*Deck)(nil)
)
