package cards

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSuit and ErrInvalidRank are wrapped by NewCard when an
	// enumeration member is out of range.
	ErrInvalidSuit = errors.New("invalid suit")
	ErrInvalidRank = errors.New("invalid rank")

	// ErrIndexOutOfRange is wrapped by At for positions outside the deck.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// DeckCheatingError reports that the deck holds two copies of the same
// card. It signals an integrity fault, not a recoverable condition: by the
// time it is returned the mutation that introduced the duplicate has
// already happened and is not rolled back.
type DeckCheatingError struct {
	Dup Card // one of the duplicated cards
}

func (e *DeckCheatingError) Error() string {
	return fmt.Sprintf("duplicate cards detected: two copies of %s", e.Dup)
}
