// Package hand scores and describes poker hands built from drawn cards.
package hand

import (
	"fmt"

	"github.com/paulhankin/poker"

	"fairdeck/cards"
)

// Score5 scores a five-card hand. Higher scores beat lower ones and equal
// scores tie. Returns an error if any card cannot be encoded for the
// evaluator.
func Score5(five [5]cards.Card) (int16, error) {
	var h [5]poker.Card
	for i, c := range five {
		pc, err := convert(c)
		if err != nil {
			return 0, err
		}
		h[i] = pc
	}
	return poker.Eval5(&h), nil
}

// Describe names the best hand that can be made from the given cards, in
// human-readable form.
func Describe(hand []cards.Card) (string, error) {
	hs := make([]poker.Card, len(hand))
	for i, c := range hand {
		pc, err := convert(c)
		if err != nil {
			return "", err
		}
		hs[i] = pc
	}
	return poker.Describe(hs)
}

// convert maps a card onto the evaluator's encoding: suits drop from 1-4 to
// 0-3 and the ace falls from 14 to 1.
func convert(c cards.Card) (poker.Card, error) {
	rank := int(c.Rank())
	if rank == int(cards.Ace) {
		rank = 1
	}
	pc, err := poker.MakeCard(poker.Suit(int(c.Suit())-1), poker.Rank(rank))
	if err != nil {
		return pc, fmt.Errorf("card %s rejected by evaluator: %w", c, err)
	}
	return pc, nil
}
