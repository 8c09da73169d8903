package hand

import (
	"testing"

	"fairdeck/cards"
)

func card(t *testing.T, s cards.Suit, r cards.Rank) cards.Card {
	t.Helper()
	c, err := cards.NewCard(s, r)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestScore5Ordering(t *testing.T) {
	highCard := [5]cards.Card{
		card(t, cards.Clubs, cards.Two),
		card(t, cards.Diamonds, cards.Four),
		card(t, cards.Hearts, cards.Six),
		card(t, cards.Spades, cards.Nine),
		card(t, cards.Clubs, cards.Jack),
	}
	pair := [5]cards.Card{
		card(t, cards.Clubs, cards.Two),
		card(t, cards.Diamonds, cards.Two),
		card(t, cards.Hearts, cards.Six),
		card(t, cards.Spades, cards.Nine),
		card(t, cards.Clubs, cards.Jack),
	}
	flush := [5]cards.Card{
		card(t, cards.Hearts, cards.Two),
		card(t, cards.Hearts, cards.Four),
		card(t, cards.Hearts, cards.Six),
		card(t, cards.Hearts, cards.Nine),
		card(t, cards.Hearts, cards.Jack),
	}

	weak, err := Score5(highCard)
	if err != nil {
		t.Fatal(err)
	}
	middle, err := Score5(pair)
	if err != nil {
		t.Fatal(err)
	}
	strong, err := Score5(flush)
	if err != nil {
		t.Fatal(err)
	}
	if weak >= middle {
		t.Fatalf("expected pair to beat high card: %d vs %d", middle, weak)
	}
	if middle >= strong {
		t.Fatalf("expected flush to beat pair: %d vs %d", strong, middle)
	}
}

func TestScore5TiesAreEqual(t *testing.T) {
	a := [5]cards.Card{
		card(t, cards.Clubs, cards.Ace),
		card(t, cards.Diamonds, cards.King),
		card(t, cards.Hearts, cards.Seven),
		card(t, cards.Spades, cards.Five),
		card(t, cards.Clubs, cards.Three),
	}
	// same ranks, suits swapped around
	b := [5]cards.Card{
		card(t, cards.Spades, cards.Ace),
		card(t, cards.Hearts, cards.King),
		card(t, cards.Diamonds, cards.Seven),
		card(t, cards.Clubs, cards.Five),
		card(t, cards.Diamonds, cards.Three),
	}
	sa, err := Score5(a)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := Score5(b)
	if err != nil {
		t.Fatal(err)
	}
	if sa != sb {
		t.Fatalf("expected equal scores, got %d and %d", sa, sb)
	}
}

func TestDescribeFiveCards(t *testing.T) {
	hand := []cards.Card{
		card(t, cards.Spades, cards.Ten),
		card(t, cards.Spades, cards.Jack),
		card(t, cards.Spades, cards.Queen),
		card(t, cards.Spades, cards.King),
		card(t, cards.Spades, cards.Ace),
	}
	desc, err := Describe(hand)
	if err != nil {
		t.Fatal(err)
	}
	if desc == "" {
		t.Fatal("expected a non-empty description")
	}
}

func TestScore5RejectsZeroCard(t *testing.T) {
	var zero cards.Card
	five := [5]cards.Card{
		zero,
		card(t, cards.Diamonds, cards.King),
		card(t, cards.Hearts, cards.Seven),
		card(t, cards.Spades, cards.Five),
		card(t, cards.Clubs, cards.Three),
	}
	if _, err := Score5(five); err == nil {
		t.Fatal("expected the zero card to be rejected")
	}
}
