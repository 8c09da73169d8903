package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"fairdeck/cards"
)

// glyph renders a card in compact form, red for diamonds and hearts, black
// for clubs and spades.
func glyph(c cards.Card) string {
	var suit string
	switch c.Suit() {
	case cards.Clubs:
		suit = pterm.Black("♣")
	case cards.Diamonds:
		suit = pterm.LightRed("♦")
	case cards.Hearts:
		suit = pterm.LightRed("♥")
	case cards.Spades:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rank string
	switch c.Rank() {
	case cards.Ace:
		rank = "A"
	case cards.Jack:
		rank = "J"
	case cards.Queen:
		rank = "Q"
	case cards.King:
		rank = "K"
	default:
		rank = fmt.Sprintf("%d", int(c.Rank()))
	}
	return rank + suit
}

func cardBox(title string, cs []cards.Card) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	row := ""
	for _, c := range cs {
		row += glyph(c) + " "
	}
	pbox.WithTitle(pterm.LightYellow("|" + title + "|")).WithTitleTopCenter().Println(row)
}

func namedList(title string, cs []cards.Card) {
	pterm.Info.Println(title + ":")
	for i, c := range cs {
		pterm.Printfln("  %2d. %s %s", i, glyph(c), c.DisplayName())
	}
}
