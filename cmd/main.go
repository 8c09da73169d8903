package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"fairdeck/cards"
	"fairdeck/hand"
)

func main() {
	// Create a new slog logger backed by the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Fair", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("deck", pterm.FgDarkGray.ToStyle()),
	).Render()

	deck := cards.New()

	snapshot, err := deck.Cards()
	if err != nil {
		logger.Error("fresh deck failed the fair-deck check", "error", err.Error())
		os.Exit(1)
	}
	cardBox("TOP OF THE SHUFFLED DECK", snapshot[:5])

	drawn, ok := deck.Draw()
	if !ok {
		logger.Error("drew from an empty deck")
		os.Exit(1)
	}
	pterm.Success.Printfln("Drawn card: %s %s", glyph(drawn), drawn)

	newCard, err := cards.NewCard(cards.Hearts, cards.Ace)
	if err != nil {
		logger.Error("could not build card", "error", err.Error())
		os.Exit(1)
	}
	pterm.Info.Printfln("Adding %s to the deck", newCard)
	if err := deck.AddCard(newCard); err != nil {
		var cheat *cards.DeckCheatingError
		if errors.As(err, &cheat) {
			// the add is not rolled back: the deck now holds both copies
			logger.Warn("fair-deck check rejected the add",
				"duplicate", cheat.Dup.DisplayName(),
				"cards", deck.Len())
		} else {
			logger.Error("add failed", "error", err.Error())
			os.Exit(1)
		}
	} else {
		pterm.Success.Printfln("Added: %s", newCard)
	}

	pterm.Info.Println("Cards by index:")
	for i := 0; i < 5; i++ {
		c, err := deck.At(i)
		if err != nil {
			logger.Error("indexed access failed", "index", i, "error", err.Error())
			os.Exit(1)
		}
		pterm.Printfln("  Card at index %d: %s %s", i, glyph(c), c.DisplayName())
	}

	pterm.Info.Printfln("Iterating through all %d remaining cards:", deck.Len())
	row := ""
	for c := range deck.All() {
		row += glyph(c) + " "
	}
	pterm.Println(row)

	var five [5]cards.Card
	for i := range five {
		c, ok := deck.Draw()
		if !ok {
			logger.Error("deck ran out while dealing a hand")
			os.Exit(1)
		}
		five[i] = c
	}
	namedList("Dealt hand", five[:])
	desc, err := hand.Describe(five[:])
	if err != nil {
		logger.Error("hand evaluation failed", "error", err.Error())
		os.Exit(1)
	}
	pterm.Success.Printfln("Best hand: %s", desc)
}
