package game

import "github.com/pajter/scheisskopf/deck"

const burnRunLength = 4

// Ranks that may be played on anything.
var wildRanks = map[deck.Rank]bool{
	deck.Two:   true,
	deck.Three: true,
	deck.Ten:   true,
}

// LegalResult reports whether a candidate card may be played, and which
// card on the pile blocked it when it may not.
type LegalResult struct {
	Legal        bool
	BlockingCard *deck.Card
}

// effectiveTop returns the card that governs legality: the topmost pile
// card that is not a Three. Threes are invisible, they never change what
// the next player has to beat.
func effectiveTop(pile []deck.Card) (deck.Card, bool) {
	for i := len(pile) - 1; i >= 0; i-- {
		if pile[i].Rank != deck.Three {
			return pile[i], true
		}
	}
	return deck.Card{}, false
}

// IsLegalPlay decides whether candidate may be played on the pile.
func IsLegalPlay(candidate deck.Card, pile []deck.Card) LegalResult {
	if len(pile) == 0 {
		return LegalResult{Legal: true}
	}

	if wildRanks[candidate.Rank] {
		return LegalResult{Legal: true}
	}

	top, ok := effectiveTop(pile)
	if !ok {
		// nothing but Threes on the pile: free play
		return LegalResult{Legal: true}
	}

	// a Seven caps the next card at seven or below
	if top.Rank == deck.Seven {
		if candidate.Rank.Value() <= deck.Seven.Value() {
			return LegalResult{Legal: true}
		}
		return LegalResult{Legal: false, BlockingCard: &top}
	}

	if candidate.Rank.Value() >= top.Rank.Value() {
		return LegalResult{Legal: true}
	}
	return LegalResult{Legal: false, BlockingCard: &top}
}

// ShouldClearPile decides whether the pile burns after a play has been
// applied to it. A Ten on top burns instantly; so does a run of four
// cards of one rank. Threes inside another rank's run are skipped, but a
// run of Threes themselves counts like any other rank.
func ShouldClearPile(pile []deck.Card) bool {
	if len(pile) == 0 {
		return false
	}

	top := pile[len(pile)-1]
	if top.Rank == deck.Ten {
		return true
	}

	run := 0
	for i := len(pile) - 1; i >= 0; i-- {
		if top.Rank != deck.Three && pile[i].Rank == deck.Three {
			continue
		}
		if pile[i].Rank != top.Rank {
			break
		}
		run++
		if run >= burnRunLength {
			return true
		}
	}
	return false
}
