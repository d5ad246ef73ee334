package game

import "github.com/pajter/scheisskopf/deck"

// cardCounts works out the per-player hidden/open/hand deal sizes.
// Everyone starts at 3/3/3; with many players the hand shrinks first,
// then the open stack, then the hidden stack, until the total fits in
// an equal share of the deck. Hard floors: 1 hidden, 1 open, 2 hand.
func cardCounts(numPlayers int) (hidden, open, hand int) {
	hidden, open, hand = 3, 3, 3
	if numPlayers < 1 {
		return
	}

	share := 52 / numPlayers
	for hidden+open+hand > share {
		switch {
		case hand > 2:
			hand--
		case open > 1:
			open--
		case hidden > 1:
			hidden--
		default:
			return
		}
	}
	return
}

func toSlots(cards []deck.Card) []Slot {
	slots := make([]Slot, len(cards))
	for i, c := range cards {
		slots[i] = occupied(c)
	}
	return slots
}

// dealCards shuffles a fresh deck and distributes it. The remainder
// becomes the draw pile.
func dealCards(s *State) {
	d := deck.New()
	d.Shuffle()

	hidden, open, hand := cardCounts(len(s.Players))
	for i := range s.Players {
		p := &s.Players[i]
		p.HiddenStack = toSlots(d.Deal(hidden))
		p.OpenStack = toSlots(d.Deal(open))
		p.Hand = d.Deal(hand)
	}

	s.DrawPile = []deck.Card(d)
	s.RequiredHandSize = hand
}
