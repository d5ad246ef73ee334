package game

import "github.com/pajter/scheisskopf/deck"

// nextPlayerIndex finds the next unfinished player after current,
// scanning circularly in seat order. skip consumes that many additional
// eligible players, which is how Eights skip opponents. Returns -1 when
// nobody else is eligible.
func nextPlayerIndex(players []Player, current int, skip int) int {
	if len(players) == 0 {
		return -1
	}

	remaining := skip
	for step := 1; step <= len(players)*(skip+1); step++ {
		idx := (current + step) % len(players)
		if players[idx].IsFinished {
			continue
		}
		if remaining > 0 {
			remaining--
			continue
		}
		return idx
	}
	return -1
}

// findStartingPlayer locates the player holding the lowest card from
// Four upward, checking suits in enumeration order. Only hands are
// scanned: a low card swapped into the open stack does not make its
// owner the starting player. The card found is the mandatory opening
// card.
func findStartingPlayer(players []Player) (int, deck.Card, error) {
	for rank := deck.Four; rank <= deck.Ace; rank++ {
		for suit := deck.Clubs; suit <= deck.Spades; suit++ {
			want := deck.NewCard(rank, suit)
			for i, p := range players {
				for _, c := range p.Hand {
					if c == want {
						return i, want, nil
					}
				}
			}
		}
	}
	return -1, deck.Card{}, ErrNoStartingPlayer
}
