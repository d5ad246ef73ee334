package deck

import "math/rand"

// Deck represents a deck of cards, dealt from the front
type Deck []Card

// New creates an unshuffled deck of 52 cards in suit-major,
// rank-minor order for deterministic tests.
func New() Deck {
	cards := make(Deck, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards. The locked top-level rand source
// is deliberate: decks are shuffled from many room goroutines at once.
func (d Deck) Shuffle() {
	for i := len(d) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Deal removes and returns n cards from the front of the deck,
// or fewer if the deck runs out.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}
