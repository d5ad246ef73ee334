package game

import (
	"sort"

	"github.com/pajter/scheisskopf/deck"
)

// removeFromAllStacks removes each card from whichever stack holds it.
// A card is only ever in one stack at a time. Returns how many of the
// requested cards were actually found.
func removeFromAllStacks(p *Player, cards []deck.Card) int {
	removed := 0
	for _, c := range cards {
		if removeFromHand(p, c) {
			removed++
			continue
		}
		if removeFromSlots(p.OpenStack, c) {
			removed++
			continue
		}
		if removeFromSlots(p.HiddenStack, c) {
			removed++
		}
	}
	return removed
}

func removeFromHand(p *Player, card deck.Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// removeFromSlots vacates the slot holding card, leaving the slot in
// place so clients keep its position.
func removeFromSlots(slots []Slot, card deck.Card) bool {
	for i, s := range slots {
		if s.Occupied && s.Card == card {
			slots[i] = Slot{}
			return true
		}
	}
	return false
}

func handHolds(p *Player, card deck.Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

func slotsHold(slots []Slot, card deck.Card) bool {
	for _, s := range slots {
		if s.Occupied && s.Card == card {
			return true
		}
	}
	return false
}

func slotsEmpty(slots []Slot) bool {
	for _, s := range slots {
		if s.Occupied {
			return false
		}
	}
	return true
}

// refillHand tops the hand back up to the required size from the front
// of the draw pile, while cards remain.
func refillHand(p *Player, drawPile []deck.Card, required int) []deck.Card {
	for len(drawPile) > 0 && len(p.Hand) < required {
		p.Hand = append(p.Hand, drawPile[0])
		drawPile = drawPile[1:]
	}
	return drawPile
}

// playerFinished reports whether all three stacks are empty.
func playerFinished(p *Player) bool {
	return len(p.Hand) == 0 && slotsEmpty(p.OpenStack) && slotsEmpty(p.HiddenStack)
}

// SortForDisplay orders the hand and open stack by rank then suit so
// client rendering is deterministic. Gameplay never depends on order.
func SortForDisplay(p *Player) {
	sort.Slice(p.Hand, func(i, j int) bool {
		if p.Hand[i].Rank != p.Hand[j].Rank {
			return p.Hand[i].Rank < p.Hand[j].Rank
		}
		return p.Hand[i].Suit < p.Hand[j].Suit
	})
	sort.SliceStable(p.OpenStack, func(i, j int) bool {
		a, b := p.OpenStack[i], p.OpenStack[j]
		if a.Occupied != b.Occupied {
			return a.Occupied
		}
		if !a.Occupied {
			return false
		}
		if a.Card.Rank != b.Card.Rank {
			return a.Card.Rank < b.Card.Rank
		}
		return a.Card.Suit < b.Card.Suit
	})
}
