package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pajter/scheisskopf/deck"
	utils "github.com/pajter/scheisskopf/internal"
)

func TestProjectForViewer(t *testing.T) {
	s := statePlaying(
		Player{
			ID:          "a",
			Hand:        cards(c(deck.Nine, deck.Hearts), c(deck.Five, deck.Clubs)),
			OpenStack:   toSlots(cards(c(deck.Jack, deck.Spades))),
			HiddenStack: []Slot{occupied(c(deck.Two, deck.Diamonds)), {}},
		},
		Player{
			ID:          "b",
			Hand:        cards(c(deck.Six, deck.Hearts)),
			HiddenStack: toSlots(cards(c(deck.King, deck.Clubs))),
		},
	)
	s.DrawPile = cards(c(deck.Ace, deck.Clubs), c(deck.Ace, deck.Hearts))
	s.DiscardPile = cards(c(deck.Queen, deck.Diamonds))

	view := ProjectForViewer(s, "a")

	t.Run("piles are reduced to counts", func(t *testing.T) {
		utils.AssertEqual(t, view.DrawPileCount, 2)
		utils.AssertEqual(t, view.DiscardPileCount, 1)
		utils.AssertEqual(t, len(view.Pile), len(s.Pile))
	})

	t.Run("own hand is visible and sorted", func(t *testing.T) {
		own := view.Players[0]
		utils.AssertEqual(t, len(own.Hand), 2)
		utils.AssertEqual(t, own.Hand[0], c(deck.Five, deck.Clubs))
		utils.AssertEqual(t, own.Hand[1], c(deck.Nine, deck.Hearts))
	})

	t.Run("opponents' hands are counts only", func(t *testing.T) {
		opp := view.Players[1]
		assert.Nil(t, opp.Hand)
		utils.AssertEqual(t, opp.HandCount, 1)
	})

	t.Run("open stacks are public", func(t *testing.T) {
		utils.AssertEqual(t, view.Players[0].OpenStack[0].Card, c(deck.Jack, deck.Spades))
	})

	t.Run("hidden cards are anonymized for everyone", func(t *testing.T) {
		own := view.Players[0]
		utils.AssertEqual(t, own.HiddenCount, 1)
		utils.AssertDeepEqual(t, own.HiddenSlots, []bool{true, false})

		opp := view.Players[1]
		utils.AssertEqual(t, opp.HiddenCount, 1)
	})

	t.Run("the projection never aliases state", func(t *testing.T) {
		view.Pile = append(view.Pile, c(deck.Two, deck.Clubs))
		view.Players[0].Hand[0] = c(deck.Ace, deck.Spades)

		utils.AssertEqual(t, len(s.Pile), 0)
		utils.AssertEqual(t, s.Players[0].Hand[0], c(deck.Nine, deck.Hearts))
	})
}

func TestProjectionPerViewer(t *testing.T) {
	s := statePlaying(
		Player{ID: "a", Hand: cards(c(deck.Nine, deck.Hearts))},
		Player{ID: "b", Hand: cards(c(deck.Six, deck.Hearts))},
	)

	forA := ProjectForViewer(s, "a")
	forB := ProjectForViewer(s, "b")

	utils.AssertEqual(t, len(forA.Players[0].Hand), 1)
	assert.Nil(t, forA.Players[1].Hand)

	assert.Nil(t, forB.Players[0].Hand)
	utils.AssertEqual(t, len(forB.Players[1].Hand), 1)

	// spectators see no hands at all
	forWatcher := ProjectForViewer(s, "watcher")
	assert.Nil(t, forWatcher.Players[0].Hand)
	assert.Nil(t, forWatcher.Players[1].Hand)
}
