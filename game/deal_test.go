package game

import (
	"testing"

	utils "github.com/pajter/scheisskopf/internal"
)

func TestCardCounts(t *testing.T) {
	tt := []struct {
		players                  int
		hidden, open, hand, want int
	}{
		{2, 3, 3, 3, 9},
		{4, 3, 3, 3, 9},
		{5, 3, 3, 3, 9},
		{6, 3, 3, 2, 8},
		{7, 3, 2, 2, 7},
		{8, 3, 1, 2, 6},
		{10, 2, 1, 2, 5},
		{13, 1, 1, 2, 4},
		// below the hard floor the share is simply exceeded
		{20, 1, 1, 2, 4},
	}

	for _, tc := range tt {
		hidden, open, hand := cardCounts(tc.players)
		if hidden != tc.hidden || open != tc.open || hand != tc.hand {
			t.Errorf("%d players: got %d/%d/%d, want %d/%d/%d",
				tc.players, hidden, open, hand, tc.hidden, tc.open, tc.hand)
		}
		utils.AssertEqual(t, hidden+open+hand, tc.want)
	}
}

func TestDealCards(t *testing.T) {
	s := NewState("ROOM")
	for _, id := range []string{"a", "b", "c", "d"} {
		s.Players = append(s.Players, Player{ID: id, Position: len(s.Players)})
	}

	dealCards(&s)

	utils.AssertEqual(t, s.RequiredHandSize, 3)
	utils.AssertEqual(t, len(s.DrawPile), 52-4*9)

	for _, p := range s.Players {
		utils.AssertEqual(t, len(p.Hand), 3)
		utils.AssertEqual(t, len(p.OpenStack), 3)
		utils.AssertEqual(t, len(p.HiddenStack), 3)
		for _, slot := range p.OpenStack {
			utils.AssertTrue(t, slot.Occupied)
		}
		for _, slot := range p.HiddenStack {
			utils.AssertTrue(t, slot.Occupied)
		}
	}

	// every card dealt exactly once
	utils.AssertEqual(t, s.CardCount(), 52)
}
