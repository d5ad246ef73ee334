package deck

import (
	"testing"

	utils "github.com/pajter/scheisskopf/internal"
)

func TestCardID(t *testing.T) {
	tt := []struct {
		card Card
		want string
	}{
		{NewCard(Four, Clubs), "clubs:4"},
		{NewCard(Ace, Spades), "spades:14"},
		{NewCard(Ten, Hearts), "hearts:10"},
		{NewCard(Two, Diamonds), "diamonds:2"},
	}

	for _, tc := range tt {
		utils.AssertEqual(t, tc.card.ID(), tc.want)
	}
}

func TestCardString(t *testing.T) {
	utils.AssertEqual(t, NewCard(Queen, Hearts).String(), "Queen of Hearts")
	utils.AssertEqual(t, NewCard(Seven, Clubs).String(), "Seven of Clubs")
}

func TestRankValue(t *testing.T) {
	utils.AssertEqual(t, Two.Value(), 2)
	utils.AssertEqual(t, Jack.Value(), 11)
	utils.AssertEqual(t, Ace.Value(), 14)
}

func TestSameRank(t *testing.T) {
	tt := []struct {
		name  string
		cards []Card
		want  bool
	}{
		{"no cards", []Card{}, true},
		{"one card", []Card{NewCard(Five, Clubs)}, true},
		{"pair", []Card{NewCard(Five, Clubs), NewCard(Five, Hearts)}, true},
		{"mixed", []Card{NewCard(Five, Clubs), NewCard(Six, Hearts)}, false},
		{
			"three of a kind",
			[]Card{NewCard(King, Clubs), NewCard(King, Hearts), NewCard(King, Spades)},
			true,
		},
		{
			"last card differs",
			[]Card{NewCard(King, Clubs), NewCard(King, Hearts), NewCard(Ace, Spades)},
			false,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			utils.AssertEqual(t, SameRank(tc.cards), tc.want)
		})
	}
}
