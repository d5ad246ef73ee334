package game

import (
	"testing"

	"github.com/pajter/scheisskopf/deck"
	utils "github.com/pajter/scheisskopf/internal"
)

func seatedPlayers(ids ...string) []Player {
	players := make([]Player, len(ids))
	for i, id := range ids {
		players[i] = Player{ID: id, Position: i}
	}
	return players
}

func TestNextPlayerIndex(t *testing.T) {
	t.Run("plain advance wraps around", func(t *testing.T) {
		players := seatedPlayers("a", "b", "c", "d")

		utils.AssertEqual(t, nextPlayerIndex(players, 0, 0), 1)
		utils.AssertEqual(t, nextPlayerIndex(players, 3, 0), 0)
	})

	t.Run("finished players are passed over", func(t *testing.T) {
		players := seatedPlayers("a", "b", "c", "d")
		players[1].IsFinished = true

		utils.AssertEqual(t, nextPlayerIndex(players, 0, 0), 2)
	})

	t.Run("a single eight skips exactly one opponent", func(t *testing.T) {
		players := seatedPlayers("a", "b", "c", "d")

		// current a, skip 1: b is skipped, c is next
		utils.AssertEqual(t, nextPlayerIndex(players, 0, 1), 2)
	})

	t.Run("skip counts only eligible players", func(t *testing.T) {
		players := seatedPlayers("a", "b", "c", "d")
		players[1].IsFinished = true

		// b is out of the game entirely; the eight skips c, so d is next
		utils.AssertEqual(t, nextPlayerIndex(players, 0, 1), 3)
	})

	t.Run("skips wrap past the end of the table", func(t *testing.T) {
		players := seatedPlayers("a", "b", "c")

		utils.AssertEqual(t, nextPlayerIndex(players, 0, 2), 0)
	})

	t.Run("no eligible players", func(t *testing.T) {
		players := seatedPlayers("a", "b")
		players[0].IsFinished = true
		players[1].IsFinished = true

		utils.AssertEqual(t, nextPlayerIndex(players, 0, 0), -1)
		utils.AssertEqual(t, nextPlayerIndex(nil, 0, 0), -1)
	})
}

func TestFindStartingPlayer(t *testing.T) {
	t.Run("lowest four wins, clubs first", func(t *testing.T) {
		players := seatedPlayers("a", "b", "c")
		players[0].Hand = cards(c(deck.Four, deck.Hearts), c(deck.King, deck.Clubs))
		players[1].Hand = cards(c(deck.Four, deck.Clubs), c(deck.Ace, deck.Spades))
		players[2].Hand = cards(c(deck.Five, deck.Clubs))

		idx, card, err := findStartingPlayer(players)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, idx, 1)
		utils.AssertEqual(t, card, c(deck.Four, deck.Clubs))
	})

	t.Run("ranks below four never start", func(t *testing.T) {
		players := seatedPlayers("a", "b")
		players[0].Hand = cards(c(deck.Two, deck.Clubs), c(deck.Three, deck.Clubs))
		players[1].Hand = cards(c(deck.Six, deck.Diamonds))

		idx, card, err := findStartingPlayer(players)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, idx, 1)
		utils.AssertEqual(t, card, c(deck.Six, deck.Diamonds))
	})

	t.Run("open stack cards do not count", func(t *testing.T) {
		players := seatedPlayers("a", "b")
		players[0].OpenStack = toSlots(cards(c(deck.Four, deck.Clubs)))
		players[0].Hand = cards(c(deck.Ace, deck.Hearts))
		players[1].Hand = cards(c(deck.Five, deck.Spades))

		idx, card, err := findStartingPlayer(players)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, idx, 1)
		utils.AssertEqual(t, card, c(deck.Five, deck.Spades))
	})

	t.Run("no startable card is a fatal error", func(t *testing.T) {
		players := seatedPlayers("a", "b")
		players[0].Hand = cards(c(deck.Two, deck.Clubs))

		_, _, err := findStartingPlayer(players)
		utils.AssertErrored(t, err)
		utils.AssertEqual(t, err, ErrNoStartingPlayer)
	})
}
