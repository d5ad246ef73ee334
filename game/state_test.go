package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pajter/scheisskopf/deck"
	utils "github.com/pajter/scheisskopf/internal"
	"github.com/pajter/scheisskopf/protocol"
)

func TestStateClone(t *testing.T) {
	s := statePlaying(
		Player{ID: "a", Hand: cards(c(deck.Five, deck.Clubs))},
		Player{ID: "b", HiddenStack: toSlots(cards(c(deck.Six, deck.Clubs)))},
	)
	start := c(deck.Four, deck.Clubs)
	s.StartingCard = &start
	s.LastError = newMoveError(ErrIllegalMove, c(deck.Nine, deck.Clubs), &start)

	clone := s.Clone()
	utils.AssertDeepEqual(t, clone, s)

	// mutating the clone must not touch the original
	clone.Players[0].Hand[0] = c(deck.Ace, deck.Spades)
	*clone.StartingCard = c(deck.King, deck.Spades)
	*clone.LastError.OffendingCard = c(deck.King, deck.Spades)

	utils.AssertEqual(t, s.Players[0].Hand[0], c(deck.Five, deck.Clubs))
	utils.AssertEqual(t, *s.StartingCard, c(deck.Four, deck.Clubs))
	utils.AssertEqual(t, *s.LastError.OffendingCard, c(deck.Nine, deck.Clubs))
}

// Serializing, deserializing and replaying the same actions must land on
// an identical state, so every client can mirror the room byte for byte.
func TestStateRoundTrip(t *testing.T) {
	s := NewState("ROOM")
	for _, id := range []string{"p1", "p2", "p3"} {
		s = mustApply(t, s, protocol.Action{Type: protocol.Join, PlayerID: id, Name: id})
	}
	s = mustApply(t, s, protocol.Action{Type: protocol.Deal, PlayerID: "p1"})
	s = mustApply(t, s, protocol.Action{Type: protocol.Start, PlayerID: "p1"})

	encoded, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded State
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	utils.AssertDeepEqual(t, decoded, s)

	// replaying the same action on both copies stays in lockstep
	action := play(s.CurrentPlayerID, *s.StartingCard)

	next1 := mustApply(t, s, action)
	next2 := mustApply(t, decoded, action)

	enc1, err := json.Marshal(next1)
	require.NoError(t, err)
	enc2, err := json.Marshal(next2)
	require.NoError(t, err)

	require.Equal(t, string(enc1), string(enc2))
}
