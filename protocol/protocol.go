package protocol

import "github.com/pajter/scheisskopf/deck"

// ActionType identifies a player-submitted action
type ActionType int

const (
	Join ActionType = iota
	Leave
	Deal
	Swap
	Start
	Play
	Pick
	ClearThePile
	Pause
)

var actionNames = []string{
	"Join",
	"Leave",
	"Deal",
	"Swap",
	"Start",
	"Play",
	"Pick",
	"ClearThePile",
	"Pause",
}

func (a ActionType) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Action is the inbound boundary contract: a tagged union of everything
// a player (human or bot) can submit to a game.
type Action struct {
	Type     ActionType `json:"type"`
	PlayerID string     `json:"playerId"`

	// Join
	Name string `json:"name,omitempty"`

	// Play: the cards to play. Pick: optional own open/hidden cards to
	// reclaim along with the pile.
	Cards []deck.Card `json:"cards,omitempty"`

	// Play: blind move. Hidden cards are anonymized even for their
	// owner, so a blind play names the slot, not the card.
	HiddenIndex *int `json:"hiddenIndex,omitempty"`

	// Swap
	HandCards []deck.Card `json:"handCards,omitempty"`
	OpenCards []deck.Card `json:"openCards,omitempty"`
}

// PlayerInfo carries identity data only. Live transport handles are owned
// by the server layer and never cross into the game.
type PlayerInfo struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}
