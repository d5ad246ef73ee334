package game

import (
	"errors"

	"github.com/pajter/scheisskopf/deck"
)

// Programming errors. These cross the Apply boundary as Go errors; rule
// violations never do (they travel on State.LastError instead).
var (
	ErrTooFewPlayers    = errors.New("minimum of 2 players required")
	ErrUnknownPlayer    = errors.New("player not found")
	ErrNoStartingPlayer = errors.New("could not find starting player")
	ErrUnknownAction    = errors.New("unknown action type")
)

// ErrorKind enumerates the rule violations reported back to players.
type ErrorKind int

const (
	ErrSwapUnfair ErrorKind = iota
	ErrCardNotInHand
	ErrCardNotInOpenPile
	ErrNoCardsPlayed
	ErrCardRanksDontMatch
	ErrFirstTurnMustHaveStartingCard
	ErrIllegalMove
	ErrIllegalMoveBlind
	ErrPlayerAlreadyExists
)

var errorKindNames = []string{
	"E_SWAP_UNFAIR",
	"E_CARD_NOT_IN_HAND",
	"E_CARD_NOT_IN_OPEN_PILE",
	"E_NO_CARDS_PLAYED",
	"E_CARD_RANKS_DONT_MATCH",
	"E_FIRST_TURN_MUST_HAVE_STARTING_CARD",
	"E_ILLEGAL_MOVE",
	"E_ILLEGAL_MOVE_BLIND",
	"E_PLAYER_ALREADY_EXISTS",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "E_UNKNOWN"
	}
	return errorKindNames[k]
}

// GameError is a rule violation returned as data on the new state.
// OffendingCard is the card the player tried to play, BlockingCard the
// effective top of the pile that beat it.
type GameError struct {
	Kind          ErrorKind  `json:"kind"`
	OffendingCard *deck.Card `json:"offendingCard,omitempty"`
	BlockingCard  *deck.Card `json:"blockingCard,omitempty"`
}

func newGameError(kind ErrorKind) *GameError {
	return &GameError{Kind: kind}
}

func newMoveError(kind ErrorKind, offending deck.Card, blocking *deck.Card) *GameError {
	o := offending
	return &GameError{Kind: kind, OffendingCard: &o, BlockingCard: blocking}
}
