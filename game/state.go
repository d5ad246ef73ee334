package game

import (
	"github.com/pajter/scheisskopf/deck"
)

// Phase represents the stages of a game
type Phase int

const (
	PreDeal Phase = iota
	PreGame
	Playing
	ClearThePile
	Paused
	Ended
)

var phaseNames = []string{
	"pre-deal",
	"pre-game",
	"playing",
	"clear-the-pile",
	"paused",
	"ended",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Slot is one open- or hidden-stack position. A vacated slot stays in
// place so clients keep rendering the gap where the card used to be.
type Slot struct {
	Card     deck.Card `json:"card"`
	Occupied bool      `json:"occupied"`
}

func occupied(c deck.Card) Slot {
	return Slot{Card: c, Occupied: true}
}

// Player holds one seat's identity and card stacks
type Player struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Position      int         `json:"position"`
	Hand          []deck.Card `json:"hand"`
	OpenStack     []Slot      `json:"openStack"`
	HiddenStack   []Slot      `json:"hiddenStack"`
	IsDealer      bool        `json:"isDealer"`
	IsFinished    bool        `json:"isFinished"`
	IsScheisskopf bool        `json:"isScheisskopf"`
	TurnsPlayed   int         `json:"turnsPlayed"`
	MustPickUp    bool        `json:"mustPickUp"`
}

// Spectator watches a game without a seat
type Spectator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// State is the full server-side game state for one room. It is owned by
// the room's action loop; Apply never mutates its input, it returns a
// fresh copy.
type State struct {
	RoomID           string      `json:"roomId"`
	Phase            Phase       `json:"phase"`
	Pile             []deck.Card `json:"pile"`
	DrawPile         []deck.Card `json:"drawPile"`
	DiscardPile      []deck.Card `json:"discardPile"`
	Players          []Player    `json:"players"`
	Spectators       []Spectator `json:"spectators"`
	CurrentPlayerID  string      `json:"currentPlayerId"`
	RequiredHandSize int         `json:"requiredHandSize"`
	StartingCard     *deck.Card  `json:"startingCard,omitempty"`
	LastError        *GameError  `json:"lastError,omitempty"`
}

// NewState constructs an empty pre-deal state for a room
func NewState(roomID string) State {
	return State{
		RoomID:      roomID,
		Phase:       PreDeal,
		Pile:        []deck.Card{},
		DrawPile:    []deck.Card{},
		DiscardPile: []deck.Card{},
		Players:     []Player{},
		Spectators:  []Spectator{},
	}
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	next := s
	next.Pile = append([]deck.Card{}, s.Pile...)
	next.DrawPile = append([]deck.Card{}, s.DrawPile...)
	next.DiscardPile = append([]deck.Card{}, s.DiscardPile...)
	next.Spectators = append([]Spectator{}, s.Spectators...)

	next.Players = make([]Player, len(s.Players))
	for i, p := range s.Players {
		cp := p
		cp.Hand = append([]deck.Card{}, p.Hand...)
		cp.OpenStack = append([]Slot{}, p.OpenStack...)
		cp.HiddenStack = append([]Slot{}, p.HiddenStack...)
		next.Players[i] = cp
	}

	if s.StartingCard != nil {
		c := *s.StartingCard
		next.StartingCard = &c
	}
	if s.LastError != nil {
		e := *s.LastError
		if s.LastError.OffendingCard != nil {
			c := *s.LastError.OffendingCard
			e.OffendingCard = &c
		}
		if s.LastError.BlockingCard != nil {
			c := *s.LastError.BlockingCard
			e.BlockingCard = &c
		}
		next.LastError = &e
	}

	return next
}

func (s State) playerIndex(id string) int {
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// CardCount counts every card in play. It is 52 for any reachable state
// after a deal (card conservation).
func (s State) CardCount() int {
	n := len(s.Pile) + len(s.DrawPile) + len(s.DiscardPile)
	for _, p := range s.Players {
		n += len(p.Hand)
		for _, slot := range p.OpenStack {
			if slot.Occupied {
				n++
			}
		}
		for _, slot := range p.HiddenStack {
			if slot.Occupied {
				n++
			}
		}
	}
	return n
}
