package game

import "github.com/pajter/scheisskopf/deck"

// PlayerView is one seat as a particular viewer is allowed to see it.
// Open-stack cards are public. Hands are only present in the owner's own
// projection; everyone else gets the count. Hidden cards are anonymized
// for everybody, including their owner: only slot occupancy is revealed.
type PlayerView struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Position      int         `json:"position"`
	Hand          []deck.Card `json:"hand,omitempty"`
	HandCount     int         `json:"handCount"`
	OpenStack     []Slot      `json:"openStack"`
	HiddenSlots   []bool      `json:"hiddenSlots"`
	HiddenCount   int         `json:"hiddenCount"`
	IsDealer      bool        `json:"isDealer"`
	IsFinished    bool        `json:"isFinished"`
	IsScheisskopf bool        `json:"isScheisskopf"`
	MustPickUp    bool        `json:"mustPickUp"`
}

// ClientState is the per-viewer snapshot handed to the transport layer.
type ClientState struct {
	RoomID           string       `json:"roomId"`
	ViewerID         string       `json:"viewerId"`
	Phase            Phase        `json:"phase"`
	Pile             []deck.Card  `json:"pile"`
	DrawPileCount    int          `json:"drawPileCount"`
	DiscardPileCount int          `json:"discardPileCount"`
	Players          []PlayerView `json:"players"`
	CurrentPlayerID  string       `json:"currentPlayerId"`
	RequiredHandSize int          `json:"requiredHandSize"`
	StartingCard     *deck.Card   `json:"startingCard,omitempty"`
	LastError        *GameError   `json:"lastError,omitempty"`
}

// ProjectForViewer builds the snapshot a single viewer may see. It is
// recomputed per recipient on every state change; nothing is shared.
func ProjectForViewer(s State, viewerID string) ClientState {
	view := ClientState{
		RoomID:           s.RoomID,
		ViewerID:         viewerID,
		Phase:            s.Phase,
		Pile:             append([]deck.Card{}, s.Pile...),
		DrawPileCount:    len(s.DrawPile),
		DiscardPileCount: len(s.DiscardPile),
		Players:          make([]PlayerView, len(s.Players)),
		CurrentPlayerID:  s.CurrentPlayerID,
		RequiredHandSize: s.RequiredHandSize,
	}
	if s.StartingCard != nil {
		c := *s.StartingCard
		view.StartingCard = &c
	}
	if s.LastError != nil {
		e := *s.LastError
		view.LastError = &e
	}

	for i, p := range s.Players {
		// sort a private copy so snapshots are deterministic
		cp := p
		cp.Hand = append([]deck.Card{}, p.Hand...)
		cp.OpenStack = append([]Slot{}, p.OpenStack...)
		SortForDisplay(&cp)

		pv := PlayerView{
			ID:            cp.ID,
			Name:          cp.Name,
			Position:      cp.Position,
			HandCount:     len(cp.Hand),
			OpenStack:     cp.OpenStack,
			HiddenSlots:   make([]bool, len(p.HiddenStack)),
			IsDealer:      cp.IsDealer,
			IsFinished:    cp.IsFinished,
			IsScheisskopf: cp.IsScheisskopf,
			MustPickUp:    cp.MustPickUp,
		}
		for j, slot := range p.HiddenStack {
			pv.HiddenSlots[j] = slot.Occupied
			if slot.Occupied {
				pv.HiddenCount++
			}
		}
		if cp.ID == viewerID {
			pv.Hand = cp.Hand
		}
		view.Players[i] = pv
	}

	return view
}
