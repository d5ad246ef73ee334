package game

import (
	"github.com/pajter/scheisskopf/deck"
	"github.com/pajter/scheisskopf/protocol"
)

const minPlayers = 2

// Apply is the game's transition function. Given a state and an action
// it returns the next state. Rule violations travel back as data on the
// new state's LastError; the Go error return is reserved for programming
// errors that should never happen in a consistent room. The input state
// is never mutated, so every client can replay the same action sequence
// and land on an identical state.
//
// Actions submitted in a phase where they are not valid, or out of turn,
// leave the state untouched.
func Apply(s State, action protocol.Action) (State, error) {
	switch action.Type {
	case protocol.Join:
		return applyJoin(s, action), nil
	case protocol.Leave:
		return applyLeave(s, action), nil
	case protocol.Deal:
		return applyDeal(s, action)
	case protocol.Swap:
		return applySwap(s, action), nil
	case protocol.Start:
		return applyStart(s)
	case protocol.Play:
		return applyPlay(s, action), nil
	case protocol.Pick:
		return applyPick(s, action), nil
	case protocol.ClearThePile:
		return applyClearThePile(s), nil
	case protocol.Pause:
		return applyPause(s), nil
	}
	return s, ErrUnknownAction
}

func applyJoin(s State, a protocol.Action) State {
	next := s.Clone()
	next.LastError = nil

	if next.playerIndex(a.PlayerID) != -1 {
		next.LastError = newGameError(ErrPlayerAlreadyExists)
		return next
	}
	for _, sp := range next.Spectators {
		if sp.ID == a.PlayerID {
			next.LastError = newGameError(ErrPlayerAlreadyExists)
			return next
		}
	}

	// a room that has already dealt only accepts spectators
	if next.Phase != PreDeal {
		next.Spectators = append(next.Spectators, Spectator{ID: a.PlayerID, Name: a.Name})
		return next
	}

	next.Players = append(next.Players, Player{
		ID:          a.PlayerID,
		Name:        a.Name,
		Position:    len(next.Players),
		Hand:        []deck.Card{},
		OpenStack:   []Slot{},
		HiddenStack: []Slot{},
	})
	return next
}

func applyLeave(s State, a protocol.Action) State {
	next := s.Clone()
	next.LastError = nil

	for i, sp := range next.Spectators {
		if sp.ID == a.PlayerID {
			next.Spectators = append(next.Spectators[:i], next.Spectators[i+1:]...)
			return next
		}
	}

	idx := next.playerIndex(a.PlayerID)
	if idx == -1 {
		return next
	}

	if next.CurrentPlayerID == a.PlayerID && next.Phase != Ended {
		if ni := nextPlayerIndex(next.Players, idx, 0); ni != -1 && ni != idx {
			next.CurrentPlayerID = next.Players[ni].ID
		} else {
			next.CurrentPlayerID = ""
		}
	}

	// the leaver's cards go out of play via the discard pile, so card
	// conservation holds for the rest of the game
	p := next.Players[idx]
	next.DiscardPile = append(next.DiscardPile, p.Hand...)
	for _, slot := range p.OpenStack {
		if slot.Occupied {
			next.DiscardPile = append(next.DiscardPile, slot.Card)
		}
	}
	for _, slot := range p.HiddenStack {
		if slot.Occupied {
			next.DiscardPile = append(next.DiscardPile, slot.Card)
		}
	}

	next.Players = append(next.Players[:idx], next.Players[idx+1:]...)
	for i := range next.Players {
		next.Players[i].Position = i
	}
	return next
}

func applyDeal(s State, a protocol.Action) (State, error) {
	if s.Phase != PreDeal && s.Phase != Ended {
		return s, nil
	}
	if len(s.Players) < minPlayers {
		return s, ErrTooFewPlayers
	}

	next := s.Clone()
	next.LastError = nil

	dealer := next.playerIndex(a.PlayerID)
	if dealer == -1 {
		return s, ErrUnknownPlayer
	}

	for i := range next.Players {
		p := &next.Players[i]
		p.IsDealer = i == dealer
		p.IsFinished = false
		p.IsScheisskopf = false
		p.TurnsPlayed = 0
		p.MustPickUp = false
	}

	next.Pile = []deck.Card{}
	next.DiscardPile = []deck.Card{}
	next.CurrentPlayerID = ""
	next.StartingCard = nil

	dealCards(&next)
	next.Phase = PreGame
	return next, nil
}

func applySwap(s State, a protocol.Action) State {
	if s.Phase != PreGame {
		return s
	}
	idx := s.playerIndex(a.PlayerID)
	if idx == -1 {
		return s
	}

	next := s.Clone()
	next.LastError = nil
	p := &next.Players[idx]

	if len(a.HandCards) != len(a.OpenCards) {
		next.LastError = newGameError(ErrSwapUnfair)
		return next
	}
	for _, c := range a.HandCards {
		if !handHolds(p, c) {
			next.LastError = newMoveError(ErrCardNotInHand, c, nil)
			return next
		}
	}
	for _, c := range a.OpenCards {
		if !slotsHold(p.OpenStack, c) {
			next.LastError = newMoveError(ErrCardNotInOpenPile, c, nil)
			return next
		}
	}

	for i := range a.HandCards {
		removeFromHand(p, a.HandCards[i])
		// the hand card takes over the slot its counterpart vacates
		for j := range p.OpenStack {
			if p.OpenStack[j].Occupied && p.OpenStack[j].Card == a.OpenCards[i] {
				p.OpenStack[j] = occupied(a.HandCards[i])
				break
			}
		}
		p.Hand = append(p.Hand, a.OpenCards[i])
	}
	return next
}

func applyStart(s State) (State, error) {
	if s.Phase != PreGame {
		return s, nil
	}

	next := s.Clone()
	next.LastError = nil

	idx, card, err := findStartingPlayer(next.Players)
	if err != nil {
		return s, err
	}

	next.CurrentPlayerID = next.Players[idx].ID
	next.StartingCard = &card
	next.Phase = Playing
	return next, nil
}

func applyPlay(s State, a protocol.Action) State {
	if s.Phase != Playing {
		return s
	}
	if a.PlayerID != s.CurrentPlayerID {
		return s
	}
	idx := s.playerIndex(a.PlayerID)
	if idx == -1 {
		return s
	}

	// an unresolved blind penalty: the only way forward is Pick. The
	// lock lives on the player, not on LastError, so it survives any
	// interleaved action by somebody else.
	if s.Players[idx].MustPickUp {
		return s
	}

	next := s.Clone()
	next.LastError = nil
	p := &next.Players[idx]

	// A blind move names a hidden slot rather than a card, because the
	// player cannot see what the slot holds. Resolve it here.
	if a.HiddenIndex != nil {
		i := *a.HiddenIndex
		if i < 0 || i >= len(p.HiddenStack) || !p.HiddenStack[i].Occupied {
			next.LastError = newGameError(ErrNoCardsPlayed)
			return next
		}
		a.Cards = []deck.Card{p.HiddenStack[i].Card}
	}

	// Blind sub-case: hand and open stack exhausted, one hidden card
	// played without seeing it first.
	if len(p.Hand) == 0 && slotsEmpty(p.OpenStack) &&
		len(a.Cards) == 1 && slotsHold(p.HiddenStack, a.Cards[0]) {

		card := a.Cards[0]
		if res := IsLegalPlay(card, next.Pile); !res.Legal {
			// the card lands on the pile anyway, the wasted turn is the
			// penalty for guessing wrong
			removeFromSlots(p.HiddenStack, card)
			next.Pile = append(next.Pile, card)
			p.TurnsPlayed++
			p.MustPickUp = true
			next.LastError = newMoveError(ErrIllegalMoveBlind, card, res.BlockingCard)
			return next
		}
		// legal blind card: continue on the standard path
	}

	if len(a.Cards) == 0 {
		next.LastError = newGameError(ErrNoCardsPlayed)
		return next
	}
	if !deck.SameRank(a.Cards) {
		next.LastError = newGameError(ErrCardRanksDontMatch)
		return next
	}
	if next.StartingCard != nil && !containsCard(a.Cards, *next.StartingCard) {
		next.LastError = newGameError(ErrFirstTurnMustHaveStartingCard)
		return next
	}

	seen := map[deck.Card]struct{}{}
	for _, c := range a.Cards {
		if _, dup := seen[c]; dup {
			next.LastError = newMoveError(ErrIllegalMove, c, nil)
			return next
		}
		seen[c] = struct{}{}

		if !handHolds(p, c) && !slotsHold(p.OpenStack, c) && !slotsHold(p.HiddenStack, c) {
			next.LastError = newMoveError(ErrIllegalMove, c, nil)
			return next
		}
		if res := IsLegalPlay(c, next.Pile); !res.Legal {
			next.LastError = newMoveError(ErrIllegalMove, c, res.BlockingCard)
			return next
		}
	}

	removeFromAllStacks(p, a.Cards)
	next.Pile = append(next.Pile, a.Cards...)
	next.StartingCard = nil
	next.DrawPile = refillHand(p, next.DrawPile, next.RequiredHandSize)
	p.TurnsPlayed++
	p.IsFinished = playerFinished(p)

	skip := 0
	for _, c := range a.Cards {
		if c.Rank == deck.Eight {
			skip++
		}
	}

	// a finishing play ends the game before any burn is considered
	if unfinishedCount(next.Players) <= 1 {
		next.Phase = Ended
		for i := range next.Players {
			loser := !next.Players[i].IsFinished
			next.Players[i].IsScheisskopf = loser
			next.Players[i].IsDealer = loser
			if loser {
				next.CurrentPlayerID = next.Players[i].ID
			}
		}
		return next
	}

	if ShouldClearPile(next.Pile) {
		next.Phase = ClearThePile
		// the turn stays with whoever triggered the burn, unless they
		// just finished
		if p.IsFinished {
			if ni := nextPlayerIndex(next.Players, idx, skip); ni != -1 {
				next.CurrentPlayerID = next.Players[ni].ID
			}
		}
		return next
	}

	if ni := nextPlayerIndex(next.Players, idx, skip); ni != -1 {
		next.CurrentPlayerID = next.Players[ni].ID
	}
	return next
}

func applyPick(s State, a protocol.Action) State {
	if s.Phase != Playing {
		return s
	}
	if a.PlayerID != s.CurrentPlayerID {
		return s
	}
	idx := s.playerIndex(a.PlayerID)
	if idx == -1 {
		return s
	}

	// picking up an empty pile would be a free pass
	if len(s.Pile) == 0 && !s.Players[idx].MustPickUp {
		return s
	}

	next := s.Clone()
	next.LastError = nil
	p := &next.Players[idx]

	// optional extra cards reclaimed from own open/hidden stacks must
	// share one rank
	if !deck.SameRank(a.Cards) {
		next.LastError = newGameError(ErrCardRanksDontMatch)
		return next
	}

	p.Hand = append(p.Hand, next.Pile...)
	next.Pile = []deck.Card{}

	for _, c := range a.Cards {
		if removeFromSlots(p.OpenStack, c) || removeFromSlots(p.HiddenStack, c) {
			p.Hand = append(p.Hand, c)
		}
	}

	p.MustPickUp = false

	if ni := nextPlayerIndex(next.Players, idx, 0); ni != -1 {
		next.CurrentPlayerID = next.Players[ni].ID
	}
	return next
}

func applyClearThePile(s State) State {
	if s.Phase != ClearThePile {
		return s
	}

	next := s.Clone()
	next.LastError = nil
	next.DiscardPile = append(next.DiscardPile, next.Pile...)
	next.Pile = []deck.Card{}
	next.Phase = Playing
	return next
}

func applyPause(s State) State {
	switch s.Phase {
	case Playing:
		next := s.Clone()
		next.LastError = nil
		next.Phase = Paused
		return next
	case Paused:
		next := s.Clone()
		next.LastError = nil
		next.Phase = Playing
		return next
	}
	return s
}
