package bot

import (
	"time"

	"github.com/pajter/scheisskopf/deck"
	"github.com/pajter/scheisskopf/game"
	"github.com/pajter/scheisskopf/protocol"
)

// Submitter accepts actions on behalf of a bot. A live room satisfies it.
type Submitter interface {
	Submit(action protocol.Action) error
}

// Bot fills a seat with a simple shedding policy: dump the lowest legal
// rank, hold the wild cards back as long as an ordinary card will do, and
// pick the pile up when nothing fits. It works purely from its own
// sanitized snapshot, so it knows exactly as much as a human in the same
// seat would.
type Bot struct {
	playerID string
	name     string
	target   Submitter
	delay    time.Duration
}

func New(playerID, name string, target Submitter, delay time.Duration) *Bot {
	return &Bot{
		playerID: playerID,
		name:     name,
		target:   target,
		delay:    delay,
	}
}

func (b *Bot) ID() string {
	return b.playerID
}

func (b *Bot) Name() string {
	return b.name
}

// Send receives a snapshot like any other subscriber and reacts to it.
// The submit happens on a separate goroutine because Send is called from
// inside the room's action loop.
func (b *Bot) Send(view game.ClientState) error {
	action, ok := b.Choose(view)
	if !ok {
		return nil
	}
	go func() {
		if b.delay > 0 {
			time.Sleep(b.delay)
		}
		b.target.Submit(action)
	}()
	return nil
}

// Choose picks the bot's next action for a snapshot, if the snapshot
// calls for one.
func (b *Bot) Choose(view game.ClientState) (protocol.Action, bool) {
	var none protocol.Action

	me := seatOf(view, b.playerID)
	if me == nil || me.IsFinished {
		return none, false
	}
	if view.CurrentPlayerID != b.playerID {
		return none, false
	}

	switch view.Phase {
	case game.ClearThePile:
		return protocol.Action{Type: protocol.ClearThePile, PlayerID: b.playerID}, true
	case game.Playing:
	default:
		return none, false
	}

	if me.MustPickUp {
		return protocol.Action{Type: protocol.Pick, PlayerID: b.playerID}, true
	}

	if len(me.Hand) > 0 {
		return b.playFrom(view, me.Hand)
	}
	if open := occupiedCards(me.OpenStack); len(open) > 0 {
		return b.playFrom(view, open)
	}

	// nothing visible left: gamble on a hidden slot
	for i, taken := range me.HiddenSlots {
		if taken {
			idx := i
			return protocol.Action{
				Type:        protocol.Play,
				PlayerID:    b.playerID,
				HiddenIndex: &idx,
			}, true
		}
	}
	return none, false
}

// Ranks worth holding on to while an ordinary card can be shed instead.
var saveForLater = map[deck.Rank]bool{
	deck.Two:   true,
	deck.Three: true,
	deck.Ten:   true,
}

func (b *Bot) playFrom(view game.ClientState, cards []deck.Card) (protocol.Action, bool) {
	// the opening play has to include the starting card, and on the first
	// turn it is always in this bot's hand
	if view.StartingCard != nil {
		return protocol.Action{
			Type:     protocol.Play,
			PlayerID: b.playerID,
			Cards:    sameRankAs(cards, view.StartingCard.Rank),
		}, true
	}

	best, found := deck.Rank(0), false
	for _, c := range cards {
		if !game.IsLegalPlay(c, view.Pile).Legal {
			continue
		}
		if !found || betterShed(c.Rank, best) {
			best, found = c.Rank, true
		}
	}
	if !found {
		return protocol.Action{Type: protocol.Pick, PlayerID: b.playerID}, true
	}

	return protocol.Action{
		Type:     protocol.Play,
		PlayerID: b.playerID,
		Cards:    sameRankAs(cards, best),
	}, true
}

// betterShed prefers ordinary ranks over wild ones, and lower over higher.
func betterShed(candidate, current deck.Rank) bool {
	if saveForLater[candidate] != saveForLater[current] {
		return saveForLater[current]
	}
	return candidate.Value() < current.Value()
}

func sameRankAs(cards []deck.Card, rank deck.Rank) []deck.Card {
	batch := []deck.Card{}
	for _, c := range cards {
		if c.Rank == rank {
			batch = append(batch, c)
		}
	}
	return batch
}

func occupiedCards(slots []game.Slot) []deck.Card {
	cards := []deck.Card{}
	for _, slot := range slots {
		if slot.Occupied {
			cards = append(cards, slot.Card)
		}
	}
	return cards
}

func seatOf(view game.ClientState, id string) *game.PlayerView {
	for i := range view.Players {
		if view.Players[i].ID == id {
			return &view.Players[i]
		}
	}
	return nil
}
