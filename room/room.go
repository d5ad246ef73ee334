package room

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/pajter/scheisskopf/game"
	"github.com/pajter/scheisskopf/protocol"
)

var ErrRoomClosed = errors.New("room is closed")

// Subscriber receives a fresh sanitized snapshot after every state
// change. Implemented by the websocket layer and by bots.
type Subscriber interface {
	ID() string
	Send(view game.ClientState) error
}

// Room owns one game's state. Every action funnels through a single
// channel and is applied to completion before the next one is read, so
// the game never sees interleaved actions. Rooms are independent of
// each other: nothing here is shared across rooms.
type Room struct {
	id        string
	creatorID string
	logger    *zap.Logger

	actionCh  chan protocol.Action
	closeCh   chan struct{}
	closeOnce sync.Once

	mu          sync.RWMutex
	state       game.State
	lastActorID string
	subscribers map[string]Subscriber
}

// New constructs a room. Call Listen on its own goroutine to make it live.
func New(id, creatorID string, logger *zap.Logger) *Room {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Room{
		id:          id,
		creatorID:   creatorID,
		logger:      logger,
		actionCh:    make(chan protocol.Action),
		closeCh:     make(chan struct{}),
		state:       game.NewState(id),
		subscribers: map[string]Subscriber{},
	}
}

func (r *Room) ID() string {
	return r.id
}

func (r *Room) CreatorID() string {
	return r.creatorID
}

// Listen consumes actions until the room is closed
func (r *Room) Listen() {
	for {
		select {
		case action := <-r.actionCh:
			r.apply(action)
		case <-r.closeCh:
			return
		}
	}
}

// Submit queues an action for the room's loop
func (r *Room) Submit(action protocol.Action) error {
	select {
	case r.actionCh <- action:
		return nil
	case <-r.closeCh:
		return ErrRoomClosed
	}
}

// Subscribe registers a snapshot recipient and sends it the current view
func (r *Room) Subscribe(sub Subscriber) {
	r.mu.Lock()
	r.subscribers[sub.ID()] = sub
	view := game.ProjectForViewer(r.state, sub.ID())
	r.mu.Unlock()

	if err := sub.Send(view); err != nil {
		r.logger.Warn("initial snapshot failed",
			zap.String("room", r.id),
			zap.String("subscriber", sub.ID()),
			zap.Error(err),
		)
	}
}

func (r *Room) Unsubscribe(id string) {
	r.mu.Lock()
	delete(r.subscribers, id)
	r.mu.Unlock()
}

// State returns a copy of the full state, for bots driving a local game
// and for tests. Remote clients only ever get projections.
func (r *Room) State() game.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}

// View builds the sanitized snapshot for one viewer
func (r *Room) View(viewerID string) game.ClientState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return game.ProjectForViewer(r.state, viewerID)
}

func (r *Room) Close() {
	r.closeOnce.Do(func() {
		close(r.closeCh)
	})
}

func (r *Room) apply(action protocol.Action) {
	r.mu.Lock()
	next, err := game.Apply(r.state, action)
	if err != nil {
		r.mu.Unlock()
		r.logger.Error("action failed",
			zap.String("room", r.id),
			zap.String("action", action.Type.String()),
			zap.String("player", action.PlayerID),
			zap.Error(err),
		)
		return
	}
	r.state = next
	r.lastActorID = action.PlayerID
	r.mu.Unlock()

	r.logger.Info("action applied",
		zap.String("room", r.id),
		zap.String("action", action.Type.String()),
		zap.String("player", action.PlayerID),
		zap.Stringer("phase", next.Phase),
	)

	r.broadcast()
}

// broadcast recomputes a projection per subscriber. The last error is
// only surfaced to the player whose action caused it; everyone else sees
// the game unchanged.
func (r *Room) broadcast() {
	r.mu.RLock()
	subs := make([]Subscriber, 0, len(r.subscribers))
	views := make([]game.ClientState, 0, len(r.subscribers))
	for id, sub := range r.subscribers {
		view := game.ProjectForViewer(r.state, id)
		if id != r.lastActorID {
			view.LastError = nil
		}
		subs = append(subs, sub)
		views = append(views, view)
	}
	r.mu.RUnlock()

	for i, sub := range subs {
		if err := sub.Send(views[i]); err != nil {
			r.logger.Warn("snapshot dropped",
				zap.String("room", r.id),
				zap.String("subscriber", sub.ID()),
				zap.Error(err),
			)
		}
	}
}
