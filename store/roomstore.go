package store

import (
	"errors"
	"fmt"

	"github.com/awesome-cap/hashmap"
	"go.uber.org/zap"

	"github.com/pajter/scheisskopf/room"
)

var ErrUnknownRoomID = errors.New("unknown room ID")

// RoomStore is the registry of live rooms. It is the only state shared
// across rooms, and it holds no game data itself: each room's state
// stays exclusively behind that room's action loop.
type RoomStore struct {
	rooms  *hashmap.HashMap
	logger *zap.Logger
}

// New constructs a RoomStore
func New(logger *zap.Logger) *RoomStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoomStore{
		rooms:  hashmap.New(),
		logger: logger,
	}
}

// Create registers a new room under the given code and starts its loop
func (s *RoomStore) Create(roomID, creatorID string) (*room.Room, error) {
	if _, exists := s.rooms.Get(roomID); exists {
		return nil, fmt.Errorf("room with id %s already exists", roomID)
	}

	r := room.New(roomID, creatorID, s.logger)
	s.rooms.Set(roomID, r)
	go r.Listen()

	s.logger.Info("room created", zap.String("room", roomID))
	return r, nil
}

// Find looks a room up by code; nil if absent
func (s *RoomStore) Find(roomID string) *room.Room {
	v, ok := s.rooms.Get(roomID)
	if !ok {
		return nil
	}
	return v.(*room.Room)
}

// Remove closes a room's loop and drops it from the registry
func (s *RoomStore) Remove(roomID string) error {
	v, ok := s.rooms.Get(roomID)
	if !ok {
		return ErrUnknownRoomID
	}

	v.(*room.Room).Close()
	s.rooms.Del(roomID)
	s.logger.Info("room removed", zap.String("room", roomID))
	return nil
}

// ForEach visits every live room
func (s *RoomStore) ForEach(visit func(r *room.Room)) {
	s.rooms.Foreach(func(e *hashmap.Entry) {
		visit(e.Value().(*room.Room))
	})
}
