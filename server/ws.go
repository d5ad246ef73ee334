package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pajter/scheisskopf/game"
	"github.com/pajter/scheisskopf/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsSubscriber relays sanitized snapshots to one websocket connection
type wsSubscriber struct {
	playerID string
	conn     *websocket.Conn
	mu       sync.Mutex
}

func (s *wsSubscriber) ID() string {
	return s.playerID
}

func (s *wsSubscriber) Send(view game.ClientState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(view)
}

// HandleWS upgrades a player's connection. Inbound frames are JSON
// actions; outbound frames are that player's snapshots.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	playerID := r.URL.Query().Get("player")
	if roomID == "" || playerID == "" {
		http.Error(w, "missing room or player", http.StatusBadRequest)
		return
	}

	rm := g.store.Find(roomID)
	if rm == nil {
		http.Error(w, unknownRoomIDMsg(roomID), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("ws upgrade failed", zap.Error(err))
		return
	}

	sub := &wsSubscriber{playerID: playerID, conn: conn}
	rm.Subscribe(sub)

	g.logger.Info("player connected",
		zap.String("room", roomID),
		zap.String("player", playerID),
	)

	defer func() {
		rm.Unsubscribe(playerID)
		conn.Close()
		g.logger.Info("player disconnected",
			zap.String("room", roomID),
			zap.String("player", playerID),
		)
	}()

	for {
		var action protocol.Action
		if err := conn.ReadJSON(&action); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Warn("ws read failed", zap.String("player", playerID), zap.Error(err))
			}
			return
		}

		// clients cannot act on anyone else's behalf
		action.PlayerID = playerID

		if err := rm.Submit(action); err != nil {
			return
		}
	}
}
