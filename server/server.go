package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"github.com/pajter/scheisskopf/protocol"
	"github.com/pajter/scheisskopf/store"
)

type NewRoomReq struct {
	Name string `json:"name"`
}

type JoinRoomReq struct {
	RoomID string `json:"room_id"`
	Name   string `json:"name"`
}

type RoomRes struct {
	RoomID   string `json:"room_id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Admin    bool   `json:"is_admin"`
}

type FindRoomRes struct {
	RoomID string `json:"room_id"`
	Phase  string `json:"phase"`
}

// GameServer is a game server
type GameServer struct {
	store  *store.RoomStore
	logger *zap.Logger
	http.Server
}

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// NewRoomCode constructs a 6-letter room code. Top-level rand, because
// handlers generate codes concurrently.
func NewRoomCode() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.Intn(len(letters))]
	}
	return string(code)
}

func unknownRoomIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown room ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(roomStore *store.RoomStore, logger *zap.Logger) *GameServer {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &GameServer{store: roomStore, logger: logger}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(s.HandleNewRoom))
	router.Handle("/join", http.HandlerFunc(s.HandleJoinRoom))
	router.Handle("/room/", http.HandlerFunc(s.HandleFindRoom))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	accessLog := zap.NewStdLog(logger).Writer()
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.Handler = cors(handlers.LoggingHandler(accessLog, router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewRoom handles a request to create a new room
func (g *GameServer) HandleNewRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewRoomReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	roomID := NewRoomCode()
	playerID := NewID()

	rm, err := g.store.Create(roomID, playerID)
	if err != nil {
		g.logger.Error("room creation failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := rm.Submit(protocol.Action{Type: protocol.Join, PlayerID: playerID, Name: data.Name}); err != nil {
		g.logger.Error("join failed", zap.String("room", roomID), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, RoomRes{
		RoomID:   roomID,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
	})
}

// HandleJoinRoom handles a request to join an existing room
func (g *GameServer) HandleJoinRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinRoomReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.RoomID == "" {
		http.Error(w, "missing room ID", http.StatusBadRequest)
		return
	}
	if data.Name == "" {
		http.Error(w, "missing player name", http.StatusBadRequest)
		return
	}

	rm := g.store.Find(data.RoomID)
	if rm == nil {
		http.Error(w, unknownRoomIDMsg(data.RoomID), http.StatusNotFound)
		return
	}

	playerID := NewID()
	if err := rm.Submit(protocol.Action{Type: protocol.Join, PlayerID: playerID, Name: data.Name}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, RoomRes{
		RoomID:   data.RoomID,
		PlayerID: playerID,
		Name:     data.Name,
	})
}

// HandleFindRoom reports whether a room exists and what phase it is in
func (g *GameServer) HandleFindRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	roomID := strings.TrimPrefix(r.URL.Path, "/room/")
	if roomID == "" {
		http.Error(w, "missing room ID", http.StatusBadRequest)
		return
	}

	rm := g.store.Find(roomID)
	if rm == nil {
		http.Error(w, unknownRoomIDMsg(roomID), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, FindRoomRes{
		RoomID: roomID,
		Phase:  rm.View("").Phase.String(),
	})
}
