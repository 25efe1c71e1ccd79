// Package room is the single game session shared by all connections.
//
// The first two connections take the white and black seats,
// everyone else watches. Moves are accepted only from the player
// whose turn it is, judged by the rules engine and then broadcast
// to everyone in the room. Independently of the game the room
// forwards opaque WebRTC signaling messages between connections.
package room

import (
	"sync"

	"github.com/giongto35/chessroom/pkg/api"
	"github.com/giongto35/chessroom/pkg/com"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/rules"
)

// Party is a connection in the room.
type Party interface {
	Id() com.Uid
	// Notify sends an event to the connection without blocking,
	// failed sends are the party's problem.
	Notify(t api.PT, payload any)
}

// Recorder receives the outcome of every accepted move.
// Must not block.
type Recorder interface {
	Record(r rules.Result)
}

type Room struct {
	mu    sync.Mutex
	state State

	// all live connections for the broadcasts and the signaling lookups
	parties *com.Map[com.Uid, Party]

	engine   rules.Engine
	recorder Recorder
	ice      any

	log *logger.Logger
}

type Option func(*Room)

// WithPosition sets the initial position (FEN).
func WithPosition(fen string) Option { return func(r *Room) { r.state.Position = fen } }

func WithLogger(log *logger.Logger) Option { return func(r *Room) { r.log = log } }
func WithRecorder(rec Recorder) Option     { return func(r *Room) { r.recorder = rec } }

// WithIceServers sets the list of ICE servers sent to the players.
func WithIceServers(servers any) Option { return func(r *Room) { r.ice = servers } }

// New creates the room.
// The engine tells the side to move of the initial position.
func New(engine rules.Engine, opts ...Option) (*Room, error) {
	r := &Room{
		state:   State{Position: rules.StartPosition},
		parties: com.NewMap[com.Uid, Party](),
		engine:  engine,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	turn, err := engine.Turn(r.state.Position)
	if err != nil {
		return nil, err
	}
	r.state.Turn = turn
	return r, nil
}

// State returns a copy of the current session state.
func (r *Room) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Len returns the number of connected parties.
func (r *Room) Len() int { return r.parties.Len() }

// broadcast sends the event to every connected party.
// Should be called under the room lock.
func (r *Room) broadcast(t api.PT, payload any) {
	r.parties.ForEach(func(p Party) { p.Notify(t, payload) })
}
