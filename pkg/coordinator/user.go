package coordinator

import (
	"github.com/giongto35/chessroom/pkg/api"
	"github.com/giongto35/chessroom/pkg/com"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/network/websocket"
	"github.com/giongto35/chessroom/pkg/room"
)

// User is a websocket connection in the room.
type User struct {
	id   com.Uid
	conn *websocket.WS
	log  *logger.Logger
}

func NewUser(conn *websocket.WS, log *logger.Logger) *User {
	id := com.NewUid()
	return &User{
		id:   id,
		conn: conn,
		log: log.Extend(log.With().
			Str(logger.ClientField, "u").
			Str(logger.DirectionField, "→").
			Str("id", id.Short())),
	}
}

func (u *User) Id() com.Uid { return u.id }

// Notify sends the event without waiting.
// A client that can't keep up is disconnected.
func (u *User) Notify(t api.PT, payload any) {
	data, err := api.Encode(t, payload)
	if err != nil {
		u.log.Error().Err(err).Str("t", t.String()).Msg("couldn't encode the event")
		return
	}
	if !u.conn.Write(data) {
		u.log.Warn().Str("t", t.String()).Msg("event dropped, the connection is closed")
	}
}

// HandleRequests routes the client packets into the room.
func (u *User) HandleRequests(r *room.Room) {
	u.conn.OnMessage = func(data []byte, err error) {
		if err != nil {
			u.log.Error().Err(err).Msg("read")
			return
		}
		rq, err := api.Decode(data)
		if err != nil {
			u.log.Debug().Err(err).Msg("bad packet")
			return
		}
		switch req := rq.(type) {
		case api.MoveRequest:
			r.SubmitMove(u, req)
		case api.SignalRequest:
			r.Relay(u, req)
		}
	}
}

// Listen blocks until the connection is closed.
func (u *User) Listen() { <-u.conn.Listen() }

func (u *User) Bye() { u.log.Info().Msg("Disconnected") }

// Close drops the connection.
func (u *User) Close() { u.conn.Close() }
