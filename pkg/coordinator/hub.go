package coordinator

import (
	"github.com/giongto35/chessroom/pkg/config"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/network/httpx"
	"github.com/giongto35/chessroom/pkg/network/websocket"
	"github.com/giongto35/chessroom/pkg/room"
)

type Hub struct {
	conf     config.Config
	room     *room.Room
	upgrader *websocket.Upgrader
	log      *logger.Logger
}

func NewHub(conf config.Config, room *room.Room, log *logger.Logger) *Hub {
	return &Hub{
		conf:     conf,
		room:     room,
		upgrader: websocket.NewUpgrader(conf.Room.Origin),
		log:      log,
	}
}

// handleUserConnection keeps the connection of a player or spectator
// in the room until it's closed.
func (h *Hub) handleUserConnection(w httpx.ResponseWriter, r *httpx.Request) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error().Msgf("Something wrong. Recovered in %v", r)
		}
	}()

	h.log.Debug().Str(logger.ClientField, "u").Str(logger.DirectionField, "←").Msgf("Handshake %v", r.Host)

	conn, err := h.upgrader.NewServer(w, r, h.conf.Room.Queue(), h.log)
	if err != nil {
		h.log.Error().Err(err).Msg("couldn't init user connection")
		return
	}
	usr := NewUser(conn, h.log)
	usr.HandleRequests(h.room)

	h.room.Connect(usr)
	defer h.room.Disconnect(usr)

	usr.Listen()
	usr.Bye()
}
