// Package coordinator serves the room to the websocket clients.
package coordinator

import (
	"github.com/giongto35/chessroom/pkg/config"
	"github.com/giongto35/chessroom/pkg/ice"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/monitoring"
	"github.com/giongto35/chessroom/pkg/network/httpx"
	"github.com/giongto35/chessroom/pkg/recorder"
	"github.com/giongto35/chessroom/pkg/room"
	"github.com/giongto35/chessroom/pkg/rules"
	"github.com/giongto35/chessroom/pkg/service"
	"github.com/giongto35/chessroom/pkg/storage"
)

type Coordinator struct {
	service.Group

	room   *room.Room
	server *httpx.Server
}

// New assembles the room with all its services.
// The services are started with Start.
func New(conf config.Config, log *logger.Logger) (*Coordinator, error) {
	c := Coordinator{}

	iceServers, err := ice.Servers(conf.Webrtc.IceServers)
	if err != nil {
		return nil, err
	}

	opts := []room.Option{
		room.WithPosition(conf.Room.StartPosition),
		room.WithLogger(log.Module("room")),
	}
	if len(iceServers) > 0 {
		opts = append(opts, room.WithIceServers(iceServers))
	}

	if conf.Recording.Enabled {
		store, err := storage.NewStorage(conf.Storage)
		if err != nil {
			return nil, err
		}
		rec, err := recorder.NewRecording(store, log.Module("rec"), recorder.Options{
			Dir:      conf.Recording.Folder,
			Name:     conf.Recording.Name,
			Position: conf.Room.StartPosition,
			Site:     conf.Room.Server.Tls.Domain,
		})
		if err != nil {
			return nil, err
		}
		c.Add(rec)
		opts = append(opts, room.WithRecorder(rec))
	}

	c.room, err = room.New(rules.NewChess(), opts...)
	if err != nil {
		return nil, err
	}

	hub := NewHub(conf, c.room, log)
	c.server, err = NewHTTPServer(conf, log, func(mux *httpx.Mux) *httpx.Mux {
		return mux.HandleFunc("/ws", hub.handleUserConnection)
	})
	if err != nil {
		return nil, err
	}
	c.Add(c.server)

	if conf.Room.Monitoring.IsEnabled() {
		mon, err := monitoring.New(conf.Room.Monitoring, conf.Room.Server.GetAddr(), log.Module("mon"))
		if err != nil {
			return nil, err
		}
		c.Add(mon)
	}
	return &c, nil
}

func (c *Coordinator) Room() *room.Room { return c.room }

// Addr returns the real address of the HTTP server.
func (c *Coordinator) Addr() string { return c.server.Addr }
