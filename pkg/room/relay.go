package room

import (
	"github.com/giongto35/chessroom/pkg/api"
	"github.com/giongto35/chessroom/pkg/com"
	"github.com/giongto35/chessroom/pkg/logger"
)

// Relay forwards the signaling payload to the target connection
// with the sender id attached. Unknown targets are ignored.
//
// The game state is not touched, so the room lock is not needed.
func (r *Room) Relay(from Party, s api.SignalRequest) {
	target, err := r.parties.Find(com.Uid(s.Target))
	if err != nil {
		signals.WithLabelValues(dropped).Inc()
		r.log.Debug().Str(logger.ClientField, from.Id().Short()).Str("target", s.Target).Msg("Signal to nowhere, dropped")
		return
	}
	target.Notify(api.Signal, api.SignalResponse{Payload: s.Payload, From: from.Id().String()})
	signals.WithLabelValues(relayed).Inc()
}
