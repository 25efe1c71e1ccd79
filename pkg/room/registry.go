package room

import (
	"github.com/giongto35/chessroom/pkg/api"
	"github.com/giongto35/chessroom/pkg/com"
	"github.com/giongto35/chessroom/pkg/logger"
)

// Connect seats the new connection into the first vacant
// player slot (white, then black) or makes it a spectator,
// and sends it the current position.
func (r *Room) Connect(p Party) Role {
	r.mu.Lock()
	defer r.mu.Unlock()

	role := Spectator
	switch {
	case r.state.White.IsEmpty():
		r.state.White = p.Id()
		role = White
	case r.state.Black.IsEmpty():
		r.state.Black = p.Id()
		role = Black
	}
	r.parties.Put(p.Id(), p)

	if role == Spectator {
		p.Notify(api.SpectatorRole, nil)
	} else {
		p.Notify(api.PlayerRole, role.String())
	}
	p.Notify(api.BoardState, r.state.Position)

	if role != Spectator {
		if r.ice != nil {
			p.Notify(api.IceServers, r.ice)
		}
		r.notifyPlayers()
	}

	connections.WithLabelValues(role.String()).Inc()
	online.Inc()
	r.log.Info().Str(logger.ClientField, p.Id().Short()).Str(logger.RoleField, role.String()).
		Int("online", r.parties.Len()).Msg("Connected")
	return role
}

// Disconnect frees the slot of the connection if it had one.
// Nobody is notified and the game stays as it is.
func (r *Room) Disconnect(p Party) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.parties.Has(p.Id()) {
		return
	}
	role := r.state.roleOf(p.Id())
	switch role {
	case White:
		r.state.White = ""
	case Black:
		r.state.Black = ""
	}
	r.parties.RemoveByKey(p.Id())

	online.Dec()
	r.log.Info().Str(logger.ClientField, p.Id().Short()).Str(logger.RoleField, role.String()).
		Int("online", r.parties.Len()).Msg("Disconnected")
}

// notifyPlayers sends the ids of the seated players to them,
// so they know whom to address the signaling to.
func (r *Room) notifyPlayers() {
	players := api.PlayersResponse{White: r.state.White.String(), Black: r.state.Black.String()}
	for _, id := range [...]string{players.White, players.Black} {
		if p, err := r.parties.Find(com.Uid(id)); err == nil {
			p.Notify(api.Players, players)
		}
	}
}
