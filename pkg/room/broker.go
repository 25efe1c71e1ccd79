package room

import (
	"errors"

	"github.com/giongto35/chessroom/pkg/api"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/rules"
)

// SubmitMove applies the move of the player whose turn it is.
//
// A submission from anyone else is silently dropped.
// A move rejected by the rules engine is sent back to
// the submitter as invalidMove. An accepted move is broadcast
// to everyone together with the new position.
func (r *Room) SubmitMove(p Party, m api.MoveRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.log.Extend(r.log.With().Str(logger.ClientField, p.Id().Short()))

	entitled := r.state.entitled()
	if entitled.IsEmpty() || entitled != p.Id() {
		moves.WithLabelValues(dropped).Inc()
		log.Debug().Str("turn", r.state.Turn.String()).Msg("Move out of turn, dropped")
		return
	}

	move := rules.Move{From: m.From, To: m.To, Promotion: m.Promotion}
	var result rules.Result
	err := rules.ErrMalformed
	if !m.Malformed {
		result, err = r.engine.Apply(r.state.Position, move)
	}
	if err != nil {
		label := rejected
		if errors.Is(err, rules.ErrMalformed) {
			label = malformed
		}
		moves.WithLabelValues(label).Inc()
		log.Debug().Err(err).Msg("Invalid move")
		p.Notify(api.InvalidMove, movePayload(m))
		return
	}

	r.state.Position = result.Position
	r.state.Turn = result.Turn
	moves.WithLabelValues(accepted).Inc()

	if r.recorder != nil {
		r.recorder.Record(result)
	}

	payload := movePayload(m)
	r.broadcast(api.Move, payload)
	r.broadcast(api.BoardState, result.Position)

	ev := log.Info().Str("move", result.SAN).Str("turn", result.Turn.String())
	if result.IsOver() {
		ev = ev.Str("result", result.Outcome)
	}
	ev.Msg("Move")
}

// movePayload returns the move as it was submitted.
func movePayload(m api.MoveRequest) any {
	if len(m.Raw) > 0 {
		return m.Raw
	}
	return m
}
