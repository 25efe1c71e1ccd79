package room

import (
	"github.com/giongto35/chessroom/pkg/com"
	"github.com/giongto35/chessroom/pkg/rules"
)

type Role uint8

const (
	Spectator Role = iota
	White
	Black
)

func (r Role) String() string {
	switch r {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "spectator"
	}
}

// State is the authoritative game record of the room.
type State struct {
	Position string
	Turn     rules.Color
	// player seats, empty when vacant
	White com.Uid
	Black com.Uid
}

// entitled returns the id of the player allowed to move now.
func (s *State) entitled() com.Uid {
	if s.Turn == rules.White {
		return s.White
	}
	return s.Black
}

// roleOf returns the seat of the connection.
func (s *State) roleOf(id com.Uid) Role {
	switch id {
	case com.NilUid:
		return Spectator
	case s.White:
		return White
	case s.Black:
		return Black
	default:
		return Spectator
	}
}
