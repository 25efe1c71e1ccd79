// Package rules judges chess moves.
//
// The room consults an Engine for every move it accepts from
// an entitled player; the engine itself knows nothing about
// connections, turns of players or broadcasting.
package rules

import (
	"errors"
	"fmt"
	"strings"
)

// StartPosition is the standard initial position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return ""
	}
}

var (
	// ErrIllegal is returned for well-formed moves that break the rules.
	ErrIllegal = errors.New("illegal move")
	// ErrMalformed is returned when the position or the move can't be parsed.
	ErrMalformed = errors.New("malformed move")
)

type Move struct {
	From      string
	To        string
	Promotion string
}

func (m Move) String() string { return m.From + m.To + m.Promotion }

// Result is an accepted move outcome.
type Result struct {
	// Position is the new position FEN.
	Position string
	// Turn is the side to move in the new position.
	Turn Color
	// SAN is the move in the standard algebraic notation.
	SAN string
	// Status is a game termination method or empty if the game goes on.
	Status string
	// Outcome is a PGN result: 1-0, 0-1, 1/2-1/2 or * for an unfinished game.
	Outcome string
}

func (r Result) IsOver() bool { return r.Outcome != "*" && r.Outcome != "" }

// Engine applies moves to positions.
type Engine interface {
	// Apply returns the new position after the move or
	// one of ErrIllegal, ErrMalformed (wrapped).
	Apply(position string, m Move) (Result, error)
	// Turn returns the side to move of the position.
	Turn(position string) (Color, error)
}

// parseSquare checks the square name, i.e. e4.
func parseSquare(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return "", fmt.Errorf("%w: bad square %q", ErrMalformed, s)
	}
	return s, nil
}

// parsePromotion converts a piece designator (q, queen, N, ...)
// into a one-letter lowercase piece name.
// Empty designator stays empty.
func parsePromotion(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "q", "queen":
		return "q", nil
	case "r", "rook":
		return "r", nil
	case "b", "bishop":
		return "b", nil
	case "n", "knight":
		return "n", nil
	}
	return "", fmt.Errorf("%w: bad promotion %q", ErrMalformed, s)
}
