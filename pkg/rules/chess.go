package rules

import (
	"fmt"

	"github.com/notnil/chess"
)

// defaultPromotion is used when a pawn reaches the last rank
// and the move has no promotion piece.
const defaultPromotion = "q"

// Chess is the standard chess rules engine.
type Chess struct{}

func NewChess() Chess { return Chess{} }

func (Chess) Apply(position string, m Move) (Result, error) {
	pos, err := decode(position)
	if err != nil {
		return Result{}, err
	}
	from, err := parseSquare(m.From)
	if err != nil {
		return Result{}, err
	}
	to, err := parseSquare(m.To)
	if err != nil {
		return Result{}, err
	}
	promo, err := parsePromotion(m.Promotion)
	if err != nil {
		return Result{}, err
	}

	move := find(pos.ValidMoves(), from, to, promo)
	if move == nil {
		return Result{}, fmt.Errorf("%w: %v", ErrIllegal, m)
	}

	san := chess.AlgebraicNotation{}.Encode(pos, move)
	next := pos.Update(move)
	status := next.Status()

	return Result{
		Position: next.String(),
		Turn:     color(next.Turn()),
		SAN:      san,
		Status:   methodName(status),
		Outcome:  outcome(status, next.Turn()),
	}, nil
}

func (Chess) Turn(position string) (Color, error) {
	pos, err := decode(position)
	if err != nil {
		return NoColor, err
	}
	return color(pos.Turn()), nil
}

func decode(position string) (*chess.Position, error) {
	fen, err := chess.FEN(position)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return chess.NewGame(fen).Position(), nil
}

// find looks for a legal move between the squares.
// The promotion piece matters only for the promotion moves,
// as the clients always send one.
func find(moves []*chess.Move, from, to, promo string) *chess.Move {
	if promo == "" {
		promo = defaultPromotion
	}
	for _, m := range moves {
		if m.S1().String() != from || m.S2().String() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo().String() == promo {
			return m
		}
	}
	return nil
}

func color(c chess.Color) Color {
	switch c {
	case chess.White:
		return White
	case chess.Black:
		return Black
	default:
		return NoColor
	}
}

func methodName(m chess.Method) string {
	switch m {
	case chess.Checkmate:
		return "checkmate"
	case chess.Stalemate:
		return "stalemate"
	default:
		return ""
	}
}

// outcome makes the PGN result of the position where
// the side to move is the one who's checkmated.
func outcome(m chess.Method, turn chess.Color) string {
	switch m {
	case chess.Checkmate:
		if turn == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemate:
		return "1/2-1/2"
	default:
		return "*"
	}
}
