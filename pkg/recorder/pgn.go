package recorder

import (
	"fmt"
	"time"

	"github.com/giongto35/chessroom/pkg/rules"
	"github.com/notnil/chess"
)

// game is a PGN record of a single game.
// The accepted moves are replayed on a notnil game,
// which does the PGN export.
type game struct {
	id    string
	name  string
	chess *chess.Game
	// over is set by the room verdict, notnil may stop
	// a game on its own (i.e. fivefold repetition).
	over bool
}

func newGame(id, name, position, site string, start time.Time) (*game, error) {
	fen, err := chess.FEN(position)
	if err != nil {
		return nil, fmt.Errorf("record position: %w", err)
	}
	g := chess.NewGame(fen)
	g.AddTagPair("Event", "Chessroom game "+id)
	g.AddTagPair("Site", site)
	g.AddTagPair("Date", start.Format("2006.01.02"))
	g.AddTagPair("Round", "-")
	g.AddTagPair("White", "?")
	g.AddTagPair("Black", "?")
	g.AddTagPair("Result", chess.NoOutcome.String())
	if position != rules.StartPosition {
		g.AddTagPair("SetUp", "1")
		g.AddTagPair("FEN", position)
	}
	return &game{id: id, name: name, chess: g}, nil
}

func (g *game) add(r rules.Result) error {
	if err := g.chess.MoveStr(r.SAN); err != nil {
		return err
	}
	if r.IsOver() {
		g.over = true
		g.chess.AddTagPair("Termination", "normal")
	}
	return nil
}

func (g *game) isOver() bool { return g.over }

func (g *game) result() string { return g.chess.Outcome().String() }

// pgn makes the export format of the game.
func (g *game) pgn() []byte {
	g.chess.AddTagPair("Result", g.result())
	return []byte(g.chess.String() + "\n")
}
