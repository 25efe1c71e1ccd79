package rules

import (
	"errors"
	"strings"
	"testing"
)

const start = StartPosition

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		position string
		move     Move
		err      error
		turn     Color
		san      string
		board    string
	}{
		{
			name:     "pawn push",
			position: start,
			move:     Move{From: "e2", To: "e4"},
			turn:     Black,
			san:      "e4",
			board:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		},
		{
			name:     "promotion designator is ignored for regular moves",
			position: start,
			move:     Move{From: "g1", To: "f3", Promotion: "q"},
			turn:     Black,
			san:      "Nf3",
			board:    "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R",
		},
		{
			name:     "uppercase squares",
			position: start,
			move:     Move{From: "D2", To: "D4", Promotion: "queen"},
			turn:     Black,
			san:      "d4",
		},
		{
			name:     "underpromotion",
			position: "8/P7/8/8/8/8/8/k6K w - - 0 1",
			move:     Move{From: "a7", To: "a8", Promotion: "n"},
			turn:     Black,
			board:    "N7/8/8/8/8/8/8/k6K",
		},
		{
			name:     "default promotion is queen",
			position: "8/P7/8/8/8/8/8/k6K w - - 0 1",
			move:     Move{From: "a7", To: "a8"},
			turn:     Black,
			board:    "Q7/8/8/8/8/8/8/k6K",
		},
		{name: "wrong side", position: start, move: Move{From: "e7", To: "e5"}, err: ErrIllegal},
		{name: "impossible", position: start, move: Move{From: "e2", To: "e5"}, err: ErrIllegal},
		{name: "empty square", position: start, move: Move{From: "e4", To: "e5"}, err: ErrIllegal},
		{name: "bad square", position: start, move: Move{From: "z9", To: "e4"}, err: ErrMalformed},
		{name: "no squares", position: start, move: Move{}, err: ErrMalformed},
		{name: "bad promotion", position: start, move: Move{From: "e2", To: "e4", Promotion: "king"}, err: ErrMalformed},
		{name: "bad position", position: "not a fen", move: Move{From: "e2", To: "e4"}, err: ErrMalformed},
	}

	engine := NewChess()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := engine.Apply(test.position, test.move)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("expected %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Turn != test.turn {
				t.Errorf("expected %v to move, got %v", test.turn, r.Turn)
			}
			if test.san != "" && r.SAN != test.san {
				t.Errorf("expected SAN %v, got %v", test.san, r.SAN)
			}
			if test.board != "" && !strings.HasPrefix(r.Position, test.board+" ") {
				t.Errorf("expected board %v, got %v", test.board, r.Position)
			}
			if r.IsOver() {
				t.Errorf("the game should go on, got %v", r.Outcome)
			}
		})
	}
}

func TestCheckmate(t *testing.T) {
	engine := NewChess()
	position := start
	var r Result
	var err error
	for _, m := range []Move{{"f2", "f3", "q"}, {"e7", "e5", "q"}, {"g2", "g4", "q"}, {"d8", "h4", "q"}} {
		if r, err = engine.Apply(position, m); err != nil {
			t.Fatalf("move %v failed: %v", m, err)
		}
		position = r.Position
	}

	if !r.IsOver() || r.Outcome != "0-1" || r.Status != "checkmate" {
		t.Errorf("expected black to win by checkmate, got %+v", r)
	}
	if r.SAN != "Qh4#" {
		t.Errorf("expected Qh4#, got %v", r.SAN)
	}

	if _, err = engine.Apply(position, Move{From: "e2", To: "e4"}); !errors.Is(err, ErrIllegal) {
		t.Errorf("no moves after checkmate, got %v", err)
	}
}

func TestTurn(t *testing.T) {
	engine := NewChess()
	if c, err := engine.Turn(start); err != nil || c != White {
		t.Errorf("expected white, got %v %v", c, err)
	}
	if c, err := engine.Turn("8/8/8/8/8/8/8/k6K b - - 0 1"); err != nil || c != Black {
		t.Errorf("expected black, got %v %v", c, err)
	}
	if _, err := engine.Turn("?"); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected malformed, got %v", err)
	}
}

func TestColorString(t *testing.T) {
	if White.String() != "white" || Black.String() != "black" || NoColor.String() != "" {
		t.Errorf("bad color names")
	}
}
