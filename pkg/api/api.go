// Package api defines the wire protocol between the room and its clients.
//
// Each message is a JSON-encoded "packet" of the following structure:
//
//	t - (required) one of the predefined event types;
//	p - (optional) event payload.
//
// Clients may send only the move and signal packets,
// everything else is server-to-client.
//
// Example:
//
//	{"t":"move","p":{"from":"e2","to":"e4","promotion":"q"}}
//	{"t":"boardState","p":"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"}
package api

import (
	"encoding/json"
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"
)

type PT string

const (
	PlayerRole    PT = "playerRole"
	SpectatorRole PT = "spectatorRole"
	BoardState    PT = "boardState"
	Move          PT = "move"
	InvalidMove   PT = "invalidMove"
	Signal        PT = "signal"
	Players       PT = "players"
	IceServers    PT = "iceServers"
)

func (p PT) String() string { return string(p) }

type In struct {
	T       PT              `json:"t"`
	Payload json.RawMessage `json:"p,omitempty"` // should be json.RawMessage for 2-pass unmarshal
}

type Out struct {
	T       PT  `json:"t"`
	Payload any `json:"p,omitempty"`
}

var (
	ErrMalformed   = errors.New("malformed")
	ErrUnknownType = errors.New("unknown packet type")
)

// Request is one of the client packets: MoveRequest or SignalRequest.
type Request interface {
	Type() PT
}

// MoveRequest is a move proposal.
// Raw keeps the payload exactly as it was submitted,
// Malformed marks payloads that couldn't be decoded.
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`

	Raw       json.RawMessage `json:"-"`
	Malformed bool            `json:"-"`
}

func (MoveRequest) Type() PT { return Move }

type SignalRequest struct {
	Target  string          `json:"target"`
	Payload json.RawMessage `json:"payload"`
}

func (SignalRequest) Type() PT { return Signal }

type SignalResponse struct {
	Payload json.RawMessage `json:"payload"`
	From    string          `json:"from"`
}

type PlayersResponse struct {
	White string `json:"white,omitempty"`
	Black string `json:"black,omitempty"`
}

// Decode unwraps a client packet into one of the known requests.
//
// A move with an undecodable payload is not an error here,
// it is returned as a malformed MoveRequest, so that it could
// be judged (or ignored) by the room like any other move.
func Decode(data []byte) (Request, error) {
	var in In
	if err := gojson.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch in.T {
	case Move:
		rq := MoveRequest{Raw: in.Payload}
		if err := gojson.Unmarshal(in.Payload, &rq); err != nil {
			rq.Malformed = true
		}
		return rq, nil
	case Signal:
		rq := Unwrap[SignalRequest](in.Payload)
		if rq == nil || rq.Target == "" {
			return nil, fmt.Errorf("%w: signal", ErrMalformed)
		}
		return *rq, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, in.T)
	}
}

// Encode wraps the payload into a server packet.
func Encode(t PT, payload any) ([]byte, error) { return gojson.Marshal(Out{T: t, Payload: payload}) }

func Unwrap[T any](data []byte) *T {
	out := new(T)
	if err := gojson.Unmarshal(data, out); err != nil {
		return nil
	}
	return out
}
