package coordinator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/giongto35/chessroom/pkg/api"
	"github.com/giongto35/chessroom/pkg/config"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/rules"
	"github.com/gorilla/websocket"
)

const wait = 3 * time.Second

type client struct {
	t    *testing.T
	name string
	conn *websocket.Conn
}

func newCoordinator(t *testing.T, opts ...func(*config.Config)) *Coordinator {
	t.Helper()
	conf := config.Config{}
	conf.Room.StartPosition = rules.StartPosition
	conf.Room.SendQueue = 16
	conf.Room.Server.Address = "localhost:0"
	for _, opt := range opts {
		opt(&conf)
	}

	c, err := New(conf, logger.Nop())
	if err != nil {
		t.Fatalf("couldn't create the coordinator, %v", err)
	}
	c.Start()
	return c
}

func dial(t *testing.T, addr, name string) *client {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(fmt.Sprintf("ws://%s/ws", addr), nil)
	if err != nil {
		t.Fatalf("%v couldn't connect, %v", name, err)
	}
	return &client{t: t, name: name, conn: conn}
}

func (c *client) send(t api.PT, payload string) {
	c.t.Helper()
	msg := fmt.Sprintf(`{"t":"%s","p":%s}`, t, payload)
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
		c.t.Fatalf("%v couldn't send, %v", c.name, err)
	}
}

// next returns the next event of the client.
func (c *client) next() api.In {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(wait))
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		c.t.Fatalf("%v has no events, %v", c.name, err)
	}
	var in api.In
	if err = json.Unmarshal(data, &in); err != nil {
		c.t.Fatalf("%v got a bad event %s, %v", c.name, data, err)
	}
	return in
}

// expect checks that the next event is of the type.
func (c *client) expect(t api.PT) json.RawMessage {
	c.t.Helper()
	in := c.next()
	if in.T != t {
		c.t.Fatalf("%v got %v (%s), want %v", c.name, in.T, in.Payload, t)
	}
	return in.Payload
}

func (c *client) expectString(t api.PT, want string) {
	c.t.Helper()
	var got string
	if err := json.Unmarshal(c.expect(t), &got); err != nil || got != want {
		c.t.Fatalf("%v got %v %q, want %q", c.name, t, got, want)
	}
}

func (c *client) players() api.PlayersResponse {
	c.t.Helper()
	var p api.PlayersResponse
	if err := json.Unmarshal(c.expect(api.Players), &p); err != nil {
		c.t.Fatal(err)
	}
	return p
}

func (c *client) close() { _ = c.conn.Close() }

func signal(target string) string {
	return fmt.Sprintf(`{"target":"%s","payload":{"candidate":"x"}}`, target)
}

func TestGame(t *testing.T) {
	c := newCoordinator(t)
	defer func() { _ = c.Shutdown(context.Background()) }()

	a := dial(t, c.Addr(), "a")
	defer a.close()
	a.expectString(api.PlayerRole, "white")
	a.expectString(api.BoardState, rules.StartPosition)
	aId := a.players().White

	b := dial(t, c.Addr(), "b")
	defer b.close()
	b.expectString(api.PlayerRole, "black")
	b.expectString(api.BoardState, rules.StartPosition)
	seats := b.players()
	bId := seats.Black
	if seats.White != aId || bId == "" {
		t.Fatalf("wrong seats %+v", seats)
	}
	if p := a.players(); p != seats {
		t.Errorf("white got wrong seats %+v", p)
	}

	s := dial(t, c.Addr(), "s")
	defer s.close()
	s.expect(api.SpectatorRole)
	s.expectString(api.BoardState, rules.StartPosition)

	// not their turn, the self-signal marks the end of the processing
	b.send(api.Move, `{"from":"e7","to":"e5"}`)
	b.send(api.Signal, signal(bId))
	b.expect(api.Signal)
	s.send(api.Move, `{"from":"e2","to":"e4"}`)
	s.send(api.Signal, signal(aId))
	a.expect(api.Signal)

	// illegal
	a.send(api.Move, `{"from":"e2","to":"e5"}`)
	var inv api.MoveRequest
	if err := json.Unmarshal(a.expect(api.InvalidMove), &inv); err != nil || inv.From != "e2" || inv.To != "e5" {
		t.Errorf("invalidMove should have the original move, got %+v", inv)
	}

	a.send(api.Move, `{"from":"e2","to":"e4"}`)
	a.expect(api.Move)
	st := c.Room().State()
	if !strings.HasPrefix(st.Position, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b ") || st.Turn != rules.Black {
		t.Errorf("wrong state %+v", st)
	}
	after := st.Position
	a.expectString(api.BoardState, after)
	for _, cl := range []*client{b, s} {
		var m api.MoveRequest
		if err := json.Unmarshal(cl.expect(api.Move), &m); err != nil || m.From != "e2" || m.To != "e4" {
			t.Errorf("%v got wrong move %+v", cl.name, m)
		}
		cl.expectString(api.BoardState, after)
	}

	// relay with the sender id
	a.send(api.Signal, `{"target":"`+bId+`","payload":{"type":"offer","sdp":"v=0"}}`)
	var sig api.SignalResponse
	if err := json.Unmarshal(b.expect(api.Signal), &sig); err != nil || sig.From != aId {
		t.Errorf("wrong signal %+v", sig)
	}
	if string(sig.Payload) != `{"type":"offer","sdp":"v=0"}` {
		t.Errorf("the signal payload has changed %s", sig.Payload)
	}

	// the white seat goes to the next one
	a.close()
	deadline := time.Now().Add(wait)
	for !c.Room().State().White.IsEmpty() {
		if time.Now().After(deadline) {
			t.Fatalf("the white seat is still taken")
		}
		time.Sleep(10 * time.Millisecond)
	}
	d := dial(t, c.Addr(), "d")
	defer d.close()
	d.expectString(api.PlayerRole, "white")
	d.expectString(api.BoardState, after)
}

func TestBadPackets(t *testing.T) {
	c := newCoordinator(t)
	defer func() { _ = c.Shutdown(context.Background()) }()

	a := dial(t, c.Addr(), "a")
	defer a.close()
	a.expect(api.PlayerRole)
	a.expect(api.BoardState)
	aId := a.players().White

	for _, msg := range []string{`garbage`, `{"t":"boardState","p":"x"}`, `{"t":"signal","p":{}}`} {
		if err := a.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			t.Fatal(err)
		}
	}
	// malformed move of the entitled player
	a.send(api.Move, `"e2e4"`)
	if got := a.expect(api.InvalidMove); string(got) != `"e2e4"` {
		t.Errorf("got %s", got)
	}
	// still alive
	a.send(api.Signal, signal(aId))
	a.expect(api.Signal)
}

func TestHealthz(t *testing.T) {
	c := newCoordinator(t)
	defer func() { _ = c.Shutdown(context.Background()) }()

	resp, err := http.Get("http://" + c.Addr() + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("got %v %s", resp.StatusCode, body)
	}
}

func TestJoinWithSmallQueue(t *testing.T) {
	c := newCoordinator(t, func(conf *config.Config) {
		conf.Room.SendQueue = 1
		conf.Webrtc.IceServers = []config.IceServer{{Urls: "stun:stun.example.com:3478"}}
	})
	defer func() { _ = c.Shutdown(context.Background()) }()

	a := dial(t, c.Addr(), "a")
	defer a.close()
	a.expectString(api.PlayerRole, "white")
	a.expectString(api.BoardState, rules.StartPosition)
	a.expect(api.IceServers)
	if p := a.players(); p.White == "" {
		t.Errorf("no white id in %+v", p)
	}
}
