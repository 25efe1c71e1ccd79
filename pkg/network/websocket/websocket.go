package websocket

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/gorilla/websocket"
)

const (
	maxMessageSize = 10 * 1024
	pingTime       = pongTime * 9 / 10
	pongTime       = 60 * time.Second
	writeWait      = 10 * time.Second

	defaultQueue = 64
)

type WS struct {
	sock      *websocket.Conn
	closeOnce sync.Once
	send      chan []byte
	quit      chan struct{}
	once      sync.Once

	OnMessage MessageHandler

	pingPong bool

	shutdown sync.WaitGroup
	Done     chan struct{}
	log      *logger.Logger
}

type MessageHandler func(message []byte, err error)

type Upgrader struct {
	websocket.Upgrader
}

var DefaultUpgrader = Upgrader{
	Upgrader: websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		WriteBufferPool: &sync.Pool{},
		CheckOrigin:     func(*http.Request) bool { return true },
	},
}

// NewUpgrader makes an upgrader that accepts only the given origin.
// An empty origin means any.
func NewUpgrader(origin string) *Upgrader {
	u := DefaultUpgrader
	if origin == "" {
		return &u
	}
	u.CheckOrigin = func(r *http.Request) bool {
		o := r.Header.Get("Origin")
		return o == "" || o == origin
	}
	return &u
}

// NewServer upgrades the HTTP request into a websocket connection.
// The queue param sets the size of the outbound message buffer.
func (u *Upgrader) NewServer(w http.ResponseWriter, r *http.Request, queue int, log *logger.Logger) (*WS, error) {
	conn, err := u.Upgrade(w, r, nil)
	if err != nil {
		return nil, err
	}
	return newSocket(conn, true, queue, log), nil
}

func NewClient(address url.URL, log *logger.Logger) (*WS, error) {
	conn, _, err := websocket.DefaultDialer.Dial(address.String(), nil)
	if err != nil {
		return nil, err
	}
	return newSocket(conn, false, defaultQueue, log), nil
}

func newSocket(conn *websocket.Conn, pingPong bool, queue int, log *logger.Logger) *WS {
	if queue <= 0 {
		queue = defaultQueue
	}
	if log == nil {
		log = logger.Default()
	}
	return &WS{
		sock:      conn,
		send:      make(chan []byte, queue),
		quit:      make(chan struct{}),
		pingPong:  pingPong,
		Done:      make(chan struct{}),
		OnMessage: func([]byte, error) {},
		log:       log,
	}
}

// Listen starts the read and write pumps.
// The returned channel is closed when both of them are finished.
func (ws *WS) Listen() chan struct{} {
	ws.shutdown.Add(2)
	go ws.writer()
	go ws.reader()
	go func() {
		ws.shutdown.Wait()
		ws.closeSock()
		close(ws.Done)
	}()
	return ws.Done
}

// reader pumps messages from the websocket connection to the OnMessage callback.
// Blocking, must be called as goroutine. Serializes all websocket reads.
func (ws *WS) reader() {
	defer func() {
		ws.stop()
		ws.shutdown.Done()
		ws.log.Debug().Msg("[ws] reader closed")
	}()
	ws.sock.SetReadLimit(maxMessageSize)
	if ws.pingPong {
		_ = ws.sock.SetReadDeadline(time.Now().Add(pongTime))
		ws.sock.SetPongHandler(func(string) error { return ws.sock.SetReadDeadline(time.Now().Add(pongTime)) })
	}
	for {
		_, message, err := ws.sock.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ws.log.Warn().Err(err).Msg("[ws] read")
			}
			return
		}
		ws.OnMessage(message, nil)
	}
}

// writer pumps messages from the send channel to the websocket connection.
// Blocking, must be called as goroutine. Serializes all websocket writes.
func (ws *WS) writer() {
	var ping <-chan time.Time
	if ws.pingPong {
		ticker := time.NewTicker(pingTime)
		defer ticker.Stop()
		ping = ticker.C
	}
	defer func() {
		_ = ws.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		// unblocks the reader
		ws.closeSock()
		ws.shutdown.Done()
		ws.log.Debug().Msg("[ws] writer closed")
	}()
	for {
		select {
		case message := <-ws.send:
			if err := ws.write(websocket.TextMessage, message); err != nil {
				ws.log.Warn().Err(err).Msg("[ws] write")
				ws.stop()
				return
			}
		case <-ping:
			if err := ws.write(websocket.PingMessage, nil); err != nil {
				ws.stop()
				return
			}
		case <-ws.quit:
			return
		}
	}
}

// Write puts the message into the outbound queue without blocking.
// Returns false if the socket is closed or the queue is full.
// A full queue closes the socket, so the peer never misses
// a message and stays connected.
func (ws *WS) Write(data []byte) bool {
	select {
	case <-ws.quit:
		return false
	default:
	}
	select {
	case ws.send <- data:
		return true
	default:
		ws.log.Warn().Int("queue", cap(ws.send)).Msg("[ws] send queue overflow, closing")
		ws.stop()
		return false
	}
}

// Close stops the socket, the Done channel should be used to wait for it.
func (ws *WS) Close() { ws.stop() }

func (ws *WS) stop() { ws.once.Do(func() { close(ws.quit) }) }

// write sends a frame, giving up after writeWait.
// Must be called only from the writer.
func (ws *WS) write(t int, data []byte) error {
	if err := ws.sock.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.sock.WriteMessage(t, data)
}

func (ws *WS) closeSock() { ws.closeOnce.Do(func() { _ = ws.sock.Close() }) }
