package httpx

import (
	"errors"
	"net"
	"runtime"
	"strconv"
	"syscall"
)

const maxPortRollAttempts = 42

type Listener struct {
	net.Listener
}

// NewListener listens on the TCP address.
// With the roll flag a busy port is replaced with
// one of the next ports.
func NewListener(address string, roll bool) (*Listener, error) {
	ls, err := net.Listen("tcp", address)
	if err == nil {
		return &Listener{ls}, nil
	}
	if !roll || !isAddrInUse(err) {
		return nil, err
	}
	host, port := Address(address).SplitHostPort()
	for i := 1; i < maxPortRollAttempts; i++ {
		if ls, er := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port+i))); er == nil {
			return &Listener{ls}, nil
		}
	}
	return nil, err
}

func (l Listener) GetPort() int {
	if l.Listener == nil {
		return 0
	}
	if tcp, ok := l.Addr().(*net.TCPAddr); ok && tcp != nil {
		return tcp.Port
	}
	return 0
}

func isAddrInUse(err error) bool {
	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}
	const wsaeaddrinuse = syscall.Errno(10048)
	return runtime.GOOS == "windows" && errors.Is(err, wsaeaddrinuse)
}
