package httpx

import (
	"net"
	"strconv"
	"strings"
)

type Address string

// SplitHostPort splits the address into host and port parts,
// the port is 0 when missing or invalid.
func (a Address) SplitHostPort() (string, int) {
	host, portStr, err := net.SplitHostPort(string(a))
	if err != nil {
		return string(a), 0
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, 0
	}
	return host, port
}

// buildAddress joins network host from the first param
// with the port value of a listener from the second param.
//
// As example, address host.com:8080 and listener 123.123.123.123:8888 will be
// transformed to host.com:8888.
func buildAddress(address string, l Listener) string {
	addr, _, err := net.SplitHostPort(address)
	if err != nil {
		addr = address
	}
	if addr == "" {
		addr = "localhost"
	}

	port := l.GetPort()
	if port > 0 && port != 80 && port != 443 {
		addr += ":" + strconv.Itoa(port)
	}
	return addr
}

func extractHost(address string) string {
	if strings.HasPrefix(address, "[") {
		if host, _, err := net.SplitHostPort(address); err == nil {
			return host
		}
		return address
	}
	if i := strings.LastIndex(address, ":"); i >= 0 {
		return address[:i]
	}
	return address
}

// MergeAddresses replaces the port of the address, i.e.
// 127.0.0.1:3000 and 6601 give 127.0.0.1:6601.
func MergeAddresses(address string, port int) string {
	host, _ := Address(address).SplitHostPort()
	return net.JoinHostPort(strings.Trim(host, "[]"), strconv.Itoa(port))
}
