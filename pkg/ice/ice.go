// Package ice prepares the list of ICE servers for the players,
// who set up their own peer connection for the video chat.
package ice

import (
	"errors"
	"fmt"

	"github.com/giongto35/chessroom/pkg/config"
	"github.com/pion/ice/v2"
	"github.com/pion/webrtc/v3"
)

var ErrNoCredentials = errors.New("TURN or TURNS servers should have both username and credential")

// Servers converts the config into the browser-compatible
// RTCIceServer list, checking the URLs along the way.
func Servers(conf []config.IceServer) ([]webrtc.ICEServer, error) {
	if len(conf) == 0 {
		return nil, nil
	}
	servers := make([]webrtc.ICEServer, 0, len(conf))
	for _, server := range conf {
		url, err := ice.ParseURL(server.Urls)
		if err != nil {
			return nil, fmt.Errorf("ice server %q: %w", server.Urls, err)
		}
		if isTurn(url) && (server.Username == "" || server.Credential == "") {
			return nil, fmt.Errorf("%w: %v", ErrNoCredentials, server.Urls)
		}
		s := webrtc.ICEServer{URLs: []string{server.Urls}}
		if isTurn(url) {
			s.Username = server.Username
			s.Credential = server.Credential
			s.CredentialType = webrtc.ICECredentialTypePassword
		}
		servers = append(servers, s)
	}
	return servers, nil
}

func isTurn(url *ice.URL) bool {
	return url.Scheme == ice.SchemeTypeTURN || url.Scheme == ice.SchemeTypeTURNS
}
