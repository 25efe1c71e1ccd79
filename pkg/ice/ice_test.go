package ice

import (
	"errors"
	"testing"

	"github.com/giongto35/chessroom/pkg/config"
)

func TestServers(t *testing.T) {
	tests := []struct {
		name    string
		conf    []config.IceServer
		want    int
		wantErr bool
	}{
		{name: "empty"},
		{name: "stun", conf: []config.IceServer{{Urls: "stun:stun.l.google.com:19302"}}, want: 1},
		{
			name: "stun and turn",
			conf: []config.IceServer{
				{Urls: "stun:stun.l.google.com:19302"},
				{Urls: "turn:turn.example.com:3478", Username: "u", Credential: "p"},
			},
			want: 2,
		},
		{name: "turn without credentials", conf: []config.IceServer{{Urls: "turn:turn.example.com:3478"}}, wantErr: true},
		{name: "bad scheme", conf: []config.IceServer{{Urls: "http://example.com"}}, wantErr: true},
		{name: "no url", conf: []config.IceServer{{}}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			servers, err := Servers(test.conf)
			if (err != nil) != test.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if len(servers) != test.want {
				t.Errorf("got %v servers, want %v", len(servers), test.want)
			}
		})
	}
}

func TestTurnCredentials(t *testing.T) {
	_, err := Servers([]config.IceServer{{Urls: "turns:turn.example.com:5349", Username: "u"}})
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("got %v, want %v", err, ErrNoCredentials)
	}

	servers, err := Servers([]config.IceServer{{Urls: "stun:stun.example.com:3478", Username: "u", Credential: "p"}})
	if err != nil {
		t.Fatal(err)
	}
	if servers[0].Username != "" || servers[0].Credential != nil {
		t.Errorf("STUN servers don't need credentials, %+v", servers[0])
	}
}
