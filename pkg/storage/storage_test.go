package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/giongto35/chessroom/pkg/config"
)

func TestNewStorage(t *testing.T) {
	tests := []struct {
		conf    config.Storage
		want    string
		wantErr error
	}{
		{conf: config.Storage{}, want: "*storage.NoopCloudStorage"},
		{conf: config.Storage{Provider: "noop"}, want: "*storage.NoopCloudStorage"},
		{conf: config.Storage{Provider: "oracle", AccessURL: "https://o/"}, want: "*storage.OracleClient"},
		{conf: config.Storage{Provider: "dropbox"}, wantErr: ErrUnknownProvider},
	}
	for _, test := range tests {
		s, err := NewStorage(test.conf)
		if test.wantErr != nil {
			if !errors.Is(err, test.wantErr) {
				t.Errorf("%v: got %v, want %v", test.conf.Provider, err, test.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%v: %v", test.conf.Provider, err)
		}
		if got := typeName(s); got != test.want {
			t.Errorf("got %v, want %v", got, test.want)
		}
	}
}

func TestNoop(t *testing.T) {
	s := &NoopCloudStorage{}
	if err := s.Save("a", "/nowhere"); err != nil {
		t.Errorf("noop save should always succeed, %v", err)
	}
}

func typeName(v any) string { return fmt.Sprintf("%T", v) }
