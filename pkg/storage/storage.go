// Package storage uploads the finished game records.
package storage

import (
	"errors"
	"fmt"

	"github.com/giongto35/chessroom/pkg/config"
)

// CloudStorage keeps a copy of a local file under the name.
type CloudStorage interface {
	Save(name string, localPath string) error
}

var ErrUnknownProvider = errors.New("unknown storage provider")

// NewStorage returns the configured storage.
// An empty provider means no storage.
func NewStorage(conf config.Storage) (CloudStorage, error) {
	switch conf.Provider {
	case "", "noop":
		return &NoopCloudStorage{}, nil
	case "google":
		return NewGoogleCloudClient(conf.Bucket)
	case "oracle":
		return NewOracleClient(conf.AccessURL)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownProvider, conf.Provider)
	}
}
