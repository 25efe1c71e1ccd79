package os

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetry = 50 * time.Millisecond

var ErrLockTimeout = errors.New("lock timeout")

// Flock is an advisory lock shared between processes
// through a lock file.
type Flock struct {
	f *flock.Flock
}

// NewFileLock creates the dirs of the lock file.
// The file itself is made on the first lock.
func NewFileLock(path string) (*Flock, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), "chessroom.lock")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return nil, err
	}
	return &Flock{f: flock.New(path)}, nil
}

func (f *Flock) Lock() error { return f.f.Lock() }

// LockContext waits for the lock until the context is done.
func (f *Flock) LockContext(ctx context.Context) error {
	ok, err := f.f.TryLockContext(ctx, lockRetry)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if !ok {
		return ErrLockTimeout
	}
	return nil
}

func (f *Flock) Unlock() error { return f.f.Unlock() }

func (f *Flock) Path() string { return f.f.Path() }
