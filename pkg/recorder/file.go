package recorder

import (
	"context"
	"os"
	"path/filepath"
	"time"

	oss "github.com/giongto35/chessroom/pkg/os"
)

// file is a record file that is fully rewritten on each update,
// so readers never see a half-written game.
type file struct {
	path string
	lock *oss.Flock
}

const lockWait = 5 * time.Second

func newFile(dir, name string) (*file, error) {
	lock, err := oss.NewFileLock(filepath.Join(dir, ".lock"))
	if err != nil {
		return nil, err
	}
	return &file{path: filepath.Join(dir, name), lock: lock}, nil
}

func (f *file) Write(data []byte) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), lockWait)
	defer cancel()
	if err = f.lock.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		if er := f.lock.Unlock(); err == nil {
			err = er
		}
	}()

	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
