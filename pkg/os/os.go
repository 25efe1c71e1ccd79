// Package os has the file system and process helpers.
package os

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
)

func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// CheckCreateDir makes the dir with all its parents if needed.
func CheckCreateDir(path string) error { return os.MkdirAll(path, 0755) }

// ExpectTermination returns a channel that is closed
// on the first SIGINT or SIGTERM.
func ExpectTermination() <-chan struct{} {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx.Done()
}

// Args returns the command-line arguments without the program name.
func Args() []string { return os.Args[1:] }
