// Package service runs the parts of the app that live
// for the whole process: servers, background writers.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// RunnableService is started without blocking and stopped on shutdown.
type RunnableService interface {
	Run()
	Stop() error
}

// Group keeps services in the start order.
// Anything not runnable is kept but ignored.
type Group struct {
	list []any
}

func (g *Group) Add(services ...any) { g.list = append(g.list, services...) }

func (g *Group) AddIf(condition bool, services ...any) {
	if condition {
		g.Add(services...)
	}
}

func (g *Group) Len() int { return len(g.list) }

func (g *Group) Start() {
	for _, s := range g.list {
		if r, ok := s.(RunnableService); ok {
			r.Run()
		}
	}
}

// ShutdownError lists the services that failed to stop.
type ShutdownError []error

func (e ShutdownError) Error() string {
	msg := make([]string, len(e))
	for i, err := range e {
		msg[i] = err.Error()
	}
	return "shutdown: " + strings.Join(msg, "; ")
}

// Shutdown stops the services in the reverse order,
// so the dependent ones go first. It gives up when
// the context is done.
func (g *Group) Shutdown(ctx context.Context) error {
	var errs ShutdownError
	for i := len(g.list) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		r, ok := g.list[i].(RunnableService)
		if !ok {
			continue
		}
		if err := r.Stop(); err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, fmt.Errorf("[%v] %w", g.list[i], err))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
