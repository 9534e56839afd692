// Package store holds the client's in-memory state between the screens and
// the use-cases. Every action sets IsLoading for its duration, records a
// human-readable Error on failure and returns the error to the caller.
package store

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"eventsportal/internal/adapters/httpclient"
)

// errorMessage picks the API's own message when there is one, else fallback.
func errorMessage(err error, fallback string) string {
	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}

// listeners is a set of change callbacks keyed by subscription id.
type listeners[S any] struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(S)
}

func (l *listeners[S]) add(fn func(S)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func(S))
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.fns, id)
	}
}

func (l *listeners[S]) notify(state S) {
	l.mu.Lock()
	fns := make([]func(S), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn(state)
	}
}
