package contacts

import (
	"context"
	"sync/atomic"
)

// lifetime is the liveness token shared between a loader and its pending completions.
// Completions hold the token instead of the loader, so a pending request never keeps the loader reachable.
// The token ends either through an explicit Close or when the loader is garbage collected.
type lifetime struct {
	ctx    context.Context
	cancel context.CancelFunc
	alive  atomic.Bool
}

func newLifetime() *lifetime {
	ctx, cancel := context.WithCancel(context.Background())

	l := &lifetime{ctx: ctx, cancel: cancel}
	l.alive.Store(true)

	return l
}

// end marks the owner as discarded and cancels the context handed to transports. It is idempotent.
func (l *lifetime) end() {
	l.alive.Store(false)
	l.cancel()
}

func (l *lifetime) isAlive() bool {
	return l.alive.Load()
}

// loadState tracks one Load call: Idle -> Requested -> {Delivered | Suppressed}.
type loadState int32

const (
	stateIdle loadState = iota
	stateRequested
	stateDelivered
	stateSuppressed
)

func (s loadState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateRequested:
		return "requested"
	case stateDelivered:
		return "delivered"
	case stateSuppressed:
		return "suppressed"
	}

	return "unknown"
}
