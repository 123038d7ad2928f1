// Package keylock serializes work on string keys within one process.
package keylock

import (
	"context"
	"sync"
)

// Locker hands out one holder per key at a time. Waiters block until the
// holder releases the key or their context is done. Keys with no holder and
// no waiters are dropped from the table.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	// released is closed and replaced on every release
	released chan struct{}
	held     bool
	refs     int
}

func New() *Locker {
	return &Locker{locks: make(map[string]*entry)}
}

// Lock implements ports.Locker. The returned unlock func is idempotent.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{released: make(chan struct{})}
		l.locks[key] = e
	}
	e.refs++

	for e.held {
		wait := e.released
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			l.mu.Lock()
			l.drop(key, e)
			l.mu.Unlock()
			return nil, ctx.Err()
		case <-wait:
		}

		l.mu.Lock()
	}
	e.held = true
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			e.held = false
			close(e.released)
			e.released = make(chan struct{})
			l.drop(key, e)
		})
	}, nil
}

func (l *Locker) drop(key string, e *entry) {
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// Len reports how many keys are currently held or awaited.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
