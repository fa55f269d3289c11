// locker/locker.go
package locker

import (
	"context"
	"sync"
)

// Locker gates the recalculation batch: at most one run system-wide.
type Locker interface {
	// TryAcquire returns false immediately when the lock is already held.
	TryAcquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// InMemoryLocker serializes recalculation within a single process. Suitable
// for tests and single-instance local runs only; multi-instance deployments
// need the advisory locker.
type InMemoryLocker struct {
	mu   sync.Mutex
	held bool
}

func NewInMemoryLocker() *InMemoryLocker {
	return &InMemoryLocker{}
}

func (l *InMemoryLocker) TryAcquire(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return false, nil
	}
	l.held = true
	return true, nil
}

func (l *InMemoryLocker) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = false
	return nil
}
