package locker

import (
	"context"
	"database/sql"
	"sync"

	"github.com/jinzhu/gorm"
)

// AdvisoryLocker holds a Postgres advisory lock for the duration of a
// recalculation. The lock is visible to every instance sharing the database,
// so two servers cannot rebuild the blotter at the same time.
//
// Advisory locks are session-scoped, so the locker pins one connection from
// the pool while held and returns it on release.
type AdvisoryLocker struct {
	db  *sql.DB
	key int64

	mu   sync.Mutex
	conn *sql.Conn
}

func NewAdvisoryLocker(db *gorm.DB, key int64) *AdvisoryLocker {
	return &AdvisoryLocker{db: db.DB(), key: key}
}

func (l *AdvisoryLocker) TryAcquire(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn != nil {
		return false, nil
	}

	conn, err := l.db.Conn(ctx)
	if err != nil {
		return false, err
	}

	var acquired bool
	if err := conn.QueryRowContext(ctx, "SELECT pg_try_advisory_lock($1)", l.key).Scan(&acquired); err != nil {
		conn.Close()
		return false, err
	}
	if !acquired {
		conn.Close()
		return false, nil
	}

	l.conn = conn
	return true, nil
}

func (l *AdvisoryLocker) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.conn == nil {
		return nil
	}

	_, err := l.conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", l.key)
	closeErr := l.conn.Close()
	l.conn = nil

	if err != nil {
		return err
	}
	return closeErr
}
