package locker

import "context"

// AdvisoryLocker serialises critical sections across processes. The Postgres
// implementation uses session advisory locks; WithLock ensures lock and unlock
// occur on the same DB connection, which session-level locks require.
type AdvisoryLocker interface {
	WithLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error
}
