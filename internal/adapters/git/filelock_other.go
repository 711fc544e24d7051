//go:build !unix

package git

import "context"

// fileLock is a no-op where flock is unavailable; only in-process locking applies
type fileLock struct{}

func lockFile(ctx context.Context, path string, exclusive bool) (*fileLock, error) {
	return &fileLock{}, ctx.Err()
}

func (l *fileLock) unlock() {}
