package git

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/renato0307/gitwatch/internal/logging"
)

// writerWeight is the full capacity of a repository semaphore. Readers take 1,
// writers take everything, so a writer excludes readers and other writers.
const writerWeight int64 = 1 << 20

// lockRegistry hands out per-repository reader/writer locks. Distinct
// repository paths never share a lock.
type lockRegistry struct {
	dir  string
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func newLockRegistry(dir string) *lockRegistry {
	return &lockRegistry{
		dir:  dir,
		sems: make(map[string]*semaphore.Weighted),
	}
}

// acquire blocks until the lock for repoPath is held or ctx is done.
// The returned release func must be called exactly once.
func (r *lockRegistry) acquire(ctx context.Context, repoPath string, exclusive bool) (func(), error) {
	key := lockKey(repoPath)
	sem := r.semaphore(key)

	weight := int64(1)
	if exclusive {
		weight = writerWeight
	}

	if err := sem.Acquire(ctx, weight); err != nil {
		return nil, fmt.Errorf("waiting for lock on %s: %w", repoPath, err)
	}

	var fl *fileLock
	if r.dir != "" {
		var err error
		fl, err = lockFile(ctx, filepath.Join(r.dir, lockFileName(key)), exclusive)
		if err != nil {
			sem.Release(weight)
			return nil, fmt.Errorf("waiting for lock file on %s: %w", repoPath, err)
		}
	}

	logging.Logger.Debug("Repository lock acquired", "repo", key, "exclusive", exclusive)

	var once sync.Once
	return func() {
		once.Do(func() {
			if fl != nil {
				fl.unlock()
			}
			sem.Release(weight)
			logging.Logger.Debug("Repository lock released", "repo", key, "exclusive", exclusive)
		})
	}, nil
}

func (r *lockRegistry) semaphore(key string) *semaphore.Weighted {
	r.mu.Lock()
	defer r.mu.Unlock()

	sem, ok := r.sems[key]
	if !ok {
		sem = semaphore.NewWeighted(writerWeight)
		r.sems[key] = sem
	}
	return sem
}

// lockKey normalizes a repository path so aliases share one lock
func lockKey(repoPath string) string {
	path, err := filepath.Abs(repoPath)
	if err != nil {
		path = repoPath
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Clean(path)
}

// lockFileName derives a stable file name from the repository key
func lockFileName(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+key)).String() + ".lock"
}
