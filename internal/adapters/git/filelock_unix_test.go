//go:build unix

package git

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two registries sharing a lock dir stand in for two gitwatch processes
func TestLockRegistry_FileLockAcrossRegistries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "locks")
	repo := t.TempDir()
	first := newLockRegistry(dir)
	second := newLockRegistry(dir)

	hold, err := first.acquire(context.Background(), repo, true)
	require.NoError(t, err)

	_, err = second.acquire(shortContext(t), repo, false)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	hold()
	reader, err := second.acquire(shortContext(t), repo, false)
	require.NoError(t, err)
	defer reader()

	otherReader, err := first.acquire(shortContext(t), repo, false)
	require.NoError(t, err)
	otherReader()
}
