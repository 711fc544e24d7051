package process

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSExecutor_CombinedOutput(t *testing.T) {
	e := NewOSExecutor()

	out, err := e.CombinedOutput(context.Background(), t.TempDir(), "git", "--version")

	require.NoError(t, err)
	assert.Contains(t, string(out), "git version")
}

func TestOSExecutor_OutputFailureIncludesStderr(t *testing.T) {
	e := NewOSExecutor()

	_, err := e.Output(context.Background(), t.TempDir(), "git", "rev-parse", "HEAD")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Output:")
}

func TestOSExecutor_ContextDeadline(t *testing.T) {
	e := NewOSExecutor()
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := e.CombinedOutput(ctx, t.TempDir(), "git", "--version")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockExecutor_MatchesInOrder(t *testing.T) {
	m := NewMockExecutor(nil)
	boom := errors.New("boom")
	m.AddExactMatch("git", []string{"checkout", "main"}, MockResponse{Err: boom})
	m.AddPrefixMatch("git", []string{"checkout"}, MockResponse{Stdout: []byte("ok")})

	_, err := m.CombinedOutput(context.Background(), "/repo", "git", "checkout", "main")
	assert.ErrorIs(t, err, boom)

	out, err := m.CombinedOutput(context.Background(), "/repo", "git", "checkout", "dev")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))

	out, err = m.Output(context.Background(), "/repo", "git", "status")
	require.NoError(t, err)
	assert.Empty(t, out)

	calls := m.Calls()
	require.Len(t, calls, 3)
	assert.Equal(t, []string{"checkout", "dev"}, calls[1].Args)
	assert.Equal(t, "/repo", calls[2].Dir)
}
