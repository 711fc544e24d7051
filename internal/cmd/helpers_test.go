package cmd

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/gitwatch/internal/config"
)

// commandResult holds the outcome of one in-process CLI run
type commandResult struct {
	CLI    *CLI
	Err    error
	Stdout string
}

// testEnvironment isolates GITWATCH_HOME and the variables AfterApply reads
// or exports. ReposRoot is the default repositories root under the home.
type testEnvironment struct {
	Home      string
	ReposRoot string
}

func newTestEnvironment(t *testing.T) *testEnvironment {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	env := &testEnvironment{
		Home:      home,
		ReposRoot: filepath.Join(home, "repos"),
	}
	require.NoError(t, os.MkdirAll(env.ReposRoot, 0755))

	t.Setenv(config.EnvHome, env.Home)
	t.Setenv("HOME", base)
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	for _, name := range []string{
		config.EnvDataDir,
		config.EnvReposPath,
		"GITWATCH_DEBUG",
		"GITWATCH_DEBUG_FILE",
		"GITWATCH_MAX_LOG_FILES",
		"GITWATCH_USER",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return env
}

// run parses args like main does and executes the selected command.
// settings may be nil.
func run(t *testing.T, settings *config.Settings, args ...string) commandResult {
	t.Helper()

	cli := &CLI{}
	cli.SetSettings(settings)

	parser, err := kong.New(cli,
		kong.Name("gitwatch"),
		kong.Vars{"version": "test"},
		kong.Bind(cli),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit with code %d", code) }),
	)
	require.NoError(t, err)

	var result commandResult
	result.CLI = cli
	result.Stdout = captureStdout(t, func() {
		ctx, err := parser.Parse(args)
		if err != nil {
			result.Err = err
			return
		}
		result.Err = ctx.Run()
	})
	require.NoError(t, cli.Close())
	return result
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stdout
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	defer func() {
		os.Stdout = original
	}()
	fn()
	require.NoError(t, w.Close())
	return <-done
}

// runGit runs git in dir and returns trimmed output
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
		"LC_ALL=C",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

func commitFile(t *testing.T, dir, name, content, message string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	runGit(t, dir, "add", name)
	runGit(t, dir, "commit", "-m", message)
}

// createRepo initializes name under the repositories root with a main branch
func (e *testEnvironment) createRepo(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(e.ReposRoot, name)
	require.NoError(t, os.MkdirAll(dir, 0755))

	runGit(t, dir, "init")
	runGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	runGit(t, dir, "config", "user.email", "test@test.com")
	runGit(t, dir, "config", "user.name", "Test")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	commitFile(t, dir, "a.txt", "base\n", "Initial commit")
	return dir
}

// createFeatureRepo creates a repository whose feature branch changes a.txt
// and adds b.txt
func (e *testEnvironment) createFeatureRepo(t *testing.T, name string) string {
	t.Helper()
	dir := e.createRepo(t, name)
	runGit(t, dir, "checkout", "-b", "feature")
	commitFile(t, dir, "a.txt", "base\nfeature\n", "extend a")
	commitFile(t, dir, "b.txt", "b\n", "add b")
	runGit(t, dir, "checkout", "main")
	return dir
}
