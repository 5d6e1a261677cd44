package revision

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/initgen/internal/domain/buildinfo"
)

var errTestRun = errors.New("test run error")

// fakeRunner returns canned output and records the last call.
type fakeRunner struct {
	// output is returned from Run.
	output string
	// err is returned from Run.
	err error
	// dir, name and args record the last invocation.
	dir  string
	name string
	args []string
}

// Run records the invocation and returns the canned values.
func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	f.dir, f.name, f.args = dir, name, args

	return f.output, f.err
}

// TestResolve_TrimsOutput verifies the revision is trimmed and the git invocation is correct.
func TestResolve_TrimsOutput(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: "abc1234\n"}
	r := NewResolver("/src/psychopy", WithRunner(runner))

	require.Equal(t, "abc1234", r.Resolve(context.Background()))
	require.Equal(t, "/src/psychopy", runner.dir)
	require.Equal(t, "git", runner.name)
	require.Equal(t, []string{"rev-parse", "--short", "HEAD"}, runner.args)
}

// TestResolve_FailuresMapToSentinel checks that errors and empty output yield "n/a".
func TestResolve_FailuresMapToSentinel(t *testing.T) {
	t.Parallel()

	failing := NewResolver(".", WithRunner(&fakeRunner{err: errTestRun}))
	require.Equal(t, buildinfo.NotAvailable, failing.Resolve(context.Background()))

	_, err := failing.Short(context.Background())
	require.ErrorIs(t, err, errTestRun)

	empty := NewResolver(".", WithRunner(&fakeRunner{output: " \n"}))
	require.Equal(t, buildinfo.NotAvailable, empty.Resolve(context.Background()))

	_, err = empty.Short(context.Background())
	require.ErrorIs(t, err, errEmptyRevision)
}

// TestResolve_GitMissing ensures a missing git executable is not an error for Resolve.
func TestResolve_GitMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	r := NewResolver(t.TempDir())
	require.Equal(t, buildinfo.NotAvailable, r.Resolve(context.Background()))
}

// TestResolve_NotARepository runs real git outside a repository.
func TestResolve_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	r := NewResolver(dir)
	require.Equal(t, buildinfo.NotAvailable, r.Resolve(context.Background()))
}

// TestWithRunner_IgnoresNil keeps the default runner when nil is passed.
func TestWithRunner_IgnoresNil(t *testing.T) {
	t.Parallel()

	r := NewResolver(".", WithRunner(nil))
	require.IsType(t, ExecRunner{}, r.runner)
}
