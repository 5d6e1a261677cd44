package revision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/oshokin/initgen/internal/domain/buildinfo"
	"github.com/oshokin/initgen/internal/logger"
)

// gitExecutable is the source-control tool queried for the revision.
const gitExecutable = "git"

// shortHeadArgs asks git for the abbreviated HEAD commit.
//
//nolint:gochecknoglobals // Fixed argument list shared by Short and tests.
var shortHeadArgs = []string{"rev-parse", "--short", "HEAD"}

// errEmptyRevision is returned when git succeeds but prints nothing.
var errEmptyRevision = errors.New("empty revision output")

// Runner executes a command in dir and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

// Run executes name with args in dir. Stderr is captured separately and
// included in the error on failure.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	command := exec.CommandContext(ctx, name, args...)
	command.Dir = dir
	command.Stdout = &stdout
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("%s %s in %s: %w (stderr: %s)",
			name, strings.Join(args, " "), dir, err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}

// Resolver queries the revision of a single working tree.
type Resolver struct {
	// dir is the working tree queried; empty means the process working directory.
	dir string
	// runner executes the git command.
	runner Runner
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRunner replaces the command runner, mainly for tests.
func WithRunner(runner Runner) Option {
	return func(r *Resolver) {
		if runner != nil {
			r.runner = runner
		}
	}
}

// NewResolver returns a Resolver for the working tree at dir.
func NewResolver(dir string, opts ...Option) *Resolver {
	r := &Resolver{
		dir:    dir,
		runner: ExecRunner{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Short returns the abbreviated HEAD revision with surrounding whitespace removed.
func (r *Resolver) Short(ctx context.Context) (string, error) {
	output, err := r.runner.Run(ctx, r.dir, gitExecutable, shortHeadArgs...)
	if err != nil {
		return "", err
	}

	rev := strings.TrimSpace(output)
	if rev == "" {
		return "", errEmptyRevision
	}

	return rev, nil
}

// Resolve returns the abbreviated HEAD revision or buildinfo.NotAvailable.
// Failures are logged at debug level and never returned.
func (r *Resolver) Resolve(ctx context.Context) string {
	rev, err := r.Short(ctx)
	if err != nil {
		logger.DebugKV(ctx, "Revision lookup failed", "dir", r.dir, "error", err)

		return buildinfo.NotAvailable
	}

	return rev
}
