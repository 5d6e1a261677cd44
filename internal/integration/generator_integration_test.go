package integration

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/initgen/internal/config"
	"github.com/oshokin/initgen/internal/domain/buildinfo"
	"github.com/oshokin/initgen/internal/repository/initfile"
	"github.com/oshokin/initgen/internal/service/generator"
)

// setupProject creates a project layout with a version file and the package directory.
func setupProject(t *testing.T, version string) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(config.DefaultVersionFilename, []byte(version+"\n"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Dir(config.DefaultOutputFilename), 0o755))

	return dir
}

// git runs a git command in dir and returns trimmed stdout.
func git(t *testing.T, dir string, args ...string) string {
	t.Helper()

	command := exec.Command("git", args...)
	command.Dir = dir
	command.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=initgen", "GIT_AUTHOR_EMAIL=initgen@example.com",
		"GIT_COMMITTER_NAME=initgen", "GIT_COMMITTER_EMAIL=initgen@example.com",
	)

	output, err := command.Output()
	require.NoError(t, err, "git %s", strings.Join(args, " "))

	return strings.TrimSpace(string(output))
}

// runGenerator runs the entry point with default settings and a timeout.
func runGenerator(t *testing.T, opts *generator.Options) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := generator.Run(ctx, opts)
	require.NoError(t, err)

	return text
}

// TestGenerate_DefaultLayout runs the zero-argument case in a fresh project.
func TestGenerate_DefaultLayout(t *testing.T) {
	setupProject(t, "1.90.0")

	text := runGenerator(t, &generator.Options{})

	info, err := initfile.NewFileRepository(config.DefaultOutputFilename).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, &buildinfo.Info{
		Version:    "1.90.0",
		RevisionID: buildinfo.NotAvailable,
		PlatformID: buildinfo.NotAvailable,
	}, info)
	require.Contains(t, text, "from psychopy.tools.versionchooser import useVersion, ensureMinimal\n")
}

// TestGenerate_SourceDistInGitRepository records the real short revision.
func TestGenerate_SourceDistInGitRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed")
	}

	dir := setupProject(t, "1.90.0")

	git(t, dir, "init", "--quiet")
	git(t, dir, "add", config.DefaultVersionFilename)
	git(t, dir, "commit", "--quiet", "--no-gpg-sign", "-m", "version")

	want := git(t, dir, "rev-parse", "--short", "HEAD")

	text := runGenerator(t, &generator.Options{Mode: buildinfo.ModeSourceDist})
	require.Contains(t, text, "__git_sha__ = '"+want+"'\n")
	require.Contains(t, text, "__build_platform__ = 'n/a'\n")
}

// TestGenerate_SourceDistWithoutGit still succeeds when git cannot be executed.
func TestGenerate_SourceDistWithoutGit(t *testing.T) {
	setupProject(t, "1.90.0")
	t.Setenv("PATH", t.TempDir())

	text := runGenerator(t, &generator.Options{Mode: buildinfo.ModeSourceDist})
	require.Contains(t, text, "__git_sha__ = 'n/a'\n")
}

// TestGenerate_BinaryDistOnThisHost inspects the machine running the tests.
func TestGenerate_BinaryDistOnThisHost(t *testing.T) {
	setupProject(t, "1.90.0")

	text := runGenerator(t, &generator.Options{Mode: buildinfo.ModeBinaryDist, Revision: "abc123"})
	require.Contains(t, text, "__git_sha__ = 'abc123'\n")

	info, err := initfile.Parse([]byte(text))
	require.NoError(t, err)

	switch runtime.GOOS {
	case "linux":
		require.True(t, strings.HasPrefix(info.PlatformID, "Linux_"), info.PlatformID)
	case "darwin":
		require.True(t, strings.HasPrefix(info.PlatformID, "OSX_"), info.PlatformID)
	case "windows":
		require.True(t, strings.HasPrefix(info.PlatformID, "win32_v"), info.PlatformID)
	default:
		require.NotEqual(t, buildinfo.NotAvailable, info.PlatformID)
	}
}

// TestGenerate_ConfigFile picks up paths and metadata from initgen.yaml.
func TestGenerate_ConfigFile(t *testing.T) {
	dir := setupProject(t, "0.3.0")

	cfg := config.Default()
	cfg.OutputFile = filepath.Join(dir, "stimuli_init.py")
	cfg.Project.Name = "Stimuli"
	require.NoError(t, config.Save(config.DefaultConfigFilename, cfg))

	text := runGenerator(t, &generator.Options{})
	require.Contains(t, text, "# version info for Stimuli\n")

	_, err := os.Stat(cfg.OutputFile)
	require.NoError(t, err)
}

// TestGenerate_InspectRoundTrip reads back values that needed escaping.
func TestGenerate_InspectRoundTrip(t *testing.T) {
	setupProject(t, "1.90.0")

	runGenerator(t, &generator.Options{Version: "1.0'rc", Revision: `C:\x`})

	info, err := initfile.NewFileRepository(config.DefaultOutputFilename).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "1.0'rc", info.Version)
	require.Equal(t, `C:\x`, info.RevisionID)
	require.Equal(t, buildinfo.NotAvailable, info.PlatformID)
}
