package version

import (
	"fmt"
	"runtime/debug"
)

// shortCommitLength matches the abbreviation of `git rev-parse --short`.
const shortCommitLength = 7

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "0.1.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version string with commit and build time.
func Full() string {
	return fmt.Sprintf("initgen version: %s, commit: %s, built at: %s", Version, commit(), BuildTime)
}

// commit returns the injected commit or the toolchain VCS stamp.
func commit() string {
	if Commit != "none" {
		return Commit
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Commit
	}

	return commitFromSettings(info.Settings)
}

// commitFromSettings extracts the abbreviated vcs.revision, marking modified trees.
func commitFromSettings(settings []debug.BuildSetting) string {
	var revision, modified string

	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision == "" {
		return Commit
	}

	if len(revision) > shortCommitLength {
		revision = revision[:shortCommitLength]
	}

	if modified == "true" {
		revision += "-dirty"
	}

	return revision
}
