package buildinfo

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how much build metadata is resolved.
type Mode int

const (
	// ModeNone writes only the version; revision and platform are left as the sentinel.
	ModeNone Mode = iota
	// ModeSourceDist resolves the revision from git.
	ModeSourceDist
	// ModeBinaryDist resolves the revision from git and the build platform from the host.
	ModeBinaryDist
)

// ErrUnknownMode is returned by ParseMode for unrecognized values.
var ErrUnknownMode = errors.New("unknown distribution mode")

// ParseMode converts the textual mode ("none", "sdist", "bdist") to Mode.
// An empty string means ModeNone.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ModeNone, nil
	case "sdist":
		return ModeSourceDist, nil
	case "bdist":
		return ModeBinaryDist, nil
	default:
		return ModeNone, fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

// String returns the textual form accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSourceDist:
		return "sdist"
	case ModeBinaryDist:
		return "bdist"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ResolvesRevision reports whether the revision should be looked up from source control.
func (m Mode) ResolvesRevision() bool {
	return m == ModeSourceDist || m == ModeBinaryDist
}

// ResolvesPlatform reports whether the build platform should be detected.
func (m Mode) ResolvesPlatform() bool {
	return m == ModeBinaryDist
}
