package buildinfo

import "strings"

// NotAvailable is written for any field that was not resolved or not requested.
const NotAvailable = "n/a"

// Info is the metadata triple substituted into the init file template.
type Info struct {
	// Version is the package version read from the version file or given explicitly.
	Version string
	// RevisionID is the short source-control revision or NotAvailable.
	RevisionID string
	// PlatformID describes the build host or is NotAvailable.
	PlatformID string
}

// NewInfo builds an Info, mapping blank revision and platform values to NotAvailable.
func NewInfo(version, revisionID, platformID string) *Info {
	return &Info{
		Version:    version,
		RevisionID: OrNotAvailable(revisionID),
		PlatformID: OrNotAvailable(platformID),
	}
}

// OrNotAvailable returns s with surrounding whitespace removed, or NotAvailable when nothing is left.
func OrNotAvailable(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotAvailable
	}

	return s
}

// HasRevision reports whether a real revision was resolved.
func (i *Info) HasRevision() bool {
	return i.RevisionID != NotAvailable
}

// HasPlatform reports whether a real platform description was resolved.
func (i *Info) HasPlatform() bool {
	return i.PlatformID != NotAvailable
}
