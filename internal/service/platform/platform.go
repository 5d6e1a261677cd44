package platform

import (
	"context"
	"fmt"
	"strings"

	"github.com/oshokin/initgen/internal/domain/buildinfo"
	"github.com/oshokin/initgen/internal/logger"
)

// Host holds the facts needed to describe a build host.
type Host struct {
	// OS is the runtime.GOOS value of the host.
	OS string
	// SystemName is the kernel or system name, e.g. "FreeBSD".
	SystemName string
	// Release is the kernel or system release.
	Release string
	// Arch is the machine hardware name, e.g. "x86_64" or "arm64".
	Arch string
	// ProductVersion is the macOS product version, e.g. "14.4.1".
	ProductVersion string
	// Distribution identifies a Linux distribution.
	Distribution Distribution
	// Windows holds the Windows version numbers.
	Windows WindowsVersion
}

// Distribution identifies a Linux distribution as reported by os-release.
type Distribution struct {
	// Name is the distribution name, e.g. "Ubuntu".
	Name string
	// Version is the distribution version, e.g. "22.04".
	Version string
	// Codename is the release codename, e.g. "jammy".
	Codename string
}

// WindowsVersion holds the numbers reported by RtlGetVersion.
type WindowsVersion struct {
	Major       uint32
	Minor       uint32
	Build       uint32
	ServicePack string
}

// Describe formats the build platform identifier for host.
func Describe(host *Host) string {
	switch host.OS {
	case "darwin":
		return fmt.Sprintf("OSX_%s_%s", host.ProductVersion, host.Arch)
	case "linux":
		return fmt.Sprintf("Linux_%s_%s", host.Distribution.String(), host.Release)
	case "windows":
		w := host.Windows
		if w.ServicePack != "" {
			return fmt.Sprintf("win32_v%d.%d.%d (%s)", w.Major, w.Minor, w.Build, w.ServicePack)
		}

		return fmt.Sprintf("win32_v%d.%d.%d", w.Major, w.Minor, w.Build)
	default:
		return host.SystemName + host.Release
	}
}

// String joins the non-empty distribution fields with colons.
func (d Distribution) String() string {
	parts := make([]string, 0, 3)

	for _, part := range []string{d.Name, d.Version, d.Codename} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ":")
}

// DetectFunc collects the facts of the running host.
type DetectFunc func(ctx context.Context) (*Host, error)

// Resolver produces the platform identifier of the running host.
type Resolver struct {
	// detect collects host facts; defaults to Detect.
	detect DetectFunc
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDetect replaces host detection, mainly for tests.
func WithDetect(detect DetectFunc) Option {
	return func(r *Resolver) {
		if detect != nil {
			r.detect = detect
		}
	}
}

// NewResolver returns a Resolver for the running host.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		detect: Detect,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the platform identifier, or buildinfo.NotAvailable if the
// host could not be detected.
func (r *Resolver) Resolve(ctx context.Context) string {
	host, err := r.detect(ctx)
	if err != nil {
		logger.WarnKV(ctx, "Platform detection failed", "error", err)

		return buildinfo.NotAvailable
	}

	return buildinfo.OrNotAvailable(Describe(host))
}
