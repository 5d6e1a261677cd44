package platform

import (
	"context"
	"errors"
	"regexp"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/initgen/internal/domain/buildinfo"
)

var errTestDetect = errors.New("test detection error")

// TestDescribe checks the identifier shape for each supported host family.
func TestDescribe(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host *Host
		want string
	}{
		{
			name: "macOS",
			host: &Host{OS: "darwin", ProductVersion: "14.4.1", Arch: "arm64"},
			want: "OSX_14.4.1_arm64",
		},
		{
			name: "Linux",
			host: &Host{
				OS:      "linux",
				Release: "6.5.0-27-generic",
				Distribution: Distribution{
					Name:     "Ubuntu",
					Version:  "22.04",
					Codename: "jammy",
				},
			},
			want: "Linux_Ubuntu:22.04:jammy_6.5.0-27-generic",
		},
		{
			name: "Linux without codename",
			host: &Host{
				OS:           "linux",
				Release:      "6.8.5-arch1-1",
				Distribution: Distribution{Name: "Arch Linux"},
			},
			want: "Linux_Arch Linux_6.8.5-arch1-1",
		},
		{
			name: "Windows",
			host: &Host{OS: "windows", Windows: WindowsVersion{Major: 10, Minor: 0, Build: 19045}},
			want: "win32_v10.0.19045",
		},
		{
			name: "Windows with service pack",
			host: &Host{
				OS:      "windows",
				Windows: WindowsVersion{Major: 6, Minor: 1, Build: 7601, ServicePack: "Service Pack 1"},
			},
			want: "win32_v6.1.7601 (Service Pack 1)",
		},
		{
			name: "generic",
			host: &Host{OS: "freebsd", SystemName: "FreeBSD", Release: "14.0-RELEASE"},
			want: "FreeBSD14.0-RELEASE",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, Describe(tc.host))
		})
	}
}

// TestResolver_UsesDetect verifies the resolver describes whatever detection reports.
func TestResolver_UsesDetect(t *testing.T) {
	t.Parallel()

	r := NewResolver(WithDetect(func(context.Context) (*Host, error) {
		return &Host{OS: "darwin", ProductVersion: "10.15.7", Arch: "x86_64"}, nil
	}))

	require.Equal(t, "OSX_10.15.7_x86_64", r.Resolve(context.Background()))
}

// TestResolver_DetectFailure ensures failing detection yields the sentinel.
func TestResolver_DetectFailure(t *testing.T) {
	t.Parallel()

	r := NewResolver(WithDetect(func(context.Context) (*Host, error) {
		return nil, errTestDetect
	}))

	require.Equal(t, buildinfo.NotAvailable, r.Resolve(context.Background()))

	// An empty description is never written.
	r = NewResolver(WithDetect(func(context.Context) (*Host, error) {
		return &Host{OS: "plan9"}, nil
	}))

	require.Equal(t, buildinfo.NotAvailable, r.Resolve(context.Background()))
}

// TestDetect_CurrentHost inspects the machine running the tests.
func TestDetect_CurrentHost(t *testing.T) {
	t.Parallel()

	host, err := Detect(context.Background())
	require.NoError(t, err)
	require.Equal(t, runtime.GOOS, host.OS)

	description := Describe(host)
	require.NotEmpty(t, description)

	switch runtime.GOOS {
	case "linux":
		require.Regexp(t, regexp.MustCompile(`^Linux_.*_.+$`), description)
	case "darwin":
		require.Regexp(t, regexp.MustCompile(`^OSX_\d+(\.\d+)*_.+$`), description)
	case "windows":
		require.Regexp(t, regexp.MustCompile(`^win32_v\d+\.\d+\.\d+`), description)
	}
}
