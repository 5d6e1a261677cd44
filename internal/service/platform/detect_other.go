//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows

package platform

import (
	"context"
	"runtime"
)

// Detect reports only what the runtime knows on systems without uname.
func Detect(_ context.Context) (*Host, error) {
	return &Host{
		OS:         runtime.GOOS,
		SystemName: runtime.GOOS,
		Arch:       runtime.GOARCH,
	}, nil
}
