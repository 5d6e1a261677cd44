//go:build aix || dragonfly || freebsd || netbsd || openbsd || solaris

package platform

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Detect collects the system name and release from uname(2).
func Detect(_ context.Context) (*Host, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, fmt.Errorf("uname: %w", err)
	}

	return &Host{
		OS:         runtime.GOOS,
		SystemName: unix.ByteSliceToString(uts.Sysname[:]),
		Release:    unix.ByteSliceToString(uts.Release[:]),
		Arch:       unix.ByteSliceToString(uts.Machine[:]),
	}, nil
}
