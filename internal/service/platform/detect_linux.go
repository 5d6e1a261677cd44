package platform

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Detect collects the kernel release from uname(2) and the distribution from os-release.
func Detect(_ context.Context) (*Host, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, fmt.Errorf("uname: %w", err)
	}

	distribution, err := readDistribution(osReleasePaths)
	if err != nil {
		return nil, err
	}

	return &Host{
		OS:           runtime.GOOS,
		SystemName:   unix.ByteSliceToString(uts.Sysname[:]),
		Release:      unix.ByteSliceToString(uts.Release[:]),
		Arch:         unix.ByteSliceToString(uts.Machine[:]),
		Distribution: distribution,
	}, nil
}
