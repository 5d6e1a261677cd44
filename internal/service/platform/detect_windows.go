package platform

import (
	"context"
	"runtime"

	"golang.org/x/sys/windows"
)

// Detect collects the version numbers and service pack from RtlGetVersion,
// which is not subject to the manifest-based version lie of GetVersionEx.
func Detect(_ context.Context) (*Host, error) {
	info := windows.RtlGetVersion()

	return &Host{
		OS:         runtime.GOOS,
		SystemName: "Windows",
		Arch:       runtime.GOARCH,
		Windows: WindowsVersion{
			Major:       info.MajorVersion,
			Minor:       info.MinorVersion,
			Build:       info.BuildNumber,
			ServicePack: windows.UTF16ToString(info.CsdVersion[:]),
		},
	}, nil
}
