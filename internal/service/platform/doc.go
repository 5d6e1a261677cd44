// Package platform describes the host a binary distribution is built on.
//
// Detect collects raw facts about the running system (uname, sysctl,
// os-release, RtlGetVersion depending on the OS) into a Host. Describe turns a
// Host into the build platform identifier written to the init file:
//
//	macOS:   OSX_<product version>_<arch>
//	Linux:   Linux_<name:version:codename>_<kernel release>
//	Windows: win32_v<major>.<minor>.<build>[ (<service pack>)]
//	other:   <system name><release>
//
// Describe is pure, so every shape can be produced for a simulated host.
package platform
