// Package version exposes build metadata of the initgen binary itself.
//
// Version, Commit and BuildTime are injected at build time via Go ldflags.
// When Commit is not injected it is taken from the VCS stamp the Go toolchain
// embeds in the binary. Short and Full render the values for CLI output.
package version
