// Package buildinfo contains the domain types written into the generated init file.
//
// It defines Mode (how much metadata is resolved for a distribution) and Info
// (the version, revision and platform triple) together with the "n/a" sentinel
// used for any field that was not resolved.
package buildinfo
