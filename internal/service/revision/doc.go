// Package revision looks up the short source-control revision of a working tree.
//
// The lookup shells out to `git rev-parse --short HEAD`. Callers that only need
// a printable value use Resolver.Resolve, which maps every failure to the "n/a"
// sentinel; Resolver.Short reports the underlying error instead.
package revision
