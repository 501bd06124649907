// Package version holds the build version, overridden with
// -ldflags "-X github.com/katalvlaran/matinv/internal/version.Version=...".
package version

// Version of the matinv binaries.
var Version = "0.1.0-dev"
