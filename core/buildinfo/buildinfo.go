// Package buildinfo carries build metadata injected with -ldflags:
//
//	-X 'github.com/m3rciful/runclub/core/buildinfo.Version=v1.0.0'
//	-X 'github.com/m3rciful/runclub/core/buildinfo.Commit=abcdef0'
//	-X 'github.com/m3rciful/runclub/core/buildinfo.Date=2026-01-01T00:00:00Z'
package buildinfo

var (
	// Version reports the semantic version or tag of the build.
	Version = "dev"
	// Commit reports the source control commit used for the build.
	Commit = "local"
	// Date reports the build timestamp in RFC3339 format.
	Date = ""
)
