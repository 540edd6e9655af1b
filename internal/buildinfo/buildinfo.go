// Package buildinfo carries release metadata injected at link time.
package buildinfo

// These values are set via ldflags for release binaries and default to empty
// for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
