// Package buildinfo carries version metadata stamped via ldflags.
package buildinfo

var (
	// Version is the release version, set at build time.
	Version = "dev"
	// Commit is the source revision, set at build time.
	Commit = "none"
	// Date is the build timestamp, set at build time.
	Date = "unknown"
)
