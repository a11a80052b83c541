// Package build holds build-time information.
package build

// Set by linker flags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
