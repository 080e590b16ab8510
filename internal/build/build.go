// Package build holds build-time information.
package build

// Set through -ldflags "-X go.trai.ch/bundle/internal/build.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
