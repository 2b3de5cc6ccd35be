// Package version exposes the marketsearch build metadata, stamped at
// link time:
//
//	go build -ldflags "-X github.com/raspaai/marketsearch/internal/version.Version=v1.2.0"
package version

// Defaults identify an unstamped local build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
