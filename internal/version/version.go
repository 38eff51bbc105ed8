// Package version carries build information stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/gotab/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// String describes the build on one line
func String() string {
	return fmt.Sprintf("gotab v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
