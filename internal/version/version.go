// Package version carries build metadata injected at link time.
package version

// Set via -ldflags "-X github.com/tomecraft/statscribe/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String renders the version with commit and build date when known.
func String() string {
	s := Version
	if GitCommit != "unknown" {
		s += " (" + GitCommit + ")"
	}
	if BuildDate != "unknown" {
		s += " built " + BuildDate
	}
	return s
}
