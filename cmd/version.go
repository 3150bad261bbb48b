// Package cmd holds build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/folio/cmd.Version=v1.2.0"
package cmd

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
