// Package build provides build information that is linked into the application. Other
// packages within this project can use this information in logs etc..
package build

var (
	// Version is the build version of the binary. It is set with -ldflags
	// "-X github.com/algokit/algokit/internal/build.Version=...".
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the date the binary was built.
	Date = "unknown"

	// ProjectName is the name of the binary and the env prefix it reads.
	ProjectName = "algokit"
)
