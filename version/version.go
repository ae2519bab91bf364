// Package version provides build version information.
package version

import "runtime"

// Set at build time via -ldflags.
var (
	GitRelease    = "dev"
	GitCommit     = ""
	GitCommitDate = ""
)

// GoInfo is the Go toolchain the binary was built with.
var GoInfo = runtime.Version()
