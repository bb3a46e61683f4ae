// Command bsptile is a binary space partitioning window placement engine.
package main

import (
	"runtime"

	"github.com/bnema/bsptile/internal/cli/cmd"
	"github.com/bnema/bsptile/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
