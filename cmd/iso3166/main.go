// iso3166 is a CLI tool that looks up ISO 3166 country and subdivision records
// and their localized names.
package main

import (
	"github.com/hightemp/iso3166/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
