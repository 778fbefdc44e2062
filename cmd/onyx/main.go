// Command onyx-resolve is the CLI for the overload resolution engine:
// it resolves calls described by a scenario document directly, or
// serves resolutions over gRPC as a daemon.
package main

import (
	"os"

	"github.com/f/onyx-lang/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
