// cmd/visor/main.go
package main

import (
	cmd "github.com/mwiater/visor/internal/commands"
)

// Build-time variables injected by the release tooling.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the visor CLI application by delegating to the
// cobra root command defined in the visor package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
