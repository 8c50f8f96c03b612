// Package main is the entry point for the zedkit CLI.
package main

import (
	"os"

	"github.com/thoreinstein/zedkit/cmd/zedkit/commands"
	"github.com/thoreinstein/zedkit/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
