// Package main is the entry point for the pqueue command.
package main

import (
	"fmt"
	"os"

	"github.com/pic32/Priority-Queue/internal/cli"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	if err := cli.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pqueue:", err)
		os.Exit(1)
	}
}
