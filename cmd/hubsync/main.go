// Package main provides the entry point for the hubsync service.
package main

import (
	"github.com/pocketai/hubsync/cmd/hubsync/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
