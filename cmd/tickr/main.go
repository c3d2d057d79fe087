// Package main provides the entry point for the tickr terminal clock.
package main

import (
	"context"
	"os"

	"github.com/mrz1836/tickr/internal/cli"
)

// Build information set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=$(git rev-parse --short HEAD)"
//
//nolint:gochecknoglobals // ldflags targets must be package-level vars
var (
	version string
	commit  string
	date    string
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(cli.ExitError)
	}
}
