// Package main provides the entry point for the csv-discrepancy-finder CLI tool.
package main

import (
	"context"
	"os"

	"github.com/kmorhun/csv-discrepancy-finder/cmd/csv-discrepancy-finder/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	app.ExitOnError(application.Execute(ctx, os.Args[1:]))
}
