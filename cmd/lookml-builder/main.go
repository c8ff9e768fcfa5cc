// Package main provides the CLI entrypoint for lookml-builder.
//
// lookml-builder turns a base LookML view into layered refinements:
//   - Parses the view and sorts its fields into type buckets
//   - Classifies fields into keys, IDs, flags, dimensions, measures and filters
//   - Renders source, semantic, style and explore files
//   - Records every run under <output>/runs
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lookml-builder/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: loading .env: %v\n", err)
		return cli.ExitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.New(os.Stdout, os.Stderr).Run(ctx, os.Args[1:])
}
