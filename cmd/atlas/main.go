// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for Atlas.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janderssonse/atlas/internal/cli"
	"github.com/janderssonse/atlas/internal/console"
	"github.com/janderssonse/atlas/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewCLI()

	if err := app.Run(ctx, os.Args); err != nil {
		// All errors are expected to be ExitErrors with specific codes
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}

			return exitErr.Code
		}

		console.DefaultOutput.Errorf("Unexpected error: %v", err)

		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
