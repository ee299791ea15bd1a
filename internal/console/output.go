// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes human-facing status messages to stderr.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OutputState holds global output configuration.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool

	// Err receives status messages; nil means os.Stderr.
	Err io.Writer
}

// DefaultOutput provides output formatting utilities.
var DefaultOutput = &OutputState{} //nolint:gochecknoglobals

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, plain bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Plain = plain
}

// IsTTY checks if output is going to a terminal (not piped/redirected).
func (o *OutputState) IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		fmt.Fprintf(o.errWriter(), format+"\n", args...)
	}
}

// Successf writes success messages to stderr (only if not JSON/Plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain {
		fmt.Fprintf(o.errWriter(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr (always visible unless plain mode).
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		fmt.Fprintf(o.errWriter(), "warning: "+format+"\n", args...)
	} else {
		fmt.Fprintf(o.errWriter(), "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		fmt.Fprintf(o.errWriter(), "error: "+format+"\n", args...)
	} else {
		fmt.Fprintf(o.errWriter(), "✗ "+format+"\n", args...)
	}
}

func (o *OutputState) errWriter() io.Writer {
	if o.Err != nil {
		return o.Err
	}

	return os.Stderr
}
