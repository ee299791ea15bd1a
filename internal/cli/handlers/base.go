// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

// Package handlers holds what every command needs to present its result.
package handlers

import (
	"io"

	cliAdapter "github.com/janderssonse/atlas/internal/adapters/cli"
	"github.com/janderssonse/atlas/internal/domain"
)

// BaseHandler provides common functionality for all command handlers.
type BaseHandler struct {
	Verbose bool
	JSON    bool
	YAML    bool
	Plain   bool
	Quiet   bool
	Output  *cliAdapter.OutputAdapter
}

// NewBaseHandler creates a handler writing results to writer.
func NewBaseHandler(writer io.Writer, verbose, json, yaml, plain, quiet bool) *BaseHandler {
	return &BaseHandler{
		Verbose: verbose,
		JSON:    json,
		YAML:    yaml,
		Plain:   plain,
		Quiet:   quiet,
		Output:  cliAdapter.OutputFromFlags(writer, json, yaml, plain, quiet),
	}
}

// GetOutput returns the output port for CLI rendering.
func (h *BaseHandler) GetOutput() *cliAdapter.OutputAdapter {
	return h.Output
}

// Fail wraps err in an ExitError carrying a user-friendly message.
// subject is the country code the command concerned, if any.
func (h *BaseHandler) Fail(code int, err error, subject string) error {
	return domain.NewExitError(code, domain.FormatErrorMessage(err, subject, h.Verbose), err)
}
