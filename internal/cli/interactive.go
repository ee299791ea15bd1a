// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/janderssonse/atlas/internal/catalog"
	"github.com/janderssonse/atlas/internal/domain"
)

// promptListQuery asks for the search text and sort order, starting from
// the values given on the command line.
func (app *CLI) promptListQuery(ctx context.Context, query listQuery) (listQuery, error) {
	if !app.console.IsTTY(0) {
		return query, domain.NewExitError(ExitUsageError, "--interactive requires a terminal", nil)
	}

	form := newListForm(&query)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return query, domain.NewExitError(ExitInterruptError, "Cancelled", err)
		}

		return query, domain.NewExitError(ExitGeneralError, fmt.Sprintf("Prompt failed: %v", err), err)
	}

	return query, nil
}

// newListForm builds the prompt bound to query.
func newListForm(query *listQuery) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search by Country Name").
				Description("Part of the official name, any case. Leave empty for all countries.").
				Value(&query.Search),
			huh.NewSelect[string]().
				Title("Sort order").
				Options(
					huh.NewOption("▲ A to Z", catalog.Ascending.String()),
					huh.NewOption("▼ Z to A", catalog.Descending.String()),
				).
				Value(&query.Sort),
		),
	)
}
