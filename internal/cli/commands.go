// SPDX-FileCopyrightText: 2025 The Atlas Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"
	"strings"

	cliAdapter "github.com/janderssonse/atlas/internal/adapters/cli"
	"github.com/janderssonse/atlas/internal/catalog"
	"github.com/janderssonse/atlas/internal/domain"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/message"
)

// listHeaders are the column titles of "atlas list" text output.
var listHeaders = []string{ //nolint:gochecknoglobals
	"Flag",
	"Country Name",
	"2 character Country Code",
	"3 character Country Code",
	"Native Country Name",
	"Alternative Country Name",
	"Country Calling Codes",
}

// listQuery is what "atlas list" was asked for.
type listQuery struct {
	Search string
	Sort   string
	Page   int
}

func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print one page of the catalog",
		Description: `Prints one page of countries, filtered by official name and sorted
alphabetically. Pages beyond the last show the last page.

EXAMPLES:
  atlas list
  atlas list --search republic --page 2
  atlas list --sort desc --json
  atlas list --interactive`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "keep countries whose official name contains this text",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "sort order: asc or desc",
				Value: catalog.Ascending.String(),
			},
			&cli.IntFlag{
				Name:    "page",
				Aliases: []string{"p"},
				Usage:   "page number, starting at 1",
				Value:   1,
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "ask for search text and sort order",
			},
		},
		Action: app.runList,
	}
}

// runList handles the list command execution with output adapter.
func (app *CLI) runList(ctx context.Context, cmd *cli.Command) error {
	handler := app.handler()

	query := listQuery{
		Search: cmd.String("search"),
		Sort:   cmd.String("sort"),
		Page:   cmd.Int("page"),
	}

	if cmd.Bool("interactive") {
		prompted, err := app.promptListQuery(ctx, query)
		if err != nil {
			return err
		}

		query = prompted
	}

	order, err := catalog.ParseSortOrder(query.Sort)
	if err != nil {
		return handler.Fail(ExitUsageError, err, "")
	}

	if query.Page < 1 {
		return handler.Fail(ExitUsageError, fmt.Errorf("%w: %d", domain.ErrInvalidPage, query.Page), "")
	}

	countries, err := app.loadCountries(ctx, handler)
	if err != nil {
		return err
	}

	state := catalog.NewViewState()
	state.SetSearchTerm(query.Search)
	state.Order = order
	state.SetPage(query.Page)

	view := app.pipeline.Derive(countries, state)

	return app.outputPage(handler.GetOutput(), query.Search, view)
}

func (app *CLI) outputPage(output *cliAdapter.OutputAdapter, search string, view catalog.View) error {
	summaries := make([]domain.CountrySummary, 0, len(view.Rows))
	for _, country := range view.Rows {
		summaries = append(summaries, country.Summary())
	}

	if output.Structured() {
		return output.Success("", domain.PageResult{
			Search:     search,
			Order:      view.Order.String(),
			Page:       view.Page,
			TotalPages: view.TotalPages,
			Matches:    view.Matches,
			Countries:  summaries,
		})
	}

	if view.Empty() {
		return output.Info("No countries match.")
	}

	headers := make([]string, len(listHeaders))
	copy(headers, listHeaders)
	headers[1] += " " + view.Order.Indicator()

	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []string{
			summary.Flag,
			summary.OfficialName,
			summary.TwoLetterCode,
			summary.ThreeLetterCode,
			summary.NativeName,
			summary.AlternativeNames,
			summary.CallingCode,
		})
	}

	if err := output.Table(headers, rows); err != nil {
		return err
	}

	if output.Format() == cliAdapter.PlainFormat {
		return nil
	}

	return output.Info(fmt.Sprintf("\nPage %d of %d (%d matches)", view.Page, view.TotalPages, view.Matches))
}

func (app *CLI) createShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the details of one country",
		ArgsUsage: "<code>",
		Description: `Shows one country by its two- or three-letter code.

--field resolves a dotted path in the directory record and prints NF when
the path does not exist.

EXAMPLES:
  atlas show SWE
  atlas show fr --json
  atlas show FRA --field name.nativeName.fra.common`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Usage:   "print only this dotted path of the record",
			},
		},
		Action: app.runShow,
	}
}

// runShow handles the show command.
func (app *CLI) runShow(ctx context.Context, cmd *cli.Command) error {
	handler := app.handler()

	code := cmd.Args().First()
	if code == "" {
		return domain.NewExitError(ExitUsageError, "Usage: atlas show <code> (for example: atlas show SWE)", nil)
	}

	countries, err := app.loadCountries(ctx, handler)
	if err != nil {
		return err
	}

	country, found := catalog.FindByCode(countries, code)
	if !found {
		return handler.Fail(ExitNotFoundError, domain.ErrCountryNotFound, code)
	}

	output := handler.GetOutput()

	if field := cmd.String("field"); field != "" {
		value := country.Lookup(field)

		return output.Success(value, map[string]string{
			"cca3":  country.ThreeLetterCode,
			"field": field,
			"value": value,
		})
	}

	detail := country.Detail()
	if output.Structured() {
		return output.Success("", detail)
	}

	return output.Table([]string{"Field", "Value"}, app.detailRows(country, detail))
}

func (app *CLI) detailRows(country domain.Country, detail domain.CountryDetail) [][]string {
	callingCodes := domain.Placeholder
	if len(detail.CallingCodes) > 0 {
		callingCodes = strings.Join(detail.CallingCodes, ", ")
	}

	population := domain.Placeholder
	if detail.Population != nil {
		population = message.NewPrinter(app.language).Sprintf("%d", *detail.Population)
	}

	return [][]string{
		{"Flag", country.FlagSymbol()},
		{"Official name", detail.OfficialName},
		{"Common name", detail.CommonName},
		{"Codes", country.Lookup("cca2") + " / " + country.Lookup("cca3")},
		{"Capital", detail.Capital},
		{"Population", population},
		{"Region", detail.Region},
		{"Subregion", detail.Subregion},
		{"Calling codes", callingCodes},
		{"Flag image", detail.FlagImageURL},
	}
}
